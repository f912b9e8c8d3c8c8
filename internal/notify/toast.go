package notify

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/upstream"
)

// Level classifies a toast.
type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Toast is the single notification emitted for one user action. Emission
// never blocks the close/refresh sequence; the toast rides along on the
// response envelope.
type Toast struct {
	Level       Level  `json:"level"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Fallback copy when the backend supplies no message.
const (
	MsgGenericFailure = "Ocurrió un error inesperado."
	MsgCouldNotVerify = "No se pudo verificar la información, inténtelo de nuevo."
	MsgDuplicateEmail = "El correo electrónico ingresado ya está en uso."
	MsgDuplicateTaxID = "El NIF ingresado ya está en uso."
	MsgDuplicateName  = "El nombre ingresado ya está en uso."
	MsgSessionExpired = "La sesión ha expirado, inicie sesión nuevamente."
)

// Counter receives one sample per emitted toast.
type Counter interface {
	CountToast(level string)
}

// Notifier builds and records toasts.
type Notifier struct {
	logger  *zap.Logger
	counter Counter
}

// New constructs a notifier. Both collaborators are optional.
func New(logger *zap.Logger, counter Counter) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{logger: logger, counter: counter}
}

// MutationOutcome emits exactly one toast for a mutation result: a
// positive one naming the subject and verb on success, a negative one
// carrying the backend's message (or the generic fallback) on failure.
func (n *Notifier) MutationOutcome(res *upstream.Result, verb, subject, detail string) Toast {
	if res.OK() {
		return n.emit(Toast{
			Level:       LevelSuccess,
			Title:       fmt.Sprintf("Se %s %s correctamente", verb, subject),
			Description: detail,
		})
	}
	msg := res.Message
	if msg == "" {
		msg = MsgGenericFailure
	}
	if res.SessionExpired() {
		msg = MsgSessionExpired
	}
	return n.emit(Toast{
		Level:       LevelError,
		Title:       fmt.Sprintf("No se pudo %s", gerund(verb, subject)),
		Description: msg,
	})
}

// Warning emits a standalone warning toast, used by the duplicate-check
// gate.
func (n *Notifier) Warning(message string) Toast {
	return n.emit(Toast{Level: LevelWarning, Title: message})
}

// Error emits a standalone error toast.
func (n *Notifier) Error(message string) Toast {
	if message == "" {
		message = MsgGenericFailure
	}
	return n.emit(Toast{Level: LevelError, Title: message})
}

func (n *Notifier) emit(t Toast) Toast {
	n.logger.Info("toast",
		zap.String("level", string(t.Level)),
		zap.String("title", t.Title),
		zap.String("description", t.Description),
	)
	if n.counter != nil {
		n.counter.CountToast(string(t.Level))
	}
	return t
}

// gerund turns "creó el cliente" style phrasing into the failure variant
// ("crear el cliente"). Verbs arrive in preterite; the map keeps the copy
// consistent across screens.
func gerund(verb, subject string) string {
	infinitives := map[string]string{
		"creó":        "crear",
		"actualizó":   "actualizar",
		"cambió":      "cambiar",
		"deshabilitó": "deshabilitar",
		"habilitó":    "habilitar",
		"envió":       "enviar",
		"aprobó":      "aprobar",
		"rechazó":     "rechazar",
		"inició":      "iniciar",
	}
	if inf, ok := infinitives[verb]; ok {
		return inf + " " + subject
	}
	return verb + " " + subject
}
