package workflow

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/form"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/notify"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/upstream"
	appErrors "github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/errors"
)

// DuplicateKey declares one uniqueness constraint checked against the
// live collection before the confirmation stage opens.
type DuplicateKey struct {
	Field   string
	Message string
}

// Candidate is one existing record the duplicate-check gate compares
// against: its identifier plus the values of every constrained field.
type Candidate struct {
	ID     string
	Values map[string]string
}

// FetchFunc re-reads the entity collection from the upstream. It is
// invoked on every prepare; duplicate checks never consult a cache.
type FetchFunc func(ctx context.Context, sess *upstream.Session) ([]Candidate, error)

// SubmitFunc shapes the validated draft into the server payload and
// performs the write. Implementations trim free text, coerce numeric
// strings and null empty optionals before calling the upstream client.
type SubmitFunc func(ctx context.Context, sess *upstream.Session, draft map[string]string, action form.Action, recordID string) *upstream.Result

// DescribeFunc names the record for toast copy: the subject ("el cliente
// Ana Pérez") and a detail line (her email). A nil DescribeFunc falls
// back to the schema entity name.
type DescribeFunc func(draft map[string]string) (subject, detail string)

// Engine is the shared create/update workflow every entity screen
// instantiates: bulk validation, the duplicate-check gate, the
// confirmation snapshot, submission with an in-flight guard, the outcome
// toast and the refresh signal. Concrete entities supply only the
// parameterization.
type Engine struct {
	schema   *form.Schema
	keys     []DuplicateKey
	fetch    FetchFunc
	submit   SubmitFunc
	describe DescribeFunc
	notifier *notify.Notifier
	logger   *zap.Logger

	inFlight sync.Map
}

// Config parameterizes one entity's workflow.
type Config struct {
	Schema        *form.Schema
	DuplicateKeys []DuplicateKey
	Fetch         FetchFunc
	Submit        SubmitFunc
	Describe      DescribeFunc
}

// New builds an engine.
func New(cfg Config, notifier *notify.Notifier, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		schema:   cfg.Schema,
		keys:     cfg.DuplicateKeys,
		fetch:    cfg.Fetch,
		submit:   cfg.Submit,
		describe: cfg.Describe,
		notifier: notifier,
		logger:   logger,
	}
}

// Schema exposes the entity schema for form construction.
func (e *Engine) Schema() *form.Schema { return e.schema }

// PrepareOutcome reports the result of the validate + duplicate-check
// stage. Confirmation is non-nil only when the draft is clean and the
// confirmation dialog may open.
type PrepareOutcome struct {
	Submittable  bool                `json:"submittable"`
	FieldErrors  map[string][]string `json:"fieldErrors"`
	Confirmation *Confirmation       `json:"confirmation,omitempty"`
	Toast        *notify.Toast       `json:"toast,omitempty"`
}

// Prepare runs bulk validation and the duplicate-check gate over the
// draft. On a uniqueness violation the offending field's error list is
// replaced with the single explanatory message and a warning toast is
// attached; the confirmation stage never opens. A transport failure
// during the check aborts with the distinct "could not verify" toast and
// leaves field errors untouched.
func (e *Engine) Prepare(ctx context.Context, sess *upstream.Session, f *form.Form, recordID string) *PrepareOutcome {
	f.ValidateAll()
	if !f.Submittable() {
		return &PrepareOutcome{Submittable: false, FieldErrors: f.Errors()}
	}

	if len(e.keys) > 0 && e.fetch != nil {
		existing, err := e.fetch(ctx, sess)
		if err != nil {
			e.logger.Warn("duplicate check fetch failed", zap.String("entity", e.schema.Entity), zap.Error(err))
			toast := e.notifier.Error(notify.MsgCouldNotVerify)
			return &PrepareOutcome{Submittable: true, FieldErrors: f.Errors(), Toast: &toast}
		}
		for _, key := range e.keys {
			if match := firstConflict(existing, key.Field, f.Value(key.Field), f.Action(), recordID); match {
				f.SetError(key.Field, key.Message)
				toast := e.notifier.Warning(key.Message)
				return &PrepareOutcome{Submittable: false, FieldErrors: f.Errors(), Toast: &toast}
			}
		}
	}

	return &PrepareOutcome{
		Submittable:  true,
		FieldErrors:  f.Errors(),
		Confirmation: e.buildConfirmation(f),
	}
}

// firstConflict reports whether the candidate value collides with any
// existing record. Comparison trims and case-folds both sides; on update
// a record may keep its own unchanged value.
func firstConflict(existing []Candidate, field, value string, action form.Action, recordID string) bool {
	needle := fold(value)
	if needle == "" {
		return false
	}
	for _, candidate := range existing {
		if fold(candidate.Values[field]) != needle {
			continue
		}
		if action == form.ActionUpdate && candidate.ID == recordID {
			continue
		}
		return true
	}
	return false
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CommitOutcome is the explicit contract the owning screen consumes after
// a submission: the tagged result, the single toast, and whether to close
// the drawer and refetch the collection.
type CommitOutcome struct {
	Result  *upstream.Result `json:"result"`
	Toast   notify.Toast     `json:"toast"`
	Refresh bool             `json:"refresh"`
	Close   bool             `json:"close"`
}

// Commit performs the write. While one submission for the same actor,
// entity and record is in flight, further commits are rejected so the
// same logical mutation is never written twice.
func (e *Engine) Commit(ctx context.Context, sess *upstream.Session, f *form.Form, recordID, verb string) (*CommitOutcome, error) {
	key := e.guardKey(sess, recordID)
	if _, loaded := e.inFlight.LoadOrStore(key, struct{}{}); loaded {
		return nil, appErrors.ErrSubmitInFlight
	}
	defer e.inFlight.Delete(key)

	draft := f.Draft()
	result := e.submit(ctx, sess, draft, f.Action(), recordID)

	subject, detail := e.describeDraft(draft)
	toast := e.notifier.MutationOutcome(result, verb, subject, detail)

	if result.OK() {
		f.Reset()
	}
	return &CommitOutcome{
		Result:  result,
		Toast:   toast,
		Refresh: result.OK(),
		Close:   result.OK(),
	}, nil
}

func (e *Engine) describeDraft(draft map[string]string) (string, string) {
	if e.describe != nil {
		return e.describe(draft)
	}
	return e.schema.Entity, ""
}

func (e *Engine) guardKey(sess *upstream.Session, recordID string) string {
	actor := ""
	if sess != nil && sess.Claims() != nil {
		actor = sess.Claims().UserID
	}
	return actor + "|" + e.schema.Entity + "|" + recordID
}
