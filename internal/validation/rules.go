package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Rule is a pure, synchronous field validator. It returns a human-readable
// violation message, or the empty string when the value is acceptable.
// Rules never panic and never touch the network.
type Rule func(value string) string

// User-facing validation copy, as shipped to the admin UI.
const (
	MsgRequired     = "Este campo es obligatorio."
	MsgNotANumber   = "El valor debe ser un número."
	MsgNoSpaces     = "No se permiten espacios."
	MsgOnlyLetters  = "Solo se permiten letras."
	MsgInvalidPhone = "El teléfono debe tener 10 dígitos."
	MsgInvalidEmail = "El correo electrónico no es válido."
	MsgDateRequired = "La fecha es obligatoria."
	MsgDateInPast   = "La fecha no puede ser anterior a la actual."
	MsgDateTooLate  = "La fecha excede el máximo permitido."
	MsgInvalidDate  = "La fecha no es válida."
)

var (
	onlyLettersRe = regexp.MustCompile(`^\p{L}+( \p{L}+)*$`)
	phoneRe       = regexp.MustCompile(`^[0-9]{10}$`)
	emailRe       = regexp.MustCompile(`^(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,4}$`)
	uuidRe        = regexp.MustCompile(`^(?i)[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
)

// Unix32Max is the 32-bit signed Unix-time boundary. Dates handled by the
// admin drawers never pass it.
var Unix32Max = time.Date(2038, time.January, 19, 3, 14, 7, 0, time.UTC)

// Required fails on empty-after-trimming values.
func Required(value string) string {
	if strings.TrimSpace(value) == "" {
		return MsgRequired
	}
	return ""
}

// RequiredNumber fails on missing values and on values that do not parse
// as a number, with distinct messages.
func RequiredNumber(value string) string {
	if strings.TrimSpace(value) == "" {
		return MsgRequired
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err != nil {
		return MsgNotANumber
	}
	return ""
}

// NoSpaces fails when any whitespace character is present.
func NoSpaces(value string) string {
	for _, r := range value {
		if unicode.IsSpace(r) {
			return MsgNoSpaces
		}
	}
	return ""
}

// OnlyLetters accepts one or more Unicode letter runs separated by single
// spaces; digits, symbols and leading/trailing spaces all fail.
func OnlyLetters(value string) string {
	if !onlyLettersRe.MatchString(value) {
		return MsgOnlyLetters
	}
	return ""
}

// ValidPhone passes vacuously on empty values (phone is optional
// everywhere); otherwise the value must be exactly 10 ASCII digits.
func ValidPhone(value string) string {
	if value == "" {
		return ""
	}
	if !phoneRe.MatchString(value) {
		return MsgInvalidPhone
	}
	return ""
}

// ValidEmail requires a conventional local@domain.tld shape with a 2-4
// letter TLD, case-insensitive.
func ValidEmail(value string) string {
	if !emailRe.MatchString(value) {
		return MsgInvalidEmail
	}
	return ""
}

// DatePicker builds the date-picker rule around an injectable clock so the
// "not before now" comparison stays testable.
func DatePicker(now func() time.Time) Rule {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return MsgDateRequired
		}
		cdt, err := ParseISO(value)
		if err != nil {
			return MsgInvalidDate
		}
		instant := cdt.UTC()
		if instant.Before(now().UTC()) {
			return MsgDateInPast
		}
		if instant.After(Unix32Max) {
			return MsgDateTooLate
		}
		return ""
	}
}

// ValidateDatePicker is the wall-clock date-picker rule.
var ValidateDatePicker = DatePicker(time.Now)

// IsValidUUID structurally matches the canonical 8-4-4-4-12 hex-with-dashes
// shape. It guards path tokens, not form fields, so it returns a bool.
func IsValidUUID(value string) bool {
	return uuidRe.MatchString(value)
}

// Optional wraps a rule so it passes vacuously on empty values, for
// fields that are validated only when filled in.
func Optional(rule Rule) Rule {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return ""
		}
		return rule(value)
	}
}

// Collect runs every rule against the value, in order, and gathers the
// non-empty messages. The result is always a non-nil slice.
func Collect(value string, rules ...Rule) []string {
	msgs := make([]string, 0, len(rules))
	for _, rule := range rules {
		if rule == nil {
			continue
		}
		if msg := rule(value); msg != "" {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
