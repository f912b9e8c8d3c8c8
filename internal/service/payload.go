package service

import (
	"strconv"
	"strings"
)

// Payload shaping applied at the confirmation stage: free text is
// trimmed, numeric-looking strings are coerced, and empty optionals
// become null on the wire.

func trimmed(draft map[string]string, field string) string {
	return strings.TrimSpace(draft[field])
}

func optional(draft map[string]string, field string) *string {
	v := strings.TrimSpace(draft[field])
	if v == "" {
		return nil
	}
	return &v
}

func numberOf(draft map[string]string, field string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(draft[field]), 64)
	if err != nil {
		return 0
	}
	return v
}

func optionalNumber(draft map[string]string, field string) *float64 {
	raw := strings.TrimSpace(draft[field])
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func intOf(draft map[string]string, field string) int {
	v, err := strconv.Atoi(strings.TrimSpace(draft[field]))
	if err != nil {
		return 0
	}
	return v
}

func optionalInt(draft map[string]string, field string) *int {
	raw := strings.TrimSpace(draft[field])
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
