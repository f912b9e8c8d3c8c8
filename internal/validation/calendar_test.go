package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseISORoundTrip(t *testing.T) {
	cases := []string{
		"2026-05-01T09:30:00",
		"2026-05-01T09:30:00Z",
		"2038-01-19T03:14:07Z",
	}
	for _, raw := range cases {
		cdt, err := ParseISO(raw)
		require.NoError(t, err, raw)
		require.Equal(t, raw, cdt.ISO(), raw)
	}
}

func TestParseISORejectsOffsetsAndFractions(t *testing.T) {
	for _, raw := range []string{
		"2026-05-01T09:30:00+02:00",
		"2026-05-01T09:30:00.123",
		"2026-05-01",
		"",
	} {
		_, err := ParseISO(raw)
		require.Error(t, err, raw)
	}
}

func TestCalendarDateTimeUTC(t *testing.T) {
	cdt, err := ParseISO("2026-05-01T09:30:15")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, time.May, 1, 9, 30, 15, 0, time.UTC), cdt.UTC())
}
