package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	require.Equal(t, MsgRequired, Required(""))
	require.Equal(t, MsgRequired, Required("   "))
	require.Empty(t, Required("x"))
}

func TestRequiredNumber(t *testing.T) {
	require.Equal(t, MsgRequired, RequiredNumber(""))
	require.Equal(t, MsgNotANumber, RequiredNumber("abc"))
	require.Equal(t, MsgNotANumber, RequiredNumber("12a"))
	require.Empty(t, RequiredNumber("42"))
	require.Empty(t, RequiredNumber("3.14"))
}

func TestNoSpaces(t *testing.T) {
	require.Empty(t, NoSpaces("B12345678"))
	require.Equal(t, MsgNoSpaces, NoSpaces("B 12345678"))
	require.Equal(t, MsgNoSpaces, NoSpaces(" B12345678"))
}

func TestOnlyLetters(t *testing.T) {
	require.Empty(t, OnlyLetters("Juan Pérez"))
	require.Empty(t, OnlyLetters("María"))
	require.Equal(t, MsgOnlyLetters, OnlyLetters("Juan2"))
	require.Equal(t, MsgOnlyLetters, OnlyLetters("Juan  Pérez"))
	require.Equal(t, MsgOnlyLetters, OnlyLetters(" Juan"))
	require.Equal(t, MsgOnlyLetters, OnlyLetters("Juan "))
}

func TestValidPhone(t *testing.T) {
	require.Empty(t, ValidPhone(""))
	require.Empty(t, ValidPhone("5512345678"))
	require.Equal(t, MsgInvalidPhone, ValidPhone("123"))
	require.Equal(t, MsgInvalidPhone, ValidPhone("55123456789"))
	require.Equal(t, MsgInvalidPhone, ValidPhone("55-1234567"))
}

func TestValidEmail(t *testing.T) {
	require.Empty(t, ValidEmail("user@example.com"))
	require.Empty(t, ValidEmail("a.b@sub.domain.es"))
	require.Equal(t, MsgInvalidEmail, ValidEmail("user@example"))
	require.Equal(t, MsgInvalidEmail, ValidEmail("user@example.abcde"))
	require.Equal(t, MsgInvalidEmail, ValidEmail("not-an-email"))
}

func TestDatePicker(t *testing.T) {
	now := func() time.Time {
		return time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	}
	check := DatePicker(now)

	require.Equal(t, MsgDateRequired, check(""))
	require.Equal(t, MsgInvalidDate, check("not-a-date"))
	require.Equal(t, MsgDateInPast, check("2026-03-09T00:00:00"))
	require.Empty(t, check("2026-03-11T00:00:00"))
	require.Equal(t, MsgDateTooLate, check("2038-01-20T00:00:00"))
}

func TestDatePickerUnixBoundary(t *testing.T) {
	now := func() time.Time {
		return time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	}
	check := DatePicker(now)

	require.Empty(t, check("2038-01-19T03:14:07Z"))
	require.Equal(t, MsgDateTooLate, check("2038-01-19T03:14:08Z"))
}

func TestIsValidUUID(t *testing.T) {
	require.True(t, IsValidUUID("8c5e9f6a-1b2c-4d3e-9f8a-7b6c5d4e3f2a"))
	require.False(t, IsValidUUID("8c5e9f6a1b2c4d3e9f8a7b6c5d4e3f2a"))
	require.False(t, IsValidUUID("not-a-uuid"))
	require.False(t, IsValidUUID(""))
}

func TestOptionalSkipsEmpty(t *testing.T) {
	rule := Optional(RequiredNumber)
	require.Empty(t, rule(""))
	require.Equal(t, MsgNotANumber, rule("abc"))
	require.Empty(t, rule("7"))
}

func TestCollectNeverNil(t *testing.T) {
	errs := Collect("x", Required, NoSpaces)
	require.NotNil(t, errs)
	require.Empty(t, errs)

	errs = Collect("", Required, RequiredNumber)
	require.Len(t, errs, 2)
}
