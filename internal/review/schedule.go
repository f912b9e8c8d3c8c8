package review

import (
	"fmt"
	"time"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/models"
	appErrors "github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/errors"
)

// ScheduleMaxDate is the last next-maintenance date the scheduler accepts:
// one day before the 32-bit epoch rollover, conservatively.
var ScheduleMaxDate = time.Date(2038, time.January, 18, 0, 0, 0, 0, time.UTC)

// MaxFrequencyValue bounds the recurrence counter to a positive signed
// byte, matching the upstream column.
const MaxFrequencyValue = 127

var frequencyNouns = map[models.FrequencyType][2]string{
	models.FrequencyDaily:   {"día", "días"},
	models.FrequencyWeekly:  {"semana", "semanas"},
	models.FrequencyMonthly: {"mes", "meses"},
	models.FrequencyYearly:  {"año", "años"},
}

// FrequencyLabel renders the recurrence the way the scheduled-maintenance
// table displays it: "Cada: 3 meses", singular when the value is 1.
func FrequencyLabel(value int, unit models.FrequencyType) string {
	nouns, ok := frequencyNouns[unit]
	if !ok {
		return ""
	}
	noun := nouns[1]
	if value == 1 {
		noun = nouns[0]
	}
	return fmt.Sprintf("Cada: %d %s", value, noun)
}

// NextDate advances a due date by one recurrence interval.
func NextDate(from time.Time, value int, unit models.FrequencyType) time.Time {
	switch unit {
	case models.FrequencyDaily:
		return from.AddDate(0, 0, value)
	case models.FrequencyWeekly:
		return from.AddDate(0, 0, 7*value)
	case models.FrequencyMonthly:
		return from.AddDate(0, value, 0)
	case models.FrequencyYearly:
		return from.AddDate(value, 0, 0)
	}
	return from
}

// ValidateSchedule checks the recurrence invariants: a known unit, a
// frequency value in 1..127, and a next date strictly after today (date
// granularity) and no later than ScheduleMaxDate.
func ValidateSchedule(value int, unit models.FrequencyType, next time.Time, now time.Time) error {
	if _, ok := frequencyNouns[unit]; !ok {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("frecuencia desconocida: %s", unit))
	}
	if value < 1 || value > MaxFrequencyValue {
		return appErrors.Clone(appErrors.ErrValidation,
			fmt.Sprintf("el valor de frecuencia debe estar entre 1 y %d", MaxFrequencyValue))
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	nextDay := time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, time.UTC)
	if !nextDay.After(today) {
		return appErrors.Clone(appErrors.ErrValidation, "la próxima fecha de mantenimiento debe ser posterior a hoy")
	}
	if nextDay.After(ScheduleMaxDate) {
		return appErrors.Clone(appErrors.ErrValidation, "la próxima fecha de mantenimiento excede el máximo permitido")
	}
	return nil
}
