package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/models"
)

var scheduleNow = time.Date(2026, time.June, 15, 10, 0, 0, 0, time.UTC)

func TestFrequencyLabel(t *testing.T) {
	require.Equal(t, "Cada: 3 meses", FrequencyLabel(3, models.FrequencyMonthly))
	require.Equal(t, "Cada: 1 mes", FrequencyLabel(1, models.FrequencyMonthly))
	require.Equal(t, "Cada: 1 día", FrequencyLabel(1, models.FrequencyDaily))
	require.Equal(t, "Cada: 2 semanas", FrequencyLabel(2, models.FrequencyWeekly))
	require.Equal(t, "Cada: 1 año", FrequencyLabel(1, models.FrequencyYearly))
	require.Empty(t, FrequencyLabel(3, models.FrequencyType("HOURLY")))
}

func TestNextDate(t *testing.T) {
	from := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
	require.Equal(t, from.AddDate(0, 0, 5), NextDate(from, 5, models.FrequencyDaily))
	require.Equal(t, from.AddDate(0, 0, 14), NextDate(from, 2, models.FrequencyWeekly))
	require.Equal(t, from.AddDate(0, 1, 0), NextDate(from, 1, models.FrequencyMonthly))
	require.Equal(t, from.AddDate(2, 0, 0), NextDate(from, 2, models.FrequencyYearly))
}

func TestValidateScheduleBounds(t *testing.T) {
	next := scheduleNow.AddDate(0, 1, 0)

	require.NoError(t, ValidateSchedule(1, models.FrequencyMonthly, next, scheduleNow))
	require.NoError(t, ValidateSchedule(MaxFrequencyValue, models.FrequencyDaily, next, scheduleNow))

	require.Error(t, ValidateSchedule(0, models.FrequencyMonthly, next, scheduleNow))
	require.Error(t, ValidateSchedule(MaxFrequencyValue+1, models.FrequencyMonthly, next, scheduleNow))
	require.Error(t, ValidateSchedule(1, models.FrequencyType("HOURLY"), next, scheduleNow))
}

func TestValidateScheduleDateGranularity(t *testing.T) {
	// same calendar day fails even when the instant is later
	sameDay := time.Date(2026, time.June, 15, 23, 0, 0, 0, time.UTC)
	require.Error(t, ValidateSchedule(1, models.FrequencyDaily, sameDay, scheduleNow))

	// next calendar day passes even at midnight
	nextDay := time.Date(2026, time.June, 16, 0, 0, 0, 0, time.UTC)
	require.NoError(t, ValidateSchedule(1, models.FrequencyDaily, nextDay, scheduleNow))
}

func TestValidateScheduleMaxDate(t *testing.T) {
	require.NoError(t, ValidateSchedule(1, models.FrequencyDaily, ScheduleMaxDate, scheduleNow))
	require.Error(t, ValidateSchedule(1, models.FrequencyDaily, ScheduleMaxDate.AddDate(0, 0, 1), scheduleNow))
}
