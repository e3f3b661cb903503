package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfWeekIsMonday(t *testing.T) {
	cases := map[string]string{
		"2026-01-19": "2026-01-19", // Monday maps to itself
		"2026-01-21": "2026-01-19", // Wednesday
		"2026-01-25": "2026-01-19", // Sunday still belongs to Monday's week
		"2026-01-26": "2026-01-26", // next Monday
	}
	for input, want := range cases {
		day, err := time.Parse(DateLayout, input)
		assert.NoError(t, err)
		assert.Equal(t, want, StartOfWeek(day).Format(DateLayout), "week start of %s", input)
	}
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2026, time.January, 19, 23, 59, 0, 0, time.UTC)
	end := time.Date(2026, time.January, 20, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(start, end))
	assert.Equal(t, -1, DaysBetween(end, start))
	assert.Equal(t, 0, DaysBetween(start, start))
}

func TestShortMonth(t *testing.T) {
	assert.Equal(t, "Ene", ShortMonth(time.January))
	assert.Equal(t, "Dic", ShortMonth(time.December))
}
