package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBudgetWindowMonthly(t *testing.T) {
	now := time.Date(2024, time.May, 15, 13, 45, 30, 0, time.Local)

	start, end := BudgetWindow(PeriodMonthly, now)

	assert.Equal(t, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, now, end, "window is open-ended at now, not month end")
}

func TestBudgetWindowYearly(t *testing.T) {
	jan1 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)

	// Start is January 1st regardless of what month now falls in.
	for _, now := range []time.Time{
		time.Date(2024, time.January, 5, 8, 0, 0, 0, time.Local),
		time.Date(2024, time.June, 20, 12, 30, 0, 0, time.Local),
		time.Date(2024, time.December, 31, 23, 59, 59, 0, time.Local),
	} {
		start, end := BudgetWindow(PeriodYearly, now)
		assert.Equal(t, jan1, start)
		assert.Equal(t, now, end)
	}
}

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		last  int
	}{
		{"may", 2024, time.May, 31},
		{"april", 2024, time.April, 30},
		{"february leap year", 2024, time.February, 29},
		{"february", 2023, time.February, 28},
		{"december", 2024, time.December, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthWindow(tt.year, tt.month, time.Local)
			assert.Equal(t, time.Date(tt.year, tt.month, 1, 0, 0, 0, 0, time.Local), start)
			assert.Equal(t, time.Date(tt.year, tt.month, tt.last, 0, 0, 0, 0, time.Local), end)
		})
	}
}
