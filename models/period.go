package models

import "time"

// BudgetWindow returns the accounting window for a budget period as of
// now. Monthly windows open at the first instant of the current calendar
// month, yearly windows at January 1st of the current year; both close
// at now itself rather than the end of the period.
func BudgetWindow(period BudgetPeriod, now time.Time) (start, end time.Time) {
	if period == PeriodYearly {
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	} else {
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
	return start, now
}

// MonthWindow returns the inclusive bounds of a calendar month: midnight
// on the first day through midnight on the last.
func MonthWindow(year int, month time.Month, loc *time.Location) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end = start.AddDate(0, 1, -1)
	return start, end
}
