package utils

import "time"

// ReportDateLabel formats the report header date, e.g.
// "Monday, January 2, 2006".
func ReportDateLabel(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// MonthStart returns midnight on the first day of t's calendar month,
// in t's location.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
