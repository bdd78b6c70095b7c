package tracking

import "time"

// Package tracking holds the pure habit computation core: due-day
// scheduling, the entry log, streak and goal math, sync reconciliation
// and the coin bonus tables. Nothing here touches a clock or does I/O,
// callers pass dates explicitly.

const dayLayout = "2006-01-02"

// DayOf normalizes an instant to its calendar day in UTC. All entry
// dates and due-day math operate on these normalized values.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysInMonth(day time.Time) int {
	return time.Date(day.Year(), day.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
