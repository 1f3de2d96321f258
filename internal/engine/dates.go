// Package engine implements the task filtering and progress logic.
// Everything here is pure: no I/O, no logging, no clock reads. The
// current time is always an explicit parameter.
package engine

import "time"

// DateOnly truncates t to local midnight. Due dates carry no time
// component; the stored convention is start of day, which means a task
// due today stops being "upcoming" as soon as the day begins.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsToday reports whether due falls on the same calendar day as now,
// in now's location. Time of day is ignored. A nil due date is never today.
func IsToday(due *time.Time, now time.Time) bool {
	if due == nil {
		return false
	}
	d := due.In(now.Location())
	return d.Year() == now.Year() && d.Month() == now.Month() && d.Day() == now.Day()
}

// IsUpcoming reports whether due is strictly after now. This compares
// the full instant, so with the start-of-day convention a date due
// today is not upcoming.
func IsUpcoming(due *time.Time, now time.Time) bool {
	return due != nil && due.After(now)
}

// IsOverdue reports whether an incomplete task's due date has passed.
// Completed tasks are never overdue, and a due date falling today is
// never overdue regardless of time of day.
func IsOverdue(due *time.Time, completed bool, now time.Time) bool {
	if completed || due == nil {
		return false
	}
	return due.Before(now) && !IsToday(due, now)
}
