package commands

import (
	"fmt"
	"time"

	"daylist/internal/output"
	"daylist/internal/service"
)

// parseDueDate parses a YYYY-MM-DD flag value as local midnight, the
// stored convention for due dates.
func parseDueDate(s string) (*time.Time, error) {
	t, err := time.ParseInLocation(output.DueLayout, s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid due date: %s (want YYYY-MM-DD)", s)
	}
	return &t, nil
}

// validPriority reports whether s is one of the three task priorities.
// Write paths reject anything else; the read path never does.
func validPriority(s string) bool {
	switch s {
	case service.PriorityHigh, service.PriorityMedium, service.PriorityLow:
		return true
	}
	return false
}
