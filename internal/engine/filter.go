package engine

import (
	"strings"
	"time"

	"daylist/internal/service"
)

// Filter returns the subset of tasks matching the filter state, in the
// original order. The input slice is never modified.
//
// A task passes when all three predicates hold:
//   - search: task text contains the search string, case-insensitively
//   - priority: exact equality when the filter is not "all"; stored
//     priorities are not normalized, so an unexpected value like
//     "Medium" matches no specific priority filter
//   - status: one branch of active/completed/today/upcoming/overdue;
//     "all" and any unrecognized status pass everything
func Filter(tasks []service.Task, fs service.FilterState, now time.Time) []service.Task {
	search := strings.ToLower(fs.Search)

	var out []service.Task
	for _, t := range tasks {
		if search != "" && !strings.Contains(strings.ToLower(t.Text), search) {
			continue
		}
		if fs.Priority != "" && fs.Priority != service.PriorityAll && t.Priority != fs.Priority {
			continue
		}
		if !matchStatus(t, fs.Status, now) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchStatus(t service.Task, s service.Status, now time.Time) bool {
	switch s {
	case service.StatusActive:
		return !t.Completed
	case service.StatusCompleted:
		return t.Completed
	case service.StatusToday:
		return IsToday(t.DueDate, now)
	case service.StatusUpcoming:
		return IsUpcoming(t.DueDate, now)
	case service.StatusOverdue:
		return IsOverdue(t.DueDate, t.Completed, now)
	default:
		// StatusAll, empty, and unknown values all pass. An unknown
		// status is not an error; it degrades to the unfiltered view.
		return true
	}
}
