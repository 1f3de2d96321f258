package engine

import (
	"math"

	"daylist/internal/service"
)

// Summary holds completion counts over a task collection.
type Summary struct {
	Completed int
	Total     int
	Percent   int
}

// Progress computes the completion summary over the full collection.
// Callers must pass the unfiltered collection: progress reflects all of
// a user's tasks regardless of active filters.
//
// Percent rounds half up, then clamps to [1, 99] for partially complete
// collections so the boundary values are reserved for "nothing done"
// and "everything done". Without the clamp, 1 completed task out of
// 1000 would round to 0.
func Progress(tasks []service.Task) Summary {
	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
	}
	if s.Total == 0 {
		return s
	}
	s.Percent = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	if s.Completed > 0 && s.Percent < 1 {
		s.Percent = 1
	}
	if s.Completed < s.Total && s.Percent > 99 {
		s.Percent = 99
	}
	return s
}
