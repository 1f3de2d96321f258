package engine

import "daylist/internal/service"

// Plan is the outcome of planning a day-completion: which tasks to
// update and the summary the collection will have once every update
// lands.
type Plan struct {
	UpdateIDs []string
	Summary   Summary
}

// FinishDay plans the bulk completion of every incomplete task. It
// performs no writes itself; the caller issues one update per id and
// reports per-id failures. The planned summary assumes all updates
// succeed, so Completed equals Total.
//
// Finish-day only moves tasks from incomplete to complete, never the
// other way.
func FinishDay(tasks []service.Task) Plan {
	p := Plan{
		Summary: Summary{Completed: len(tasks), Total: len(tasks)},
	}
	if len(tasks) > 0 {
		p.Summary.Percent = 100
	}
	for _, t := range tasks {
		if !t.Completed {
			p.UpdateIDs = append(p.UpdateIDs, t.ID)
		}
	}
	return p
}
