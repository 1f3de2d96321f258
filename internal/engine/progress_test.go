package engine

import (
	"testing"

	"daylist/internal/service"
)

func tasksWith(completed, total int) []service.Task {
	tasks := make([]service.Task, total)
	for i := 0; i < completed; i++ {
		tasks[i].Completed = true
	}
	return tasks
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name        string
		completed   int
		total       int
		wantPercent int
	}{
		{"empty", 0, 0, 0},
		{"none completed", 0, 4, 0},
		{"all completed", 4, 4, 100},
		{"half", 1, 2, 50},
		{"one third rounds down", 1, 3, 33},
		{"two thirds rounds up", 2, 3, 67},
		// Round half up: 1/8 = 12.5%.
		{"half percent rounds up", 1, 8, 13},
		// Boundary values are reserved: anything started shows at
		// least 1, anything unfinished at most 99.
		{"barely started clamps to 1", 1, 1000, 1},
		{"barely unfinished clamps to 99", 999, 1000, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Progress(tasksWith(tt.completed, tt.total))
			if s.Completed != tt.completed {
				t.Errorf("Completed = %d, want %d", s.Completed, tt.completed)
			}
			if s.Total != tt.total {
				t.Errorf("Total = %d, want %d", s.Total, tt.total)
			}
			if s.Percent != tt.wantPercent {
				t.Errorf("Percent = %d, want %d", s.Percent, tt.wantPercent)
			}
		})
	}
}

func TestProgress_CountsFullCollection(t *testing.T) {
	tasks := sampleTasks()
	s := Progress(tasks)
	if s.Total != 5 || s.Completed != 1 {
		t.Errorf("Progress() = %+v, want Total:5 Completed:1", s)
	}
	if s.Percent != 20 {
		t.Errorf("Percent = %d, want 20", s.Percent)
	}
}
