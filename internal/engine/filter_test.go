package engine

import (
	"testing"
	"time"

	"daylist/internal/service"
)

// sampleTasks builds the collection most filter tests run against.
// Order matters: filters must preserve it.
func sampleTasks() []service.Task {
	yesterday := DateOnly(now).AddDate(0, 0, -1)
	today := DateOnly(now)
	tomorrow := DateOnly(now).AddDate(0, 0, 1)

	return []service.Task{
		{ID: "t1", Text: "Buy milk", Priority: service.PriorityHigh, DueDate: &yesterday},
		{ID: "t2", Text: "Walk dog", Priority: service.PriorityLow, Completed: true},
		{ID: "t3", Text: "Call dentist", Priority: service.PriorityMedium, DueDate: &today},
		{ID: "t4", Text: "File taxes", Priority: service.PriorityHigh, DueDate: &tomorrow},
		{ID: "t5", Text: "Water plants", Priority: service.PriorityMedium},
	}
}

func ids(tasks []service.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func assertIDs(t *testing.T, got []service.Task, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, gotIDs)
		}
	}
}

func TestFilter_Identity(t *testing.T) {
	tasks := sampleTasks()
	fs := service.FilterState{Status: service.StatusAll, Priority: service.PriorityAll}
	assertIDs(t, Filter(tasks, fs, now), "t1", "t2", "t3", "t4", "t5")
}

func TestFilter_StatusBranches(t *testing.T) {
	tasks := sampleTasks()

	tests := []struct {
		status service.Status
		want   []string
	}{
		{service.StatusActive, []string{"t1", "t3", "t4", "t5"}},
		{service.StatusCompleted, []string{"t2"}},
		{service.StatusToday, []string{"t3"}},
		{service.StatusUpcoming, []string{"t4"}},
		{service.StatusOverdue, []string{"t1"}},
		{service.StatusAll, []string{"t1", "t2", "t3", "t4", "t5"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got := Filter(tasks, service.FilterState{Status: tt.status}, now)
			assertIDs(t, got, tt.want...)
		})
	}
}

func TestFilter_UnknownStatusDefaultsToAll(t *testing.T) {
	tasks := sampleTasks()
	got := Filter(tasks, service.FilterState{Status: "archived"}, now)
	assertIDs(t, got, "t1", "t2", "t3", "t4", "t5")
}

func TestFilter_Priority(t *testing.T) {
	tasks := sampleTasks()
	got := Filter(tasks, service.FilterState{Priority: service.PriorityHigh}, now)
	assertIDs(t, got, "t1", "t4")
}

func TestFilter_PriorityExactMatch(t *testing.T) {
	// A miscapitalized stored priority must not match: exact value
	// comparison, no normalization.
	tasks := []service.Task{{ID: "t1", Text: "Odd one", Priority: "Medium"}}

	got := Filter(tasks, service.FilterState{Priority: service.PriorityMedium}, now)
	if len(got) != 0 {
		t.Errorf("expected no match for stored priority %q, got %v", "Medium", ids(got))
	}

	// It still shows up under the catch-all filter.
	got = Filter(tasks, service.FilterState{Priority: service.PriorityAll}, now)
	assertIDs(t, got, "t1")
}

func TestFilter_SearchCaseInsensitive(t *testing.T) {
	tasks := sampleTasks()

	got := Filter(tasks, service.FilterState{Search: "DOG"}, now)
	assertIDs(t, got, "t2")

	got = Filter(tasks, service.FilterState{Search: "a"}, now)
	assertIDs(t, got, "t2", "t3", "t4", "t5")

	got = Filter(tasks, service.FilterState{Search: "zzz"}, now)
	if len(got) != 0 {
		t.Errorf("expected no matches, got %v", ids(got))
	}
}

func TestFilter_Combined(t *testing.T) {
	tasks := sampleTasks()
	fs := service.FilterState{
		Status:   service.StatusActive,
		Priority: service.PriorityHigh,
		Search:   "file",
	}
	assertIDs(t, Filter(tasks, fs, now), "t4")
}

func TestFilter_OverdueScenario(t *testing.T) {
	// Scenario from the original app: one overdue incomplete task,
	// one completed task with no due date.
	yesterday := DateOnly(now).AddDate(0, 0, -1)
	tasks := []service.Task{
		{ID: "a", Text: "Buy milk", Priority: service.PriorityHigh, DueDate: &yesterday},
		{ID: "b", Text: "Walk dog", Priority: service.PriorityLow, Completed: true},
	}

	got := Filter(tasks, service.FilterState{Status: service.StatusOverdue, Priority: service.PriorityAll}, now)
	assertIDs(t, got, "a")

	s := Progress(tasks)
	if s.Completed != 1 || s.Total != 2 || s.Percent != 50 {
		t.Errorf("Progress() = %+v, want {Completed:1 Total:2 Percent:50}", s)
	}
}

func TestFilter_EmptyCollection(t *testing.T) {
	got := Filter(nil, service.FilterState{Status: service.StatusAll}, time.Now())
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", ids(got))
	}
}
