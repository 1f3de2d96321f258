package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"daylist/internal/config"
	"daylist/internal/engine"
	"daylist/internal/exitcode"
	"daylist/internal/output"
	"daylist/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command. Runs for bare `daylist` too.
type ListCmd struct {
	status   string
	priority string
	search   string
	notes    bool
}

// SetFilters sets filter flags directly (for testing).
func (c *ListCmd) SetFilters(status, priority, search string) {
	c.status = status
	c.priority = priority
	c.search = search
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string {
	return "daylist list [--status <s>] [--priority <p>] [--search <text>] [--notes]"
}
func (c *ListCmd) NeedsAuth() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.status, "status", string(service.StatusAll), "")
	fs.StringVar(&c.status, "s", string(service.StatusAll), "")
	fs.StringVar(&c.priority, "priority", service.PriorityAll, "")
	fs.StringVar(&c.priority, "p", service.PriorityAll, "")
	fs.StringVar(&c.search, "search", "", "")
	fs.BoolVar(&c.notes, "notes", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, st service.Store, owner string, args []string, out, errOut io.Writer) int {
	tasks, ok := fetchTasks(ctx, st, owner, errOut)
	if !ok {
		return exitcode.BackendError
	}

	now := time.Now()
	fs := service.FilterState{
		Status:   service.Status(c.status),
		Priority: c.priority,
		Search:   c.search,
	}
	visible := engine.Filter(tasks, fs, now)

	renderTasks(out, tasks, visible, now, c.notes)

	if len(visible) == 0 && !cfg.Quiet {
		fmt.Fprintln(out, "no tasks found")
	}

	// Progress always reflects the full collection, not the filtered
	// view.
	if len(tasks) > 0 && !cfg.Quiet {
		output.FormatProgress(out, engine.Progress(tasks))
	}

	return exitcode.Success
}

// renderTasks prints the visible tasks, numbered by their position in
// the full collection so the numbers stay valid as references for
// done/edit/rm no matter which filter is active.
func renderTasks(out io.Writer, all, visible []service.Task, now time.Time, withNotes bool) {
	nums := make(map[string]int, len(all))
	for i, t := range all {
		nums[t.ID] = i + 1
	}
	for _, t := range visible {
		output.FormatTask(out, nums[t.ID], t, now)
		if withNotes {
			output.FormatNotes(out, t.Notes)
		}
	}
}
