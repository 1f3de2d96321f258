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
	Register(&WatchCmd{})
}

// WatchCmd implements the watch command: subscribes to the owner's
// tasks and re-renders on every snapshot until interrupted. Each
// snapshot is a full replacement of the collection, so the view is
// always internally consistent even while writes are in flight.
type WatchCmd struct{}

func (c *WatchCmd) Name() string      { return "watch" }
func (c *WatchCmd) Aliases() []string { return nil }
func (c *WatchCmd) Synopsis() string  { return "Live view of tasks" }
func (c *WatchCmd) Usage() string     { return "daylist watch" }
func (c *WatchCmd) NeedsAuth() bool   { return true }

func (c *WatchCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WatchCmd) Run(ctx context.Context, cfg *config.Config, st service.Store, owner string, args []string, out, errOut io.Writer) int {
	snapshots, err := st.Watch(ctx, owner)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	for tasks := range snapshots {
		now := time.Now()
		fmt.Fprintf(out, "--- %s ---\n", now.Format(time.TimeOnly))
		renderTasks(out, tasks, tasks, now, false)
		if len(tasks) == 0 {
			fmt.Fprintln(out, "no tasks")
		} else {
			output.FormatProgress(out, engine.Progress(tasks))
		}
	}

	// Channel closed: either the context was cancelled (normal exit)
	// or the stream failed.
	if ctx.Err() != nil {
		return exitcode.Success
	}
	fmt.Fprintln(errOut, "error: watch stream ended")
	return exitcode.BackendError
}
