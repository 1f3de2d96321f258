package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"daylist/internal/config"
	"daylist/internal/exitcode"
	"daylist/internal/service"
)

func init() {
	Register(&ClearCmd{})
}

// ClearCmd implements the clear command: deletes every completed task.
// Like finish, the per-task deletes are independent and a partial
// failure is reported rather than rolled back.
type ClearCmd struct{}

func (c *ClearCmd) Name() string      { return "clear" }
func (c *ClearCmd) Aliases() []string { return nil }
func (c *ClearCmd) Synopsis() string  { return "Delete all completed tasks" }
func (c *ClearCmd) Usage() string     { return "daylist clear" }
func (c *ClearCmd) NeedsAuth() bool   { return true }

func (c *ClearCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ClearCmd) Run(ctx context.Context, cfg *config.Config, st service.Store, owner string, args []string, out, errOut io.Writer) int {
	tasks, ok := fetchTasks(ctx, st, owner, errOut)
	if !ok {
		return exitcode.BackendError
	}

	var ids []string
	for _, t := range tasks {
		if t.Completed {
			ids = append(ids, t.ID)
		}
	}
	if len(ids) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "nothing to clear")
		}
		return exitcode.Success
	}

	result := applyBulk(ctx, ids, func(id string) error {
		return st.DeleteTask(ctx, id)
	})

	if len(result.Failed) > 0 {
		reportBulkFailures(errOut, "delete", result)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "cleared %d task(s)\n", len(result.Done))
	}
	return exitcode.Success
}
