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
	Register(&DoneCmd{})
}

// DoneCmd implements the done command: toggles a task's completion.
// Running it on a completed task makes it active again.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string  { return "Toggle a task's completion" }
func (c *DoneCmd) Usage() string     { return "daylist done <n>" }
func (c *DoneCmd) NeedsAuth() bool   { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, st service.Store, owner string, args []string, out, errOut io.Writer) int {
	task, _, code := resolveTaskArg(ctx, st, owner, args, errOut)
	if code != exitcode.Success {
		return code
	}

	completed := !task.Completed
	patch := service.TaskPatch{Completed: &completed}
	if err := st.UpdateTask(ctx, task.ID, patch); err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
