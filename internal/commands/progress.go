package commands

import (
	"context"
	"flag"
	"io"

	"daylist/internal/config"
	"daylist/internal/engine"
	"daylist/internal/exitcode"
	"daylist/internal/output"
	"daylist/internal/service"
)

func init() {
	Register(&ProgressCmd{})
}

// ProgressCmd implements the progress command.
type ProgressCmd struct{}

func (c *ProgressCmd) Name() string      { return "progress" }
func (c *ProgressCmd) Aliases() []string { return nil }
func (c *ProgressCmd) Synopsis() string  { return "Show completion progress" }
func (c *ProgressCmd) Usage() string     { return "daylist progress" }
func (c *ProgressCmd) NeedsAuth() bool   { return true }

func (c *ProgressCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ProgressCmd) Run(ctx context.Context, cfg *config.Config, st service.Store, owner string, args []string, out, errOut io.Writer) int {
	tasks, ok := fetchTasks(ctx, st, owner, errOut)
	if !ok {
		return exitcode.BackendError
	}

	output.FormatProgress(out, engine.Progress(tasks))
	return exitcode.Success
}
