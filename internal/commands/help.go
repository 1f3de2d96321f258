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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "daylist help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st service.Store, owner string, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  daylist                                            List all tasks
  daylist list [common flags] [--status <s>] [--priority <p>] [--search <text>] [--notes]
  daylist add [common flags] [--due YYYY-MM-DD] [--priority <p>] [--notes <text>] <text...>
  daylist done [common flags] <n>                    Toggle completion
  daylist edit [common flags] <n> [--text <t>] [--due <d>|--clear-due] [--priority <p>] [--notes <t>]
  daylist rm [common flags] <n>                      Delete a task
  daylist clear [common flags]                       Delete all completed tasks
  daylist finish [common flags]                      Complete every remaining task
  daylist progress [common flags]                    Show completion progress
  daylist watch [common flags]                       Live view, re-rendered on every change
  daylist login [common flags]
  daylist logout [common flags]
  daylist help
  daylist version

Statuses: all, active, completed, today, upcoming, overdue
Priorities: all, high, medium, low

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
