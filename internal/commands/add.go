package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"daylist/internal/config"
	"daylist/internal/exitcode"
	"daylist/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	due      string
	priority string
	notes    string
}

// SetFlags sets flag values directly (for testing).
func (c *AddCmd) SetFlags(due, priority, notes string) {
	c.due = due
	c.priority = priority
	c.notes = notes
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"new"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "daylist add [--due YYYY-MM-DD] [--priority high|medium|low] [--notes <text>] <text...>"
}
func (c *AddCmd) NeedsAuth() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.due, "due", "", "")
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.priority, "p", "", "")
	fs.StringVar(&c.notes, "notes", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, st service.Store, owner string, args []string, out, errOut io.Writer) int {
	// Empty text is rejected before the store is touched.
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		fmt.Fprintf(errOut, "error: %v\n", service.ErrEmptyText)
		return exitcode.UserError
	}

	fields := service.TaskFields{Text: text, Notes: c.notes}

	if c.priority != "" {
		if !validPriority(c.priority) {
			fmt.Fprintf(errOut, "error: invalid priority: %s\n", c.priority)
			return exitcode.UserError
		}
		fields.Priority = c.priority
	}

	if c.due != "" {
		due, err := parseDueDate(c.due)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		fields.DueDate = due
	}

	if _, err := st.CreateTask(ctx, owner, fields); err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
