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
	Register(&EditCmd{})
}

// EditCmd implements the edit command. Only the fields named by flags
// are written; completion state is left to the done command.
type EditCmd struct {
	text     string
	textSet  bool
	due      string
	clearDue bool
	priority string
	notes    string
	notesSet bool
}

// SetFlags sets flag values directly (for testing).
func (c *EditCmd) SetFlags(text, due, priority, notes string, clearDue bool) {
	if text != "" {
		c.text = text
		c.textSet = true
	}
	c.due = due
	c.priority = priority
	if notes != "" {
		c.notes = notes
		c.notesSet = true
	}
	c.clearDue = clearDue
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a task's fields" }
func (c *EditCmd) Usage() string {
	return "daylist edit <n> [--text <t>] [--due YYYY-MM-DD|--clear-due] [--priority <p>] [--notes <t>]"
}
func (c *EditCmd) NeedsAuth() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.Func("text", "", func(s string) error {
		c.text = s
		c.textSet = true
		return nil
	})
	fs.StringVar(&c.due, "due", "", "")
	fs.BoolVar(&c.clearDue, "clear-due", false, "")
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.priority, "p", "", "")
	fs.Func("notes", "", func(s string) error {
		c.notes = s
		c.notesSet = true
		return nil
	})
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, st service.Store, owner string, args []string, out, errOut io.Writer) int {
	patch, code := c.buildPatch(errOut)
	if code != exitcode.Success {
		return code
	}
	if patch.IsZero() {
		fmt.Fprintln(errOut, "error: nothing to edit")
		return exitcode.UserError
	}

	task, _, code := resolveTaskArg(ctx, st, owner, args, errOut)
	if code != exitcode.Success {
		return code
	}

	if err := st.UpdateTask(ctx, task.ID, patch); err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

func (c *EditCmd) buildPatch(errOut io.Writer) (service.TaskPatch, int) {
	var patch service.TaskPatch

	if c.textSet {
		if strings.TrimSpace(c.text) == "" {
			fmt.Fprintf(errOut, "error: %v\n", service.ErrEmptyText)
			return patch, exitcode.UserError
		}
		patch.Text = &c.text
	}

	if c.due != "" && c.clearDue {
		fmt.Fprintln(errOut, "error: cannot use both --due and --clear-due")
		return patch, exitcode.UserError
	}
	if c.clearDue {
		patch.ClearDue = true
	} else if c.due != "" {
		due, err := parseDueDate(c.due)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return patch, exitcode.UserError
		}
		patch.DueDate = due
	}

	if c.priority != "" {
		if !validPriority(c.priority) {
			fmt.Fprintf(errOut, "error: invalid priority: %s\n", c.priority)
			return patch, exitcode.UserError
		}
		patch.Priority = &c.priority
	}

	if c.notesSet {
		patch.Notes = &c.notes
	}

	return patch, exitcode.Success
}
