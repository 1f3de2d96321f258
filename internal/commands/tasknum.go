package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"

	"daylist/internal/exitcode"
	"daylist/internal/service"
)

// ErrTaskNumRequired indicates no task number was provided.
var ErrTaskNumRequired = errors.New("task number required")

// ParseTaskNum parses a 1-based task number from args. Numbers refer to
// positions in the owner's full collection in createdAt order, which is
// also the numbering the list command displays.
func ParseTaskNum(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskNumRequired
	}
	arg := args[0]
	if !isAllDigits(arg) {
		return 0, fmt.Errorf("invalid task number: %s", arg)
	}
	num, err := strconv.Atoi(arg)
	if err != nil || num < 1 {
		return 0, fmt.Errorf("invalid task number: %s", arg)
	}
	return num, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// fetchTasks lists the owner's tasks, reporting a backend error to
// errOut. The second return is false when the caller should exit with
// BackendError.
func fetchTasks(ctx context.Context, st service.Store, owner string, errOut io.Writer) ([]service.Task, bool) {
	tasks, err := st.ListTasks(ctx, owner)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return nil, false
	}
	return tasks, true
}

// taskByNumber resolves a 1-based number against the full collection.
func taskByNumber(tasks []service.Task, num int) (service.Task, error) {
	if num < 1 || num > len(tasks) {
		return service.Task{}, fmt.Errorf("task number out of range: %d", num)
	}
	return tasks[num-1], nil
}

// resolveTaskArg combines ParseTaskNum, fetchTasks and taskByNumber,
// writing the appropriate error message. Returns the task, the full
// collection, and an exit code (Success means the task was resolved).
func resolveTaskArg(ctx context.Context, st service.Store, owner string, args []string, errOut io.Writer) (service.Task, []service.Task, int) {
	num, err := ParseTaskNum(args)
	if err != nil {
		if errors.Is(err, ErrTaskNumRequired) {
			fmt.Fprintln(errOut, "error: task number required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return service.Task{}, nil, exitcode.UserError
	}

	tasks, ok := fetchTasks(ctx, st, owner, errOut)
	if !ok {
		return service.Task{}, nil, exitcode.BackendError
	}

	task, err := taskByNumber(tasks, num)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return service.Task{}, nil, exitcode.UserError
	}
	return task, tasks, exitcode.Success
}
