package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"daylist/internal/config"
	"daylist/internal/engine"
	"daylist/internal/exitcode"
	"daylist/internal/output"
	"daylist/internal/service"
)

func init() {
	Register(&FinishCmd{})
}

// FinishCmd implements the finish command: marks every incomplete task
// completed, one update per task. The updates are independent writes
// with no transaction across them, so a failure midway leaves the
// collection partially completed; the command reports exactly which
// tasks were written and which were not, and nothing is rolled back.
type FinishCmd struct{}

func (c *FinishCmd) Name() string      { return "finish" }
func (c *FinishCmd) Aliases() []string { return []string{"finish-day"} }
func (c *FinishCmd) Synopsis() string  { return "Complete every remaining task" }
func (c *FinishCmd) Usage() string     { return "daylist finish" }
func (c *FinishCmd) NeedsAuth() bool   { return true }

func (c *FinishCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *FinishCmd) Run(ctx context.Context, cfg *config.Config, st service.Store, owner string, args []string, out, errOut io.Writer) int {
	tasks, ok := fetchTasks(ctx, st, owner, errOut)
	if !ok {
		return exitcode.BackendError
	}

	plan := engine.FinishDay(tasks)
	if len(plan.UpdateIDs) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "nothing to finish")
		}
		return exitcode.Success
	}

	completed := true
	result := applyBulk(ctx, plan.UpdateIDs, func(id string) error {
		return st.UpdateTask(ctx, id, service.TaskPatch{Completed: &completed})
	})

	if len(result.Failed) > 0 {
		reportBulkFailures(errOut, "complete", result)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "finished %d task(s)\n", len(result.Done))
		output.FormatProgress(out, plan.Summary)
	}
	return exitcode.Success
}

// applyBulk issues one independent write per id and collects the
// outcome of each.
func applyBulk(ctx context.Context, ids []string, write func(id string) error) service.BulkResult {
	var result service.BulkResult
	for _, id := range ids {
		if err := write(id); err != nil {
			result.Failed = append(result.Failed, service.BulkFailure{ID: id, Err: err})
			continue
		}
		result.Done = append(result.Done, id)
	}
	return result
}

// reportBulkFailures prints each failed write and the count that did
// succeed, so the user knows the exact partial state.
func reportBulkFailures(errOut io.Writer, verb string, result service.BulkResult) {
	for _, f := range result.Failed {
		fmt.Fprintf(errOut, "error: failed to %s %s: %v\n", verb, f.ID, f.Err)
	}
	fmt.Fprintf(errOut, "error: %d of %d writes failed (%d succeeded, not rolled back)\n",
		len(result.Failed), len(result.Failed)+len(result.Done), len(result.Done))
}
