package commands_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"daylist/internal/commands"
	"daylist/internal/config"
	"daylist/internal/exitcode"
	"daylist/internal/service"
	"daylist/internal/testutil"
)

func TestFinishCommand(t *testing.T) {
	st := testutil.NewFakeStore()
	seedBasic(st)

	cmd := &commands.FinishCmd{}
	stdout, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.Success {
		t.Fatalf("expected success, got %d (stderr: %q)", code, stderr)
	}
	// One incomplete task, one update, summary reflects full completion.
	want := "finished 1 task(s)\n[####################] 2/2 done (100%)\n"
	if stdout != want {
		t.Errorf("expected %q, got %q", want, stdout)
	}
	for _, task := range st.Tasks() {
		if !task.Completed {
			t.Errorf("task %s should be completed after finish", task.ID)
		}
	}
}

func TestFinishCommand_NothingToFinish(t *testing.T) {
	st := testutil.NewFakeStore()
	st.AddTask(service.Task{ID: "dog", Text: "Walk dog", Completed: true, OwnerID: testOwner})

	cmd := &commands.FinishCmd{}
	stdout, _, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.Success {
		t.Fatalf("expected success, got %d", code)
	}
	if stdout != "nothing to finish\n" {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestFinishCommand_PartialFailure(t *testing.T) {
	st := testutil.NewFakeStore()
	st.AddTask(service.Task{ID: "a", Text: "First", OwnerID: testOwner})
	st.AddTask(service.Task{ID: "b", Text: "Second", OwnerID: testOwner})
	st.AddTask(service.Task{ID: "c", Text: "Third", OwnerID: testOwner})
	st.UpdateErr["b"] = errors.New("deadline exceeded")

	cmd := &commands.FinishCmd{}
	_, stderr, code := runCommand(t, cmd, st, nil, false)

	// The writes that succeeded stay written; the failure is reported
	// per task, with no rollback.
	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if !strings.Contains(stderr, "failed to complete b") {
		t.Errorf("expected failure for task b, got %q", stderr)
	}
	if !strings.Contains(stderr, "1 of 3 writes failed (2 succeeded, not rolled back)") {
		t.Errorf("expected partial failure summary, got %q", stderr)
	}

	tasks := st.Tasks()
	if !tasks[0].Completed || !tasks[2].Completed {
		t.Error("tasks a and c should be completed")
	}
	if tasks[1].Completed {
		t.Error("task b should remain incomplete")
	}
}

func TestClearCommand_PartialFailure(t *testing.T) {
	st := testutil.NewFakeStore()
	st.AddTask(service.Task{ID: "a", Text: "First", Completed: true, OwnerID: testOwner})
	st.AddTask(service.Task{ID: "b", Text: "Second", Completed: true, OwnerID: testOwner})
	st.DeleteErr["a"] = errors.New("permission denied")

	cmd := &commands.ClearCmd{}
	_, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if !strings.Contains(stderr, "failed to delete a") {
		t.Errorf("expected failure for task a, got %q", stderr)
	}

	tasks := st.Tasks()
	if len(tasks) != 1 || tasks[0].ID != "a" {
		t.Errorf("expected only the failed delete to remain, got %v", tasks)
	}
}

func TestWatchCommand_RendersSnapshotUntilCancelled(t *testing.T) {
	st := testutil.NewFakeStore()
	seedBasic(st)

	cmd := &commands.WatchCmd{}
	var outBuf, errBuf bytes.Buffer
	cfg := &config.Config{Dir: t.TempDir()}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	code := cmd.Run(ctx, cfg, st, testOwner, nil, &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Fatalf("expected success after cancel, got %d (stderr: %q)", code, errBuf.String())
	}
	// At least the initial snapshot was rendered.
	if !strings.Contains(outBuf.String(), "Buy milk") {
		t.Errorf("expected initial snapshot in output, got %q", outBuf.String())
	}
}

func TestWatchCommand_BackendError(t *testing.T) {
	st := testutil.NewFakeStore()
	st.WatchErr = errors.New("stream unavailable")

	cmd := &commands.WatchCmd{}
	_, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if !strings.Contains(stderr, "backend error") {
		t.Errorf("expected backend error, got %q", stderr)
	}
}
