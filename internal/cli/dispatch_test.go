package cli_test

import (
	"bytes"
	"context"
	"testing"

	"daylist/internal/cli"
	"daylist/internal/commands"
	"daylist/internal/config"
	"daylist/internal/exitcode"
	"daylist/internal/service"
	"daylist/internal/testutil"
)

// testFactory creates a store factory that returns the given FakeStore.
func testFactory(st *testutil.FakeStore) cli.StoreFactory {
	return func(ctx context.Context, cfg *config.Config) (service.Store, error) {
		return st, nil
	}
}

// loggedIn is an identity stub for an authenticated user.
func loggedIn(cfg *config.Config) (string, error) {
	return "owner1", nil
}

// loggedOut is an identity stub for an unauthenticated user.
func loggedOut(cfg *config.Config) (string, error) {
	return "", service.ErrUnauthenticated
}

func newTestDispatcher(st *testutil.FakeStore) *cli.Dispatcher {
	return cli.NewDispatcher(commands.DefaultRegistry, testFactory(st), loggedIn)
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	dispatcher := newTestDispatcher(testutil.NewFakeStore())

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"unknowncmd"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	dispatcher := newTestDispatcher(testutil.NewFakeStore())

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"--quiet"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	dispatcher := newTestDispatcher(testutil.NewFakeStore())

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if !bytes.Contains(stdout.Bytes(), []byte("Usage:")) {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	dispatcher := newTestDispatcher(testutil.NewFakeStore())

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"version"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout.String() != "daylist 0.1.0\n" {
		t.Errorf("expected 'daylist 0.1.0\\n', got %q", stdout.String())
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	dispatcher := newTestDispatcher(testutil.NewFakeStore())

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help", "--unknown"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_NoArgsRunsList(t *testing.T) {
	st := testutil.NewFakeStore()
	st.AddTask(service.Task{ID: "milk", Text: "Buy milk", OwnerID: "owner1"})

	dispatcher := newTestDispatcher(st)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), nil, &stdout, &stderr)

	if code != exitcode.Success {
		t.Fatalf("expected success, got %d (stderr: %q)", code, stderr.String())
	}
	if !bytes.Contains(stdout.Bytes(), []byte("Buy milk")) {
		t.Errorf("expected task listing, got %q", stdout.String())
	}
}

func TestDispatcher_Unauthenticated(t *testing.T) {
	st := testutil.NewFakeStore()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(st), loggedOut)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"list"}, &stdout, &stderr)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	expected := "error: not logged in (run: daylist login)\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_UnauthenticatedCommandsStillRun(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil, loggedOut)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"version"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (stderr: %q)", exitcode.Success, code, stderr.String())
	}
}

func TestDispatcher_QuietFlag(t *testing.T) {
	st := testutil.NewFakeStore()
	dispatcher := newTestDispatcher(st)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"add", "--quiet", "Buy", "milk"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Fatalf("expected success, got %d (stderr: %q)", code, stderr.String())
	}
	if stdout.String() != "" {
		t.Errorf("expected no stdout with --quiet, got %q", stdout.String())
	}
	if len(st.Tasks()) != 1 {
		t.Errorf("expected 1 task created, got %d", len(st.Tasks()))
	}
}
