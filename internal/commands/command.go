// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"daylist/internal/config"
	"daylist/internal/service"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsAuth returns true if the command requires a logged-in
	// owner and a store connection. help, version, login and logout
	// return false.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided. st and owner are zero unless NeedsAuth()
	// returns true; owner is the authenticated owner id and every
	// store operation is scoped to it. Returns an exit code.
	Run(ctx context.Context, cfg *config.Config, st service.Store, owner string, args []string, out, errOut io.Writer) int
}
