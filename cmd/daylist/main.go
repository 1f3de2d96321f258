// Package main is the entry point for the daylist CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"daylist/internal/backend/cloudstore"
	"daylist/internal/backend/googleauth"
	"daylist/internal/cli"
	"daylist/internal/commands"
	"daylist/internal/config"
	"daylist/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	factory := func(ctx context.Context, cfg *config.Config) (service.Store, error) {
		return cloudstore.New(ctx, cfg)
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory, googleauth.CurrentOwner)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
