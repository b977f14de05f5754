// Package main is the entry point for the buildbot build driver.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildbot/cmd/buildbot/commands"
	"go.trai.ch/buildbot/internal/app"
	_ "go.trai.ch/buildbot/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		if closeErr := components.Telemetry.Close(); closeErr != nil {
			components.Logger.Error(closeErr)
		}
	}()

	// 2. Interface - CLI
	cli := commands.New(components.App)

	// 3. Execution
	err = cli.Execute(ctx)

	// 4. Step summary
	if reportErr := components.Telemetry.Report(os.Stderr); reportErr != nil {
		components.Logger.Error(reportErr)
	}

	if err != nil {
		components.Logger.Error(err)
		return app.ExitCode(err)
	}
	return 0
}
