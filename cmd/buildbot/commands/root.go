// Package commands implements the command line interface of the buildbot build driver.
package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/buildbot/internal/app"
	"go.trai.ch/buildbot/internal/build"
	"go.trai.ch/buildbot/internal/core/domain"
)

// CLI represents the command line interface for buildbot.
type CLI struct {
	app       *app.App
	rootCmd   *cobra.Command
	workspace func() (domain.Workspace, error)
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	c := &CLI{
		app:       a,
		workspace: app.DetectWorkspace,
	}

	rootCmd := &cobra.Command{
		Use:   "buildbot",
		Short: "Drive CMake builds of the project",
		Long: fmt.Sprintf(
			"buildbot %s configures, compiles, tests, installs and documents the project\n"+
				"in per-platform build and install directories.\n\nActions: %s",
			build.Version, strings.Join(domain.ActionNames(), ", "),
		),
		SilenceUsage:  true,
		SilenceErrors: true,
		// Positional arguments are reported by the resolver.
		Args: cobra.ArbitraryArgs,
		RunE: c.run,
	}

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for buildbot"

	registerFlags(rootCmd)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &domain.ConfigError{Kind: domain.ErrInvalidFlag, Value: err.Error()}
	})

	c.rootCmd = rootCmd
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetWorkspaceDetector replaces workspace detection. Used for testing.
func (c *CLI) SetWorkspaceDetector(fn func() (domain.Workspace, error)) {
	c.workspace = fn
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	raw, err := c.options(cmd, args)
	if err != nil {
		return err
	}

	ws, err := c.workspace()
	if err != nil {
		return err
	}

	return c.app.Run(cmd.Context(), raw, ws)
}
