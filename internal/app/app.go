// Package app implements the application layer for buildbot.
package app

import (
	"context"
	"fmt"
	"maps"

	"go.trai.ch/buildbot/internal/core/domain"
	"go.trai.ch/buildbot/internal/core/ports"
	"go.trai.ch/buildbot/internal/engine/dispatcher"
	"go.trai.ch/buildbot/internal/engine/resolver"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     *resolver.Resolver
	dispatcher   *dispatcher.Dispatcher
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	res *resolver.Resolver,
	disp *dispatcher.Dispatcher,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		resolver:     res,
		dispatcher:   disp,
		logger:       logger,
	}
}

// LoadProfile reads the option profile at path. A missing profile is nil unless required.
func (a *App) LoadProfile(path string, required bool) (*domain.Profile, error) {
	return a.configLoader.LoadProfile(path, required)
}

// Environment merges the profile environment with the variables of envFile.
// Variables from envFile take precedence. An empty envFile is skipped.
func (a *App) Environment(profile *domain.Profile, envFile string) (map[string]string, error) {
	env := make(map[string]string)
	if profile != nil {
		maps.Copy(env, profile.Environment)
	}
	if envFile == "" {
		return env, nil
	}

	fromFile, err := a.configLoader.LoadEnvironment(envFile)
	if err != nil {
		return nil, err
	}
	maps.Copy(env, fromFile)
	return env, nil
}

// Run resolves raw for the workspace and dispatches the selected action.
// Configuration errors are returned before any build tool is invoked.
func (a *App) Run(ctx context.Context, raw domain.RawOptions, ws domain.Workspace) error {
	cfg, overrides, err := a.resolver.Resolve(raw, ws)
	if err != nil {
		return err
	}

	for _, o := range overrides {
		a.logger.Warn(o.String())
	}

	a.logger.Info(fmt.Sprintf(
		"%s for %s: build prefix %s, install prefix %s",
		cfg.Action, cfg.Platform, cfg.BuildPrefix, cfg.InstallPrefix,
	))

	return a.dispatcher.Dispatch(ctx, cfg)
}
