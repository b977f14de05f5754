// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/buildbot/internal/core/domain"
)

// Executor defines the interface for running external build tools.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs cmd to completion.
	//
	// cmd.Env is layered on top of the process environment.
	// It returns an error if the command cannot be started or exits non-zero.
	Execute(ctx context.Context, cmd domain.Command) error
}
