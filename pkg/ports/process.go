package ports

import (
	"context"

	"github.com/aretw0/bundleaudit/pkg/domain"
)

// ProcessRunner executes the external audit tool.
type ProcessRunner interface {
	// Run launches the tool with [subcommand] ++ extra and reports the raw outcome.
	Run(ctx context.Context, subcommand string, extra ...string) domain.Outcome

	// Invoke is Run translated into the error contract:
	// nil, *domain.HaltError or *domain.CommandNotFoundError.
	Invoke(ctx context.Context, subcommand string, extra ...string) error
}
