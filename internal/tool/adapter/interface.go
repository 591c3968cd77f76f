package adapter

import (
	"context"

	"github.com/A3S-Lab/Tools-Core/internal/tool"
)

// Tool represents a capability an agent can invoke.
// Each tool must be stateless and safe for concurrent use.
type Tool interface {
	// Name returns the unique identifier for this tool
	Name() string

	// Description returns a human-readable description
	Description() string

	// Declaration returns the structured tool declaration for the provider
	Declaration() tool.Declaration

	// Execute runs the tool with the given arguments.
	// Args is a map of argument names to values, as provided by the caller.
	Execute(ctx context.Context, args map[string]any) (string, error)
}
