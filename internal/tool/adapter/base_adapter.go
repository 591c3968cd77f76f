package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/A3S-Lab/Tools-Core/internal/tool"
	"github.com/mitchellh/mapstructure"
)

// ToolExecutor is a function that executes a tool with typed request/response.
type ToolExecutor[Req, Resp any] func(ctx context.Context, req *Req) (*Resp, error)

// BaseAdapter provides common adapter functionality using generics,
// centralizing argument decoding (mapstructure), tool execution, and
// response marshaling for all tool adapters.
type BaseAdapter[Req, Resp any] struct {
	name        string
	description string
	declaration tool.Declaration
	executor    ToolExecutor[Req, Resp]
}

// NewBaseAdapter creates a new base adapter with the given configuration.
func NewBaseAdapter[Req, Resp any](
	name string,
	description string,
	paramSchema *tool.Schema,
	executor ToolExecutor[Req, Resp],
) *BaseAdapter[Req, Resp] {
	return &BaseAdapter[Req, Resp]{
		name:        name,
		description: description,
		declaration: tool.Declaration{
			Name:        name,
			Description: description,
			Parameters:  paramSchema,
		},
		executor: executor,
	}
}

// Name implements adapter.Tool
func (b *BaseAdapter[Req, Resp]) Name() string {
	return b.name
}

// Description implements adapter.Tool
func (b *BaseAdapter[Req, Resp]) Description() string {
	return b.description
}

// Declaration implements adapter.Tool
func (b *BaseAdapter[Req, Resp]) Declaration() tool.Declaration {
	return b.declaration
}

// Execute implements adapter.Tool
//
// It decodes the args map into a typed request using mapstructure, calls the
// tool executor, and marshals the response back to JSON. Typed errors from
// the tool pass through untouched so callers can inspect them.
func (b *BaseAdapter[Req, Resp]) Execute(ctx context.Context, args map[string]any) (string, error) {
	var req Req

	if err := mapstructure.Decode(args, &req); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	resp, err := b.executor(ctx, &req)
	if err != nil {
		return "", err
	}

	bytes, err := json.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}

	return string(bytes), nil
}
