package file

import (
	"context"
	"fmt"
	"strings"

	"github.com/A3S-Lab/Tools-Core/internal/config"
	"github.com/A3S-Lab/Tools-Core/internal/tool/errutil"
	"github.com/A3S-Lab/Tools-Core/internal/tool/helper/content"
	"github.com/A3S-Lab/Tools-Core/internal/tool/service/path"
)

// ReadFileTool handles file reading operations.
type ReadFileTool struct {
	fileOps      fileReader
	config       *config.Config
	pathResolver *path.Resolver
}

// NewReadFileTool creates a new ReadFileTool with injected dependencies.
func NewReadFileTool(fileOps fileReader, cfg *config.Config, pathResolver *path.Resolver) *ReadFileTool {
	return &ReadFileTool{
		fileOps:      fileOps,
		config:       cfg,
		pathResolver: pathResolver,
	}
}

// Run reads a file from the workspace with optional line offset and limit.
// It validates the path is within workspace boundaries, checks for binary
// content, enforces size limits, and returns line-numbered content capped at
// the configured output size.
//
// Note: ctx is accepted for API consistency but not used - file I/O is synchronous.
func (t *ReadFileTool) Run(ctx context.Context, req *ReadFileRequest) (*ReadFileResponse, error) {
	if err := req.Validate(t.config); err != nil {
		return nil, err
	}

	abs, err := t.pathResolver.Resolve(req.Path)
	if err != nil {
		return nil, err
	}
	rel, err := t.pathResolver.Rel(abs)
	if err != nil {
		return nil, err
	}

	info, err := t.fileOps.Stat(abs)
	if err != nil {
		return nil, &StatError{Path: abs, Cause: err}
	}
	if info.IsDir() {
		return nil, &IsDirectoryError{Path: abs}
	}

	maxFileSize := t.config.Tools.MaxFileSize
	if info.Size() > maxFileSize {
		return nil, &TooLargeError{Path: abs, Size: info.Size(), Limit: maxFileSize}
	}

	data, err := t.fileOps.ReadFile(abs)
	if err != nil {
		return nil, &ReadError{Path: abs, Cause: err}
	}

	if content.IsBinaryContent(data) {
		return nil, fmt.Errorf("%w: %s", errutil.ErrBinaryFile, abs)
	}

	lines := content.SplitLines(string(data))
	total := len(lines)

	offset := req.offset()
	if offset > total {
		offset = total
	}
	end := offset + req.limit(t.config)
	if end > total {
		end = total
	}
	window := lines[offset:end]

	numbered := content.LineNumbered(strings.Join(window, "\n"), offset, t.config.Tools.MaxLineLength)
	capped := content.Truncate(numbered, t.config.Tools.MaxOutputSize)

	return &ReadFileResponse{
		Content:      capped,
		AbsolutePath: abs,
		RelativePath: rel,
		TotalLines:   total,
		Truncated:    len(capped) != len(numbered) || end < total,
	}, nil
}
