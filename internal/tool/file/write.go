package file

import (
	"context"
	"fmt"
	"os"

	"github.com/A3S-Lab/Tools-Core/internal/config"
	"github.com/A3S-Lab/Tools-Core/internal/tool/errutil"
	"github.com/A3S-Lab/Tools-Core/internal/tool/helper/content"
	"github.com/A3S-Lab/Tools-Core/internal/tool/service/path"
)

// WriteFileTool handles file writing operations.
type WriteFileTool struct {
	fileOps      fileWriter
	config       *config.Config
	pathResolver *path.Resolver
}

// NewWriteFileTool creates a new WriteFileTool with injected dependencies.
func NewWriteFileTool(fileOps fileWriter, cfg *config.Config, pathResolver *path.Resolver) *WriteFileTool {
	return &WriteFileTool{
		fileOps:      fileOps,
		config:       cfg,
		pathResolver: pathResolver,
	}
}

// Run creates a new file in the workspace with the specified content.
// The path is resolved in write mode, so the file may not exist yet but its
// parent directory must. Content is checked for binary data, size limited,
// and written atomically via temp file + rename.
//
// Note: ctx is accepted for API consistency but not used - file I/O is synchronous.
func (t *WriteFileTool) Run(ctx context.Context, req *WriteFileRequest) (*WriteFileResponse, error) {
	if err := req.Validate(t.config); err != nil {
		return nil, err
	}

	abs, err := t.pathResolver.ResolveForWrite(req.Path)
	if err != nil {
		return nil, err
	}
	rel, err := t.pathResolver.Rel(abs)
	if err != nil {
		return nil, err
	}

	// Refuse to clobber an existing file
	_, err = t.fileOps.Stat(abs)
	if err == nil {
		return nil, fmt.Errorf("%w: %s", errutil.ErrFileExists, abs)
	}
	if !os.IsNotExist(err) {
		return nil, &StatError{Path: abs, Cause: err}
	}

	contentBytes := []byte(req.Content)

	if content.IsBinaryContent(contentBytes) {
		return nil, fmt.Errorf("%w: %s", errutil.ErrBinaryFile, abs)
	}

	if err := t.fileOps.WriteFileAtomic(abs, contentBytes, 0o644); err != nil {
		return nil, &WriteError{Path: abs, Cause: err}
	}

	return &WriteFileResponse{
		AbsolutePath: abs,
		RelativePath: rel,
		BytesWritten: len(contentBytes),
	}, nil
}
