package file

import (
	"github.com/A3S-Lab/Tools-Core/internal/config"
	"github.com/A3S-Lab/Tools-Core/internal/tool/errutil"
)

// -- Read File --

type ReadFileRequest struct {
	Path   string `json:"path"`
	Offset *int   `json:"offset,omitempty"` // starting line, 0-based
	Limit  *int   `json:"limit,omitempty"`  // maximum number of lines
}

func (r *ReadFileRequest) Validate(cfg *config.Config) error {
	if r.Path == "" {
		return ErrPathRequired
	}
	if r.Offset != nil && *r.Offset < 0 {
		return errutil.ErrInvalidOffset
	}
	if r.Limit != nil && *r.Limit < 0 {
		return errutil.ErrInvalidLimit
	}
	return nil
}

// offset returns the requested starting line, defaulting to the top.
func (r *ReadFileRequest) offset() int {
	if r.Offset == nil {
		return 0
	}
	return *r.Offset
}

// limit returns the requested line count, capped at the configured maximum.
func (r *ReadFileRequest) limit(cfg *config.Config) int {
	max := cfg.Tools.MaxReadLines
	if r.Limit == nil || *r.Limit == 0 || *r.Limit > max {
		return max
	}
	return *r.Limit
}

type ReadFileResponse struct {
	Content      string `json:"content"`
	AbsolutePath string `json:"absolute_path"`
	RelativePath string `json:"relative_path"`
	TotalLines   int    `json:"total_lines"`
	Truncated    bool   `json:"truncated"`
}

// -- Write File --

type WriteFileRequest struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

func (r *WriteFileRequest) Validate(cfg *config.Config) error {
	if r.Path == "" {
		return ErrPathRequired
	}
	if r.Content == "" {
		return ErrContentRequiredForWrite
	}
	if int64(len(r.Content)) > cfg.Tools.MaxFileSize {
		return errutil.ErrTooLarge
	}
	return nil
}

type WriteFileResponse struct {
	AbsolutePath string `json:"absolute_path"`
	RelativePath string `json:"relative_path"`
	BytesWritten int    `json:"bytes_written"`
}
