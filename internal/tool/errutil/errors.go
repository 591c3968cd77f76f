package errutil

import "errors"

// Sentinel errors for consistent error handling across tools
var (
	ErrFileExists    = errors.New("file already exists")
	ErrBinaryFile    = errors.New("binary files are not supported")
	ErrTooLarge      = errors.New("file or content exceeds size limit")
	ErrInvalidOffset = errors.New("offset must be >= 0")
	ErrInvalidLimit  = errors.New("limit must be >= 0")
)
