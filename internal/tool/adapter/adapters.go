package adapter

import (
	"github.com/A3S-Lab/Tools-Core/internal/tool"
	"github.com/A3S-Lab/Tools-Core/internal/tool/file"
)

// NewReadFile adapts a ReadFileTool to the Tool interface.
func NewReadFile(t *file.ReadFileTool) Tool {
	return NewBaseAdapter(
		"read_file",
		"Reads a file from the workspace, returning line-numbered content",
		&tool.Schema{
			Type: tool.TypeObject,
			Properties: map[string]*tool.Schema{
				"path": {
					Type:        tool.TypeString,
					Description: "Path to the file (relative to workspace root)",
				},
				"offset": {
					Type:        tool.TypeInteger,
					Description: "Line number to start reading from (0-based)",
				},
				"limit": {
					Type:        tool.TypeInteger,
					Description: "Maximum number of lines to read",
				},
			},
			Required: []string{"path"},
		},
		t.Run,
	)
}

// NewWriteFile adapts a WriteFileTool to the Tool interface.
func NewWriteFile(t *file.WriteFileTool) Tool {
	return NewBaseAdapter(
		"write_file",
		"Creates a new file in the workspace with the given content",
		&tool.Schema{
			Type: tool.TypeObject,
			Properties: map[string]*tool.Schema{
				"path": {
					Type:        tool.TypeString,
					Description: "Path to the new file (relative to workspace root)",
				},
				"content": {
					Type:        tool.TypeString,
					Description: "Content to write",
				},
			},
			Required: []string{"path", "content"},
		},
		t.Run,
	)
}
