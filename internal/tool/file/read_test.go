package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/A3S-Lab/Tools-Core/internal/config"
	"github.com/A3S-Lab/Tools-Core/internal/tool/errutil"
	"github.com/A3S-Lab/Tools-Core/internal/tool/fsutil"
	"github.com/A3S-Lab/Tools-Core/internal/tool/service/path"
)

func newReadTool(t *testing.T, cfg *config.Config) (*ReadFileTool, string) {
	t.Helper()
	ws := t.TempDir()
	tool := NewReadFileTool(fsutil.NewOSFileSystem(), cfg, path.NewResolver(ws))
	return tool, ws
}

func writeTestFile(t *testing.T, ws, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(ws, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestReadFile(t *testing.T) {
	tool, ws := newReadTool(t, config.DefaultConfig())
	writeTestFile(t, ws, "notes.txt", "alpha\nbeta\ngamma\n")

	resp, err := tool.Run(context.Background(), &ReadFileRequest{Path: "notes.txt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "1\talpha\n2\tbeta\n3\tgamma"
	if resp.Content != expected {
		t.Errorf("expected %q, got %q", expected, resp.Content)
	}
	if resp.TotalLines != 3 {
		t.Errorf("expected 3 total lines, got %d", resp.TotalLines)
	}
	if resp.Truncated {
		t.Error("expected Truncated false")
	}
	if resp.RelativePath != "notes.txt" {
		t.Errorf("expected relative path notes.txt, got %q", resp.RelativePath)
	}
}

func TestReadFileWindow(t *testing.T) {
	tool, ws := newReadTool(t, config.DefaultConfig())
	writeTestFile(t, ws, "long.txt", "l1\nl2\nl3\nl4\nl5")

	offset := 2
	limit := 2
	resp, err := tool.Run(context.Background(), &ReadFileRequest{
		Path:   "long.txt",
		Offset: &offset,
		Limit:  &limit,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "3\tl3\n4\tl4"
	if resp.Content != expected {
		t.Errorf("expected %q, got %q", expected, resp.Content)
	}
	if !resp.Truncated {
		t.Error("expected Truncated true when lines remain past the window")
	}
	if resp.TotalLines != 5 {
		t.Errorf("expected 5 total lines, got %d", resp.TotalLines)
	}
}

func TestReadFileLimitCappedByConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Tools.MaxReadLines = 2
	tool, ws := newReadTool(t, cfg)
	writeTestFile(t, ws, "long.txt", "l1\nl2\nl3\nl4")

	resp, err := tool.Run(context.Background(), &ReadFileRequest{Path: "long.txt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Content != "1\tl1\n2\tl2" {
		t.Errorf("expected first two lines, got %q", resp.Content)
	}
	if !resp.Truncated {
		t.Error("expected Truncated true")
	}
}

func TestReadFileOutputSizeCapped(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Tools.MaxOutputSize = 64
	tool, ws := newReadTool(t, cfg)
	writeTestFile(t, ws, "big.txt", strings.Repeat("some text here\n", 50))

	resp, err := tool.Run(context.Background(), &ReadFileRequest{Path: "big.txt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(resp.Content, "[Output truncated:") {
		t.Error("expected truncation notice in content")
	}
	if !resp.Truncated {
		t.Error("expected Truncated true")
	}
}

func TestReadFileErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Tools.MaxFileSize = 16
	tool, ws := newReadTool(t, cfg)
	writeTestFile(t, ws, "small.txt", "ok")
	writeTestFile(t, ws, "huge.txt", strings.Repeat("x", 32))
	if err := os.WriteFile(filepath.Join(ws, "blob.bin"), []byte{'a', 0x00, 'b'}, 0o644); err != nil {
		t.Fatalf("failed to write binary file: %v", err)
	}
	if err := os.Mkdir(filepath.Join(ws, "sub"), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	t.Run("missing path", func(t *testing.T) {
		_, err := tool.Run(context.Background(), &ReadFileRequest{})
		if !errors.Is(err, ErrPathRequired) {
			t.Errorf("expected ErrPathRequired, got %v", err)
		}
	})

	t.Run("negative offset", func(t *testing.T) {
		offset := -1
		_, err := tool.Run(context.Background(), &ReadFileRequest{Path: "small.txt", Offset: &offset})
		if !errors.Is(err, errutil.ErrInvalidOffset) {
			t.Errorf("expected ErrInvalidOffset, got %v", err)
		}
	})

	t.Run("nonexistent file", func(t *testing.T) {
		_, err := tool.Run(context.Background(), &ReadFileRequest{Path: "missing.txt"})
		if !errors.Is(err, path.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("outside workspace", func(t *testing.T) {
		_, err := tool.Run(context.Background(), &ReadFileRequest{Path: strings.Repeat("../", 12) + "etc/passwd"})
		if !errors.Is(err, path.ErrOutsideWorkspace) {
			t.Errorf("expected ErrOutsideWorkspace, got %v", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		_, err := tool.Run(context.Background(), &ReadFileRequest{Path: "sub"})
		var dirErr *IsDirectoryError
		if !errors.As(err, &dirErr) {
			t.Errorf("expected IsDirectoryError, got %v", err)
		}
	})

	t.Run("too large", func(t *testing.T) {
		_, err := tool.Run(context.Background(), &ReadFileRequest{Path: "huge.txt"})
		var largeErr *TooLargeError
		if !errors.As(err, &largeErr) {
			t.Errorf("expected TooLargeError, got %v", err)
		}
	})

	t.Run("binary file", func(t *testing.T) {
		_, err := tool.Run(context.Background(), &ReadFileRequest{Path: "blob.bin"})
		if !errors.Is(err, errutil.ErrBinaryFile) {
			t.Errorf("expected ErrBinaryFile, got %v", err)
		}
	})
}
