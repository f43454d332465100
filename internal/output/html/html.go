// Package html writes rendered sunburst figures as self-contained
// HTML documents.
package html

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const defaultBufSize = 64 * 1024 // 64KB

// Figure is the rendering capability of a go-echarts chart. Declared
// here so the writer does not depend on a concrete chart type.
type Figure interface {
	Render(w io.Writer) error
}

// Write renders the figure to w.
func Write(fig Figure, w io.Writer) error {
	if err := fig.Render(w); err != nil {
		return fmt.Errorf("html output: render: %w", err)
	}
	return nil
}

// Save renders the figure to a file at path, creating parent
// directories as needed. Writes are buffered and flushed before close.
func Save(fig Figure, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("html output: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("html output: %w", err)
	}
	w := bufio.NewWriterSize(f, defaultBufSize)
	if err := fig.Render(w); err != nil {
		f.Close()
		return fmt.Errorf("html output: render: %w", err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("html output: flush: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("html output: close: %w", err)
	}
	return nil
}
