package html

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// stubFigure renders a fixed document or fails, standing in for a
// go-echarts chart.
type stubFigure struct {
	doc string
	err error
}

func (s stubFigure) Render(w io.Writer) error {
	if s.err != nil {
		return s.err
	}
	_, err := io.WriteString(w, s.doc)
	return err
}

func TestWrite(t *testing.T) {
	var sb strings.Builder
	if err := Write(stubFigure{doc: "<html>sunburst</html>"}, &sb); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sb.String() != "<html>sunburst</html>" {
		t.Fatalf("unexpected output: %q", sb.String())
	}
}

func TestWriteRenderError(t *testing.T) {
	renderErr := errors.New("boom")
	err := Write(stubFigure{err: renderErr}, io.Discard)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, renderErr) {
		t.Fatalf("expected wrapped render error, got %v", err)
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "tree.html")
	if err := Save(stubFigure{doc: "<html>sunburst</html>"}, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "<html>sunburst</html>" {
		t.Fatalf("unexpected file content: %q", data)
	}
}

func TestSaveRenderError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.html")
	if err := Save(stubFigure{err: errors.New("boom")}, path); err == nil {
		t.Fatal("expected error")
	}
}

func TestSaveBadPath(t *testing.T) {
	// A file where a directory is expected.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	if err := Save(stubFigure{doc: "x"}, filepath.Join(blocker, "tree.html")); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
