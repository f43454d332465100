package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/crimson-sun/treeburst/internal/model"
)

func records() []model.Record {
	return []model.Record{
		{ID: 0, ParentID: model.NoParent, Label: "All Data", Value: 50, Depth: 0},
		{ID: 1, ParentID: 0, Label: "carat <= 0.50", Feature: "carat", Value: 30, Depth: 1},
		{ID: 3, ParentID: 1, Label: "depth <= 61.80 [class 0, n=23]", Feature: "depth", Value: 23, Depth: 2},
		{ID: 4, ParentID: 1, Label: "depth > 61.80 [class 1, n=7]", Feature: "depth", Value: 7, Depth: 2},
		{ID: 2, ParentID: 0, Label: "carat > 0.50 [class 1, n=20]", Feature: "carat", Value: 20, Depth: 1},
	}
}

func TestNest(t *testing.T) {
	root, err := nest(records(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Name != "All Data" || root.Value != 50 {
		t.Fatalf("unexpected root: %+v", root)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 root children, got %d", len(root.Children))
	}
	// Record order is preserved: left subtree first.
	if root.Children[0].Name != "carat <= 0.50" {
		t.Fatalf("expected left child first, got %q", root.Children[0].Name)
	}
	if root.Children[1].Name != "carat > 0.50 [class 1, n=20]" {
		t.Fatalf("expected right child second, got %q", root.Children[1].Name)
	}
	inner := root.Children[0]
	if len(inner.Children) != 2 {
		t.Fatalf("expected 2 grandchildren, got %d", len(inner.Children))
	}
	if inner.Children[0].Value != 23 || inner.Children[1].Value != 7 {
		t.Fatalf("unexpected grandchild values: %v, %v", inner.Children[0].Value, inner.Children[1].Value)
	}
}

func TestNestMaxDepth(t *testing.T) {
	root, err := nest(records(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 children at depth 1, got %d", len(root.Children))
	}
	if len(root.Children[0].Children) != 0 {
		t.Fatalf("expected depth-2 records pruned, got %d", len(root.Children[0].Children))
	}

	rootOnly, err := nest(records(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rootOnly.Children) != 0 {
		t.Fatalf("expected only the root ring, got %d children", len(rootOnly.Children))
	}
}

func TestNestErrors(t *testing.T) {
	if _, err := nest(nil, 0); err == nil {
		t.Fatal("expected error for no records")
	}

	orphan := []model.Record{
		{ID: 0, ParentID: model.NoParent, Label: "All Data"},
		{ID: 2, ParentID: 9, Label: "orphan"},
	}
	if _, err := nest(orphan, 0); err == nil {
		t.Fatal("expected error for unknown parent")
	}

	twoRoots := []model.Record{
		{ID: 0, ParentID: model.NoParent},
		{ID: 1, ParentID: model.NoParent},
	}
	if _, err := nest(twoRoots, 0); err == nil {
		t.Fatal("expected error for multiple roots")
	}

	noRoot := []model.Record{{ID: 1, ParentID: 0}}
	if _, err := nest(noRoot, 0); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestBuildRenders(t *testing.T) {
	fig, err := Build(records(), Settings{
		Title:  "Diamonds",
		Width:  "900px",
		Height: "900px",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := fig.Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "echarts") {
		t.Fatal("expected echarts payload in rendered HTML")
	}
	if !strings.Contains(out, "Diamonds") {
		t.Fatal("expected title in rendered HTML")
	}
	if !strings.Contains(out, "All Data") {
		t.Fatal("expected root wedge label in rendered HTML")
	}
}

func TestBuildPropagatesNestErrors(t *testing.T) {
	if _, err := Build(nil, Settings{}); err == nil {
		t.Fatal("expected error for empty records")
	}
}
