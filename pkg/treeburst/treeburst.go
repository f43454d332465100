package treeburst

import (
	"github.com/go-echarts/go-echarts/v2/charts"

	"github.com/crimson-sun/treeburst/internal/chart"
	"github.com/crimson-sun/treeburst/internal/flatten"
	"github.com/crimson-sun/treeburst/internal/model"
)

// ErrInvalidTree reports a malformed or inconsistent tree structure:
// mismatched array lengths, out-of-range child ids, half-leaf nodes,
// shared children or nodes unreachable from the root. Match with
// errors.Is.
var ErrInvalidTree = model.ErrInvalidTree

// Flatten walks the tree depth-first from the root and returns one
// record per node, parents before children, left child before right.
// The root record carries the fixed placeholder label and NoParent;
// every other record's label encodes its parent's split condition.
func Flatten(m TreeModel, opts ...Option) ([]Record, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	internal, err := flattenInternal(m, o)
	if err != nil {
		return nil, err
	}
	records := make([]Record, len(internal))
	for i, r := range internal {
		records[i] = recordFromInternal(r)
	}
	return records, nil
}

// Visualize flattens the tree and assembles an interactive sunburst
// figure. The returned figure is not persisted; render or save it with
// its Render method.
func Visualize(m TreeModel, opts ...Option) (*charts.Sunburst, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	internal, err := flattenInternal(m, o)
	if err != nil {
		return nil, err
	}
	return chart.Build(internal, chart.Settings{
		Title:    o.title,
		Subtitle: o.subtitle,
		Width:    cssSize(o.width),
		Height:   cssSize(o.height),
		Theme:    o.theme,
		MaxDepth: o.maxDepth,
	})
}

func flattenInternal(m TreeModel, o options) ([]model.Record, error) {
	t, err := materialize(m, o)
	if err != nil {
		return nil, err
	}
	return flatten.New(o.precision, o.rootLabel).Run(t)
}
