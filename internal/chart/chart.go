// Package chart assembles flattened tree records into a go-echarts
// sunburst figure. It owns the flat-to-nested conversion; layout,
// color mapping and interactivity belong to the charting library.
package chart

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/crimson-sun/treeburst/internal/model"
)

// Settings holds the figure-level knobs forwarded to the chart
// constructor. Zero values mean library defaults.
type Settings struct {
	Title    string
	Subtitle string
	Width    string // CSS size, e.g. "900px"
	Height   string
	Theme    string
	MaxDepth int // number of rendered rings; 0 renders all
}

// Build converts the records into the nested node tree the sunburst
// series expects and returns the configured figure. Records must be in
// flatten order: parents before children, exactly one root.
func Build(records []model.Record, s Settings) (*charts.Sunburst, error) {
	root, err := nest(records, s.MaxDepth)
	if err != nil {
		return nil, err
	}

	sb := charts.NewSunburst()
	sb.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: s.Title, Subtitle: s.Subtitle}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: s.Title,
			Width:     s.Width,
			Height:    s.Height,
			Theme:     s.Theme,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	sb.AddSeries("tree", []opts.SunBurstData{*root})
	return sb, nil
}

// nest groups flat records into a single nested tree, preserving the
// records' child order. maxDepth > 0 drops records at or below that
// many rings from the root.
func nest(records []model.Record, maxDepth int) (*opts.SunBurstData, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("chart: no records")
	}

	nodes := make(map[int]*opts.SunBurstData, len(records))
	var root *opts.SunBurstData
	for _, r := range records {
		if maxDepth > 0 && r.Depth >= maxDepth {
			continue
		}
		d := &opts.SunBurstData{Name: r.Label, Value: r.Value}
		nodes[r.ID] = d
		if r.ParentID == model.NoParent {
			if root != nil {
				return nil, fmt.Errorf("chart: multiple root records")
			}
			root = d
			continue
		}
		parent, ok := nodes[r.ParentID]
		if !ok {
			return nil, fmt.Errorf("chart: record %d references unknown parent %d", r.ID, r.ParentID)
		}
		parent.Children = append(parent.Children, d)
	}
	if root == nil {
		return nil, fmt.Errorf("chart: no root record")
	}
	return root, nil
}
