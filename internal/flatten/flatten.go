// Package flatten walks a fitted decision tree and emits one
// hierarchical record per node, depth-first, parents before children.
package flatten

import (
	"log/slog"

	"github.com/crimson-sun/treeburst/internal/model"
)

// DefaultRootLabel is the placeholder label for the synthetic root wedge.
const DefaultRootLabel = "All Data"

// Flattener converts a tree structure into an ordered slice of records.
type Flattener struct {
	precision int    // decimal places for thresholds in split labels
	rootLabel string // label of the root record
}

// New creates a Flattener. precision sets the number of decimal places
// used when formatting split thresholds; values below zero fall back to
// the default of 2.
func New(precision int, rootLabel string) *Flattener {
	if precision < 0 {
		precision = 2
	}
	if rootLabel == "" {
		rootLabel = DefaultRootLabel
	}
	return &Flattener{precision: precision, rootLabel: rootLabel}
}

// frame is one pending node on the traversal worklist. The label and
// feature are computed at the parent, where the split is known.
type frame struct {
	id      int
	parent  int
	depth   int
	label   string
	feature string
}

// Run validates the tree and produces its records in preorder, left
// child before right. The traversal is purely functional over the
// input: calling Run twice on an unmodified tree yields identical
// output.
func (f *Flattener) Run(t *model.Tree) ([]model.Record, error) {
	if err := validate(t); err != nil {
		return nil, err
	}

	records := make([]model.Record, 0, t.NumNodes())
	warned := false

	stack := []frame{{id: 0, parent: model.NoParent, depth: 0, label: f.rootLabel}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		label := fr.label
		if t.IsLeaf(fr.id) && fr.id != 0 {
			label += leafSuffix(t, fr.id)
		}
		records = append(records, model.Record{
			ID:       fr.id,
			ParentID: fr.parent,
			Label:    label,
			Feature:  fr.feature,
			Value:    t.WedgeValue(fr.id),
			Depth:    fr.depth,
		})

		if t.IsLeaf(fr.id) {
			continue
		}

		name, ok := t.FeatureName(t.Feature[fr.id])
		if !ok {
			name = fallbackFeatureName(t.Feature[fr.id])
			if !warned {
				slog.Warn("feature name unresolved, using generic labels", "feature", t.Feature[fr.id])
				warned = true
			}
		}
		left, right := splitLabels(name, t.Threshold[fr.id], f.precision)

		// Right is pushed first so the left child pops first,
		// keeping the deterministic left-before-right order.
		stack = append(stack,
			frame{id: t.ChildrenRight[fr.id], parent: fr.id, depth: fr.depth + 1, label: right, feature: name},
			frame{id: t.ChildrenLeft[fr.id], parent: fr.id, depth: fr.depth + 1, label: left, feature: name},
		)
	}
	return records, nil
}
