// Package treeburst turns a fitted binary decision tree into an
// interactive sunburst chart that shows the decision path of the
// training data through the tree.
//
// Quick start:
//
//	tree := &treeburst.ArrayTree{
//	    ChildrenLeft:  []int{1, -1, -1},
//	    ChildrenRight: []int{2, -1, -1},
//	    SplitFeatures: []int{0, -2, -2},
//	    Thresholds:    []float64{0.5, 0, 0},
//	    Values:        [][]float64{{30, 20}, {25, 5}, {5, 15}},
//	    FeatureNames:  []string{"carat"},
//	}
//
//	fig, err := treeburst.Visualize(tree, treeburst.WithTitle("Diamonds"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fig.Render(w) // self-contained interactive HTML
//
// Visualize returns a go-echarts figure; the caller decides how to
// render or save it. Flatten exposes the underlying flat records
// (id, parent, label, value, depth) for callers that bring their own
// renderer. Both are pure functions over the input tree: no I/O, no
// retained state, identical output for identical input.
package treeburst
