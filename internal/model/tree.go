package model

import "errors"

// Leaf marks the absence of a child in the children arrays.
const Leaf = -1

// ErrInvalidTree reports a malformed or inconsistent tree structure.
// All structural validation failures wrap this sentinel.
var ErrInvalidTree = errors.New("treeburst: invalid tree")

// Tree is the parallel-array representation of a fitted binary decision
// tree, laid out the way scikit-learn exposes it: arrays indexed by node
// id, root at id 0, Leaf in the children arrays for missing children.
type Tree struct {
	ChildrenLeft  []int       // left child id per node, Leaf for leaves
	ChildrenRight []int       // right child id per node, Leaf for leaves
	Feature       []int       // split feature index per node; ignored for leaves
	Threshold     []float64   // split threshold per node; ignored for leaves
	Value         [][]float64 // per-node class counts, or single-column prediction
	NodeSamples   []int       // optional; training samples routed through each node
	FeatureNames  []string    // optional; feature index -> display name
	ClassNames    []string    // optional; value column -> display name
}

// NumNodes returns the number of nodes in the tree.
func (t *Tree) NumNodes() int {
	return len(t.ChildrenLeft)
}

// IsLeaf reports whether the node has no children.
func (t *Tree) IsLeaf(id int) bool {
	return t.ChildrenLeft[id] == Leaf && t.ChildrenRight[id] == Leaf
}

// FeatureName resolves a split feature index to a display name.
// The second return is false when no name is available and the caller
// should fall back to a generic label.
func (t *Tree) FeatureName(index int) (string, bool) {
	if index < 0 || index >= len(t.FeatureNames) || t.FeatureNames[index] == "" {
		return "", false
	}
	return t.FeatureNames[index], true
}

// WedgeValue returns the weight used to size a node's sunburst wedge:
// the recorded sample count when available, otherwise the sum across the
// node's value row (class counts sum to the node population).
func (t *Tree) WedgeValue(id int) float64 {
	if id < len(t.NodeSamples) {
		return float64(t.NodeSamples[id])
	}
	var sum float64
	for _, v := range t.Value[id] {
		sum += v
	}
	return sum
}

// Regression reports whether the tree's value rows hold a single-column
// prediction rather than a class-count distribution.
func (t *Tree) Regression() bool {
	return len(t.Value) > 0 && len(t.Value[0]) == 1 && len(t.ClassNames) == 0
}
