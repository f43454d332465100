package treeburst

import (
	"fmt"

	"github.com/crimson-sun/treeburst/internal/model"
)

// Leaf is the sentinel child id marking the absence of a child.
const Leaf = model.Leaf

// TreeModel is the read-only view of a fitted binary decision tree.
// Nodes are addressed by id; the root is id 0. Implement it to adapt
// any tree library's in-memory layout; the flattener depends only on
// this capability set.
type TreeModel interface {
	// NumNodes returns the total node count. Must be at least 1.
	NumNodes() int
	// LeftChild returns the left child id of node i, or Leaf.
	LeftChild(i int) int
	// RightChild returns the right child id of node i, or Leaf.
	RightChild(i int) int
	// SplitFeature returns the feature index node i splits on.
	// Ignored for leaves.
	SplitFeature(i int) int
	// Threshold returns node i's split threshold. Samples with
	// feature value <= threshold go left. Ignored for leaves.
	Threshold(i int) float64
	// NodeValue returns node i's value row: per-class sample counts
	// for classifiers, a single-element prediction for regressors.
	NodeValue(i int) []float64
	// NodeSamples returns the number of training samples routed
	// through node i, or 0 when the model does not track counts
	// (the value row sum is used instead).
	NodeSamples(i int) int
}

// ArrayTree is a TreeModel backed by scikit-learn style parallel
// arrays indexed by node id. SampleCounts, FeatureNames and ClassNames
// are optional.
type ArrayTree struct {
	ChildrenLeft  []int
	ChildrenRight []int
	SplitFeatures []int
	Thresholds    []float64
	Values        [][]float64
	SampleCounts  []int
	FeatureNames  []string
	ClassNames    []string
}

func (a *ArrayTree) NumNodes() int { return len(a.ChildrenLeft) }

func (a *ArrayTree) LeftChild(i int) int { return a.ChildrenLeft[i] }

func (a *ArrayTree) RightChild(i int) int { return a.ChildrenRight[i] }

func (a *ArrayTree) SplitFeature(i int) int { return a.SplitFeatures[i] }

func (a *ArrayTree) Threshold(i int) float64 { return a.Thresholds[i] }

func (a *ArrayTree) NodeValue(i int) []float64 { return a.Values[i] }

func (a *ArrayTree) NodeSamples(i int) int {
	if i < len(a.SampleCounts) {
		return a.SampleCounts[i]
	}
	return 0
}

// materialize copies a TreeModel into the internal array representation.
// *ArrayTree shares its slices directly; other implementations are read
// through the accessor methods. The result is treated as immutable by
// the flattener.
func materialize(m TreeModel, o options) (*model.Tree, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil model", ErrInvalidTree)
	}

	featureNames := o.featureNames
	classNames := o.classNames

	if a, ok := m.(*ArrayTree); ok {
		if a == nil {
			return nil, fmt.Errorf("%w: nil model", ErrInvalidTree)
		}
		t := &model.Tree{
			ChildrenLeft:  a.ChildrenLeft,
			ChildrenRight: a.ChildrenRight,
			Feature:       a.SplitFeatures,
			Threshold:     a.Thresholds,
			Value:         a.Values,
			NodeSamples:   a.SampleCounts,
			FeatureNames:  a.FeatureNames,
			ClassNames:    a.ClassNames,
		}
		if featureNames != nil {
			t.FeatureNames = featureNames
		}
		if classNames != nil {
			t.ClassNames = classNames
		}
		return t, nil
	}

	n := m.NumNodes()
	t := &model.Tree{
		ChildrenLeft:  make([]int, n),
		ChildrenRight: make([]int, n),
		Feature:       make([]int, n),
		Threshold:     make([]float64, n),
		Value:         make([][]float64, n),
		FeatureNames:  featureNames,
		ClassNames:    classNames,
	}
	for i := 0; i < n; i++ {
		t.ChildrenLeft[i] = m.LeftChild(i)
		t.ChildrenRight[i] = m.RightChild(i)
		t.Feature[i] = m.SplitFeature(i)
		t.Threshold[i] = m.Threshold(i)
		t.Value[i] = m.NodeValue(i)
	}
	// Sample counts only when the model tracks them for every node;
	// a partial array would skew wedge sizes.
	counts := make([]int, n)
	tracked := true
	for i := 0; i < n; i++ {
		counts[i] = m.NodeSamples(i)
		if counts[i] <= 0 {
			tracked = false
			break
		}
	}
	if tracked {
		t.NodeSamples = counts
	}
	return t, nil
}
