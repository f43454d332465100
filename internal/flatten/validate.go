package flatten

import (
	"fmt"

	"github.com/crimson-sun/treeburst/internal/model"
)

// validate checks that the parallel arrays describe a single rooted
// binary tree. It fails fast with an error wrapping model.ErrInvalidTree;
// nothing is emitted for a tree that fails validation.
func validate(t *model.Tree) error {
	n := t.NumNodes()
	if n == 0 {
		return fmt.Errorf("%w: empty tree", model.ErrInvalidTree)
	}
	if len(t.ChildrenRight) != n {
		return fmt.Errorf("%w: children arrays length mismatch: left=%d right=%d",
			model.ErrInvalidTree, n, len(t.ChildrenRight))
	}
	if len(t.Feature) != n {
		return fmt.Errorf("%w: feature array length %d, want %d", model.ErrInvalidTree, len(t.Feature), n)
	}
	if len(t.Threshold) != n {
		return fmt.Errorf("%w: threshold array length %d, want %d", model.ErrInvalidTree, len(t.Threshold), n)
	}
	if len(t.Value) != n {
		return fmt.Errorf("%w: value array length %d, want %d", model.ErrInvalidTree, len(t.Value), n)
	}
	if t.NodeSamples != nil && len(t.NodeSamples) != n {
		return fmt.Errorf("%w: node samples array length %d, want %d", model.ErrInvalidTree, len(t.NodeSamples), n)
	}

	for id := 0; id < n; id++ {
		left, right := t.ChildrenLeft[id], t.ChildrenRight[id]
		if (left == model.Leaf) != (right == model.Leaf) {
			return fmt.Errorf("%w: node %d has exactly one child", model.ErrInvalidTree, id)
		}
		if left == model.Leaf {
			continue
		}
		if left < 0 || left >= n {
			return fmt.Errorf("%w: node %d left child %d out of range", model.ErrInvalidTree, id, left)
		}
		if right < 0 || right >= n {
			return fmt.Errorf("%w: node %d right child %d out of range", model.ErrInvalidTree, id, right)
		}
		if t.Feature[id] < 0 {
			return fmt.Errorf("%w: internal node %d has split feature %d", model.ErrInvalidTree, id, t.Feature[id])
		}
	}

	// Walk from the root: every node must be reached exactly once.
	// A revisit means a shared child or a cycle; a shortfall means
	// nodes unreachable from the root.
	seen := make([]bool, n)
	stack := []int{0}
	visited := 0
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			return fmt.Errorf("%w: node %d has multiple parents", model.ErrInvalidTree, id)
		}
		seen[id] = true
		visited++
		if t.ChildrenLeft[id] != model.Leaf {
			stack = append(stack, t.ChildrenLeft[id], t.ChildrenRight[id])
		}
	}
	if visited != n {
		return fmt.Errorf("%w: %d of %d nodes unreachable from root", model.ErrInvalidTree, n-visited, n)
	}
	return nil
}
