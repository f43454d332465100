package model

// NoParent marks the root record's ParentID.
const NoParent = -1

// Record is one flattened node of the decision tree, the unit consumed
// by the chart assembly. Records are generated fresh on every flatten
// call and never mutated afterwards.
type Record struct {
	ID       int     // node id, unique within one flatten call
	ParentID int     // id of the parent record, NoParent for the root
	Label    string  // split condition, or the fixed root label
	Feature  string  // parent's split feature name; chart color key, empty for root
	Value    float64 // wedge weight (sample count)
	Depth    int     // root 0, child = parent + 1
}
