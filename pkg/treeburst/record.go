package treeburst

import "github.com/crimson-sun/treeburst/internal/model"

// NoParent is the ParentID of the root record.
const NoParent = model.NoParent

// Record is one flattened tree node, in traversal order (depth-first,
// parents before children, left before right).
// This is the stable public type — internal representations may evolve
// independently without breaking consumers.
type Record struct {
	ID       int     `json:"id"`                // node id, stable across calls
	ParentID int     `json:"parent_id"`         // NoParent for the root
	Label    string  `json:"label"`             // split condition or leaf outcome
	Feature  string  `json:"feature,omitempty"` // parent's split feature; empty for root
	Value    float64 `json:"value"`             // wedge weight (sample count)
	Depth    int     `json:"depth"`             // root 0
}

// recordFromInternal converts the internal record to the public type.
func recordFromInternal(r model.Record) Record {
	return Record{
		ID:       r.ID,
		ParentID: r.ParentID,
		Label:    r.Label,
		Feature:  r.Feature,
		Value:    r.Value,
		Depth:    r.Depth,
	}
}
