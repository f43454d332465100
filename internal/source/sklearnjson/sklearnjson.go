// Package sklearnjson decodes decision trees exported from
// scikit-learn as JSON into the internal tree representation.
//
// The expected document uses sklearn's own attribute names:
//
//	{
//	  "children_left":  [1, -1, -1],
//	  "children_right": [2, -1, -1],
//	  "feature":        [0, -2, -2],
//	  "threshold":      [0.5, -2, -2],
//	  "value":          [[30, 20], [25, 5], [5, 15]],
//	  "n_node_samples": [50, 30, 20],
//	  "feature_names":  ["carat"],
//	  "class_names":    ["low", "high"]
//	}
//
// n_node_samples, feature_names and class_names are optional. The
// value field accepts flat rows, sklearn's (n_nodes, n_outputs,
// n_classes) nesting, or a plain per-node scalar.
package sklearnjson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/crimson-sun/treeburst/internal/model"
)

// document mirrors the JSON export. Value is deferred because its
// shape varies across exporters.
type document struct {
	ChildrenLeft  []int           `json:"children_left"`
	ChildrenRight []int           `json:"children_right"`
	Feature       []int           `json:"feature"`
	Threshold     []float64       `json:"threshold"`
	Value         json.RawMessage `json:"value"`
	NodeSamples   []int           `json:"n_node_samples"`
	FeatureNames  []string        `json:"feature_names"`
	ClassNames    []string        `json:"class_names"`
}

// Decode reads one JSON tree document. Structural consistency is not
// checked here; the flattener validates the assembled tree.
func Decode(r io.Reader) (*model.Tree, error) {
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("sklearnjson: decode: %w", err)
	}
	if doc.ChildrenLeft == nil {
		return nil, fmt.Errorf("sklearnjson: document has no children_left field")
	}

	value, err := decodeValue(doc.Value)
	if err != nil {
		return nil, err
	}

	return &model.Tree{
		ChildrenLeft:  doc.ChildrenLeft,
		ChildrenRight: doc.ChildrenRight,
		Feature:       doc.Feature,
		Threshold:     doc.Threshold,
		Value:         value,
		NodeSamples:   doc.NodeSamples,
		FeatureNames:  doc.FeatureNames,
		ClassNames:    doc.ClassNames,
	}, nil
}

// Load reads a JSON tree document from a file.
func Load(path string) (*model.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sklearnjson: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// decodeValue accepts the three value shapes seen in the wild:
// [[a, b], ...] flat rows, [[[a, b]], ...] sklearn's multi-output
// nesting (first output taken), and [a, ...] per-node scalars.
func decodeValue(raw json.RawMessage) ([][]float64, error) {
	if raw == nil {
		return nil, fmt.Errorf("sklearnjson: document has no value field")
	}

	var rows [][]float64
	if err := json.Unmarshal(raw, &rows); err == nil {
		return rows, nil
	}

	var nested [][][]float64
	if err := json.Unmarshal(raw, &nested); err == nil {
		rows = make([][]float64, len(nested))
		for i, outputs := range nested {
			if len(outputs) == 0 {
				rows[i] = nil
				continue
			}
			rows[i] = outputs[0]
		}
		return rows, nil
	}

	var scalars []float64
	if err := json.Unmarshal(raw, &scalars); err == nil {
		rows = make([][]float64, len(scalars))
		for i, v := range scalars {
			rows[i] = []float64{v}
		}
		return rows, nil
	}

	return nil, fmt.Errorf("sklearnjson: unsupported value shape")
}
