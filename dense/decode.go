package dense

import (
	json "github.com/goccy/go-json"
)

// arrayDoc is the on-disk JSON shape understood by DecodeJSON.
type arrayDoc struct {
	Dims   []string         `json:"dims"`
	Shape  []int            `json:"shape"`
	Coords map[string][]any `json:"coords"`
	Values []float64        `json:"values"`
}

// DecodeJSON builds an Array from a JSON document of the form
//
//	{"dims": ["foo","bar"], "shape": [2,2],
//	 "coords": {"foo": [1,2], "bar": [3,4]},
//	 "values": [1,1,1,1]}
//
// Numeric coordinate labels decode as float64, matching what JSON-loaded
// schema definitions carry.
func DecodeJSON(data []byte) (*Array, error) {
	var doc arrayDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return New(doc.Values, doc.Dims, doc.Shape, doc.Coords)
}
