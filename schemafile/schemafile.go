// Package schemafile loads dimschema schemas from declarative JSON or YAML
// definition files.
//
// YAML documents are normalized to JSON before decoding so that both formats
// produce identical label types (numbers decode as float64 either way). Keep
// that in mind when validating arrays built in Go code with int labels
// against a file-loaded schema.
package schemafile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/arrayx/dimschema"
)

// Definition is the on-disk schema shape.
//
//	dims: [location_id, year_id]
//	dim_match: exact
//	coords:
//	  year_id: [2020, 2021]
//	coord_match: minimum
//	min: 0
//	allow_nan: false
//	warn_only: true
//
// Absent min/max mean unbounded; absent allow_nan means NaN values pass.
type Definition struct {
	Dims       []string         `json:"dims" yaml:"dims"`
	DimMatch   string           `json:"dim_match" yaml:"dim_match"`
	Coords     map[string][]any `json:"coords" yaml:"coords"`
	CoordMatch string           `json:"coord_match" yaml:"coord_match"`
	Min        *float64         `json:"min" yaml:"min"`
	Max        *float64         `json:"max" yaml:"max"`
	AllowNaN   *bool            `json:"allow_nan" yaml:"allow_nan"`
	WarnOnly   bool             `json:"warn_only" yaml:"warn_only"`
}

// Schema builds the schema the definition describes. Unknown match-type
// strings fail with dimschema.ErrConfiguration.
func (d Definition) Schema() (*dimschema.Schema, error) {
	var opts []dimschema.Option
	if len(d.Dims) > 0 {
		opts = append(opts, dimschema.Dims(d.Dims...))
	}
	dm, err := dimschema.ParseMatchType(d.DimMatch)
	if err != nil {
		return nil, err
	}
	opts = append(opts, dimschema.MatchDims(dm))

	if len(d.Coords) > 0 {
		opts = append(opts, dimschema.Coords(d.Coords))
	}
	cm, err := dimschema.ParseMatchType(d.CoordMatch)
	if err != nil {
		return nil, err
	}
	opts = append(opts, dimschema.MatchCoords(cm))

	if d.Min != nil {
		opts = append(opts, dimschema.Min(*d.Min))
	}
	if d.Max != nil {
		opts = append(opts, dimschema.Max(*d.Max))
	}
	if d.AllowNaN != nil && !*d.AllowNaN {
		opts = append(opts, dimschema.DisallowNaN())
	}
	if d.WarnOnly {
		opts = append(opts, dimschema.WarnOnly())
	}
	return dimschema.New(opts...)
}

// ParseJSON decodes a JSON definition and builds its schema.
func ParseJSON(data []byte) (*dimschema.Schema, error) {
	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("schemafile: %w", err)
	}
	return def.Schema()
}

// ParseYAML decodes a YAML definition and builds its schema. The document is
// bridged through JSON so labels carry the same types as ParseJSON output.
func ParseYAML(data []byte) (*dimschema.Schema, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("schemafile: %w", err)
	}
	bridged, err := json.Marshal(normalizeYAML(node))
	if err != nil {
		return nil, fmt.Errorf("schemafile: %w", err)
	}
	return ParseJSON(bridged)
}

// Load reads a definition file, picking the decoder by extension
// (.json, or .yaml/.yml).
func Load(path string) (*dimschema.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

// normalizeYAML converts YAML-decoded values (which may contain map[any]any)
// into JSON-compatible map[string]any recursively.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeYAML(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeYAML(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeYAML(t[i])
		}
		return arr
	default:
		return v
	}
}
