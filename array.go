package dimschema

// DataArray is the labeled-array surface the validator consumes. It is
// intentionally small: any n-dimensional structure that can name its axes,
// expose per-axis coordinate labels and flatten its numeric buffer can be
// validated. The dense package provides a ready-made implementation.
type DataArray interface {
	// Dims returns the dimension names in axis order.
	Dims() []string
	// Coords returns the coordinate labels per dimension name. An entry may
	// be an []any sequence or, for a dimension reduced to a single point
	// (e.g. after squeezing), a bare scalar label.
	Coords() map[string]any
	// Values returns the element buffer flattened in row-major order.
	Values() []float64
}

// CoordsOf extracts a's coordinates as a mapping from dimension name to an
// ordered label sequence. Scalar coordinate entries are normalized to
// one-element sequences so every check sees a uniform shape.
func CoordsOf(a DataArray) map[string][]any {
	raw := a.Coords()
	out := make(map[string][]any, len(raw))
	for name, v := range raw {
		if seq, ok := v.([]any); ok {
			out[name] = seq
			continue
		}
		out[name] = []any{v}
	}
	return out
}
