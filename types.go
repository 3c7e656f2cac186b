package dimschema

import "fmt"

// MatchType selects how expected dimensions or coordinates are compared
// against an array's actual ones.
type MatchType int

const (
	// MatchExact requires the found collection to equal the expected one:
	// order-sensitive sequence equality for dimensions, full mapping
	// equality for coordinates.
	MatchExact MatchType = iota

	// MatchMinimum requires the found collection to contain the expected
	// one; extra dimensions or coordinate values are permitted.
	MatchMinimum
)

func (m MatchType) valid() bool {
	return m == MatchExact || m == MatchMinimum
}

func (m MatchType) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchMinimum:
		return "minimum"
	default:
		return fmt.Sprintf("MatchType(%d)", int(m))
	}
}

// ParseMatchType maps the textual form used by schema definition files back
// to a MatchType. The empty string defaults to MatchExact.
func ParseMatchType(s string) (MatchType, error) {
	switch s {
	case "", "exact":
		return MatchExact, nil
	case "minimum":
		return MatchMinimum, nil
	default:
		return 0, fmt.Errorf("%w: match type %q, want %q or %q",
			ErrConfiguration, s, MatchExact, MatchMinimum)
	}
}

// Keywords carries the named arguments of a guarded call. Guards hand the
// full mapping to dynamic expectation callbacks and look up the designated
// input argument in it.
type Keywords map[string]any

// DimsFunc computes expected dimension names from call keywords. A callback
// that cannot find a required keyword should return its own descriptive
// error; guards propagate it verbatim.
type DimsFunc func(kw Keywords) ([]string, error)

// CoordsFunc computes expected coordinates from call keywords. Same error
// contract as DimsFunc.
type CoordsFunc func(kw Keywords) (map[string][]any, error)
