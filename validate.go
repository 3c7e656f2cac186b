package dimschema

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"math"
	"slices"
	"strings"
)

// Validate checks a against the schema's expectations. Checks run in a fixed
// order: dimensions, coordinates, NaN, minimum value, maximum value.
//
// In the default raising mode the first violated check returns its Issues
// and later checks do not run. In warn-only mode every check runs, each
// violation is logged at warn level and Validate returns nil.
//
// Validate never mutates the schema; unresolved dynamic expectations are
// treated as empty and skip their check.
func (s *Schema) Validate(ctx context.Context, a DataArray) error {
	checks := []func(DataArray) Issues{
		s.checkDims,
		s.checkCoords,
		s.checkNaN,
		s.checkMinimum,
		s.checkMaximum,
	}
	for _, check := range checks {
		iss := check(a)
		if len(iss) == 0 {
			continue
		}
		if !s.warnOnly {
			return iss
		}
		for _, it := range iss {
			s.logger.WarnContext(ctx, it.Message,
				slog.String("code", it.Code), slog.String("path", it.Path))
		}
	}
	return nil
}

func (s *Schema) checkDims(a DataArray) Issues {
	expected := s.dims.concrete
	if len(expected) == 0 {
		return nil
	}
	found := a.Dims()

	if s.dimMatch == MatchExact {
		if slices.Equal(found, expected) {
			return nil
		}
		return Issues{issueOf("/dims", CodeDimsMismatch,
			fmt.Sprintf("dims do not exactly match the expected ones. Expected: %v. Found: %v.", expected, found),
			map[string]any{"expected": expected, "found": found})}
	}

	var missing []string
	for _, dim := range expected {
		if !slices.Contains(found, dim) {
			missing = append(missing, dim)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return Issues{issueOf("/dims", CodeDimsMissing,
		fmt.Sprintf("dims do not contain the minimum expected ones. Expected: %v. Found: %v. Missing: %v.", expected, found, missing),
		map[string]any{"expected": expected, "found": found, "missing": missing})}
}

func (s *Schema) checkCoords(a DataArray) Issues {
	expected := s.coords.concrete
	if len(expected) == 0 {
		return nil
	}
	found := CoordsOf(a)

	if s.coordMatch == MatchExact {
		if coordsEqual(expected, found) {
			return nil
		}
		return Issues{issueOf("/coords", CodeCoordsMismatch,
			fmt.Sprintf("coords do not exactly match the expected ones. Expected: %s. Found: %s.",
				formatCoords(expected, nil), formatCoords(found, nil)),
			map[string]any{"expected": expected, "found": found})}
	}

	var missing, mismatching []string
	for _, name := range slices.Sorted(maps.Keys(expected)) {
		got, ok := found[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		if !isSuperset(got, expected[name]) {
			mismatching = append(mismatching, name)
		}
	}

	var iss Issues
	if len(missing) > 0 {
		iss = append(iss, issueOf("/coords", CodeCoordsMissing,
			fmt.Sprintf("missing coordinate(s): %v. Expected: %v. Found: %v.",
				missing, slices.Sorted(maps.Keys(expected)), slices.Sorted(maps.Keys(found))),
			map[string]any{"missing": missing}))
	}
	if len(mismatching) > 0 {
		iss = append(iss, issueOf("/coords", CodeCoordValuesMismatch,
			fmt.Sprintf("mismatching coordinate values for coords: %v. Expected: %s. Found: %s.",
				mismatching, formatCoords(expected, mismatching), formatCoords(found, mismatching)),
			map[string]any{"mismatching": mismatching}))
	}
	return iss
}

func (s *Schema) checkNaN(a DataArray) Issues {
	if s.allowNaN {
		return nil
	}
	for _, v := range a.Values() {
		if math.IsNaN(v) {
			return Issues{issueOf("/values", CodeNaNPresent, "identified NaN values", nil)}
		}
	}
	return nil
}

func (s *Schema) checkMinimum(a DataArray) Issues {
	smallest := math.Inf(1)
	for _, v := range a.Values() {
		if v < smallest {
			smallest = v
		}
	}
	if smallest >= s.minValue {
		return nil
	}
	return Issues{issueOf("/values", CodeBelowMinimum,
		fmt.Sprintf("identified values less than the set minimum: %v. Smallest found: %v.", s.minValue, smallest),
		map[string]any{"min": s.minValue, "got": smallest})}
}

func (s *Schema) checkMaximum(a DataArray) Issues {
	largest := math.Inf(-1)
	for _, v := range a.Values() {
		if v > largest {
			largest = v
		}
	}
	if largest <= s.maxValue {
		return nil
	}
	return Issues{issueOf("/values", CodeAboveMaximum,
		fmt.Sprintf("identified values greater than the set maximum: %v. Largest found: %v.", s.maxValue, largest),
		map[string]any{"max": s.maxValue, "got": largest})}
}

// coordsEqual reports full mapping equality: same keys, and per key the same
// labels in the same order.
func coordsEqual(a, b map[string][]any) bool {
	if len(a) != len(b) {
		return false
	}
	for name, av := range a {
		bv, ok := b[name]
		if !ok || !slices.Equal(av, bv) {
			return false
		}
	}
	return true
}

// isSuperset reports whether got contains every label in want, ignoring
// order and multiplicity.
func isSuperset(got, want []any) bool {
	set := make(map[any]struct{}, len(got))
	for _, v := range got {
		set[v] = struct{}{}
	}
	for _, v := range want {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}

// formatCoords renders a coordinate mapping with deterministic key order.
// A non-nil only filter restricts output to those keys.
func formatCoords(coords map[string][]any, only []string) string {
	names := slices.Sorted(maps.Keys(coords))
	parts := make([]string, 0, len(names))
	for _, name := range names {
		if only != nil && !slices.Contains(only, name) {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %v", name, coords[name]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
