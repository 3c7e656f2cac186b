package dimschema

import (
	"fmt"
	"log/slog"
	"math"
)

// dimsExpectation is a tagged variant: either a concrete dimension list or a
// pending callback. Resolution narrows the variant to concrete.
type dimsExpectation struct {
	concrete []string
	fn       DimsFunc
}

// coordsExpectation mirrors dimsExpectation for coordinate mappings.
type coordsExpectation struct {
	concrete map[string][]any
	fn       CoordsFunc
}

// Schema holds the expectations an array must satisfy: dimension names,
// per-dimension coordinate labels, numeric bounds and a NaN policy.
//
// A Schema is commonly constructed once at package scope and shared by many
// guarded functions. Dynamic expectations (DimsBy/CoordsBy) resolve in place
// on first use: the first caller's keywords win for the lifetime of the
// instance, and later resolutions are no-ops. Sharing one Schema across
// goroutines that resolve with differing keywords is therefore unsafe; use a
// fresh Schema per call site in that situation.
type Schema struct {
	dims   dimsExpectation
	coords coordsExpectation

	dimMatch   MatchType
	coordMatch MatchType

	minValue float64
	maxValue float64

	allowNaN bool
	warnOnly bool

	logger *slog.Logger
}

// Option configures a Schema at construction.
type Option func(*Schema)

// Dims sets the expected dimension names. An empty expectation disables the
// dimension check entirely.
func Dims(names ...string) Option {
	return func(s *Schema) { s.dims = dimsExpectation{concrete: names} }
}

// DimsBy defers the expected dimensions to a callback resolved from the
// guarded call's keywords.
func DimsBy(fn DimsFunc) Option {
	return func(s *Schema) { s.dims = dimsExpectation{fn: fn} }
}

// MatchDims sets the dimension match mode. Defaults to MatchExact.
func MatchDims(m MatchType) Option {
	return func(s *Schema) { s.dimMatch = m }
}

// Coords sets the expected coordinate labels per dimension. An empty
// expectation disables the coordinate check entirely.
func Coords(c map[string][]any) Option {
	return func(s *Schema) { s.coords = coordsExpectation{concrete: c} }
}

// CoordsBy defers the expected coordinates to a callback resolved from the
// guarded call's keywords.
func CoordsBy(fn CoordsFunc) Option {
	return func(s *Schema) { s.coords = coordsExpectation{fn: fn} }
}

// MatchCoords sets the coordinate match mode. Defaults to MatchExact.
func MatchCoords(m MatchType) Option {
	return func(s *Schema) { s.coordMatch = m }
}

// Min sets the smallest acceptable element value (inclusive).
func Min(v float64) Option {
	return func(s *Schema) { s.minValue = v }
}

// Max sets the largest acceptable element value (inclusive).
func Max(v float64) Option {
	return func(s *Schema) { s.maxValue = v }
}

// DisallowNaN makes any NaN element a violation. NaN values pass by default.
func DisallowNaN() Option {
	return func(s *Schema) { s.allowNaN = false }
}

// WarnOnly switches Validate from raising on the first violated check to
// running every check and logging each violation at warn level.
func WarnOnly() Option {
	return func(s *Schema) { s.warnOnly = true }
}

// WithLogger sets the logger used in warn-only mode. Defaults to
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Schema) { s.logger = l }
}

// New builds a Schema. Bounds default to unbounded, NaN values are allowed
// and violations raise unless configured otherwise. An out-of-range match
// mode fails with ErrConfiguration.
func New(opts ...Option) (*Schema, error) {
	s := &Schema{
		dimMatch:   MatchExact,
		coordMatch: MatchExact,
		minValue:   math.Inf(-1),
		maxValue:   math.Inf(1),
		allowNaN:   true,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.dimMatch.valid() {
		return nil, fmt.Errorf("%w: dim match type %s, want %q or %q",
			ErrConfiguration, s.dimMatch, MatchExact, MatchMinimum)
	}
	if !s.coordMatch.valid() {
		return nil, fmt.Errorf("%w: coord match type %s, want %q or %q",
			ErrConfiguration, s.coordMatch, MatchExact, MatchMinimum)
	}
	return s, nil
}

// MustNew is like New but panics on configuration errors. Intended for
// package-scope schema variables.
func MustNew(opts ...Option) *Schema {
	s, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// ResolveDims replaces a pending dimension callback with its computed value.
// A no-op once the expectation is concrete; a callback error propagates
// verbatim and leaves the expectation pending.
func (s *Schema) ResolveDims(kw Keywords) error {
	if s.dims.fn == nil {
		return nil
	}
	dims, err := s.dims.fn(kw)
	if err != nil {
		return err
	}
	s.dims = dimsExpectation{concrete: dims}
	return nil
}

// ResolveCoords replaces a pending coordinate callback with its computed
// value. Same semantics as ResolveDims.
func (s *Schema) ResolveCoords(kw Keywords) error {
	if s.coords.fn == nil {
		return nil
	}
	coords, err := s.coords.fn(kw)
	if err != nil {
		return err
	}
	s.coords = coordsExpectation{concrete: coords}
	return nil
}
