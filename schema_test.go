package dimschema_test

import (
	"context"
	"errors"
	"testing"

	"github.com/arrayx/dimschema"
	"github.com/arrayx/dimschema/dense"
)

func mustArray(t *testing.T, value float64, dims []string, shape []int, coords map[string][]any) *dense.Array {
	t.Helper()
	a, err := dense.Full(value, dims, shape, coords)
	if err != nil {
		t.Fatalf("build array: %v", err)
	}
	return a
}

func TestNew_Defaults(t *testing.T) {
	s, err := dimschema.New()
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	// unbounded, NaN allowed, no expectations: anything passes
	a := mustArray(t, 1e300, []string{"anything"}, []int{2}, nil)
	if err := s.Validate(context.Background(), a); err != nil {
		t.Fatalf("default schema rejected array: %v", err)
	}
}

func TestNew_InvalidMatchTypes(t *testing.T) {
	_, err := dimschema.New(dimschema.MatchDims(dimschema.MatchType(42)))
	if !errors.Is(err, dimschema.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration for dim match type, got %v", err)
	}
	_, err = dimschema.New(dimschema.MatchCoords(dimschema.MatchType(-1)))
	if !errors.Is(err, dimschema.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration for coord match type, got %v", err)
	}
}

func TestMustNew_PanicsOnBadConfig(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	dimschema.MustNew(dimschema.MatchDims(dimschema.MatchType(7)))
}

func TestParseMatchType(t *testing.T) {
	cases := []struct {
		in   string
		want dimschema.MatchType
		ok   bool
	}{
		{"", dimschema.MatchExact, true},
		{"exact", dimschema.MatchExact, true},
		{"minimum", dimschema.MatchMinimum, true},
		{"fuzzy", 0, false},
	}
	for _, tc := range cases {
		got, err := dimschema.ParseMatchType(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("ParseMatchType(%q) failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("ParseMatchType(%q) = %v, want %v", tc.in, got, tc.want)
			}
			continue
		}
		if !errors.Is(err, dimschema.ErrConfiguration) {
			t.Fatalf("ParseMatchType(%q): expected ErrConfiguration, got %v", tc.in, err)
		}
	}
}

func TestResolveDims_FirstContextWins(t *testing.T) {
	s, err := dimschema.New(
		dimschema.DimsBy(func(kw dimschema.Keywords) ([]string, error) {
			if kw["round"] == 6 {
				return []string{"foo"}, nil
			}
			return []string{"bar"}, nil
		}),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if err := s.ResolveDims(dimschema.Keywords{"round": 6}); err != nil {
		t.Fatalf("first resolve failed: %v", err)
	}
	// second resolve with different context is a no-op
	if err := s.ResolveDims(dimschema.Keywords{"round": 7}); err != nil {
		t.Fatalf("second resolve failed: %v", err)
	}

	ctx := context.Background()
	foo := mustArray(t, 1, []string{"foo"}, []int{1}, nil)
	if err := s.Validate(ctx, foo); err != nil {
		t.Fatalf("expected dims [foo] to hold after first resolution, got %v", err)
	}
	bar := mustArray(t, 1, []string{"bar"}, []int{1}, nil)
	if err := s.Validate(ctx, bar); err == nil {
		t.Fatalf("expected dims [bar] to fail against first resolution")
	}
}

func TestResolveDims_CallbackErrorPropagatesVerbatim(t *testing.T) {
	errCtx := errors.New("required key draws not found")
	s, err := dimschema.New(
		dimschema.DimsBy(func(kw dimschema.Keywords) ([]string, error) {
			return nil, errCtx
		}),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	err = s.ResolveDims(dimschema.Keywords{})
	if !errors.Is(err, errCtx) {
		t.Fatalf("expected the callback's own error, got %v", err)
	}
	if _, ok := dimschema.AsIssues(err); ok {
		t.Fatalf("callback error must not be wrapped as Issues")
	}
}

func TestResolveCoords_ReplacesCallbackOnce(t *testing.T) {
	calls := 0
	s, err := dimschema.New(
		dimschema.CoordsBy(func(kw dimschema.Keywords) (map[string][]any, error) {
			calls++
			return map[string][]any{"foo": {1}}, nil
		}),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := s.ResolveCoords(dimschema.Keywords{}); err != nil {
			t.Fatalf("resolve %d failed: %v", i, err)
		}
	}
	if calls != 1 {
		t.Fatalf("callback invoked %d times, want exactly 1", calls)
	}
}

func TestResolveDims_ConcreteIsNoOp(t *testing.T) {
	s, err := dimschema.New(dimschema.Dims("foo"))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := s.ResolveDims(dimschema.Keywords{"anything": true}); err != nil {
		t.Fatalf("resolve on concrete expectation must be a no-op, got %v", err)
	}
}
