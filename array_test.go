package dimschema_test

import (
	"context"
	"testing"

	"github.com/arrayx/dimschema"
	"github.com/arrayx/dimschema/dense"
)

func TestCoordsOf_ScalarCoordNormalized(t *testing.T) {
	a, err := dense.New(
		[]float64{1, 2},
		[]string{"foo", "bar"}, []int{1, 2},
		map[string][]any{"foo": {10}, "bar": {3, 4}},
	)
	if err != nil {
		t.Fatalf("build array: %v", err)
	}
	sq, err := a.Squeeze("foo")
	if err != nil {
		t.Fatalf("squeeze: %v", err)
	}

	coords := dimschema.CoordsOf(sq)
	got, ok := coords["foo"]
	if !ok || len(got) != 1 || got[0] != 10 {
		t.Fatalf("scalar coord must normalize to a one-element sequence, got %v", coords["foo"])
	}
}

func TestCoordsOf_FeedsExactMatchAfterSqueeze(t *testing.T) {
	// a squeezed point coordinate still participates in coordinate checks
	s, err := dimschema.New(
		dimschema.Coords(map[string][]any{"foo": {10}, "bar": {3, 4}}),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	a, err := dense.New(
		[]float64{1, 2},
		[]string{"foo", "bar"}, []int{1, 2},
		map[string][]any{"foo": {10}, "bar": {3, 4}},
	)
	if err != nil {
		t.Fatalf("build array: %v", err)
	}
	sq, err := a.Squeeze("foo")
	if err != nil {
		t.Fatalf("squeeze: %v", err)
	}
	if err := s.Validate(context.Background(), sq); err != nil {
		t.Fatalf("normalized scalar coord must satisfy exact match: %v", err)
	}
}
