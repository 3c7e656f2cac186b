// Package dense provides a small in-memory labeled n-dimensional array. It
// implements the DataArray surface consumed by dimschema and is what the CLI
// and the examples build their inputs from.
package dense

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrRankMismatch indicates len(dims) != len(shape).
	ErrRankMismatch = errors.New("dense: dimension count does not match rank")

	// ErrDataLength indicates the buffer length does not match the shape.
	ErrDataLength = errors.New("dense: data length does not match shape")

	// ErrCoordLength indicates a coordinate sequence does not match its
	// axis extent.
	ErrCoordLength = errors.New("dense: coordinate length does not match axis extent")

	// ErrUnknownDim indicates a dimension name not present in the array.
	ErrUnknownDim = errors.New("dense: unknown dimension")

	// ErrNoCoord indicates the dimension has no coordinate sequence.
	ErrNoCoord = errors.New("dense: dimension has no coordinate labels")

	// ErrLabelNotFound indicates a selection label absent from a coordinate.
	ErrLabelNotFound = errors.New("dense: label not found in coordinate")

	// ErrNotSqueezable indicates a squeeze on an axis with extent != 1.
	ErrNotSqueezable = errors.New("dense: axis extent is not 1")
)

// Array is a dense row-major n-dimensional buffer with named axes and
// optional per-axis coordinate labels.
type Array struct {
	dims   []string
	shape  []int
	coords map[string]any // []any per labeled axis; scalar after Squeeze
	data   []float64
}

// New builds an Array and enforces the labeled-array invariants: one
// dimension name per axis, buffer length equal to the product of extents,
// and each coordinate sequence as long as its axis. Coordinates are optional
// per dimension.
func New(data []float64, dims []string, shape []int, coords map[string][]any) (*Array, error) {
	if len(dims) != len(shape) {
		return nil, fmt.Errorf("%w: %d dims for %d axes", ErrRankMismatch, len(dims), len(shape))
	}
	if n := size(shape); n != len(data) {
		return nil, fmt.Errorf("%w: %d values for shape %v", ErrDataLength, len(data), shape)
	}
	cc := make(map[string]any, len(coords))
	for name, labels := range coords {
		axis := slices.Index(dims, name)
		if axis < 0 {
			return nil, fmt.Errorf("%w: coordinate %q", ErrUnknownDim, name)
		}
		if len(labels) != shape[axis] {
			return nil, fmt.Errorf("%w: %q has %d labels for extent %d",
				ErrCoordLength, name, len(labels), shape[axis])
		}
		cc[name] = slices.Clone(labels)
	}
	return &Array{
		dims:   slices.Clone(dims),
		shape:  slices.Clone(shape),
		coords: cc,
		data:   slices.Clone(data),
	}, nil
}

// Full builds an Array with every element set to value.
func Full(value float64, dims []string, shape []int, coords map[string][]any) (*Array, error) {
	data := make([]float64, size(shape))
	for i := range data {
		data[i] = value
	}
	return New(data, dims, shape, coords)
}

// Dims returns the dimension names in axis order.
func (a *Array) Dims() []string { return slices.Clone(a.dims) }

// Shape returns the per-axis extents.
func (a *Array) Shape() []int { return slices.Clone(a.shape) }

// Coords returns the coordinate labels per dimension. Entries are []any
// sequences, or a bare scalar for axes dropped by Squeeze.
func (a *Array) Coords() map[string]any {
	out := make(map[string]any, len(a.coords))
	for name, v := range a.coords {
		out[name] = v
	}
	return out
}

// Values returns the underlying row-major buffer. The slice is shared with
// the array; treat it as read-only.
func (a *Array) Values() []float64 { return a.data }

// Sel returns a new Array restricted along dim to the positions whose
// coordinate label matches one of labels, in the order given.
func (a *Array) Sel(dim string, labels ...any) (*Array, error) {
	axis := slices.Index(a.dims, dim)
	if axis < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDim, dim)
	}
	coord, ok := a.coords[dim].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoCoord, dim)
	}

	keep := make([]int, 0, len(labels))
	for _, lb := range labels {
		pos := slices.Index(coord, lb)
		if pos < 0 {
			return nil, fmt.Errorf("%w: %v in %q", ErrLabelNotFound, lb, dim)
		}
		keep = append(keep, pos)
	}

	outShape := slices.Clone(a.shape)
	outShape[axis] = len(keep)
	out := &Array{
		dims:   slices.Clone(a.dims),
		shape:  outShape,
		coords: make(map[string]any, len(a.coords)),
		data:   gather(a.data, a.shape, outShape, axis, keep),
	}
	for name, v := range a.coords {
		out.coords[name] = v
	}
	out.coords[dim] = slices.Clone(labels)
	return out, nil
}

// Squeeze drops an axis of extent 1. The axis's coordinate label, if any,
// remains attached as a scalar entry, matching how squeezed labeled arrays
// keep point coordinates.
func (a *Array) Squeeze(dim string) (*Array, error) {
	axis := slices.Index(a.dims, dim)
	if axis < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDim, dim)
	}
	if a.shape[axis] != 1 {
		return nil, fmt.Errorf("%w: %q has extent %d", ErrNotSqueezable, dim, a.shape[axis])
	}

	out := &Array{
		dims:   slices.Delete(slices.Clone(a.dims), axis, axis+1),
		shape:  slices.Delete(slices.Clone(a.shape), axis, axis+1),
		coords: make(map[string]any, len(a.coords)),
		data:   slices.Clone(a.data),
	}
	for name, v := range a.coords {
		out.coords[name] = v
	}
	if coord, ok := a.coords[dim].([]any); ok {
		out.coords[dim] = coord[0]
	}
	return out, nil
}

func size(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n
}

func strides(shape []int) []int {
	st := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= shape[i]
	}
	return st
}

// gather copies the elements kept along axis into a fresh row-major buffer.
func gather(data []float64, inShape, outShape []int, axis int, keep []int) []float64 {
	inStrides := strides(inShape)
	outStrides := strides(outShape)
	out := make([]float64, size(outShape))
	for i := range out {
		rem := i
		src := 0
		for ax := range outShape {
			c := rem / outStrides[ax]
			rem %= outStrides[ax]
			if ax == axis {
				c = keep[c]
			}
			src += c * inStrides[ax]
		}
		out[i] = data[src]
	}
	return out
}
