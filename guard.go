package dimschema

import (
	"context"
	"fmt"
)

// GuardedFunc is the call shape the guards wrap: a function invoked with
// named keyword arguments, returning R.
type GuardedFunc[R any] func(ctx context.Context, kw Keywords) (R, error)

// CheckInput wraps fn so that the DataArray passed under argName is
// validated before fn runs. The wrapper first resolves any dynamic
// expectations from the call's keywords, then validates kw[argName]. The
// designated argument must be present in the keywords and implement
// DataArray; fn is not invoked when validation raises.
//
// Resolution mutates the shared schema in place, so the first call's
// keywords fix dynamic expectations for all subsequent calls.
func CheckInput[R any](s *Schema, argName string, fn GuardedFunc[R]) GuardedFunc[R] {
	return func(ctx context.Context, kw Keywords) (R, error) {
		var zero R
		if err := s.ResolveDims(kw); err != nil {
			return zero, err
		}
		if err := s.ResolveCoords(kw); err != nil {
			return zero, err
		}
		v, ok := kw[argName]
		if !ok {
			return zero, fmt.Errorf("%w: %q", ErrMissingArgument, argName)
		}
		arr, ok := v.(DataArray)
		if !ok {
			return zero, fmt.Errorf("%w: %q is %T", ErrNotDataArray, argName, v)
		}
		if err := s.Validate(ctx, arr); err != nil {
			return zero, err
		}
		return fn(ctx, kw)
	}
}

// CheckOutput wraps fn so that its result is validated after it runs. fn
// executes first; its side effects have already happened by the time a
// failing check raises. The result is returned unchanged, alongside the
// validation error if any. A fn error skips validation entirely.
func CheckOutput[R DataArray](s *Schema, fn GuardedFunc[R]) GuardedFunc[R] {
	return func(ctx context.Context, kw Keywords) (R, error) {
		out, err := fn(ctx, kw)
		if err != nil {
			return out, err
		}
		if err := s.ResolveDims(kw); err != nil {
			return out, err
		}
		if err := s.ResolveCoords(kw); err != nil {
			return out, err
		}
		if err := s.Validate(ctx, out); err != nil {
			return out, err
		}
		return out, nil
	}
}
