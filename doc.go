package dimschema

// Package dimschema validates labeled multidimensional arrays against
// declared expectations:
//
// - Dimension names (exact order-sensitive match, or minimum containment)
// - Per-dimension coordinate labels (exact mapping, or per-key superset)
// - Element bounds (inclusive minimum/maximum) and a NaN policy
// - A stable violation model via Issues (path, code, message, params)
//
// Design policy:
// - Keep only public APIs in the root package; concrete array types live in
//   dense/, file-based definitions in schemafile/, the CLI in cmd/dimschema.
// - Violations either raise (first violated check wins) or, in warn-only
//   mode, are all collected and logged through slog.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := dimschema.MustNew(
//	    dimschema.Dims("location_id", "year_id"),
//	    dimschema.Coords(map[string][]any{"year_id": {2020, 2021}}),
//	    dimschema.Min(0),
//	)
//	err := s.Validate(ctx, arr)
//
// Guarded calls attach a schema to a function boundary:
//
//	fit := dimschema.CheckInput(s, "data", doFit)
//	out, err := fit(ctx, dimschema.Keywords{"data": arr, "draws": 100})
//
// Expectations may be computed late from the call's keywords via DimsBy and
// CoordsBy; see Schema for the resolution semantics and the sharing hazard.
