package dimschema

import (
	"errors"
	"fmt"
	"strings"
)

// Violation codes (exported consts for stable matching at call sites).
const (
	CodeDimsMismatch        = "dims_mismatch"
	CodeDimsMissing         = "dims_missing"
	CodeCoordsMismatch      = "coords_mismatch"
	CodeCoordsMissing       = "coords_missing"
	CodeCoordValuesMismatch = "coord_values_mismatch"
	CodeNaNPresent          = "nan_present"
	CodeBelowMinimum        = "below_minimum"
	CodeAboveMaximum        = "above_maximum"
)

// Setup failures. These always raise; the schema's warn-only policy governs
// only Validate outcomes.
var (
	// ErrConfiguration indicates an invalid Schema construction argument.
	ErrConfiguration = errors.New("dimschema: invalid configuration")

	// ErrMissingArgument indicates the guarded argument was not passed by keyword.
	ErrMissingArgument = errors.New("dimschema: designated argument missing from keywords")

	// ErrNotDataArray indicates the guarded argument does not implement DataArray.
	ErrNotDataArray = errors.New("dimschema: argument does not implement DataArray")
)

// Issue represents a single validation violation.
type Issue struct {
	Path    string // Slash-rooted locator (for example: /coords).
	Code    string // One of the codes listed above.
	Message string // Names both the expected and the found values.
	// Params carries structured parameters (e.g., {"min":-100, "got":-101})
	// for observability.
	Params map[string]any `json:",omitempty"`
}

// Issues is a collection of validation violations that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. coords_mismatch at /coords: ...
		fmt.Fprintf(b, "%s at %s: %s", it.Code, it.Path, it.Message)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// issueOf creates an Issue at the given path with provided code, message and
// params map. A convenience helper to keep check sites readable.
func issueOf(path, code, msg string, params map[string]any) Issue {
	return Issue{Path: path, Code: code, Message: msg, Params: params}
}
