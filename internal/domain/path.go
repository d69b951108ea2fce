package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// Params carries the parameter values for one expansion, keyed by parameter
// name. Values are contractually strings; the open value type lets mappings
// decoded from JSON (or any other unchecked source) flow through the same
// runtime validation instead of being silently coerced.
type Params map[string]any

// Path is an immutable route pattern. It exposes the normalized pattern for
// handing to a router, the ordered segment decomposition for introspection,
// and expands parameter values into concrete URL paths. Paths are meant to be
// built once at startup from fixed literal patterns; a Path never changes
// after construction and is safe to share across goroutines.
type Path struct {
	pattern  string    // normalized, router-facing
	original string    // as supplied, kept only for Sub concatenation
	segments []Segment // decomposition of the normalized pattern
}

// NewPath builds a Path from a pattern such as
// "/courses/:courseId/lessons/:lessonId". The pattern is normalized first; it
// must then begin with the separator, and no parameter name may appear twice.
// Both checks run here, once, never per expansion.
func NewPath(pattern string) (Path, error) {
	normalized := NormalizePattern(pattern)

	if !strings.HasPrefix(normalized, Separator) {
		return Path{}, &PatternError{
			Pattern: normalized,
			Reason:  fmt.Sprintf("must begin with %q", Separator),
		}
	}

	segments := SplitPattern(normalized)

	seen := make(map[string]bool)
	for _, segment := range segments {
		if !segment.IsParam {
			continue
		}
		if seen[segment.Value] {
			return Path{}, &PatternError{
				Pattern: normalized,
				Reason:  fmt.Sprintf("parameter %q appears more than once", segment.Value),
			}
		}
		seen[segment.Value] = true
	}

	return Path{
		pattern:  normalized,
		original: pattern,
		segments: segments,
	}, nil
}

// MustPath is NewPath for startup wiring: it panics on an invalid pattern.
func MustPath(pattern string) Path {
	path, err := NewPath(pattern)
	if err != nil {
		panic(err)
	}
	return path
}

// Pattern returns the normalized pattern, e.g. "/courses/:courseId". It uses
// the same ":name" convention gin matches on and can be handed to a router
// as-is.
func (p Path) Pattern() string {
	return p.pattern
}

// Segments returns a copy of the ordered segment decomposition. Splitting
// Pattern() again yields exactly this sequence.
func (p Path) Segments() []Segment {
	segments := make([]Segment, len(p.segments))
	copy(segments, p.segments)
	return segments
}

// Params returns the parameter names the pattern requires, in order of first
// appearance.
func (p Path) Params() []string {
	names := make([]string, 0)
	for _, segment := range p.segments {
		if segment.IsParam {
			names = append(names, segment.Value)
		}
	}
	return names
}

// Expand generates the concrete path for the given parameter values. The
// mapping must carry exactly the pattern's parameter set with string values;
// anything else returns a *ParamError. Values are percent-escaped as single
// path segments, so a value can never introduce a segment boundary:
// "the/course" becomes "the%2Fcourse".
func (p Path) Expand(params Params) (string, error) {
	declared := make(map[string]bool)
	parts := make([]string, 0, len(p.segments))

	for _, segment := range p.segments {
		if !segment.IsParam {
			parts = append(parts, segment.Value)
			continue
		}

		declared[segment.Value] = true

		value, ok := params[segment.Value]
		if !ok {
			return "", &ParamError{Name: segment.Value, Params: params, Reason: reasonMissing}
		}

		text, ok := value.(string)
		if !ok {
			return "", &ParamError{Name: segment.Value, Params: params, Reason: reasonNotString}
		}

		parts = append(parts, url.PathEscape(text))
	}

	for name := range params {
		if !declared[name] {
			return "", &ParamError{Name: name, Params: params, Reason: reasonUndeclared}
		}
	}

	return assemble(parts, true), nil
}

// Sub derives a new Path by appending a subpattern: the original pattern, one
// separator and the subpattern are concatenated and the result goes through
// full construction again, exactly as if the caller had typed it. The child's
// parameter set is the union of both sides; a name shared between parent and
// subpattern fails construction the same way a duplicate inside one pattern
// does. The parent is left untouched.
func (p Path) Sub(subpattern string) (Path, error) {
	return NewPath(p.original + Separator + subpattern)
}
