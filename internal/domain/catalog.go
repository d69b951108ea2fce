package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// NamedPath is one catalog entry: a route pattern registered under a name and
// a short id. Pattern holds the normalized form, Params and Segments are
// derived from it, and Path carries the live object used for expansion and
// composition.
type NamedPath struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Pattern   string    `json:"pattern"`
	Params    []string  `json:"params"`
	Segments  []Segment `json:"segments,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	Path      Path      `json:"-"`
}

// ParseNamedPath validates a catalog entry and fills defaults
func ParseNamedPath(input NamedPath) (NamedPath, error) {
	if input.Pattern == "" {
		return NamedPath{}, fmt.Errorf("pattern is required")
	}

	path, err := NewPath(input.Pattern)
	if err != nil {
		return NamedPath{}, err
	}

	// Generate ID if not provided
	if input.ID == "" {
		input.ID = GenerateShortID()
	}

	// Entries without a name are addressed by their ID
	if input.Name == "" {
		input.Name = input.ID
	}

	// Set creation time
	if input.CreatedAt.IsZero() {
		input.CreatedAt = time.Now()
	}

	// Everything below is derived from the pattern
	input.Pattern = path.Pattern()
	input.Params = path.Params()
	input.Segments = path.Segments()
	input.Path = path

	return input, nil
}

// SubNamedPath derives a child catalog entry by appending a subpattern to an
// existing entry. The child gets its own id and the union of both parameter
// sets; the parent entry is unaffected.
func SubNamedPath(parent NamedPath, name string, subpattern string) (NamedPath, error) {
	child, err := parent.Path.Sub(subpattern)
	if err != nil {
		return NamedPath{}, err
	}

	return ParseNamedPath(NamedPath{Name: name, Pattern: child.Pattern()})
}

// ValidateNamedPath performs additional validation on a complete entry
func ValidateNamedPath(entry NamedPath) error {
	if entry.Pattern == "" {
		return fmt.Errorf("pattern cannot be empty")
	}

	if entry.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if !strings.HasPrefix(entry.Pattern, Separator) {
		return fmt.Errorf("pattern must begin with %q", Separator)
	}

	if NormalizePattern(entry.Pattern) != entry.Pattern {
		return fmt.Errorf("pattern is not normalized: %q", entry.Pattern)
	}

	if !slices.Equal(entry.Params, ParamNames(entry.Pattern)) {
		return fmt.Errorf("params do not match pattern %q", entry.Pattern)
	}

	return nil
}
