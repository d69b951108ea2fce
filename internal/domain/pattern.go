package domain

import "strings"

// assemble joins already-rendered segment strings into a pattern or path:
// empty strings are dropped, the rest are joined with the separator, and a
// single leading separator is applied when the source was rooted. Both
// NormalizePattern and Path.Expand build their output through this one
// function, so the pattern view and the generated strings can never disagree
// about separator handling.
func assemble(parts []string, rooted bool) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}

	joined := strings.Join(kept, Separator)
	if rooted {
		return Separator + joined
	}
	return joined
}

// NormalizePattern canonicalizes separator usage in a pattern:
// the root pattern "/" stays unchanged, runs of separators collapse to one,
// and a trailing separator is removed. Normalizing an already normalized
// pattern returns it unchanged. A missing leading separator is preserved,
// not repaired; NewPath rejects such patterns.
func NormalizePattern(pattern string) string {
	rooted := strings.HasPrefix(pattern, Separator)

	segments := SplitPattern(pattern)
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		parts = append(parts, segment.patternText())
	}

	return assemble(parts, rooted)
}

// ParamNames derives the distinct parameter names of a pattern in order of
// first appearance. The names form the exact key set an expansion mapping
// must supply.
func ParamNames(pattern string) []string {
	names := make([]string, 0)
	seen := make(map[string]bool)

	for _, segment := range SplitPattern(pattern) {
		if segment.IsParam && !seen[segment.Value] {
			seen[segment.Value] = true
			names = append(names, segment.Value)
		}
	}

	return names
}
