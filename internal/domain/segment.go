package domain

import "strings"

const (
	// Separator delimits the segments of a pattern or path.
	Separator = "/"
	// ParamMarker prefixes a parameter segment in a pattern, e.g. ":courseId"
	ParamMarker = ":"
)

// Segment is one unit of a decomposed pattern, in left-to-right order.
// For a literal segment Value holds the text verbatim (it may be empty when
// the pattern had repeated or trailing separators). For a parameter segment
// Value holds the name with the marker stripped: ":courseId" -> "courseId".
type Segment struct {
	Value   string `json:"value"`
	IsParam bool   `json:"isParam,omitempty"`
}

// patternText renders the segment back into its pattern form
func (s Segment) patternText() string {
	if s.IsParam {
		return ParamMarker + s.Value
	}
	return s.Value
}

// SplitPattern decomposes a pattern into its ordered segments by splitting on
// every separator. A leading separator produces an empty leading literal and
// repeated separators produce empty literals in between; they are kept here
// and only dropped when a concrete string is assembled. The split is purely
// lexical: a raw segment starting with the parameter marker is a parameter,
// anything else is a literal, and no further validation happens.
func SplitPattern(pattern string) []Segment {
	raw := strings.Split(pattern, Separator)
	segments := make([]Segment, 0, len(raw))

	for _, part := range raw {
		if strings.HasPrefix(part, ParamMarker) {
			segments = append(segments, Segment{Value: part[len(ParamMarker):], IsParam: true})
		} else {
			segments = append(segments, Segment{Value: part})
		}
	}

	return segments
}
