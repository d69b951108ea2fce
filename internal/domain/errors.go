package domain

import "fmt"

// PatternError reports a pattern that cannot form a Path. It is returned at
// construction time only and is never recoverable: the pattern text is fixed
// in the program, so a failing pattern is a defect, not a runtime condition.
type PatternError struct {
	Pattern string // the normalized form of the rejected pattern
	Reason  string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid path pattern %q: %s", e.Pattern, e.Reason)
}

// ParamError reports an expansion whose parameter mapping does not satisfy
// the pattern's contract: a required name is missing, a value is not a
// string, or a key was supplied that the pattern does not declare. The
// parameter set is fixed when the Path is constructed, so this too is always
// a caller defect.
type ParamError struct {
	Name   string // the offending parameter name or map key
	Params Params // the mapping as supplied
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("param %q %s in %v: params must exactly match the pattern's declared parameter set", e.Name, e.Reason, e.Params)
}

// Reasons used by ParamError.
const (
	reasonMissing    = "is missing"
	reasonNotString  = "is not a string"
	reasonUndeclared = "is not declared by the pattern"
)
