// Package routepattern compiles route-pattern strings into reusable path
// matchers and performs the inverse operation, formatting a parameter set
// back into a concrete path.
//
// A pattern is a literal path with special tokens: ":name" captures one
// segment under that name, "(...)" marks an optional group (groups nest),
// "*" is a non-greedy wildcard, "**" a greedy one, and "\(" / "\)" match
// literal parens. Matching is prefix-based: a pattern may consume only the
// leading segments of a path, handing the remainder to child patterns.
package routepattern

import (
	"errors"
	"regexp"
)

var (
	// ErrMissingParameter is returned by FormatPattern when a required named
	// parameter or splat has no supplied value outside any optional group.
	ErrMissingParameter = errors.New("missing parameter")
	// ErrMalformedPattern is returned when a pattern's optional groups are
	// unbalanced.
	ErrMalformedPattern = errors.New("malformed pattern")
)

// CompiledPattern is the immutable compiled form of a pattern: its token
// list, the automaton derived from it and the ordered capture names. Compiled
// patterns are cached for the process lifetime and safe for concurrent use.
type CompiledPattern struct {
	pattern    string
	regexp     *regexp.Regexp
	paramNames []string
	tokens     []token
	options    options
}

// CompilePattern returns the compiled form of pattern, reusing the
// process-wide cache. The pattern string is the cache key; repeated calls
// with the same string return the same value.
func CompilePattern(pattern string) (*CompiledPattern, error) {
	return compiledPatterns.getOrCompile(pattern)
}

// ParamNames returns the ordered capture names of pattern: declared names for
// named parameters, "splat" for every wildcard occurrence.
func ParamNames(pattern string) ([]string, error) {
	cp, err := compiledPatterns.getOrCompile(pattern)
	if err != nil {
		return nil, err
	}

	return cp.ParamNames(), nil
}

// Pattern returns the original pattern string.
func (cp *CompiledPattern) Pattern() string {
	return cp.pattern
}

// ParamNames returns a copy of the compiled pattern's ordered capture names.
func (cp *CompiledPattern) ParamNames() []string {
	names := make([]string, len(cp.paramNames))
	copy(names, cp.paramNames)

	return names
}
