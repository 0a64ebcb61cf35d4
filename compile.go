package routepattern

import (
	"fmt"
	"regexp"
	"strings"
)

// splatName is the positional placeholder recorded in the param-name list for
// every wildcard capture. A pattern with several splats yields several
// "splat" entries, consumed left to right when formatting.
const splatName = "splat"

// compile translates a pattern string into its reusable compiled form. It is
// deterministic: the same pattern always yields a structurally equal result.
func compile(pattern string, o options) (*CompiledPattern, error) {
	tokenList := tokenize(pattern)

	var source strings.Builder
	paramNames := make([]string, 0, len(tokenList))

	// s flag so greedy splats span the remaining input, newlines included.
	source.WriteString("(?s)")
	if o.ignoreCase {
		source.WriteString("(?i)")
	}
	source.WriteString(`\A`)

	for _, tok := range tokenList {
		switch tok.tType {
		case tokenLiteral:
			source.WriteString(escapeRegexpString(tok.value))

		case tokenName:
			source.WriteByte('(')
			source.WriteString(generateSegmentWildcardRegexp(o))
			source.WriteByte(')')
			paramNames = append(paramNames, tok.value)

		case tokenGreedySplat:
			source.WriteString("(.*)")
			paramNames = append(paramNames, splatName)

		case tokenSplat:
			source.WriteString("(.*?)")
			paramNames = append(paramNames, splatName)

		case tokenOpen:
			source.WriteString("(?:")

		case tokenClose:
			source.WriteString(")?")

		case tokenEscapedOpen:
			source.WriteString(`\(`)

		case tokenEscapedClose:
			source.WriteString(`\)`)
		}
	}

	// Unless the pattern already ends on the separator, let a match swallow a
	// trailing separator run so it can end cleanly on a segment boundary.
	if !strings.HasSuffix(pattern, o.separator()) {
		source.WriteString(escapeRegexpString(o.separator()))
		source.WriteByte('*')
	}

	re, err := regexp.Compile(source.String())
	if err != nil {
		// Unbalanced groups survive tokenizing and surface here instead.
		return nil, fmt.Errorf("%w: %q", ErrMalformedPattern, pattern)
	}

	return &CompiledPattern{
		pattern:    pattern,
		regexp:     re,
		paramNames: paramNames,
		tokens:     tokenList,
		options:    o,
	}, nil
}
