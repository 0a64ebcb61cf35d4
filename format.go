package routepattern

import (
	"fmt"
	"strings"
)

// FormatPattern is the structural inverse of matching: it interpolates params
// into pattern and returns the concrete path. Optional groups whose named
// parameters are missing are elided; a missing parameter outside any optional
// group fails with ErrMissingParameter, and unbalanced groups fail with
// ErrMalformedPattern.
func FormatPattern(pattern string, params *Params) (string, error) {
	cp, err := compiledPatterns.getOrCompile(pattern)
	if err != nil {
		return "", err
	}

	return cp.format(params)
}

func (cp *CompiledPattern) format(params *Params) (string, error) {
	var pathname strings.Builder
	var parenHistory []*strings.Builder
	splatIndex := 0

	// Text accumulates at the innermost open group, or straight into the
	// output at depth zero.
	current := func() *strings.Builder {
		if len(parenHistory) > 0 {
			return parenHistory[len(parenHistory)-1]
		}

		return &pathname
	}

	tokens := cp.tokens
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch tok.tType {
		case tokenSplat, tokenGreedySplat:
			value, ok := params.splatAt(splatIndex)
			splatIndex++

			if !ok {
				if len(parenHistory) == 0 {
					return "", fmt.Errorf("%w: splat #%d for pattern %q", ErrMissingParameter, splatIndex-1, cp.pattern)
				}

				// A splat missing inside an optional group is dropped; the
				// group itself still renders.
				continue
			}

			current().WriteString(encodeSplat(value))

		case tokenOpen:
			parenHistory = append(parenHistory, &strings.Builder{})

		case tokenClose:
			if len(parenHistory) == 0 {
				return "", fmt.Errorf("%w: close paren without open group in pattern %q", ErrMalformedPattern, cp.pattern)
			}

			closed := parenHistory[len(parenHistory)-1]
			parenHistory = parenHistory[:len(parenHistory)-1]
			current().WriteString(closed.String())

		case tokenEscapedOpen:
			current().WriteByte('(')

		case tokenEscapedClose:
			current().WriteByte(')')

		case tokenName:
			value, ok := params.named(tok.value)
			if ok {
				current().WriteString(encodeComponent(value))

				continue
			}

			if len(parenHistory) == 0 {
				return "", fmt.Errorf("%w: %q for pattern %q", ErrMissingParameter, tok.value, cp.pattern)
			}

			// The whole enclosing optional group is elided: discard whatever
			// it accumulated and fast-forward to its close token, which the
			// next iteration pops as usual.
			parenHistory[len(parenHistory)-1].Reset()

			closeIndex := findMatchingClose(tokens, i+1)
			if closeIndex < 0 {
				return "", fmt.Errorf("%w: no close paren after %q in pattern %q", ErrMalformedPattern, tok.value, cp.pattern)
			}

			i = closeIndex - 1

		default:
			current().WriteString(tok.value)
		}
	}

	if len(parenHistory) != 0 {
		return "", fmt.Errorf("%w: unterminated optional group in pattern %q", ErrMalformedPattern, cp.pattern)
	}

	return collapseSeparators(pathname.String(), cp.options.delimiterCodePoint), nil
}

// findMatchingClose returns the index of the close token terminating the
// group currently open at from, skipping nested balanced groups, or -1 when
// the scan runs off the end of the token list. Escaped parens do not count.
func findMatchingClose(tokens []token, from int) int {
	depth := 0
	for i := from; i < len(tokens); i++ {
		switch tokens[i].tType {
		case tokenOpen:
			depth++
		case tokenClose:
			if depth == 0 {
				return i
			}
			depth--
		}
	}

	return -1
}

// collapseSeparators folds runs of consecutive separators, left behind by
// elided groups or dropped splats, into a single separator.
func collapseSeparators(pathname string, separator byte) string {
	doubled := string([]byte{separator, separator})
	if !strings.Contains(pathname, doubled) {
		return pathname
	}

	var b strings.Builder
	b.Grow(len(pathname))

	var previous byte
	for i := 0; i < len(pathname); i++ {
		c := pathname[i]
		if c == separator && previous == separator {
			continue
		}

		b.WriteByte(c)
		previous = c
	}

	return b.String()
}
