package routepattern

import (
	"net/url"
	"strings"
)

// MatchResult is the outcome of a successful pattern match.
type MatchResult struct {
	// RemainingPathname is the unmatched suffix of the pathname. It is empty
	// when the pattern consumed the whole path; otherwise it begins with the
	// separator, so a child pattern can continue matching where the parent
	// stopped.
	RemainingPathname string
	// ParamNames lists the pattern's capture names, in capture order.
	ParamNames []string
	// ParamValues holds one decoded entry per ParamNames entry. A nil element
	// means the capture took no part in the match, as opposed to matching the
	// empty string.
	ParamValues []*string
}

// MatchPattern matches pathname against pattern. It returns nil when the
// pattern does not match at all, or when a partial match does not end on a
// segment boundary. The pattern is normalized to start with the separator
// before matching.
func MatchPattern(pattern, pathname string) (*MatchResult, error) {
	if !strings.HasPrefix(pattern, defaultOptions.separator()) {
		pattern = defaultOptions.separator() + pattern
	}

	cp, err := compiledPatterns.getOrCompile(pattern)
	if err != nil {
		return nil, err
	}

	return cp.match(pathname), nil
}

// MatchParams is MatchPattern reduced to its extracted parameters. It returns
// nil when the pattern does not match.
func MatchParams(pattern, pathname string) (*Params, error) {
	m, err := MatchPattern(pattern, pathname)
	if err != nil || m == nil {
		return nil, err
	}

	return m.Params(), nil
}

func (cp *CompiledPattern) match(pathname string) *MatchResult {
	indices := cp.regexp.FindStringSubmatchIndex(pathname)
	if indices == nil {
		return nil
	}

	matched := pathname[indices[0]:indices[1]]
	remaining := pathname[indices[1]:]

	if remaining != "" {
		// A partial match must end on the separator, so the remainder begins
		// a new segment.
		if !strings.HasSuffix(matched, cp.options.separator()) {
			return nil
		}

		remaining = cp.options.separator() + remaining
	}

	values := make([]*string, len(cp.paramNames))
	for i := range cp.paramNames {
		start, end := indices[2*(i+1)], indices[2*(i+1)+1]
		if start < 0 {
			continue
		}

		value := decodeCapture(pathname[start:end])
		values[i] = &value
	}

	return &MatchResult{
		RemainingPathname: remaining,
		ParamNames:        cp.ParamNames(),
		ParamValues:       values,
	}
}

// Params zips ParamNames with ParamValues: named captures go to Named, with
// later duplicate names overwriting earlier ones, and splat captures
// accumulate into the splat sequence in occurrence order. Captures that took
// no part in the match are skipped.
func (m *MatchResult) Params() *Params {
	p := &Params{Named: make(map[string]string, len(m.ParamNames))}

	var splatValues []string
	for i, name := range m.ParamNames {
		value := m.ParamValues[i]
		if value == nil {
			continue
		}

		if name == splatName {
			splatValues = append(splatValues, *value)

			continue
		}

		p.Named[name] = *value
	}

	if splatValues != nil {
		p.Splat = SplatValues(splatValues...)
	}

	return p
}

// decodeCapture percent-decodes a captured value. Values that are not valid
// percent-encodings are passed through untouched.
func decodeCapture(value string) string {
	decoded, err := url.PathUnescape(value)
	if err != nil {
		return value
	}

	return decoded
}
