package routepattern

type options struct {
	// MUST be an ASCII code point
	delimiterCodePoint byte
	ignoreCase         bool
}

var defaultOptions = options{delimiterCodePoint: '/'}

func (o options) separator() string {
	return string(o.delimiterCodePoint)
}

// generateSegmentWildcardRegexp builds the regexp source a named parameter
// captures with: everything up to the next separator.
func generateSegmentWildcardRegexp(o options) string {
	return "[^" + escapeRegexpString(o.separator()) + "]+"
}
