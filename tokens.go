package routepattern

// A token is one atom of a compiled pattern. The token list preserves the
// pattern's structure: it drives both regexp generation and formatting, and
// concatenating the atoms back together reproduces the pattern's shape.
type token struct {
	tType tokenType
	value string
}

type tokenType uint8

const (
	// tokenLiteral represents a run of pattern code points without any special syntactical meaning.
	tokenLiteral tokenType = iota
	// tokenName represents a string of the form ":<name>". The name value is restricted to code points that are consistent with identifiers.
	tokenName
	// tokenSplat represents a single U+002A (*) code point: a non-greedy wildcard matching group.
	tokenSplat
	// tokenGreedySplat represents the "**" sequence: a greedy wildcard matching group.
	tokenGreedySplat
	// tokenOpen represents a U+0028 (() code point opening an optional group. Groups nest to arbitrary depth.
	tokenOpen
	// tokenClose represents a U+0029 ()) code point closing an optional group.
	tokenClose
	// tokenEscapedOpen represents an open paren escaped using a backslash like "\(", matched as a literal paren.
	tokenEscapedOpen
	// tokenEscapedClose represents a close paren escaped using a backslash like "\)", matched as a literal paren.
	tokenEscapedClose
)

// capturing reports whether the token compiles to a capturing group.
func (t token) capturing() bool {
	return t.tType == tokenName || t.tType == tokenSplat || t.tType == tokenGreedySplat
}
