package routepattern

// Params carries the values FormatPattern interpolates into a pattern and
// MatchParams extracts from a pathname.
type Params struct {
	// Named maps a parameter name to its value.
	Named map[string]string
	// Splat supplies values for wildcard captures.
	Splat Splat
}

// Splat is the value set for the wildcard captures of a pattern: either a
// single value reused for every splat occurrence, or a sequence consumed left
// to right, one value per occurrence. The zero Splat supplies no values.
type Splat struct {
	values   []string
	sequence bool
}

// SplatString returns a single splat value, reused for every splat occurrence
// in the pattern.
func SplatString(value string) Splat {
	return Splat{values: []string{value}}
}

// SplatValues returns a splat sequence, consumed left to right.
func SplatValues(values ...string) Splat {
	return Splat{values: values, sequence: true}
}

// at returns the value for the i-th splat occurrence.
func (s Splat) at(i int) (string, bool) {
	if !s.sequence {
		if len(s.values) == 0 {
			return "", false
		}

		return s.values[0], true
	}

	if i >= len(s.values) {
		return "", false
	}

	return s.values[i], true
}

func (p *Params) named(name string) (string, bool) {
	if p == nil || p.Named == nil {
		return "", false
	}

	value, ok := p.Named[name]

	return value, ok
}

func (p *Params) splatAt(i int) (string, bool) {
	if p == nil {
		return "", false
	}

	return p.Splat.at(i)
}
