package routepattern

import "sync"

// patternStore memoizes compilation by raw pattern string. Entries are never
// evicted: route tables are small and static in practice, so a monotonically
// growing map buys O(1) repeat lookups. Compilation failures are not cached;
// they are deterministic and recompiling a bad pattern is cheap.
type patternStore struct {
	mu       sync.RWMutex
	patterns map[string]*CompiledPattern
}

func newPatternStore() *patternStore {
	return &patternStore{patterns: make(map[string]*CompiledPattern)}
}

// compiledPatterns lives for the whole process. Compiled patterns are
// immutable, so sharing a stored entry between goroutines is safe.
var compiledPatterns = newPatternStore()

// getOrCompile returns the compiled form of pattern, compiling and storing it
// on first use.
func (s *patternStore) getOrCompile(pattern string) (*CompiledPattern, error) {
	s.mu.RLock()
	cp, ok := s.patterns[pattern]
	s.mu.RUnlock()

	if ok {
		return cp, nil
	}

	cp, err := compile(pattern, defaultOptions)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if stored, ok := s.patterns[pattern]; ok {
		// A concurrent first compilation won the race; keep the stored value
		// so repeat lookups stay identical.
		cp = stored
	} else {
		s.patterns[pattern] = cp
	}
	s.mu.Unlock()

	return cp, nil
}
