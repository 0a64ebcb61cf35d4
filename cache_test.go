package routepattern_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	routepattern "github.com/routekit/go-routepattern"
)

func TestCompilePatternIsCached(t *testing.T) {
	first, err := routepattern.CompilePattern("/cached/:id")
	require.NoError(t, err)

	second, err := routepattern.CompilePattern("/cached/:id")
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestCompilePatternConcurrentFirstUse(t *testing.T) {
	const workers = 8

	results := make([]*routepattern.CompiledPattern, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			cp, err := routepattern.CompilePattern("/concurrent/:id/**")
			assert.NoError(t, err)
			results[i] = cp
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Same(t, results[0], results[i])
	}
}

func TestCompilePatternMalformedNotCached(t *testing.T) {
	_, err := routepattern.CompilePattern("/broken(")
	assert.ErrorIs(t, err, routepattern.ErrMalformedPattern)

	// Deterministic failure on every lookup.
	_, err = routepattern.CompilePattern("/broken(")
	assert.ErrorIs(t, err, routepattern.ErrMalformedPattern)
}
