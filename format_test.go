package routepattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	routepattern "github.com/routekit/go-routepattern"
)

func namedParams(pairs ...string) *routepattern.Params {
	named := make(map[string]string, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		named[pairs[i]] = pairs[i+1]
	}

	return &routepattern.Params{Named: named}
}

func TestFormatPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		params  *routepattern.Params
		want    string
	}{
		{
			name:    "literal only",
			pattern: "/about",
			params:  nil,
			want:    "/about",
		},
		{
			name:    "named param",
			pattern: "/users/:id",
			params:  namedParams("id", "42"),
			want:    "/users/42",
		},
		{
			name:    "optional group elided cleanly",
			pattern: "/users/:id(/:tab)",
			params:  namedParams("id", "1"),
			want:    "/users/1",
		},
		{
			name:    "optional group filled",
			pattern: "/users/:id(/:tab)",
			params:  namedParams("id", "1", "tab", "profile"),
			want:    "/users/1/profile",
		},
		{
			name:    "nested groups fully elided",
			pattern: "/a(/:b(/:c))",
			params:  nil,
			want:    "/a",
		},
		{
			name:    "nested groups outer filled",
			pattern: "/a(/:b(/:c))",
			params:  namedParams("b", "1"),
			want:    "/a/1",
		},
		{
			name:    "nested groups fully filled",
			pattern: "/a(/:b(/:c))",
			params:  namedParams("b", "1", "c", "2"),
			want:    "/a/1/2",
		},
		{
			name:    "greedy splat keeps separators",
			pattern: "/files/**",
			params:  &routepattern.Params{Splat: routepattern.SplatString("a/b/c")},
			want:    "/files/a/b/c",
		},
		{
			name:    "splat value is URI-escaped",
			pattern: "/files/**",
			params:  &routepattern.Params{Splat: routepattern.SplatString("a/b c")},
			want:    "/files/a/b%20c",
		},
		{
			name:    "named param is component-escaped",
			pattern: "/users/:id",
			params:  namedParams("id", "a/b"),
			want:    "/users/a%2Fb",
		},
		{
			name:    "scalar splat reused per occurrence",
			pattern: "/a/*/b/*",
			params:  &routepattern.Params{Splat: routepattern.SplatString("x")},
			want:    "/a/x/b/x",
		},
		{
			name:    "splat sequence consumed left to right",
			pattern: "/a/*/b/*",
			params:  &routepattern.Params{Splat: routepattern.SplatValues("x", "y")},
			want:    "/a/x/b/y",
		},
		{
			name:    "splat missing inside group is dropped",
			pattern: "/files(/*)",
			params:  nil,
			want:    "/files/",
		},
		{
			name:    "escaped parens render literally",
			pattern: `/a\(:id\)`,
			params:  namedParams("id", "1"),
			want:    "/a(1)",
		},
		{
			name:    "separator runs collapse",
			pattern: "/a//b",
			params:  nil,
			want:    "/a/b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := routepattern.FormatPattern(tt.pattern, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatPatternErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		params  *routepattern.Params
		want    error
	}{
		{
			name:    "missing named param",
			pattern: "/users/:id",
			params:  nil,
			want:    routepattern.ErrMissingParameter,
		},
		{
			name:    "missing splat",
			pattern: "/files/**",
			params:  nil,
			want:    routepattern.ErrMissingParameter,
		},
		{
			name:    "splat sequence too short",
			pattern: "/a/*/b/*",
			params:  &routepattern.Params{Splat: routepattern.SplatValues("x")},
			want:    routepattern.ErrMissingParameter,
		},
		{
			name:    "unterminated group",
			pattern: "/a(/:b",
			params:  namedParams("b", "1"),
			want:    routepattern.ErrMalformedPattern,
		},
		{
			name:    "close paren without open group",
			pattern: "/a)/b",
			params:  nil,
			want:    routepattern.ErrMalformedPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := routepattern.FormatPattern(tt.pattern, tt.params)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
