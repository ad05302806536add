package texmath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/texmath"
	"github.com/zephyrtronium/texmath/internal/testcases"
)

func TestRoundTripFiles(t *testing.T) {
	files := []string{"testdata/roundtrip.yaml", "testdata/roundtrip.txt"}
	for _, file := range files {
		file := file
		t.Run(file, func(t *testing.T) {
			set, err := testcases.Load(file)
			require.NoError(t, err)
			require.NotZero(t, set.Len())
			for _, g := range set {
				g := g
				t.Run(g.Name, func(t *testing.T) {
					for _, c := range g.Cases {
						roundTrip(t, c)
					}
				})
			}
		})
	}
}

func roundTrip(t *testing.T, c testcases.Case) {
	t.Helper()
	want, err := texmath.ParseTree(c.Expr)
	if !assert.NoError(t, err, "parsing %q", c.Expr) {
		return
	}
	if c.Tree != "" {
		assert.Equal(t, c.Tree, want.String(), "tree of %q", c.Expr)
	}
	s, err := texmath.Render(want)
	if !assert.NoError(t, err, "composing %q", c.Expr) {
		return
	}
	if c.Want != "" {
		assert.Equal(t, c.Want, s, "canonical form of %q", c.Expr)
	}
	got, err := texmath.ParseTree(s)
	if !assert.NoError(t, err, "parsing %q composed from %q", s, c.Expr) {
		return
	}
	assert.True(t, want.Equal(got), "%q composed to %q, which parses as %v instead of %v", c.Expr, s, got, want)
	again, err := texmath.Render(got)
	if assert.NoError(t, err) {
		assert.Equal(t, s, again, "composing %q is not stable", c.Expr)
	}
}
