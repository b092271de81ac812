// SPDX-License-Identifier: MIT

package catalog_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/realdual/catalog"
	"github.com/katalvlaran/realdual/curve"
	"github.com/katalvlaran/realdual/dual"
	"github.com/katalvlaran/realdual/expr"
)

func TestBuiltin(t *testing.T) {
	c := catalog.Builtin()
	want := []string{"cos", "exp", "gauss", "lift", "reciprocal", "scene", "sin"}
	if d := cmp.Diff(want, c.Names()); d != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", d)
	}
	assert.Equal(t, len(want), c.Len())

	p, err := c.Compile("lift")
	require.NoError(t, err)
	got, err := p.EvalDual(dual.Variable(2))
	require.NoError(t, err)
	assert.True(t, got.Equal(dual.MustNew(15, 8)))

	e, ok := c.Lookup("scene")
	require.True(t, ok)
	assert.Equal(t, -5.7, e.From)
	assert.Equal(t, 5.7, e.To)
}

// TestBuiltin_DerivativesAgree cross-checks every shipped function on its
// own interval.
func TestBuiltin_DerivativesAgree(t *testing.T) {
	c := catalog.Builtin()
	for _, e := range c.Entries() {
		t.Run(e.Name, func(t *testing.T) {
			p, err := c.Compile(e.Name)
			require.NoError(t, err)
			r, err := curve.Check(p, e.From, e.To, curve.WithStep(1e-7), curve.WithSkipUndefined())
			require.NoError(t, err)
			assert.True(t, r.Within(1e-5), "max error %g at %g", r.MaxAbsError, r.At)
		})
	}
}

func TestCompile_NotFound(t *testing.T) {
	_, err := catalog.Builtin().Compile("nope")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	_, ok := catalog.Builtin().Lookup("nope")
	assert.False(t, ok)
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name    string
		entries []catalog.Entry
		want    error
	}{
		{"empty name", []catalog.Entry{{Expr: "x", From: 0, To: 1}}, catalog.ErrInvalidEntry},
		{"bad expr", []catalog.Entry{{Name: "a", Expr: "x +", From: 0, To: 1}}, expr.ErrSyntax},
		{"reversed", []catalog.Entry{{Name: "a", Expr: "x", From: 1, To: 0}}, catalog.ErrInvalidEntry},
		{"empty interval", []catalog.Entry{{Name: "a", Expr: "x"}}, catalog.ErrInvalidEntry},
		{"duplicate", []catalog.Entry{
			{Name: "a", Expr: "x", From: 0, To: 1},
			{Name: "a", Expr: "x^2", From: 0, To: 1},
		}, catalog.ErrDuplicateName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.New(tc.entries...)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := catalog.New(catalog.Entry{Name: "a", Expr: "y", From: 0, To: 1})
	assert.ErrorIs(t, err, catalog.ErrInvalidEntry)
	assert.ErrorIs(t, err, expr.ErrUnknownName)
}

func TestLoadFile(t *testing.T) {
	c, err := catalog.LoadFile("testdata/functions.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"bump", "cubic", "lift"}, c.Names())

	e, ok := c.Lookup("cubic")
	require.True(t, ok)
	want := catalog.Entry{Name: "cubic", Expr: "x^3 - 2*x", From: -2, To: 2, Description: "odd cubic"}
	assert.Equal(t, want, e)

	p, err := c.Compile("cubic")
	require.NoError(t, err)
	_, slope, err := curve.Derivative(p, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1, slope, 1e-12)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := catalog.LoadFile("testdata/bad_key.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field expression not found")

	_, err = catalog.LoadFile("testdata/bad_expr.yaml")
	assert.ErrorIs(t, err, catalog.ErrInvalidEntry)
	assert.ErrorIs(t, err, expr.ErrSyntax)

	_, err = catalog.LoadFile("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestLoad_Empty(t *testing.T) {
	c, err := catalog.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, c.Len())
}

func TestMerge(t *testing.T) {
	user, err := catalog.LoadFile("testdata/functions.yaml")
	require.NoError(t, err)

	m := catalog.Builtin().Merge(user)
	assert.Equal(t, 9, m.Len())

	// the user file overrides the builtin lift with the factored form
	e, _ := m.Lookup("lift")
	assert.Equal(t, "(x + 1)*(x + 3)", e.Expr)
	p, err := m.Compile("lift")
	require.NoError(t, err)
	got, err := p.EvalDual(dual.Variable(2))
	require.NoError(t, err)
	assert.True(t, got.Equal(dual.MustNew(15, 8)))
}
