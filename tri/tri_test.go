package tri_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kirby/tri"
)

// TestNew_Dimensions validates the dimension range.
func TestNew_Dimensions(t *testing.T) {
	_, err := tri.New(1)
	require.ErrorIs(t, err, tri.ErrDimension)
	_, err = tri.New(16)
	require.ErrorIs(t, err, tri.ErrDimension)

	tr, err := tri.New(4)
	require.NoError(t, err)
	require.Equal(t, 4, tr.Dim())
	require.Zero(t, tr.Size())
}

// TestJoin covers the gluing rules and validity.
func TestJoin(t *testing.T) {
	tr, err := tri.New(3)
	require.NoError(t, err)
	tr.NewSimplices(2)
	require.Equal(t, 2, tr.Size())

	require.NoError(t, tr.Join(0, 0, 1))
	require.True(t, tr.IsValid())

	// Already glued.
	require.ErrorIs(t, tr.Join(0, 0, 1), tri.ErrInvalidGluing)
	// Self gluing.
	require.ErrorIs(t, tr.Join(0, 1, 0), tri.ErrInvalidGluing)
	// Out of range.
	require.ErrorIs(t, tr.Join(0, 7, 1), tri.ErrInvalidGluing)
	require.ErrorIs(t, tr.Join(0, 1, 5), tri.ErrInvalidGluing)
}

// chain builds n d-simplices glued in a path along the given facets.
func chain(t *testing.T, dim int, facets ...int) *tri.Triangulation {
	t.Helper()
	tr, err := tri.New(dim)
	require.NoError(t, err)
	tr.NewSimplices(len(facets) + 1)
	for i, f := range facets {
		require.NoError(t, tr.Join(i, f, i+1))
	}

	return tr
}

// TestIsoSig_Invariance checks that the signature ignores simplex
// numbering and global facet relabelling.
func TestIsoSig_Invariance(t *testing.T) {
	a := chain(t, 3, 0, 1)
	sig := a.IsoSig()
	require.NotEmpty(t, sig)

	// Same shape, simplices introduced in the opposite order.
	b, err := tri.New(3)
	require.NoError(t, err)
	b.NewSimplices(3)
	require.NoError(t, b.Join(2, 0, 1))
	require.NoError(t, b.Join(1, 1, 0))
	require.Equal(t, sig, b.IsoSig())

	// Same shape under a facet relabelling (colours 2,3 instead of
	// 0,1).
	c := chain(t, 3, 2, 3)
	require.Equal(t, sig, c.IsoSig())
}

// TestIsoSig_Distinguishes separates non-isomorphic pairings.
func TestIsoSig_Distinguishes(t *testing.T) {
	path := chain(t, 3, 0, 1)

	// A triangle uses one more gluing than a path.
	tri3, err := tri.New(3)
	require.NoError(t, err)
	tri3.NewSimplices(3)
	require.NoError(t, tri3.Join(0, 0, 1))
	require.NoError(t, tri3.Join(1, 1, 2))
	require.NoError(t, tri3.Join(2, 2, 0))
	require.NotEqual(t, path.IsoSig(), tri3.IsoSig())

	// Different sizes always differ.
	require.NotEqual(t, chain(t, 3, 0).IsoSig(), path.IsoSig())
}

// TestIsoSig_Empty pins the degenerate case.
func TestIsoSig_Empty(t *testing.T) {
	tr, err := tri.New(3)
	require.NoError(t, err)
	require.Equal(t, "0", tr.IsoSig())
}

// TestIsoSig_Deterministic recomputes a moderately large signature.
func TestIsoSig_Deterministic(t *testing.T) {
	a := chain(t, 4, 0, 1, 2, 3, 4, 0, 1)
	require.Equal(t, a.IsoSig(), a.IsoSig())
}
