package kirbygraph_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kirby/kirbygraph"
	"github.com/katalvlaran/kirby/link"
)

// pinnedPD is the 5-crossing Kirby diagram (one 1-handle, one
// 0-framed 2-handle) used by the round-trip tests.
const pinnedPD = "PD: [(4,8,1,9),(9,3,10,4),(1,5,2,6),(6,2,7,3),(7,5,8,10)]"

// framed builds and self-frames a diagram.
func framed(t *testing.T, pd, framings string, dim int) *link.Diagram {
	t.Helper()
	code, err := link.ParseCode(pd)
	require.NoError(t, err)
	l, err := link.FromCode(code)
	require.NoError(t, err)
	fr, err := link.ParseFramings(framings)
	require.NoError(t, err)
	d, err := link.NewDiagram(l, fr)
	require.NoError(t, err)
	out, err := d.SelfFrame(dim)
	require.NoError(t, err)

	return out
}

// requireMatching asserts the per-colour perfect-matching invariant
// through the public surface.
func requireMatching(t *testing.T, g *kirbygraph.Graph, colours int) {
	t.Helper()
	for _, n := range g.Nodes() {
		for c := 0; c < colours; c++ {
			nb, ok := g.Neighbour(n, c)
			require.True(t, ok, "node %v colour %d", n, c)
			back, ok := g.Neighbour(nb, c)
			require.True(t, ok)
			require.Equal(t, n, back, "colour %d not symmetric at %v", c, n)
			require.NotEqual(t, n, nb, "self-loop at %v colour %d", n, c)
		}
	}
}

// TestBuild_Dim3_TwoCurlUnknot checks the fully hand-checkable case:
// a 0-framed unknot drawn with one curl gains a cancelling curl and a
// fix-up pair of curls, and the four curl gadgets fuse into a 16-node
// 4-coloured graph.
func TestBuild_Dim3_TwoCurlUnknot(t *testing.T) {
	d := framed(t, "(1,2,2,1)", "0", 3)
	require.Len(t, d.Link().Code(), 4) // curl + cancel + fix-up pair

	g, err := kirbygraph.Build(d, 3)
	require.NoError(t, err)
	require.Equal(t, 16, g.Size())
	requireMatching(t, g, 4)

	// 16 nodes × 4 colours / 2 = 32 edges.
	gl := g.GluingList()
	require.Len(t, gl, 32)
	for _, e := range gl {
		require.Less(t, e.From, e.To)
		require.GreaterOrEqual(t, e.Facet, 0)
		require.Less(t, e.Facet, 4)
	}
}

// TestBuild_Dim3_Pinned runs the dim-3 surgery build of the pinned
// diagram: five crossing gadgets plus one framing curl.
func TestBuild_Dim3_Pinned(t *testing.T) {
	d := framed(t, pinnedPD, "x 0", 3)
	require.Len(t, d.Link().Code(), 6)

	g, err := kirbygraph.Build(d, 3)
	require.NoError(t, err)
	require.Equal(t, 5*8+4, g.Size())
	requireMatching(t, g, 4)
}

// TestBuild_Dim4_Unknot builds the 4-manifold of a −3-framed unknot:
// three same-sign framing curls fuse into a 12-node graph whose
// quadricolour and double-1 phases saturate colour 4 exactly.
func TestBuild_Dim4_Unknot(t *testing.T) {
	d := framed(t, "(1,2,2,1)", "-3", 4)
	g, err := kirbygraph.Build(d, 4)
	require.NoError(t, err)
	require.Equal(t, 4, g.Dim())
	require.Equal(t, 12, g.Size())
	requireMatching(t, g, 5)

	// 12 nodes × 5 colours / 2 = 30 edges.
	require.Len(t, g.GluingList(), 30)
}

// TestBuild_Dim4_PositiveFraming covers the positive-curl path.
func TestBuild_Dim4_PositiveFraming(t *testing.T) {
	d := framed(t, "(1,2,2,1)", "2", 4)
	g, err := kirbygraph.Build(d, 4)
	require.NoError(t, err)
	require.Equal(t, 16, g.Size())
	requireMatching(t, g, 5)
}

// TestBuild_Dim4_Pinned is the golden round trip: the pinned PD code
// with framings "x 0" assembles into a 5-coloured graph satisfying
// the perfect-matching invariant on every colour.
func TestBuild_Dim4_Pinned(t *testing.T) {
	d := framed(t, pinnedPD, "x 0", 4)
	g, err := kirbygraph.Build(d, 4)
	require.NoError(t, err)
	require.Equal(t, 5*8+4, g.Size())
	requireMatching(t, g, 5)
}

// TestBuild_Deterministic compares two independent builds of the same
// diagram edge for edge.
func TestBuild_Deterministic(t *testing.T) {
	build := func() []kirbygraph.Gluing {
		g, err := kirbygraph.Build(framed(t, pinnedPD, "x 0", 4), 4)
		require.NoError(t, err)

		return g.GluingList()
	}
	require.Empty(t, cmp.Diff(build(), build()))
}

// TestBuild_BadDimension rejects anything but 3 and 4.
func TestBuild_BadDimension(t *testing.T) {
	d := framed(t, "(1,2,2,1)", "0", 3)
	_, err := kirbygraph.Build(d, 5)
	require.ErrorIs(t, err, kirbygraph.ErrDimension)
}
