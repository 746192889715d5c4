// The arena-backed edge-coloured graph and its structural operations:
// gadget placement, PD substitution and fusion.
package kirbygraph

import (
	"sort"

	"github.com/katalvlaran/kirby/link"
)

// none marks an empty adjacency slot.
const none = int32(-1)

// Graph is a node arena with five colour slots per node. Deleted
// nodes are tombstoned; adjacency rewires happen in place.
type Graph struct {
	dim   int
	nodes []Node
	adj   [][5]int32
	alive []bool
	index map[Node]int32
}

// newGraph returns an empty graph for the given target dimension.
func newGraph(dim int) *Graph {
	return &Graph{dim: dim, index: make(map[Node]int32)}
}

// Dim returns the target dimension (3 or 4).
func (g *Graph) Dim() int { return g.dim }

// Size returns the number of live nodes.
func (g *Graph) Size() int {
	n := 0
	for _, a := range g.alive {
		if a {
			n++
		}
	}

	return n
}

// ensure returns the arena slot of n, creating it if absent.
func (g *Graph) ensure(n Node) int32 {
	if idx, ok := g.index[n]; ok {
		return idx
	}
	idx := int32(len(g.nodes))
	g.nodes = append(g.nodes, n)
	g.adj = append(g.adj, [5]int32{none, none, none, none, none})
	g.alive = append(g.alive, true)
	g.index[n] = idx

	return idx
}

// addEdge wires nodes a and b as mutual colour-c neighbours.
func (g *Graph) addEdge(a, b Node, colour int) {
	ai, bi := g.ensure(a), g.ensure(b)
	g.adj[ai][colour] = bi
	g.adj[bi][colour] = ai
}

// sortedNodes returns the live arena slots in canonical node order.
func (g *Graph) sortedNodes() []int32 {
	out := make([]int32, 0, len(g.nodes))
	for i, a := range g.alive {
		if a {
			out = append(out, int32(i))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return nodeLess(g.nodes[out[i]], g.nodes[out[j]])
	})

	return out
}

// Nodes returns the live nodes in canonical order.
func (g *Graph) Nodes() []Node {
	idxs := g.sortedNodes()
	out := make([]Node, len(idxs))
	for i, idx := range idxs {
		out[i] = g.nodes[idx]
	}

	return out
}

// Neighbour returns the colour-c neighbour of n, if any.
func (g *Graph) Neighbour(n Node, colour int) (Node, bool) {
	idx, ok := g.index[n]
	if !ok || !g.alive[idx] {
		return Node{}, false
	}
	nb := g.adj[idx][colour]
	if nb == none || !g.alive[nb] {
		return Node{}, false
	}

	return g.nodes[nb], true
}

// placeGadget disjoint-unions one crossing gadget into the graph,
// stamping every node with the crossing's index as its component.
func (g *Graph) placeGadget(t template, comp int) {
	for _, e := range t.edges {
		a := Node{ID: e.a, Strand: t.strand(e.a), Comp: comp}
		b := Node{ID: e.b, Strand: t.strand(e.b), Comp: comp}
		g.addEdge(a, b, e.colour)
	}
}

// pdSub rewrites every boundary node's strand slot 1–4 to the actual
// strand label of its crossing's PD tuple.
func (g *Graph) pdSub(code link.Code) {
	for i := range g.nodes {
		slot := g.nodes[i].Strand
		if !g.alive[i] || slot < 1 || slot > 4 {
			continue
		}
		renamed := g.nodes[i]
		renamed.Strand = code[renamed.Comp][slot-1]
		delete(g.index, g.nodes[i])
		g.nodes[i] = renamed
		g.index[renamed] = int32(i)
	}
}

// fuseList pairs up the boundary nodes representing the two ends of
// each strand: distinct components, equal strand labels, and
// complementary template positions (id mod 4 pairing 1↔0 and 2↔3).
func (g *Graph) fuseList() [][2]int32 {
	idxs := g.sortedNodes()
	var out [][2]int32
	for _, i := range idxs {
		ni := g.nodes[i]
		if ni.Strand == 0 {
			continue
		}
		for _, j := range idxs {
			nj := g.nodes[j]
			if nj.Strand == 0 {
				continue
			}
			if ni.Comp < nj.Comp && ni.Strand == nj.Strand &&
				ni.ID%4 == (5-nj.ID%4)%4 {
				out = append(out, [2]int32{i, j})
			}
		}
	}

	return out
}

// fuse splices a boundary pair out of the graph: for each colour the
// two outer neighbours become each other's neighbours, then both
// boundary nodes are tombstoned.
func (g *Graph) fuse(a, b int32) {
	for c := 0; c < 5; c++ {
		na, nb := g.adj[a][c], g.adj[b][c]
		if na == none || nb == none {
			continue
		}
		g.adj[na][c] = nb
		g.adj[nb][c] = na
	}
	g.alive[a] = false
	g.alive[b] = false
	delete(g.index, g.nodes[a])
	delete(g.index, g.nodes[b])
}

// checkMatching verifies that for every colour below the given count,
// the colour's edge set is a perfect matching on the live nodes.
func (g *Graph) checkMatching(colours int) error {
	for i, a := range g.alive {
		if !a {
			continue
		}
		for c := 0; c < colours; c++ {
			nb := g.adj[i][c]
			if nb == none || !g.alive[nb] || g.adj[nb][c] != int32(i) {
				return ErrInvariant
			}
		}
	}

	return nil
}
