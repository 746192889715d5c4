// The colour-4 phases: quadricolours, 1-handle markers, highlight
// edges, double-1 edges and remainder edges.
package kirbygraph

import (
	"fmt"

	"github.com/katalvlaran/kirby/link"
)

// quadricolours scans the fused graph for ordered 4-cycles coloured
// 0,1,2,3 in sequence: nodes (a,b,c,d) with a–b colour 0, b–c colour
// 1, c–d colour 2 and d–a colour 3.
func (g *Graph) quadricolours() [][4]int32 {
	var out [][4]int32
	for _, i := range g.sortedNodes() {
		b := g.adj[i][0]
		d := g.adj[i][3]
		if b == none || d == none {
			continue
		}
		c := g.adj[b][1]
		if c == none || c != g.adj[d][2] {
			continue
		}
		out = append(out, [4]int32{i, b, c, d})
	}

	return out
}

// matchQuadricolours picks, per 2-handle, the graph quadricolour whose
// crossing set equals the link-level quadricolour's crossing pair.
func (g *Graph) matchQuadricolours(all [][4]int32, linkQuadris [][2]int) ([][4]int32, error) {
	out := make([][4]int32, len(linkQuadris))
	for i, lq := range linkQuadris {
		want := map[int]bool{lq[0]: true, lq[1]: true}
		found := false
		for _, q := range all {
			have := map[int]bool{}
			for _, n := range q {
				have[g.nodes[n].Comp] = true
			}
			if len(have) == len(want) && have[lq[0]] && have[lq[1]] {
				out[i] = q
				found = true

				break
			}
		}
		if !found {
			return nil, fmt.Errorf("kirbygraph: no graph quadricolour matches 2-handle %d: %w",
				i, link.ErrNoQuadricolour)
		}
	}

	return out, nil
}

// addQuadriEdges installs three colour-4 edges per quadricolour
// (a,b,c,d): a–b, c–d, and between the colour-1 neighbours of d and a.
func (g *Graph) addQuadriEdges(quadris [][4]int32) {
	for _, q := range quadris {
		a, b, c, d := q[0], q[1], q[2], q[3]
		g.adj[a][4], g.adj[b][4] = b, a
		g.adj[c][4], g.adj[d][4] = d, c

		p4 := g.adj[d][1]
		p5 := g.adj[a][1]
		g.adj[p4][4], g.adj[p5][4] = p5, p4
	}
}

// markerNodes translates the marked crossings of each 1-handle into
// the node pair carrying its colour-4 marker edge. The node IDs depend
// on the crossings' signs: +1 picks (7, 4), −1 picks (3, 8).
func markerNodes(marks [][2]int, signs []int) [][2]Node {
	out := make([][2]Node, len(marks))
	for i, m := range marks {
		left, right := m[0], m[1]
		var pair [2]Node
		if signs[left] == 1 {
			pair[0] = Node{ID: 7, Strand: 0, Comp: left}
		} else {
			pair[0] = Node{ID: 3, Strand: 0, Comp: left}
		}
		if signs[right] == 1 {
			pair[1] = Node{ID: 4, Strand: 0, Comp: right}
		} else {
			pair[1] = Node{ID: 8, Strand: 0, Comp: right}
		}
		out[i] = pair
	}

	return out
}

// addMarkerEdges installs one colour-4 edge per 1-handle.
func (g *Graph) addMarkerEdges(pairs [][2]Node) {
	for _, p := range pairs {
		a, b := g.index[p[0]], g.index[p[1]]
		g.adj[a][4], g.adj[b][4] = b, a
	}
}

// Highlight node pairings by crossing role: which internal node IDs
// receive colour-4 edges at an under-passage, an over-passage, and a
// curl.
var (
	highlightUnderPairs = [][2]int{{1, 6}, {2, 5}, {3, 4}, {7, 8}}
	highlightOverPairs  = [][2]int{{1, 2}, {5, 6}}
	highlightCurlPairs  = [][2]int{{1, 4}, {2, 3}}
)

// addHighlightEdges installs colour-4 edges at every crossing visited
// by the highlight walks, the pairing chosen by the crossing's role.
// Curl pairs are guarded: both ends must still lack a colour-4
// neighbour.
func (g *Graph) addHighlightEdges(walks [][]link.Highlight) {
	for _, walk := range walks {
		for _, h := range walk {
			switch {
			case h.Curl:
				for _, p := range highlightCurlPairs {
					a, aok := g.index[Node{ID: p[0], Strand: 0, Comp: h.Cross}]
					b, bok := g.index[Node{ID: p[1], Strand: 0, Comp: h.Cross}]
					if aok && bok && g.adj[a][4] == none && g.adj[b][4] == none {
						g.adj[a][4], g.adj[b][4] = b, a
					}
				}
			case h.Strand == 0:
				g.pairByID(h.Cross, highlightUnderPairs)
			default:
				g.pairByID(h.Cross, highlightOverPairs)
			}
		}
	}
}

// pairByID installs colour-4 edges between the listed internal node
// IDs of one crossing.
func (g *Graph) pairByID(comp int, pairs [][2]int) {
	for _, p := range pairs {
		a, aok := g.index[Node{ID: p[0], Strand: 0, Comp: comp}]
		b, bok := g.index[Node{ID: p[1], Strand: 0, Comp: comp}]
		if aok && bok {
			g.adj[a][4], g.adj[b][4] = b, a
		}
	}
}

// addDoubleOneEdges doubles colour-1 edges with colour-4 edges
// wherever both endpoints still lack a colour-4 neighbour.
func (g *Graph) addDoubleOneEdges() {
	for _, i := range g.sortedNodes() {
		y := g.adj[i][1]
		if y == none || !nodeLess(g.nodes[i], g.nodes[y]) {
			continue
		}
		if g.adj[i][4] == none && g.adj[y][4] == none {
			g.adj[i][4], g.adj[y][4] = y, i
		}
	}
}

// addRemainderEdges pairs up the remaining colour-4-less nodes: from
// each, walk alternately along colours 1 and 4 until another
// colour-4-less node appears, then join the two.
func (g *Graph) addRemainderEdges() error {
	idxs := g.sortedNodes()
	limit := 4 * len(idxs)
	for _, x := range idxs {
		if g.adj[x][4] != none {
			continue
		}
		y := x
		for j := 0; ; j++ {
			if j > limit {
				return ErrInvariant
			}
			colour := 1
			if j%2 == 1 {
				colour = 4
			}
			y = g.adj[y][colour]
			if y == none {
				return ErrInvariant
			}
			if g.adj[y][4] == none {
				break
			}
		}
		g.adj[x][4], g.adj[y][4] = y, x
	}

	return nil
}
