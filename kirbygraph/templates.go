// The six crossing gadgets. Each link crossing contributes one of
// these canonical subgraphs: nodes 1–8 are internal to a true
// crossing (1–4 for a curl), higher IDs are boundary nodes sitting on
// a strand slot 1–4 of the PD tuple, consumed later by fusion.
package kirbygraph

// tmplEdge is one hard-wired edge of a gadget: node IDs and a colour.
type tmplEdge struct {
	a, b, colour int
}

// template couples a gadget's edge list with the strand slot each
// node ID occupies.
type template struct {
	edges  []tmplEdge
	strand func(id int) int
}

// crossStrand lays out a true crossing's 24 nodes: 1–8 internal, then
// four boundary nodes per strand slot.
func crossStrand(id int) int {
	if id <= 8 {
		return 0
	}

	return (id-9)/4 + 1
}

// curlStrand lays out a curl's 12 nodes: 1–4 internal, 5–8 on slot a,
// 9–12 on slot b.
func curlStrand(a, b int) func(int) int {
	return func(id int) int {
		switch {
		case id <= 4:
			return 0
		case id <= 8:
			return a
		default:
			return b
		}
	}
}

var posCross = template{
	strand: crossStrand,
	edges: []tmplEdge{
		{1, 6, 0}, {1, 16, 1}, {1, 8, 2}, {1, 2, 3},
		{2, 5, 0}, {2, 13, 1}, {2, 3, 2},
		{3, 11, 0}, {3, 12, 1}, {3, 8, 3},
		{4, 10, 0}, {4, 9, 1}, {4, 5, 2}, {4, 7, 3},
		{5, 24, 1}, {5, 6, 3},
		{6, 21, 1}, {6, 7, 2},
		{7, 19, 0}, {7, 20, 1},
		{8, 18, 0}, {8, 17, 1},
		{14, 23, 0},
		{15, 22, 0},
	},
}

var negCross = template{
	strand: crossStrand,
	edges: []tmplEdge{
		{1, 6, 0}, {1, 24, 1}, {1, 8, 2}, {1, 2, 3},
		{2, 5, 0}, {2, 21, 1}, {2, 3, 2},
		{3, 19, 0}, {3, 20, 1}, {3, 8, 3},
		{4, 18, 0}, {4, 17, 1}, {4, 5, 2}, {4, 7, 3},
		{5, 16, 1}, {5, 6, 3},
		{6, 13, 1}, {6, 7, 2},
		{7, 11, 0}, {7, 12, 1},
		{8, 10, 0}, {8, 9, 1},
		{14, 23, 0},
		{15, 22, 0},
	},
}

// The two positive curls share their edge shape and differ only in
// which strand slots the boundary nodes occupy; likewise the two
// negative curls.
var posCurlEdges = []tmplEdge{
	{1, 6, 0}, {1, 9, 1}, {1, 2, 2}, {1, 4, 3},
	{2, 7, 0}, {2, 8, 1}, {2, 3, 3},
	{3, 10, 0}, {3, 5, 1}, {3, 4, 2},
	{4, 11, 0}, {4, 12, 1},
}

var negCurlEdges = []tmplEdge{
	{1, 6, 0}, {1, 5, 1}, {1, 2, 2}, {1, 4, 3},
	{2, 7, 0}, {2, 12, 1}, {2, 3, 3},
	{3, 10, 0}, {3, 9, 1}, {3, 4, 2},
	{4, 11, 0}, {4, 8, 1},
}

var (
	posCurlA = template{edges: posCurlEdges, strand: curlStrand(1, 2)}
	posCurlB = template{edges: posCurlEdges, strand: curlStrand(4, 3)}
	negCurlA = template{edges: negCurlEdges, strand: curlStrand(1, 4)}
	negCurlB = template{edges: negCurlEdges, strand: curlStrand(2, 3)}
)
