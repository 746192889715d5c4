// Package kirbygraph assembles the edge-coloured graph of a decorated
// link diagram: a 5-valent graph whose dual is a piecewise-linear
// triangulation of the 4-manifold obtained by attaching 1- and
// 2-handles along the link (or, stopping at four colours, of the
// 3-manifold obtained by integer Dehn surgery).
//
// The build runs in phases over an arena-backed node store:
//
//	0. crossing gadgets — each crossing contributes a canonical
//	   subgraph (8 internal nodes for a true crossing, 4 for a curl)
//	   with its colour-0..3 edges hard-wired;
//	1. PD substitution — gadget boundary nodes are renamed onto the
//	   strand labels of the PD code;
//	2. fusion — boundary nodes representing the two ends of one strand
//	   are spliced away, leaving a closed 4-coloured graph;
//	3. quadricolours — per 2-handle, colour-4 edges across the
//	   quadricolour matching the link-level site;
//	4. 1-handle markers — one colour-4 edge per 1-handle, at nodes
//	   picked by the marked crossings' signs;
//	5. highlights — colour-4 edges along the highlight walk;
//	6. double-1 edges — colour-4 edges doubling colour-1 edges between
//	   still-unsaturated nodes;
//	7. remainder edges — an alternating colour-1/colour-4 walk pairs
//	   up whatever is left.
//
// On completion every node has exactly one neighbour per colour; the
// per-colour perfect matching is verified and exported as a sorted
// gluing list for the triangulation builder.
package kirbygraph
