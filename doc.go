// Package kirby is a computational core for low-dimensional topology:
// finite-index subgroup enumeration for group presentations, and the
// construction of edge-coloured graphs (and their dual triangulations)
// from decorated link diagrams.
//
// 🧭 What is kirby?
//
//	Two tightly-coupled engines and the arithmetic they stand on:
//
//	  • covers/     — enumerate the index-n covers of a finitely
//	    presented group (2 ≤ n ≤ 11) up to conjugacy, emitting each
//	    subgroup's presentation via Reidemeister–Schreier rewriting
//	  • kirbygraph/ — turn a PD code plus framing sequence into a
//	    5-coloured graph whose dual triangulates the 4-manifold built
//	    by attaching 1- and 2-handles along the link (or, with four
//	    colours, the 3-manifold given by integer Dehn surgery)
//
// Supporting packages:
//
//	perm/      — permutation kernel: S_n indexing, conjugacy classes,
//	             centralisers, lazily-built process-wide tables
//	fpgroup/   — group presentations: expressions, incidence,
//	             generator reordering for backtracking searches
//	link/      — PD codes, link traversal, writhe, Reidemeister-I
//	             moves and the self-framing procedure
//	tri/       — the minimal triangulation collaborator: identity
//	             facet gluings, validity, canonical signatures
//	cmd/katie/ — the command-line surface over the graph builder
//
// Enumeration calls are single-threaded and safe to run concurrently
// with each other; the only shared state is the immutable permutation
// table set, built once per degree on first use.
package kirby
