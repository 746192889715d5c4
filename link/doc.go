// Package link models decorated link diagrams through their planar
// diagram (PD) codes: parsing, crossing classification, orientation
// analysis, component traversal, writhe, Reidemeister-I moves and the
// framing procedure that prepares a Kirby diagram for triangulation.
//
// A PD code is a sequence of 4-tuples of positive integers, the labels
// of the four strand-ends incident to each crossing in the cyclic
// order (in, right, out, left); a curl shows up as a repeated label in
// adjacent tuple positions. From the code alone the package recovers:
//
//   - the kind of each crossing (regular, or one of four curl shapes)
//     and its sign, via the extended-orientation-vector walk;
//   - the component structure, as cyclic sequences of strand passages
//     with next/prev navigation;
//   - per-component writhes.
//
// Decorations arrive as a framing sequence, one token per component:
// an integer declares a 2-handle with that framing, `x` or `.` a
// 1-handle. Diagram couples a link with its framings and implements
// the self-framing procedure: Reidemeister-I curls are inserted until
// every 2-handle's writhe equals its declared framing, with curl sites
// chosen next to 1-handle intersections where possible, and a
// verification pass adds a cancelling curl pair to each 2-handle that
// lacks a quadricolour site. A 2-handle still without one is an error
// in dimension 4 and is left as it is in dimension 3.
//
// Links are immutable once built: R1 returns a new Link built from the
// transformed PD code. Strand references are (crossing, strand) pairs
// and stay valid across R1 because the transformation only appends
// crossings.
package link
