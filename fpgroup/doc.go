// Package fpgroup models finite group presentations: generators,
// relator words built from (generator, exponent) terms, and the
// presentation-level transforms that the cover enumerator prepares
// its input with.
//
// An Expression is an ordered sequence of terms; no simplification is
// performed implicitly, so a·a and a² are distinct expressions even
// though they name the same group element. A Presentation couples a
// generator count with its relator expressions and offers:
//
//   - Incidence — the relation × generator boolean matrix, as bitset
//     rows
//   - MinimaxGenerators — the reorder/relabel pass that lets a
//     backtracking search bind each new generator as late as possible
//
// Presentations are plain mutable values with no internal locking;
// callers that share one across goroutines must clone it first.
package fpgroup
