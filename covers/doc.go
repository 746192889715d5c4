// Package covers enumerates the finite-index subgroups of a finitely
// presented group: Enumerate lists, up to conjugacy, every transitive
// homomorphism of the group into the symmetric group S_index for
// 2 ≤ index ≤ 11, and hands the caller the presentation of the
// corresponding index-n subgroup obtained by Reidemeister–Schreier
// rewriting.
//
// The search is a conjugacy-minimal backtracker over candidate
// representatives, pruned three ways:
//
//   - a relator scheme caches shared relator subexpressions so that
//     assigning a representative at depth d re-checks only the
//     relations (and subexpressions) that become computable at d;
//   - ℤ/2 reduction of the relators constrains the signs of
//     representatives, halving the branching factor once per
//     independent sign relation;
//   - centralisers of the partial assignment are maintained on the
//     fly, so only conjugacy-minimal assignments are ever extended.
//
// A single enumeration runs on one goroutine; safe parallelism is at
// the granularity of whole Enumerate calls, which EnumerateIndices
// packages up for the common "same group, several indices" case.
// Within one call the order of emitted covers is deterministic:
// lexicographic in the representative indices chosen at positions
// 0, 1, ….
package covers
