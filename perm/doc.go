// Package perm implements a small-degree permutation kernel: permutations
// of {0,…,deg−1} for degrees 2 through 16, indexed enumeration of the
// symmetric group S_deg in sign-alternating order, and conjugacy-class
// machinery (class representatives and centralisers).
//
// 🧩 What is kirby/perm?
//
//	The arithmetic core that the cover enumerator leans on:
//
//	  • P — an image-packed permutation with Compose, Inverse and Sign
//	    as O(deg) loops over the packed word; Pow repeats Compose |e|
//	    times, with fast paths for e = −1, 0 and 1
//	  • S_deg indexing — NthPerm and P.SnIndex under the order that
//	    places even permutations at even indices and odd at odd
//	  • Conjugacy classes — ClassRep, Centraliser, IsConjugacyMinimal
//
// Per-degree lookup tables are built lazily on first use and are shared
// process-wide; the first goroutine through builds them while any other
// goroutine touching the same degree blocks until the build completes.
// Tables live for the remainder of the process.
//
// The sign-alternating order pairs consecutive lexicographic
// permutations (which differ by transposing the two final images) and
// puts the even one first, so the identity sits at index 0 and
// index parity equals permutation parity throughout.
package perm
