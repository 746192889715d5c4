// The conjugacy-minimal backtracking search over candidate
// representative assignments.
package covers

import (
	"github.com/katalvlaran/kirby/fpgroup"
	"github.com/katalvlaran/kirby/perm"
)

// ctxStride controls how often the enumerator polls its context: once
// every ctxStride iterations of the outer search loop.
const ctxStride = 1 << 12

// Enumerate lists, up to conjugacy, every transitive homomorphism of g
// into S_index, invoking emit once per cover with the presentation of
// the corresponding index-n subgroup. It returns the number of covers
// found.
//
// emit's return value is a continuation flag: returning false stops
// the enumeration at the next backtrack boundary, with the covers
// emitted so far counted. The input presentation is never mutated;
// the enumeration works on a private clone.
//
// Covers are emitted in a deterministic order: lexicographic in the
// representative indices chosen for generators 0, 1, ….
func Enumerate(g *fpgroup.Presentation, index int, emit func(*fpgroup.Presentation) bool, opts ...Option) (int, error) {
	if index < MinIndex || index > MaxIndex {
		return 0, ErrInvalidIndex
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// The trivial group has exactly one representation, and it is not
	// transitive.
	if g.CountGenerators() == 0 {
		return 0, nil
	}

	if err := perm.Precompute(index); err != nil {
		return 0, err
	}

	// Relabel and reorder so relations can be checked as early as
	// possible, then plan the incremental relation checks and the
	// parity constraints.
	w := g.Clone()
	w.MinimaxGenerators()
	scheme := newRelationScheme(w, index)
	signs := newSignScheme(w)

	nGen := w.CountGenerators()
	nPerms := perm.NPerms(index)
	classCount := perm.ClassCount(index)

	// aut[p] is the subgroup of S_index fixing rep[0..p] under
	// simultaneous conjugation, listed explicitly — except that
	// nAut[p] == 0 encodes "all of S_index".
	nAut := make([]int, nGen)
	aut := make([][]perm.P, nGen)

	nReps := 0
	pos := 0 // the generator whose representative we are choosing
	stopped := false
	iter := 0

	for {
		iter++
		if iter%ctxStride == 0 {
			select {
			case <-o.ctx.Done():
				return nReps, o.ctx.Err()
			default:
			}
		}

		// Check the relations that have just become computable.
		backtrack := !scheme.computeFor(pos)

		// Check that the assignment stays conjugacy minimal. At index
		// 2 everything is conjugacy minimal and the machinery is
		// skipped entirely.
		if index > 2 && !backtrack {
			if pos == 0 || nAut[pos-1] == 0 {
				// The stabiliser of the previous choices is all of
				// S_index, so rep[pos] itself must be a class
				// representative.
				if perm.IsConjugacyMinimal(scheme.perm(pos)) {
					if scheme.rep[pos] == 0 {
						// Identity: the stabiliser stays full.
						nAut[pos] = 0
					} else {
						cls := perm.WhichClass(index, scheme.rep[pos])
						cent := perm.Centraliser(index, cls)
						aut[pos] = append(aut[pos][:0], cent...)
						nAut[pos] = len(cent)
					}
				} else {
					backtrack = true
				}
			} else {
				// Filter the previous stabiliser: keep the elements
				// fixing rep[pos]; any element that conjugates it to a
				// smaller index disproves minimality.
				aut[pos] = aut[pos][:0]
				pm := scheme.perm(pos)
				for _, a := range aut[pos-1][:nAut[pos-1]] {
					conj := a.Compose(pm).Compose(a.Inverse())
					ci := conj.SnIndex()
					if ci < scheme.rep[pos] {
						backtrack = true

						break
					}
					if ci == scheme.rep[pos] {
						aut[pos] = append(aut[pos], a)
					}
				}
				nAut[pos] = len(aut[pos])
			}
		}

		if !backtrack {
			pos++
			if pos == nGen {
				// A full candidate: test transitivity, rewrite, emit.
				if sub, ok := transitivity(scheme, w, index); ok {
					nReps++
					if !emit(sub) {
						stopped = true
					}
				}
				pos--
				backtrack = true
			} else {
				if c := signs.constraint[pos]; c != nil {
					// The new generator's sign is constrained; start
					// at index 0 or 1 accordingly.
					needOdd := false
					for _, a := range c {
						if scheme.rep[a]&1 == 1 {
							needOdd = !needOdd
						}
					}
					if needOdd {
						scheme.rep[pos]++
					}
				}

				continue
			}
		}

		// Backtrack: advance rep[pos] to its next candidate, climbing
		// towards the root as positions exhaust.
		if stopped {
			return nReps, nil
		}
		for {
			if index > 2 && (pos == 0 || nAut[pos-1] == 0) {
				// Only class representatives are of interest here;
				// jump straight to the next one (of the right parity,
				// under a sign constraint).
				cls := perm.WhichClass(index, scheme.rep[pos])
				if signs.constraint[pos] != nil {
					sign := scheme.rep[pos] & 1
					cls++
					for cls < classCount && perm.ClassRep(index, cls)&1 != sign {
						cls++
					}
				} else {
					cls++
				}
				if cls < classCount {
					scheme.rep[pos] = perm.ClassRep(index, cls)

					break
				}
				// Out of classes at this position.
			} else {
				scheme.rep[pos]++
				// Under a sign constraint, step by two to stay on the
				// forced parity.
				if signs.constraint[pos] != nil && scheme.rep[pos] != nPerms {
					scheme.rep[pos]++
				}
				if scheme.rep[pos] != nPerms {
					break
				}
			}

			// This position is exhausted.
			if pos == 0 {
				return nReps, nil
			}
			scheme.rep[pos] = 0
			pos--
		}
	}
}

// transitivity tests whether the current assignment acts transitively
// on the index sheets, and if so rewrites the representation into the
// subgroup presentation via the spanning tree of sheet reachability.
func transitivity(s *relationScheme, g *fpgroup.Presentation, index int) (*fpgroup.Presentation, bool) {
	nGen := g.CountGenerators()
	perms := make([]perm.P, nGen)
	for i := range perms {
		perms[i] = s.perm(i)
	}

	// Depth-first walk over the sheets; the first edge into each newly
	// reached sheet is recorded as a spanning-tree edge (generator i,
	// source sheet), encoded i·index + sheet.
	var seen uint16 = 1
	nFound := 1
	stack := make([]int, 1, index)
	stack[0] = 0
	tree := make([]int, 0, index-1)

	for nFound < index && len(stack) > 0 {
		from := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i := 0; i < nGen; i++ {
			to := perms[i].At(from)
			if seen&(1<<uint(to)) == 0 {
				seen |= 1 << uint(to)
				stack = append(stack, to)
				tree = append(tree, i*index+from)
				nFound++
			}
		}
	}

	if nFound < index {
		return nil, false
	}

	return rewrite(g, perms, tree, index), true
}
