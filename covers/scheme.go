// The relator scheme: a prepared plan for incrementally testing a
// candidate representative assignment against the group relations.
//
// The scheme stores a list of formulae. A formula is either a group
// relation or an auxiliary contiguous subexpression shared between
// relations. Formula terms may reference the original generators
// (indices < nGen) or earlier formulae (as "virtual generators" with
// indices ≥ nGen), and formula i only ever references formulae with
// indices below i, so values can be computed in index order and
// cached. Formulae are bucketed by depth: the formulae at depth d use
// generators 0..d only and become computable the moment generator d's
// representative is chosen.
package covers

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/kirby/fpgroup"
	"github.com/katalvlaran/kirby/perm"
)

// formula is one computable unit of the scheme.
type formula struct {
	terms      []fpgroup.Term
	isRelation bool
}

// key returns a map key identifying the formula up to term-wise
// equality (relation and non-relation forms are distinct).
func (f *formula) key() string {
	var b strings.Builder
	if f.isRelation {
		b.WriteByte('R')
	}
	for _, t := range f.terms {
		b.WriteString(strconv.Itoa(t.Gen))
		b.WriteByte('^')
		b.WriteString(strconv.FormatInt(t.Exp, 10))
		b.WriteByte('.')
	}

	return b.String()
}

// formulaLess orders formulae for computation within one depth:
// relations first (a failing relation lets the search backtrack at the
// earliest possible depth), then shorter expressions (their values
// become available as substitutable subexpressions of longer ones),
// then term-wise.
func formulaLess(a, b *formula) bool {
	if a.isRelation != b.isRelation {
		return a.isRelation
	}
	if len(a.terms) != len(b.terms) {
		return len(a.terms) < len(b.terms)
	}
	for i := range a.terms {
		at, bt := a.terms[i], b.terms[i]
		if at.Gen != bt.Gen {
			return at.Gen < bt.Gen
		}
		if at.Exp != bt.Exp {
			return at.Exp < bt.Exp
		}
	}

	return false
}

// tryReplace rewrites every non-overlapping occurrence of inner's term
// sequence within f as the single term index^1. Empty inner is never
// substituted.
func (f *formula) tryReplace(inner *formula, index int) {
	n := len(inner.terms)
	if n == 0 {
		return
	}
	for from := 0; from+n <= len(f.terms); from++ {
		match := true
		for i := 0; i < n; i++ {
			if f.terms[from+i] != inner.terms[i] {
				match = false

				break
			}
		}
		if !match {
			continue
		}
		if n > 1 {
			f.terms = append(f.terms[:from+1], f.terms[from+n:]...)
		}
		f.terms[from] = fpgroup.Term{Gen: index, Exp: 1}
	}
}

// relationScheme is the per-enumeration work buffer.
type relationScheme struct {
	index    int
	nGen     int
	formulae []formula

	// compCount[d]..compCount[d+1] brackets the formulae at depth d.
	compCount []int

	// rep[g] is the current candidate S_index index for generator g.
	rep []int64

	// computed caches each formula's permutation value under rep.
	computed []perm.P
}

// perm converts a generator's representative index to its permutation.
func (s *relationScheme) perm(gen int) perm.P {
	return perm.NthPerm(s.index, s.rep[gen])
}

// newRelationScheme plans the formulae for a presentation that has
// already been through MinimaxGenerators, which guarantees that each
// relation's final term carries its highest generator.
func newRelationScheme(g *fpgroup.Presentation, index int) *relationScheme {
	nGen := g.CountGenerators()
	s := &relationScheme{index: index, nGen: nGen}

	// nSeen counts everything referenceable: the generators plus every
	// formula discovered so far, under temporary indices.
	nSeen := nGen

	// currExp[d] accumulates the longest contiguous subexpression
	// ending at the walk position that uses only generators ≤ d, with
	// no trailing terms of generators < d.
	currExp := make([][]fpgroup.Term, nGen)

	foundKey := make([]map[string]int, nGen)
	for d := range foundKey {
		foundKey[d] = make(map[string]int)
	}
	var tempFormulas []formula
	var tempDepth []int

	store := func(depth int, f formula) int {
		k := f.key()
		if idx, ok := foundKey[depth][k]; ok {
			return idx
		}
		idx := nSeen
		nSeen++
		foundKey[depth][k] = idx
		tempFormulas = append(tempFormulas, f)
		tempDepth = append(tempDepth, depth)

		return idx
	}

	for _, r := range g.Relations() {
		if r.Empty() {
			continue
		}
		depth := nGen // the last generator seen
		var prev int

		for _, t := range r.Terms() {
			if t.Gen < depth {
				// Start a new subexpression at a smaller depth.
				depth = t.Gen
				currExp[depth] = append(currExp[depth], fpgroup.Term{Gen: depth, Exp: t.Exp})

				continue
			}
			// Close off every subexpression below the newly-seen
			// generator, folding each into the level above.
			for depth < t.Gen {
				if len(currExp[depth]) == 1 && currExp[depth][0].Exp == 1 {
					// A bare symbol: reuse it instead of minting a
					// formula for it.
					prev = currExp[depth][0].Gen
					currExp[depth] = currExp[depth][:0]
				} else {
					f := formula{terms: append([]fpgroup.Term(nil), currExp[depth]...)}
					currExp[depth] = currExp[depth][:0]
					prev = store(depth, f)
				}
				depth++
				currExp[depth] = append(currExp[depth], fpgroup.Term{Gen: prev, Exp: 1})
			}
			// depth == t.Gen here.
			currExp[depth] = append(currExp[depth], fpgroup.Term{Gen: depth, Exp: t.Exp})
		}

		// The relation's final term uses its highest generator, so
		// currExp[depth] now holds the entire relation.
		f := formula{terms: append([]fpgroup.Term(nil), currExp[depth]...), isRelation: true}
		currExp[depth] = currExp[depth][:0]
		store(depth, f)
	}

	// Reindex in depth order, relations first within each depth, and
	// rewrite virtual-generator references accordingly.
	type entry struct {
		temp int
		f    formula
	}
	byDepth := make([][]entry, nGen)
	for i := range tempFormulas {
		d := tempDepth[i]
		byDepth[d] = append(byDepth[d], entry{temp: nGen + i, f: tempFormulas[i]})
	}

	reindex := make([]int, nSeen)
	newIndex := nGen
	for d := 0; d < nGen; d++ {
		sort.Slice(byDepth[d], func(a, b int) bool {
			return formulaLess(&byDepth[d][a].f, &byDepth[d][b].f)
		})
		for _, e := range byDepth[d] {
			reindex[e.temp] = newIndex
			newIndex++
		}
	}

	s.compCount = make([]int, nGen+1)
	for d := 0; d < nGen; d++ {
		s.compCount[d+1] = s.compCount[d] + len(byDepth[d])
		for _, e := range byDepth[d] {
			f := formula{isRelation: e.f.isRelation, terms: make([]fpgroup.Term, 0, len(e.f.terms))}
			for _, t := range e.f.terms {
				if t.Gen >= nGen {
					t.Gen = reindex[t.Gen]
				}
				f.terms = append(f.terms, t)
			}
			s.formulae = append(s.formulae, f)
		}
	}

	// Substitute earlier formulae into later ones, longest targets
	// first so large substitutions win.
	for outer := len(s.formulae) - 1; outer >= 0; outer-- {
		for inner := outer - 1; inner >= 0; inner-- {
			s.formulae[outer].tryReplace(&s.formulae[inner], inner+nGen)
		}
	}

	s.rep = make([]int64, nGen)
	s.computed = make([]perm.P, s.compCount[nGen])

	return s
}

// computePiece evaluates formula piece under the current rep, folding
// terms right to left so the first term acts first. Returns false —
// without caching the value — if the formula is a relation that does
// not evaluate to the identity.
func (s *relationScheme) computePiece(piece int) bool {
	comb := perm.Identity(s.index)
	for _, t := range s.formulae[piece].terms {
		var gen perm.P
		if t.Gen < s.nGen {
			gen = s.perm(t.Gen)
		} else {
			gen = s.computed[t.Gen-s.nGen]
		}
		// Exponents ±1 dominate in practice; skip Pow for them.
		switch t.Exp {
		case 1:
			comb = gen.Compose(comb)
		case -1:
			comb = gen.Inverse().Compose(comb)
		default:
			comb = gen.Pow(t.Exp).Compose(comb)
		}
	}
	if s.formulae[piece].isRelation && !comb.IsIdentity() {
		return false
	}
	s.computed[piece] = comb

	return true
}

// computeFor evaluates every formula at the given depth. Returns false
// as soon as any relation formula fails.
func (s *relationScheme) computeFor(depth int) bool {
	for i := s.compCount[depth]; i < s.compCount[depth+1]; i++ {
		if !s.computePiece(i) {
			return false
		}
	}

	return true
}
