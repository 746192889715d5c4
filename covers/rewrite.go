// Reidemeister–Schreier rewriting of a transitive representation into
// a presentation of the corresponding finite-index subgroup.
package covers

import (
	"sort"

	"github.com/katalvlaran/kirby/fpgroup"
	"github.com/katalvlaran/kirby/perm"
)

// rewrite builds the subgroup presentation for the representation held
// in s, given the spanning tree produced by the transitivity walk.
//
// The subgroup starts with one generator per (original generator,
// sheet) pair, numbered gen·index + sheet. The n−1 pairs on the
// spanning tree are Schreier-tree edges and rewrite to the identity;
// the remaining pairs are renumbered consecutively. Each original
// relation then yields one subgroup relation per start sheet, by
// walking the relation letter by letter and recording the surviving
// subgroup generator at every step. No simplification is performed.
func rewrite(g *fpgroup.Presentation, perms []perm.P, tree []int, index int) *fpgroup.Presentation {
	nGen := len(perms)

	sort.Ints(tree)

	subNGen := index * nGen
	rw := make([]int, subNGen)
	treeIdx := 0
	for i := 0; i < subNGen; i++ {
		if treeIdx < index-1 && tree[treeIdx] == i {
			// A spanning-tree edge: eliminated from the subgroup.
			rw[i] = subNGen
			treeIdx++
		} else {
			rw[i] = i - treeIdx
		}
	}
	subNGen -= index - 1

	invs := make([]perm.P, nGen)
	for i, p := range perms {
		invs[i] = p.Inverse()
	}

	var rels []fpgroup.Expression
	for _, r := range g.Relations() {
		for start := 0; start < index; start++ {
			var e fpgroup.Expression
			sheet := start
			for _, t := range r.Terms() {
				switch {
				case t.Exp > 0:
					for i := int64(0); i < t.Exp; i++ {
						if g := rw[t.Gen*index+sheet]; g < subNGen {
							e.AddTermLast(g, 1)
						}
						sheet = perms[t.Gen].At(sheet)
					}
				case t.Exp < 0:
					for i := int64(0); i > t.Exp; i-- {
						sheet = invs[t.Gen].At(sheet)
						if g := rw[t.Gen*index+sheet]; g < subNGen {
							e.AddTermLast(g, -1)
						}
					}
				}
			}
			if !e.Empty() {
				rels = append(rels, e)
			}
		}
	}

	sub, err := fpgroup.New(subNGen, rels)
	if err != nil {
		// The rewrite only ever emits generators below subNGen.
		panic(err)
	}

	return sub
}
