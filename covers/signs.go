// The sign scheme: parity constraints on representative choices,
// derived by reducing the relators over ℤ/2.
//
// Every relator, read modulo squares, is a linear equation over ℤ/2 in
// the generator signs. Reducing the system in reverse column order
// yields, for some generators i, an equation
// sign(rep[i]) = sign(rep[a₀])·…·sign(rep[a_j]) with all a_k < i.
// Each independent equation halves the search tree: the representative
// for generator i only ever steps through indices of the forced
// parity, which is exact because index parity equals permutation
// parity in the sign-alternating enumeration.
package covers

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/kirby/fpgroup"
)

// signScheme records one optional parity constraint per generator.
type signScheme struct {
	nGen int

	// constraint[i] is nil when the sign of rep[i] is unconstrained;
	// otherwise it lists the a_k < i whose signs multiply to the sign
	// of rep[i]. An empty (non-nil) list forces rep[i] even.
	constraint [][]int
}

// newSignScheme reduces the relator parity matrix of g.
func newSignScheme(g *fpgroup.Presentation) *signScheme {
	nGen := g.CountGenerators()
	s := &signScheme{nGen: nGen, constraint: make([][]int, nGen)}
	if nGen == 0 || g.CountRelations() == 0 {
		return s
	}

	// rows[r] has bit g set iff relation r uses generator g an odd
	// number of times.
	rows := make([]*bitset.BitSet, g.CountRelations())
	for i, r := range g.Relations() {
		row := bitset.New(uint(nGen))
		for _, t := range r.Terms() {
			if t.Exp%2 != 0 {
				row.Flip(uint(t.Gen))
			}
		}
		rows[i] = row
	}

	// Reduce to a jagged echelon form, working right to left and
	// bottom to top, so each pivot column is described purely by
	// lower-indexed columns.
	pivotRow := make([]int, nGen)
	for i := range pivotRow {
		pivotRow[i] = -1
	}

	rowsRemain, colsRemain := len(rows), nGen
	for rowsRemain > 0 && colsRemain > 0 {
		colsRemain--

		row := 0
		for row < rowsRemain && !rows[row].Test(uint(colsRemain)) {
			row++
		}
		if row == rowsRemain {
			// Column already clear above the staircase.
			continue
		}

		rowsRemain--
		if row < rowsRemain {
			rows[row], rows[rowsRemain] = rows[rowsRemain], rows[row]
		}

		// Zero out the rest of the column with row operations.
		for r := range rows {
			if r != rowsRemain && rows[r].Test(uint(colsRemain)) {
				rows[r].InPlaceSymmetricDifference(rows[rowsRemain])
			}
		}

		pivotRow[colsRemain] = rowsRemain
	}

	// Pivot rows may still have changed during the remaining
	// reduction, so the constraints are read off only now.
	for col := 0; col < nGen; col++ {
		if pivotRow[col] < 0 {
			continue
		}
		list := make([]int, 0, col)
		for i := 0; i < col; i++ {
			if rows[pivotRow[col]].Test(uint(i)) {
				list = append(list, i)
			}
		}
		s.constraint[col] = list
	}

	return s
}
