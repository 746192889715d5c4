package covers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/kirby/covers"
	"github.com/katalvlaran/kirby/fpgroup"
)

// abelianRank returns the free rank of the abelianisation of p:
// generators minus the rational rank of the relation exponent matrix.
func abelianRank(p *fpgroup.Presentation) int {
	rows := make([][]int64, 0, p.CountRelations())
	for _, r := range p.Relations() {
		row := make([]int64, p.CountGenerators())
		for _, t := range r.Terms() {
			row[t.Gen] += t.Exp
		}
		rows = append(rows, row)
	}

	rank := 0
	for col := 0; col < p.CountGenerators() && rank < len(rows); col++ {
		pivot := -1
		for r := rank; r < len(rows); r++ {
			if rows[r][col] != 0 {
				pivot = r

				break
			}
		}
		if pivot < 0 {
			continue
		}
		rows[rank], rows[pivot] = rows[pivot], rows[rank]
		for r := rank + 1; r < len(rows); r++ {
			if rows[r][col] == 0 {
				continue
			}
			a, b := rows[rank][col], rows[r][col]
			for c := col; c < p.CountGenerators(); c++ {
				rows[r][c] = rows[r][c]*a - rows[rank][c]*b
			}
		}
		rank++
	}

	return p.CountGenerators() - rank
}

// EnumerateSuite holds the reference-case battery.
type EnumerateSuite struct {
	suite.Suite
}

func TestEnumerateSuite(t *testing.T) {
	suite.Run(t, new(EnumerateSuite))
}

// collect runs an enumeration and gathers every emitted cover.
func (s *EnumerateSuite) collect(g *fpgroup.Presentation, index int) []*fpgroup.Presentation {
	var out []*fpgroup.Presentation
	n, err := covers.Enumerate(g, index, func(sub *fpgroup.Presentation) bool {
		out = append(out, sub)

		return true
	})
	require.NoError(s.T(), err)
	require.Len(s.T(), out, n)

	return out
}

// TestInvalidIndex rejects indices outside 2..11.
func (s *EnumerateSuite) TestInvalidIndex() {
	g := fpgroup.MustNew(1)
	for _, index := range []int{-1, 0, 1, 12} {
		_, err := covers.Enumerate(g, index, func(*fpgroup.Presentation) bool { return true })
		require.ErrorIs(s.T(), err, covers.ErrInvalidIndex)
	}
}

// TestTrivialGroup has one representation only, and it is not
// transitive.
func (s *EnumerateSuite) TestTrivialGroup() {
	n, err := covers.Enumerate(fpgroup.MustNew(0), 2, func(*fpgroup.Presentation) bool { return true })
	require.NoError(s.T(), err)
	require.Zero(s.T(), n)
}

// TestFreeRank2_Index2 finds the three index-2 subgroups of F₂, each
// free of rank 3.
func (s *EnumerateSuite) TestFreeRank2_Index2() {
	subs := s.collect(fpgroup.MustNew(2), 2)
	require.Len(s.T(), subs, 3)
	for _, sub := range subs {
		require.Equal(s.T(), 3, sub.CountGenerators())
		require.Zero(s.T(), sub.CountRelations())
	}
}

// TestZ_AnyIndex finds exactly one cover of ℤ at every index, itself ℤ.
func (s *EnumerateSuite) TestZ_AnyIndex() {
	z := fpgroup.MustNew(1)
	for index := 2; index <= 6; index++ {
		subs := s.collect(z.Clone(), index)
		require.Len(s.T(), subs, 1, "index %d", index)
		require.Equal(s.T(), 1, subs[0].CountGenerators())
		require.Zero(s.T(), subs[0].CountRelations())
	}
}

// TestZ6 checks the cyclic group at several indices: the index-2
// subgroup is ℤ/3 (presented as ⟨a | a³,a³⟩ without simplification),
// the index-3 subgroup is ℤ/2, and there is no index-4 subgroup.
func (s *EnumerateSuite) TestZ6() {
	z6 := fpgroup.MustNew(1, fpgroup.Word(0, 6))

	subs := s.collect(z6.Clone(), 2)
	require.Len(s.T(), subs, 1)
	require.Equal(s.T(), 1, subs[0].CountGenerators())
	for _, r := range subs[0].Relations() {
		require.EqualValues(s.T(), 3, r.WordLength())
	}

	subs = s.collect(z6.Clone(), 3)
	require.Len(s.T(), subs, 1)
	require.Equal(s.T(), 1, subs[0].CountGenerators())
	for _, r := range subs[0].Relations() {
		require.EqualValues(s.T(), 2, r.WordLength())
	}

	n, err := covers.Enumerate(z6.Clone(), 4, func(*fpgroup.Presentation) bool { return true })
	require.NoError(s.T(), err)
	require.Zero(s.T(), n)
}

// TestSurfaceGroup_Index2 finds the three index-2 covers of the torus
// group; every cover abelianises to ℤ².
func (s *EnumerateSuite) TestSurfaceGroup_Index2() {
	torus := fpgroup.MustNew(2, fpgroup.Word(0, 1, 1, 1, 0, -1, 1, -1))
	subs := s.collect(torus, 2)
	require.Len(s.T(), subs, 3)
	for _, sub := range subs {
		require.Equal(s.T(), 3, sub.CountGenerators())
		require.Equal(s.T(), 2, abelianRank(sub))
	}
}

// TestTrefoil_Index2 finds the single index-2 cover of the trefoil
// knot group.
func (s *EnumerateSuite) TestTrefoil_Index2() {
	tre := fpgroup.MustNew(2, fpgroup.Word(0, 1, 1, 1, 0, 1, 1, -1, 0, -1, 1, -1))
	subs := s.collect(tre, 2)
	require.Len(s.T(), subs, 1)
	require.Equal(s.T(), 3, subs[0].CountGenerators())
}

// TestInputNotMutated verifies Enumerate works on a private clone.
func TestInputNotMutated(t *testing.T) {
	tre := fpgroup.MustNew(2, fpgroup.Word(0, 1, 1, 1, 0, 1, 1, -1, 0, -1, 1, -1))
	want := tre.Clone()
	_, err := covers.Enumerate(tre, 3, func(*fpgroup.Presentation) bool { return true })
	require.NoError(t, err)
	require.Equal(t, want.CountGenerators(), tre.CountGenerators())
	for i, r := range want.Relations() {
		require.True(t, r.Equal(tre.Relations()[i]))
	}
}

// TestEmitStop halts the enumeration at the first cover.
func TestEmitStop(t *testing.T) {
	n, err := covers.Enumerate(fpgroup.MustNew(2), 2, func(*fpgroup.Presentation) bool { return false })
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

// TestWithContext_Cancelled aborts a larger search up front.
func TestWithContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := covers.Enumerate(fpgroup.MustNew(2), 6,
		func(*fpgroup.Presentation) bool { return true },
		covers.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestEnumerateIndices runs the parallel helper over ℤ.
func TestEnumerateIndices(t *testing.T) {
	counts, err := covers.EnumerateIndices(context.Background(), fpgroup.MustNew(1), []int{2, 3, 4, 5})
	require.NoError(t, err)
	require.Equal(t, map[int]int{2: 1, 3: 1, 4: 1, 5: 1}, counts)
}

// TestDeterministicOrder re-runs an enumeration and compares the
// emitted sequences.
func TestDeterministicOrder(t *testing.T) {
	run := func() []string {
		var sigs []string
		tre := fpgroup.MustNew(2, fpgroup.Word(0, 1, 1, 1, 0, 1, 1, -1, 0, -1, 1, -1))
		_, err := covers.Enumerate(tre, 4, func(sub *fpgroup.Presentation) bool {
			sig := ""
			for _, r := range sub.Relations() {
				sig += r.String() + ";"
			}
			sigs = append(sigs, sig)

			return true
		})
		require.NoError(t, err)

		return sigs
	}
	require.Equal(t, run(), run())
}
