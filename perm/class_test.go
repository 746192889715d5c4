package perm_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kirby/perm"
)

// centraliserIndices maps a centraliser to its sorted index set.
func centraliserIndices(cent []perm.P) []int64 {
	out := make([]int64, len(cent))
	for i, p := range cent {
		out[i] = p.SnIndex()
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// TestClassReps_Degree3and4 pins the representative lists and
// centralisers for degrees 3 and 4 to their known values.
func TestClassReps_Degree3and4(t *testing.T) {
	require.Equal(t, 3, perm.ClassCount(3))
	require.EqualValues(t, 0, perm.ClassRep(3, 0))
	require.EqualValues(t, 1, perm.ClassRep(3, 1))
	require.EqualValues(t, 2, perm.ClassRep(3, 2))
	require.Nil(t, perm.Centraliser(3, 0))
	require.Equal(t, []int64{0, 1}, centraliserIndices(perm.Centraliser(3, 1)))
	require.Equal(t, []int64{0, 2, 4}, centraliserIndices(perm.Centraliser(3, 2)))

	require.Equal(t, 5, perm.ClassCount(4))
	wantReps := []int64{0, 1, 2, 6, 9}
	for cls, want := range wantReps {
		require.EqualValues(t, want, perm.ClassRep(4, cls))
	}
	wantCents := [][]int64{
		nil,
		{0, 1, 6, 7},
		{0, 2, 4},
		{0, 1, 6, 7, 16, 17, 22, 23},
		{0, 9, 16, 19},
	}
	for cls := 1; cls < 5; cls++ {
		require.Equal(t, wantCents[cls],
			centraliserIndices(perm.Centraliser(4, cls)), "class %d", cls)
	}
}

// TestCentraliser_Commutes verifies that every listed element actually
// commutes with its class representative, and that the centraliser
// order matches the cycle-type formula.
func TestCentraliser_Commutes(t *testing.T) {
	for deg := 3; deg <= 7; deg++ {
		for cls := 1; cls < perm.ClassCount(deg); cls++ {
			rep := perm.NthPerm(deg, perm.ClassRep(deg, cls))
			cent := perm.Centraliser(deg, cls)
			require.NotEmpty(t, cent)
			for _, q := range cent {
				require.Equal(t, rep.Compose(q), q.Compose(rep),
					"degree %d class %d", deg, cls)
			}

			// |centraliser| = ∏ lengths · ∏ multiplicities!.
			want := int64(1)
			mult := map[int]int64{}
			for _, l := range rep.CycleType() {
				want *= int64(l)
				mult[l]++
			}
			for _, m := range mult {
				for f := int64(2); f <= m; f++ {
					want *= f
				}
			}
			require.EqualValues(t, want, len(cent), "degree %d class %d", deg, cls)
		}
	}
}

// TestIsConjugacyMinimal_BruteForce cross-checks the class machinery
// against the definition: p is conjugacy minimal iff no conjugate of p
// has a smaller index.
func TestIsConjugacyMinimal_BruteForce(t *testing.T) {
	for deg := 3; deg <= 5; deg++ {
		n := perm.NPerms(deg)
		for i := int64(0); i < n; i++ {
			p := perm.NthPerm(deg, i)
			minimal := true
			for j := int64(0); j < n; j++ {
				q := perm.NthPerm(deg, j)
				if q.Compose(p).Compose(q.Inverse()).SnIndex() < i {
					minimal = false

					break
				}
			}
			require.Equal(t, minimal, perm.IsConjugacyMinimal(p),
				"degree %d index %d", deg, i)
		}
	}
}

// TestWhichClass verifies the binary search over representatives.
func TestWhichClass(t *testing.T) {
	for deg := 3; deg <= 7; deg++ {
		for cls := 0; cls < perm.ClassCount(deg); cls++ {
			require.Equal(t, cls, perm.WhichClass(deg, perm.ClassRep(deg, cls)))
		}
	}
}

// TestPrecompute_Errors verifies degree validation.
func TestPrecompute_Errors(t *testing.T) {
	require.ErrorIs(t, perm.Precompute(1), perm.ErrDegree)
	require.ErrorIs(t, perm.Precompute(17), perm.ErrDegree)
	require.NoError(t, perm.Precompute(8))
}
