package perm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kirby/perm"
)

// TestFromImages_Errors verifies degree and bijection validation.
func TestFromImages_Errors(t *testing.T) {
	_, err := perm.FromImages([]int{0})
	require.ErrorIs(t, err, perm.ErrDegree)

	_, err = perm.FromImages([]int{0, 0, 2})
	require.ErrorIs(t, err, perm.ErrImages)

	_, err = perm.FromImages([]int{0, 3, 1})
	require.ErrorIs(t, err, perm.ErrImages)
}

// TestIdentity checks the identity's basic properties at every degree.
func TestIdentity(t *testing.T) {
	for deg := perm.MinDegree; deg <= perm.MaxDegree; deg++ {
		id := perm.Identity(deg)
		require.True(t, id.IsIdentity())
		require.Equal(t, 1, id.Sign())
		require.EqualValues(t, 0, id.SnIndex())
		for x := 0; x < deg; x++ {
			require.Equal(t, x, id.At(x))
		}
	}
}

// TestCompose_Convention pins the composition convention
// (p·q)(x) = p(q(x)).
func TestCompose_Convention(t *testing.T) {
	p, err := perm.FromImages([]int{1, 0, 2})
	require.NoError(t, err)
	q, err := perm.FromImages([]int{0, 2, 1})
	require.NoError(t, err)

	pq := p.Compose(q)
	for x := 0; x < 3; x++ {
		require.Equal(t, p.At(q.At(x)), pq.At(x))
	}
}

// TestEnumeration_Count verifies that the sign-alternating enumeration
// visits deg! distinct permutations for every small degree.
func TestEnumeration_Count(t *testing.T) {
	for deg := 2; deg <= 8; deg++ {
		n := perm.NPerms(deg)
		seen := make(map[int64]struct{}, n)
		for i := int64(0); i < n; i++ {
			p := perm.NthPerm(deg, i)
			_, dup := seen[p.SnIndex()]
			require.False(t, dup, "degree %d: duplicate at index %d", deg, i)
			seen[p.SnIndex()] = struct{}{}
		}
		require.Len(t, seen, int(n))
	}
}

// TestSnIndex_RoundTrip verifies index → permutation → index and the
// parity-of-index invariant.
func TestSnIndex_RoundTrip(t *testing.T) {
	for deg := 2; deg <= 7; deg++ {
		n := perm.NPerms(deg)
		for i := int64(0); i < n; i++ {
			p := perm.NthPerm(deg, i)
			require.Equal(t, i, p.SnIndex(), "degree %d", deg)
			wantSign := 1
			if i&1 == 1 {
				wantSign = -1
			}
			require.Equal(t, wantSign, p.Sign(), "degree %d index %d", deg, i)
		}
	}
}

// TestPre verifies the preimage lookup against the inverse.
func TestPre(t *testing.T) {
	for i := int64(0); i < perm.NPerms(5); i++ {
		p := perm.NthPerm(5, i)
		inv := p.Inverse()
		for x := 0; x < 5; x++ {
			require.Equal(t, inv.At(x), p.Pre(x))
		}
	}
}

// TestPow covers the exponent fast paths and a few general powers.
func TestPow(t *testing.T) {
	p := perm.NthPerm(5, 37)
	require.True(t, p.Pow(0).IsIdentity())
	require.Equal(t, p, p.Pow(1))
	require.Equal(t, p.Inverse(), p.Pow(-1))
	require.Equal(t, p.Compose(p).Compose(p), p.Pow(3))
	require.Equal(t, p.Pow(3).Inverse(), p.Pow(-3))
}
