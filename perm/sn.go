// Index arithmetic for the sign-alternating enumeration of S_deg.
//
// The enumeration is derived from the lexicographic order on image
// lists: lexicographic ranks 2k and 2k+1 always name two permutations
// that agree except for their final two images, so exactly one of the
// pair is even. The sign-alternating index keeps the pair boundaries
// and puts the even permutation first, which makes index parity equal
// permutation parity and places the identity at index 0.
package perm

// factorials[d] = d!, for d ≤ MaxDegree. 16! fits comfortably in int64.
var factorials [MaxDegree + 1]int64

func init() {
	factorials[0] = 1
	for d := 1; d <= MaxDegree; d++ {
		factorials[d] = factorials[d-1] * int64(d)
	}
}

// NPerms returns deg!, the number of permutations of the given degree.
// Panics if deg is out of range.
func NPerms(deg int) int64 {
	if deg < MinDegree || deg > MaxDegree {
		panic(ErrDegree)
	}

	return factorials[deg]
}

// lexRank returns the rank of p in the lexicographic order on image
// lists (the factorial number system).
// Complexity: O(deg²)
func (p P) lexRank() int64 {
	n := int(p.deg)
	var rank int64
	for i := 0; i < n; i++ {
		smaller := 0
		pi := p.At(i)
		for j := i + 1; j < n; j++ {
			if p.At(j) < pi {
				smaller++
			}
		}
		rank += int64(smaller) * factorials[n-1-i]
	}

	return rank
}

// SnIndex returns the index of p in the sign-alternating enumeration
// of S_deg. Index parity equals the parity of p.
func (p P) SnIndex() int64 {
	idx := p.lexRank() &^ 1
	if p.Sign() < 0 {
		idx |= 1
	}

	return idx
}

// lexUnrank builds the permutation of the given degree whose
// lexicographic rank is r.
func lexUnrank(deg int, r int64) P {
	var remaining [MaxDegree]int
	for i := 0; i < deg; i++ {
		remaining[i] = i
	}

	var c uint64
	for i := 0; i < deg; i++ {
		f := factorials[deg-1-i]
		d := int(r / f)
		r %= f
		c |= uint64(remaining[d]) << (4 * uint(i))
		copy(remaining[d:], remaining[d+1:deg-i])
	}

	return P{deg: uint8(deg), code: c}
}

// snUnrank builds the permutation of the given degree at position idx
// of the sign-alternating enumeration, without consulting any table.
func snUnrank(deg int, idx int64) P {
	p := lexUnrank(deg, idx&^1)
	even := p.Sign() > 0
	if even != (idx&1 == 0) {
		p = p.swapLastTwo()
	}

	return p
}

// swapLastTwo exchanges the images of the final two points, moving
// between the two members of a lexicographic pair.
func (p P) swapLastTwo() P {
	n := uint(p.deg)
	a := p.code >> (4 * (n - 2)) & 0xf
	b := p.code >> (4 * (n - 1)) & 0xf
	c := p.code &^ (0xff << (4 * (n - 2)))
	c |= b << (4 * (n - 2))
	c |= a << (4 * (n - 1))

	return P{deg: p.deg, code: c}
}

// NthPerm returns the permutation at position idx of the
// sign-alternating enumeration of S_deg. For tabulated degrees this is
// a single array load once Precompute has run for the degree; larger
// degrees fall back to direct unranking. Panics if deg or idx is out
// of range.
func NthPerm(deg int, idx int64) P {
	if deg < MinDegree || deg > MaxDegree {
		panic(ErrDegree)
	}
	if idx < 0 || idx >= factorials[deg] {
		panic(ErrIndex)
	}
	t := ensure(deg)
	if t.sn != nil {
		return P{deg: uint8(deg), code: t.sn[idx]}
	}

	return snUnrank(deg, idx)
}
