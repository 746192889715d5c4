// Lazily-built, process-wide lookup tables, one set per degree.
package perm

import "sync"

// maxTabulated bounds the degrees for which the full index→permutation
// table is materialised. 11! words is ≈ 320 MB, which is acceptable at
// that degree; beyond it the table would not fit and NthPerm unranks
// directly instead.
const maxTabulated = 11

// table holds every precomputed artefact for one degree.
type table struct {
	// sn maps sign-alternating index → packed image word.
	// Nil for degrees above maxTabulated.
	sn []uint64

	// classReps is the sorted list of S_deg indices of the
	// conjugacy-minimal class representatives.
	classReps []int64

	// cents[c] is the centraliser of the representative of class c.
	// cents[0] is nil: the identity's centraliser is all of S_deg and
	// is never materialised.
	cents [][]P
}

// tables[d] is initialised exactly once per degree. The Once gives the
// required lifecycle: the first goroutine through populates the table
// while every other goroutine touching degree d blocks until the build
// completes; afterwards all access is read-only.
var tables [MaxDegree + 1]struct {
	once sync.Once
	t    *table
}

// Precompute builds the lookup tables for the given degree if they do
// not exist yet. It is idempotent and safe for concurrent use; callers
// that are about to enter a hot loop (such as the cover enumerator)
// should invoke it up front so the build cost lands outside the loop.
func Precompute(deg int) error {
	if deg < MinDegree || deg > MaxDegree {
		return ErrDegree
	}
	ensure(deg)

	return nil
}

// ensure returns the table for deg, building it on first use.
func ensure(deg int) *table {
	e := &tables[deg]
	e.once.Do(func() {
		e.t = buildTable(deg)
	})

	return e.t
}

// buildTable materialises every artefact for one degree.
func buildTable(deg int) *table {
	t := &table{}
	if deg <= maxTabulated {
		t.sn = buildSn(deg)
	}
	t.classReps, t.cents = buildClasses(deg)

	return t
}

// buildSn walks the lexicographic enumeration pairwise. The members of
// each pair share their first deg−2 images and differ by transposing
// the final two, so exactly one is even; that one takes the even slot.
func buildSn(deg int) []uint64 {
	n := factorials[deg]
	sn := make([]uint64, n)

	images := make([]int, deg)
	for i := range images {
		images[i] = i
	}

	for k := int64(0); k < n; k += 2 {
		p, err := FromImages(images)
		if err != nil {
			panic(err)
		}
		q := p.swapLastTwo()
		if p.Sign() > 0 {
			sn[k], sn[k+1] = p.code, q.code
		} else {
			sn[k], sn[k+1] = q.code, p.code
		}
		// Step the image list forward twice, past both pair members.
		nextImages(images)
		nextImages(images)
	}

	return sn
}

// nextImages advances the image list to its lexicographic successor,
// wrapping back to the identity after the final permutation.
func nextImages(a []int) {
	n := len(a)
	i := n - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		for j := range a {
			a[j] = j
		}

		return
	}
	j := n - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}
}
