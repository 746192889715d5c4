// Conjugacy classes of S_deg: minimal representatives and centralisers.
//
// The conjugacy-minimal representative of a cycle type is the
// permutation whose cycles cover consecutive blocks of points, ordered
// by increasing length (fixed points first). Its image list is the
// lexicographically smallest in the class, which makes it the smallest
// under the sign-alternating index as well. Centralisers are generated
// combinatorially: an element commuting with the representative
// permutes same-length cycles and rotates each cycle independently.
package perm

import "sort"

// ClassCount returns the number of conjugacy classes of S_deg (the
// number of integer partitions of deg).
func ClassCount(deg int) int {
	if deg < MinDegree || deg > MaxDegree {
		panic(ErrDegree)
	}

	return len(ensure(deg).classReps)
}

// ClassRep returns the S_deg index of the conjugacy-minimal
// representative of class cls. Classes are ordered by increasing
// representative index, so class 0 is always the identity.
func ClassRep(deg, cls int) int64 {
	return ensure(deg).classReps[cls]
}

// Centraliser returns the centraliser of the representative of class
// cls: every permutation commuting with it. For class 0 (the identity)
// the centraliser is all of S_deg and nil is returned instead of
// materialising it. The returned slice is shared; callers must not
// modify it.
func Centraliser(deg, cls int) []P {
	return ensure(deg).cents[cls]
}

// WhichClass returns the class of a permutation known to be conjugacy
// minimal, given its S_deg index, via binary search over the sorted
// representative list.
func WhichClass(deg int, index int64) int {
	reps := ensure(deg).classReps

	return sort.Search(len(reps), func(i int) bool { return reps[i] >= index })
}

// IsConjugacyMinimal reports whether p is the minimal element of its
// conjugacy class under the sign-alternating index.
func IsConjugacyMinimal(p P) bool {
	reps := ensure(int(p.deg)).classReps
	idx := p.SnIndex()
	at := sort.Search(len(reps), func(i int) bool { return reps[i] >= idx })

	return at < len(reps) && reps[at] == idx
}

// buildClasses enumerates the partitions of deg, constructs each class
// representative and its centraliser, and sorts classes by
// representative index.
func buildClasses(deg int) ([]int64, [][]P) {
	type class struct {
		idx  int64
		cent []P
	}

	var classes []class
	for _, parts := range partitions(deg) {
		rep := classRepOf(deg, parts)
		c := class{idx: rep.SnIndex()}
		if !rep.IsIdentity() {
			c.cent = centraliserOf(deg, parts)
		}
		classes = append(classes, c)
	}

	sort.Slice(classes, func(i, j int) bool { return classes[i].idx < classes[j].idx })

	reps := make([]int64, len(classes))
	cents := make([][]P, len(classes))
	for i, c := range classes {
		reps[i] = c.idx
		cents[i] = c.cent
	}

	return reps, cents
}

// partitions returns every partition of n as an ascending part list.
func partitions(n int) [][]int {
	var out [][]int
	var cur []int
	var rec func(rem, min int)
	rec = func(rem, min int) {
		if rem == 0 {
			out = append(out, append([]int(nil), cur...))

			return
		}
		for part := min; part <= rem; part++ {
			cur = append(cur, part)
			rec(rem-part, part)
			cur = cur[:len(cur)-1]
		}
	}
	rec(n, 1)

	return out
}

// classRepOf builds the conjugacy-minimal representative of the given
// ascending cycle type: consecutive blocks, each cycled forward.
func classRepOf(deg int, parts []int) P {
	images := make([]int, deg)
	start := 0
	for _, l := range parts {
		for t := 0; t < l-1; t++ {
			images[start+t] = start + t + 1
		}
		images[start+l-1] = start
		start += l
	}
	p, err := FromImages(images)
	if err != nil {
		panic(err)
	}

	return p
}

// centraliserOf generates every permutation commuting with the class
// representative of the given cycle type. Elements permute same-length
// cycles and rotate each cycle; the generated order is deterministic
// but otherwise unimportant.
func centraliserOf(deg int, parts []int) []P {
	// Block starts, then cycles grouped by common length.
	type group struct {
		length int
		starts []int
	}
	var groups []group
	start := 0
	for _, l := range parts {
		if len(groups) > 0 && groups[len(groups)-1].length == l {
			g := &groups[len(groups)-1]
			g.starts = append(g.starts, start)
		} else {
			groups = append(groups, group{length: l, starts: []int{start}})
		}
		start += l
	}

	images := make([]int, deg)
	var out []P

	var emitGroup func(gi int)
	emitGroup = func(gi int) {
		if gi == len(groups) {
			p, err := FromImages(images)
			if err != nil {
				panic(err)
			}
			out = append(out, p)

			return
		}

		g := groups[gi]
		k := len(g.starts)
		sigma := make([]int, k)
		offs := make([]int, k)
		used := make([]bool, k)

		var offsets func(j int)
		offsets = func(j int) {
			if j == k {
				for a := 0; a < k; a++ {
					src, dst := g.starts[a], g.starts[sigma[a]]
					for t := 0; t < g.length; t++ {
						images[src+t] = dst + (t+offs[a])%g.length
					}
				}
				emitGroup(gi + 1)

				return
			}
			for r := 0; r < g.length; r++ {
				offs[j] = r
				offsets(j + 1)
			}
		}

		var assign func(i int)
		assign = func(i int) {
			if i == k {
				offsets(0)

				return
			}
			for c := 0; c < k; c++ {
				if used[c] {
					continue
				}
				used[c] = true
				sigma[i] = c
				assign(i + 1)
				used[c] = false
			}
		}

		assign(0)
	}

	emitGroup(0)

	return out
}
