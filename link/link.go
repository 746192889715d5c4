// The traversal model: components, strand references, writhe, and the
// Reidemeister-I move.
package link

import (
	"fmt"
)

// Link is an immutable oriented link diagram reconstructed from a PD
// code.
type Link struct {
	code  Code
	kinds []CrossKind
	eov   [][4]int
	signs []int

	// comps[c] lists component c's passages in traversal order.
	comps [][]StrandRef

	next   map[StrandRef]StrandRef
	prev   map[StrandRef]StrandRef
	compOf map[StrandRef]int
}

// FromCode builds the traversal model of a PD code. Returns
// ErrMalformedPD when the code does not describe a link diagram.
func FromCode(code Code) (*Link, error) {
	if len(code) == 0 {
		return nil, fmt.Errorf("%w: empty code", ErrMalformedPD)
	}

	// Every strand label must have exactly two ends.
	ends := make(map[int]int)
	for _, t := range code {
		for _, label := range t {
			if label <= 0 {
				return nil, fmt.Errorf("%w: non-positive label %d", ErrMalformedPD, label)
			}
			ends[label]++
		}
	}
	for label, n := range ends {
		if n != 2 {
			return nil, fmt.Errorf("%w: strand %d has %d ends", ErrMalformedPD, label, n)
		}
	}

	eov, signs, err := orientations(code)
	if err != nil {
		return nil, err
	}

	l := &Link{
		code:   code.Clone(),
		kinds:  kinds(code),
		eov:    eov,
		signs:  signs,
		next:   make(map[StrandRef]StrandRef),
		prev:   make(map[StrandRef]StrandRef),
		compOf: make(map[StrandRef]int),
	}
	if err := l.traverse(); err != nil {
		return nil, err
	}

	return l, nil
}

// entryPos returns the tuple position at which the given passage
// enters its crossing: position 0 for the under-strand, the marked
// in-position among {1,3} for the over-strand.
func (l *Link) entryPos(r StrandRef) int {
	if r.Strand == 0 {
		return 0
	}
	if l.eov[r.Cross][1] == 1 {
		return 1
	}

	return 3
}

// exitPos returns the tuple position at which the given passage leaves
// its crossing.
func (l *Link) exitPos(r StrandRef) int {
	if r.Strand == 0 {
		return 2
	}
	if l.eov[r.Cross][1] == -1 {
		return 1
	}

	return 3
}

// traverse discovers the components, filling comps, next, prev and
// compOf. Components are ordered by first appearance in the code;
// each starts at its earliest (crossing, strand) passage.
func (l *Link) traverse() error {
	// entry[label] = the passage entered through that label.
	entry := make(map[int]StrandRef)
	for i := range l.code {
		for _, r := range []StrandRef{{Cross: i, Strand: 0}, {Cross: i, Strand: 1}} {
			entry[l.code[i][l.entryPos(r)]] = r
		}
	}

	visited := make(map[StrandRef]bool)
	for i := range l.code {
		for strand := 0; strand < 2; strand++ {
			start := StrandRef{Cross: i, Strand: strand}
			if visited[start] {
				continue
			}
			comp := []StrandRef{}
			cur := start
			for {
				if visited[cur] {
					return fmt.Errorf("%w: strand traversal collapsed at %v", ErrMalformedPD, cur)
				}
				visited[cur] = true
				comp = append(comp, cur)
				l.compOf[cur] = len(l.comps)

				out := l.code[cur.Cross][l.exitPos(cur)]
				nxt, ok := entry[out]
				if !ok {
					return fmt.Errorf("%w: dangling strand %d", ErrMalformedPD, out)
				}
				l.next[cur] = nxt
				l.prev[nxt] = cur
				if nxt == start {
					break
				}
				cur = nxt
			}
			l.comps = append(l.comps, comp)
		}
	}

	return nil
}

// Code returns the PD code. Callers must not modify it.
func (l *Link) Code() Code { return l.code }

// Kinds returns the per-crossing classification.
func (l *Link) Kinds() []CrossKind { return l.kinds }

// Signs returns the per-crossing signs.
func (l *Link) Signs() []int { return l.signs }

// CountComponents returns the number of link components.
func (l *Link) CountComponents() int { return len(l.comps) }

// Component returns the starting strand reference of component c.
func (l *Link) Component(c int) StrandRef { return l.comps[c][0] }

// ComponentRefs returns component c's passages in traversal order.
// Callers must not modify the returned slice.
func (l *Link) ComponentRefs(c int) []StrandRef { return l.comps[c] }

// Next returns the passage following r along its component.
func (l *Link) Next(r StrandRef) StrandRef { return l.next[r] }

// Prev returns the passage preceding r along its component.
func (l *Link) Prev(r StrandRef) StrandRef { return l.prev[r] }

// IsCurl reports whether r's crossing is visited twice in a row, i.e.
// the passage runs through a Reidemeister-I curl.
func (l *Link) IsCurl(r StrandRef) bool {
	return l.next[r].Cross == r.Cross || l.prev[r].Cross == r.Cross
}

// Writhe returns the writhe of component c: the signed count of the
// crossings at which the component crosses itself.
func (l *Link) Writhe(c int) int {
	w := 0
	for i := range l.code {
		u := StrandRef{Cross: i, Strand: 0}
		o := StrandRef{Cross: i, Strand: 1}
		if l.compOf[u] == c && l.compOf[o] == c {
			w += l.signs[i]
		}
	}

	return w
}

// maxLabel returns the largest strand label in use.
func (l *Link) maxLabel() int {
	max := 0
	for _, t := range l.code {
		for _, label := range t {
			if label > max {
				max = label
			}
		}
	}

	return max
}

// R1 performs a Reidemeister-I move: it inserts a curl of the given
// sign (±1) into the arc exiting the passage ref, and returns the link
// rebuilt from the transformed PD code. Crossing indices of existing
// crossings are unchanged (the new crossing is appended), so strand
// references held by the caller remain valid.
func (l *Link) R1(ref StrandRef, sign int) (*Link, error) {
	exit := l.code[ref.Cross][l.exitPos(ref)]
	k := l.maxLabel() + 1
	m := k + 1

	code := l.code.Clone()

	// The downstream entry end of the split arc takes the fresh label.
	nxt := l.next[ref]
	code[nxt.Cross][l.entryPos(nxt)] = m

	// A curl consumes the old label and emits the fresh one, with the
	// loop label doubled inside the new tuple. The shapes are chosen
	// so that a positive curl is traversed under-strand first and a
	// negative curl over-strand first; the quadricolour pair rule
	// relies on that asymmetry to accept only same-sign curl pairs.
	if sign > 0 {
		code = append(code, Tuple{exit, m, k, k})
	} else {
		code = append(code, Tuple{k, exit, m, k})
	}

	return FromCode(code)
}
