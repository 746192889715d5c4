// Framing sequences and the self-framing procedure.
package link

import (
	"fmt"
	"strconv"
	"strings"
)

// Framings holds one decoration per link component, in component
// order.
type Framings struct {
	// All carries every token's integer value (0 for 1-handles).
	All []int

	// IsOneHandle flags the components declared with `x` or `.`.
	IsOneHandle []bool

	// TwoHandle lists the framings of the 2-handle components only,
	// in component order.
	TwoHandle []int
}

// ParseFramings reads a whitespace-separated framing sequence: an
// integer token declares a 2-handle with that framing, `x` or `.` a
// 1-handle.
func ParseFramings(s string) (*Framings, error) {
	f := &Framings{}
	for _, tok := range strings.Fields(s) {
		if tok == "x" || tok == "." {
			f.All = append(f.All, 0)
			f.IsOneHandle = append(f.IsOneHandle, true)

			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: token %q", ErrBadFraming, tok)
		}
		f.All = append(f.All, v)
		f.IsOneHandle = append(f.IsOneHandle, false)
		f.TwoHandle = append(f.TwoHandle, v)
	}
	if len(f.All) == 0 {
		return nil, fmt.Errorf("%w: empty sequence", ErrBadFraming)
	}

	return f, nil
}

// Diagram is a decorated link: a link plus its framing sequence, with
// the component indices split by handle kind.
type Diagram struct {
	link *Link
	fr   *Framings

	oneHandles []int // component indices declared as 1-handles
	twoHandles []int // component indices declared as 2-handles
}

// NewDiagram couples a link with its framings. Returns ErrBadFraming
// when the token count does not match the component count.
func NewDiagram(l *Link, fr *Framings) (*Diagram, error) {
	if len(fr.All) != l.CountComponents() {
		return nil, fmt.Errorf("%w: %d tokens for %d components",
			ErrBadFraming, len(fr.All), l.CountComponents())
	}
	d := &Diagram{link: l, fr: fr}
	for c, one := range fr.IsOneHandle {
		if one {
			d.oneHandles = append(d.oneHandles, c)
		} else {
			d.twoHandles = append(d.twoHandles, c)
		}
	}

	return d, nil
}

// Link returns the underlying link.
func (d *Diagram) Link() *Link { return d.link }

// HasOneHandles reports whether any component is a 1-handle.
func (d *Diagram) HasOneHandles() bool { return len(d.oneHandles) > 0 }

// CountTwoHandles returns the number of 2-handle components.
func (d *Diagram) CountTwoHandles() int { return len(d.twoHandles) }

// oneHandleCrossings returns, per 1-handle, the set of crossing
// indices its component runs through.
func (d *Diagram) oneHandleCrossings() []map[int]bool {
	out := make([]map[int]bool, len(d.oneHandles))
	for i, c := range d.oneHandles {
		set := make(map[int]bool)
		for _, r := range d.link.ComponentRefs(c) {
			set[r.Cross] = true
		}
		out[i] = set
	}

	return out
}

// commons returns, per 2-handle, the passages of that 2-handle whose
// crossing is shared with some 1-handle, in traversal order.
func (d *Diagram) commons() [][]StrandRef {
	oneSets := d.oneHandleCrossings()
	out := make([][]StrandRef, len(d.twoHandles))
	for i, c := range d.twoHandles {
		for _, r := range d.link.ComponentRefs(c) {
			for _, set := range oneSets {
				if set[r.Cross] {
					out[i] = append(out[i], r)
				}
			}
		}
	}

	return out
}

// framingSites picks, per 2-handle, the passage after which framing
// curls are inserted: preferentially a 1-handle intersection whose
// successor along the 2-handle is also one (so the curls land between
// the two, keeping the marker layout simple), otherwise the
// component's starting passage.
func (d *Diagram) framingSites() []StrandRef {
	commons := d.commons()
	sites := make([]StrandRef, len(d.twoHandles))
	for i, c := range d.twoHandles {
		found := false
		for _, common := range commons[i] {
			nxt := d.link.Next(common)
			for _, other := range commons[i] {
				if other == nxt {
					sites[i] = common
					found = true

					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			sites[i] = d.link.Component(c)
		}
	}

	return sites
}

// quadriPairs lists the quadricolour candidate pairs of one 2-handle:
// a curl followed by an under-crossing, an under-crossing followed by
// a curl (reversed), or a doubled curl followed by a same-strand curl.
func (l *Link) quadriPairs(start StrandRef) [][2]StrandRef {
	var result [][2]StrandRef
	cur := start
	for {
		nxt := l.Next(cur)
		if l.IsCurl(cur) {
			if !l.IsCurl(nxt) && nxt.Strand == 0 {
				result = append(result, [2]StrandRef{cur, nxt})
			}
			if l.IsCurl(nxt) && nxt.Cross == cur.Cross {
				nxt2 := l.Next(nxt)
				if l.IsCurl(nxt2) && nxt2.Strand == cur.Strand {
					result = append(result, [2]StrandRef{cur, nxt2})
				}
			}
		} else if cur.Strand == 0 && l.IsCurl(nxt) {
			result = append(result, [2]StrandRef{nxt, cur})
		}
		cur = l.Next(cur)
		if cur == start {
			break
		}
	}

	return result
}

// SelfFrame adjusts every 2-handle's writhe to its declared framing by
// inserting Reidemeister-I curls at the chosen framing sites, then
// verifies that every 2-handle carries a quadricolour site, adding one
// cancelling curl pair where necessary. In dimension 4 a 2-handle
// whose writhe already equals its framing still receives a cancelling
// pair so that a quadricolour exists.
//
// Returns a BadWritheError when a 1-handle is not drawn as a plain
// unknot, ErrNoQuadricolour in dimension 4 when the fix-up pass cannot
// establish a quadricolour, and ErrFraming on internal inconsistency. The receiver
// is unchanged; the framed diagram is returned.
func (d *Diagram) SelfFrame(dim int) (*Diagram, error) {
	// 1-handles must be honest unknots.
	var bad []int
	for _, c := range d.oneHandles {
		if d.link.Writhe(c) != 0 {
			bad = append(bad, c)
		}
	}
	if len(bad) > 0 {
		return nil, &BadWritheError{Components: bad}
	}

	sites := d.framingSites()
	l := d.link
	var err error

	for i, c := range d.twoHandles {
		w := l.Writhe(c)
		f := d.fr.TwoHandle[i]
		site := sites[i]

		switch {
		case w > f:
			for ; w != f; w-- {
				if l, err = l.R1(site, -1); err != nil {
					return nil, err
				}
			}
		case w < f:
			for ; w != f; w++ {
				if l, err = l.R1(site, 1); err != nil {
					return nil, err
				}
			}
		case dim == 4:
			// Writhe already matches: add a cancelling pair anyway so
			// a quadricolour site exists.
			if l, err = l.R1(site, 1); err != nil {
				return nil, err
			}
			if l, err = l.R1(site, -1); err != nil {
				return nil, err
			}
		}
	}

	// Verification pass: every 2-handle needs a quadricolour pair; a
	// cancelling pair of the opposite arrangement supplies one where
	// missing. Only the 4-manifold build consumes quadricolours, so
	// the absence is fatal only there.
	for _, c := range d.twoHandles {
		start := l.Component(c)
		if len(l.quadriPairs(start)) == 0 {
			if l, err = l.R1(start, -1); err != nil {
				return nil, err
			}
			if l, err = l.R1(start, 1); err != nil {
				return nil, err
			}
			if dim == 4 && len(l.quadriPairs(l.Component(c))) == 0 {
				return nil, fmt.Errorf("component %d: %w", c, ErrNoQuadricolour)
			}
		}
	}

	// The framing procedure must have landed every 2-handle exactly on
	// its declared framing.
	for i, c := range d.twoHandles {
		if l.Writhe(c) != d.fr.TwoHandle[i] {
			return nil, fmt.Errorf("%w: component %d at writhe %d, want %d",
				ErrFraming, c, l.Writhe(c), d.fr.TwoHandle[i])
		}
	}

	return NewDiagram(l, d.fr)
}

// QuadriRefs returns, per 2-handle, the chosen quadricolour pair (the
// first candidate along the component). In dimension 4 every 2-handle
// has one after SelfFrame.
func (d *Diagram) QuadriRefs() ([][2]StrandRef, error) {
	out := make([][2]StrandRef, len(d.twoHandles))
	for i, c := range d.twoHandles {
		pairs := d.link.quadriPairs(d.link.Component(c))
		if len(pairs) == 0 {
			return nil, fmt.Errorf("component %d: %w", c, ErrNoQuadricolour)
		}
		out[i] = pairs[0]
	}

	return out, nil
}

// QuadriCrossings returns, per 2-handle, the crossing-index pair of
// its chosen quadricolour.
func (d *Diagram) QuadriCrossings() ([][2]int, error) {
	refs, err := d.QuadriRefs()
	if err != nil {
		return nil, err
	}
	out := make([][2]int, len(refs))
	for i, pair := range refs {
		out[i] = [2]int{pair[0].Cross, pair[1].Cross}
	}

	return out, nil
}

// MarkedCrossings returns, per 1-handle, the (left, right) marked
// crossing indices under the counter-clockwise traversal convention:
// the left mark is where the walk moves from an under- to an
// over-passage, the right mark where it moves from over to under.
func (d *Diagram) MarkedCrossings() [][2]int {
	out := make([][2]int, len(d.oneHandles))
	for i, c := range d.oneHandles {
		var pair [2]int
		for _, r := range d.link.ComponentRefs(c) {
			nxt := d.link.Next(r)
			if r.Strand == 0 && nxt.Strand == 1 {
				pair[0] = r.Cross
			}
			if r.Strand == 1 && nxt.Strand == 0 {
				pair[1] = nxt.Cross
			}
		}
		out[i] = pair
	}

	return out
}

// HighlightCrossings returns, per 2-handle, the crossings visited by
// the highlight walk: starting from the 2-handle's quadricolour, walk
// the component (reversing direction when the quadricolour pair sits
// against the walk direction) until every 1-handle intersection of the
// 2-handle outside the quadricolour has been visited.
func (d *Diagram) HighlightCrossings() ([][]Highlight, error) {
	out := make([][]Highlight, len(d.twoHandles))
	if !d.HasOneHandles() {
		return out, nil
	}

	quadris, err := d.QuadriRefs()
	if err != nil {
		return nil, err
	}
	commons := d.commons()
	l := d.link

	for i := range d.twoHandles {
		if len(commons[i]) == 0 {
			continue
		}

		initRef := quadris[i][0]
		quadriX2 := quadris[i][1]

		// The walk must reach every common crossing outside the
		// starting quadricolour.
		var needed []StrandRef
		for _, r := range commons[i] {
			if r != initRef && r != quadriX2 {
				needed = append(needed, r)
			}
		}

		walkOpposite := false
		if l.IsCurl(initRef) && l.Next(l.Next(initRef)) == quadriX2 {
			walkOpposite = true
		}
		if l.Next(initRef) == quadriX2 {
			walkOpposite = true
		}

		walken := initRef
		if walkOpposite {
			if l.Prev(walken).Cross == walken.Cross {
				walken = l.Prev(l.Prev(walken))
			} else {
				walken = l.Prev(walken)
			}
		}

		var visited []StrandRef
		for {
			if walkOpposite {
				if l.IsCurl(walken) {
					visited = append(visited, l.Prev(walken))
					walken = l.Prev(l.Prev(walken))
				} else {
					visited = append(visited, walken)
					walken = l.Prev(walken)
				}
			} else {
				if l.IsCurl(walken) {
					visited = append(visited, walken)
					walken = l.Next(l.Next(walken))
				} else {
					visited = append(visited, walken)
					walken = l.Next(walken)
				}
			}
			if containsAll(needed, visited) {
				break
			}
		}

		hs := make([]Highlight, len(visited))
		for j, r := range visited {
			hs[j] = Highlight{Cross: r.Cross, Strand: r.Strand, Curl: l.IsCurl(r)}
		}
		out[i] = hs
	}

	return out, nil
}

// containsAll reports whether every element of needed appears in have.
func containsAll(needed, have []StrandRef) bool {
	for _, n := range needed {
		found := false
		for _, h := range have {
			if h == n {
				found = true

				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
