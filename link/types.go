// This file declares the PD-code model, strand references, and the
// package's sentinel errors.
package link

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for diagram construction and framing.
var (
	// ErrMalformedPD indicates a PD code that cannot describe a link:
	// non-integer input, a label count not divisible by four, or a
	// strand label that does not appear exactly twice.
	ErrMalformedPD = errors.New("link: malformed PD code")

	// ErrBadFraming indicates an unparsable framing token or a token
	// count that does not match the component count.
	ErrBadFraming = errors.New("link: bad framing sequence")

	// ErrNoQuadricolour indicates that a 2-handle still has no
	// quadricolour site after framing and the fix-up pass.
	ErrNoQuadricolour = errors.New("link: no quadricolour site on a 2-handle")

	// ErrFraming indicates that self-framing failed to establish the
	// declared framing (an internal inconsistency).
	ErrFraming = errors.New("link: self-framing failed to reach the declared framing")
)

// BadWritheError reports 1-handle components drawn with non-zero
// writhe. A 1-handle must be diagrammed as a plain unknot.
type BadWritheError struct {
	// Components lists the offending component indices.
	Components []int
}

func (e *BadWritheError) Error() string {
	return fmt.Sprintf("link: components %v are marked as 1-handles but have non-zero writhe", e.Components)
}

// Tuple is one PD-code crossing: the labels of the four incident
// strand-ends in cyclic order (in, right, out, left).
type Tuple [4]int

func (t Tuple) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", t[0], t[1], t[2], t[3])
}

// Code is a whole PD code.
type Code []Tuple

func (c Code) String() string {
	parts := make([]string, len(c))
	for i, t := range c {
		parts[i] = t.String()
	}

	return "[" + strings.Join(parts, ",") + "]"
}

// Clone returns a copy of the code.
func (c Code) Clone() Code {
	return append(Code(nil), c...)
}

// CrossKind classifies a PD tuple.
type CrossKind int

const (
	// Regular is a true crossing: all four labels distinct.
	Regular CrossKind = iota

	// PosCurlA is the positive curl (a,b,x,x), endpoints on the right.
	PosCurlA

	// PosCurlB is the positive curl (x,x,c,d), endpoints on the left.
	PosCurlB

	// NegCurlA is the negative curl (a,x,x,d), endpoints on the bottom.
	NegCurlA

	// NegCurlB is the negative curl (x,b,c,x), endpoints on the top.
	NegCurlB
)

// IsCurl reports whether the kind is any of the four curl shapes.
func (k CrossKind) IsCurl() bool { return k != Regular }

// StrandRef identifies one passage of a component through a crossing:
// Strand 0 is the under-strand, 1 the over-strand.
type StrandRef struct {
	Cross  int
	Strand int
}

func (r StrandRef) String() string {
	return fmt.Sprintf("%d:%d", r.Cross, r.Strand)
}

// Highlight is one crossing visited by the highlight walk, together
// with how the walk passed it.
type Highlight struct {
	Cross  int
	Strand int
	Curl   bool
}
