// This file declares Term and Expression, the word model shared by
// presentations and the cover enumerator's relator formulae.
package fpgroup

import (
	"fmt"
	"strings"
)

// Term is a single syllable of a group word: generator Gen raised to
// the (non-zero) exponent Exp.
type Term struct {
	Gen int
	Exp int64
}

// Expression is an ordered sequence of terms. The zero value is the
// empty word.
type Expression struct {
	terms []Term
}

// NewExpression builds an expression from the given terms, in order.
func NewExpression(terms ...Term) Expression {
	return Expression{terms: append([]Term(nil), terms...)}
}

// Word builds an expression from alternating generator/exponent pairs:
// Word(0, 1, 1, -2) is g₀·g₁⁻². It panics on an odd argument count,
// which is always a programming error at the call site.
func Word(pairs ...int64) Expression {
	if len(pairs)%2 != 0 {
		panic("fpgroup: Word requires generator/exponent pairs")
	}
	e := Expression{terms: make([]Term, 0, len(pairs)/2)}
	for i := 0; i < len(pairs); i += 2 {
		e.terms = append(e.terms, Term{Gen: int(pairs[i]), Exp: pairs[i+1]})
	}

	return e
}

// Terms exposes the underlying term slice. Callers must not modify it.
func (e Expression) Terms() []Term { return e.terms }

// Empty reports whether e is the empty word.
func (e Expression) Empty() bool { return len(e.terms) == 0 }

// AddTermLast appends a term to the end of the word. No merging with
// the previous term is performed.
func (e *Expression) AddTermLast(gen int, exp int64) {
	e.terms = append(e.terms, Term{Gen: gen, Exp: exp})
}

// CycleLeft rotates the word one term to the left: the first term
// moves to the back. A cyclic permutation of a relator names the same
// relation.
func (e *Expression) CycleLeft() {
	if len(e.terms) < 2 {
		return
	}
	first := e.terms[0]
	copy(e.terms, e.terms[1:])
	e.terms[len(e.terms)-1] = first
}

// WordLength returns the length of the word counted in generator
// letters: the sum of |Exp| over all terms.
func (e Expression) WordLength() int64 {
	var n int64
	for _, t := range e.terms {
		if t.Exp >= 0 {
			n += t.Exp
		} else {
			n -= t.Exp
		}
	}

	return n
}

// Equal reports term-wise equality.
func (e Expression) Equal(other Expression) bool {
	if len(e.terms) != len(other.terms) {
		return false
	}
	for i, t := range e.terms {
		if t != other.terms[i] {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of e.
func (e Expression) Clone() Expression {
	return Expression{terms: append([]Term(nil), e.terms...)}
}

// String renders the word as g0^1 g1^-2 …, with the empty word as "1".
func (e Expression) String() string {
	if len(e.terms) == 0 {
		return "1"
	}
	var b strings.Builder
	for i, t := range e.terms {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "g%d^%d", t.Gen, t.Exp)
	}

	return b.String()
}
