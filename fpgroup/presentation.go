// This file declares Presentation and its query surface.
package fpgroup

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
)

// ErrGenerator indicates a relation referencing a generator outside
// the presentation's range.
var ErrGenerator = errors.New("fpgroup: relation references unknown generator")

// Presentation is a finite group presentation
// ⟨ g₀,…,g_{n−1} ∣ r₀,…,r_{m−1} ⟩.
type Presentation struct {
	nGen int
	rels []Expression
}

// New builds a presentation over nGen generators with the given
// relations. Returns ErrGenerator if any relation mentions a
// generator outside [0, nGen).
func New(nGen int, rels []Expression) (*Presentation, error) {
	for _, r := range rels {
		for _, t := range r.Terms() {
			if t.Gen < 0 || t.Gen >= nGen {
				return nil, ErrGenerator
			}
		}
	}

	return &Presentation{nGen: nGen, rels: rels}, nil
}

// MustNew is New for statically-known presentations; it panics on
// error and exists for test and example brevity.
func MustNew(nGen int, rels ...Expression) *Presentation {
	p, err := New(nGen, rels)
	if err != nil {
		panic(err)
	}

	return p
}

// CountGenerators returns the number of generators.
func (p *Presentation) CountGenerators() int { return p.nGen }

// CountRelations returns the number of relations.
func (p *Presentation) CountRelations() int { return len(p.rels) }

// Relations exposes the relation slice. Callers must not modify it.
func (p *Presentation) Relations() []Expression { return p.rels }

// Clone returns a deep copy of p.
func (p *Presentation) Clone() *Presentation {
	rels := make([]Expression, len(p.rels))
	for i, r := range p.rels {
		rels[i] = r.Clone()
	}

	return &Presentation{nGen: p.nGen, rels: rels}
}

// Incidence returns the relation × generator incidence matrix: row r
// has bit g set iff relation r mentions generator g.
func (p *Presentation) Incidence() []*bitset.BitSet {
	rows := make([]*bitset.BitSet, len(p.rels))
	for i, r := range p.rels {
		row := bitset.New(uint(p.nGen))
		for _, t := range r.Terms() {
			row.Set(uint(t.Gen))
		}
		rows[i] = row
	}

	return rows
}
