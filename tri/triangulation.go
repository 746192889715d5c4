// Simplices, identity joins, and validity.
package tri

import (
	"errors"
	"fmt"
)

// Sentinel errors for triangulation construction.
var (
	// ErrDimension indicates an unsupported dimension.
	ErrDimension = errors.New("tri: dimension must lie between 2 and 15")

	// ErrInvalidGluing indicates a join that cannot be performed:
	// indices out of range, a facet already glued, or a facet glued to
	// itself.
	ErrInvalidGluing = errors.New("tri: invalid gluing")
)

// Triangulation is a d-dimensional simplicial complex assembled purely
// from identity facet gluings. glue[s][f] is the simplex whose facet f
// is identified with facet f of s, or −1 on the boundary.
type Triangulation struct {
	dim  int
	glue [][]int
}

// New returns an empty triangulation of the given dimension.
func New(dim int) (*Triangulation, error) {
	if dim < 2 || dim > 15 {
		return nil, ErrDimension
	}

	return &Triangulation{dim: dim}, nil
}

// Dim returns the dimension.
func (t *Triangulation) Dim() int { return t.dim }

// Size returns the number of simplices.
func (t *Triangulation) Size() int { return len(t.glue) }

// NewSimplex appends a simplex with all facets on the boundary and
// returns its index.
func (t *Triangulation) NewSimplex() int {
	row := make([]int, t.dim+1)
	for i := range row {
		row[i] = -1
	}
	t.glue = append(t.glue, row)

	return len(t.glue) - 1
}

// NewSimplices appends n simplices.
func (t *Triangulation) NewSimplices(n int) {
	for i := 0; i < n; i++ {
		t.NewSimplex()
	}
}

// Join identifies facet f of simplex s with facet f of simplex o via
// the identity map. Both facets must be unglued, and s must differ
// from o (a facet cannot be glued to itself under the identity).
func (t *Triangulation) Join(s, f, o int) error {
	if s < 0 || s >= len(t.glue) || o < 0 || o >= len(t.glue) ||
		f < 0 || f > t.dim {
		return fmt.Errorf("%w: join(%d, %d, %d) out of range", ErrInvalidGluing, s, f, o)
	}
	if s == o {
		return fmt.Errorf("%w: facet %d of simplex %d glued to itself", ErrInvalidGluing, f, s)
	}
	if t.glue[s][f] != -1 || t.glue[o][f] != -1 {
		return fmt.Errorf("%w: facet %d of %d or %d already glued", ErrInvalidGluing, f, s, o)
	}
	t.glue[s][f] = o
	t.glue[o][f] = s

	return nil
}

// IsValid reports whether every gluing is mutually consistent: each
// glued facet's partner points back, and no facet is glued to its own
// simplex.
func (t *Triangulation) IsValid() bool {
	for s := range t.glue {
		for f := 0; f <= t.dim; f++ {
			o := t.glue[s][f]
			if o == -1 {
				continue
			}
			if o < 0 || o >= len(t.glue) || o == s || t.glue[o][f] != s {
				return false
			}
		}
	}

	return true
}
