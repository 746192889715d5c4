// Node identity, build options and sentinel errors.
package kirbygraph

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Sentinel errors for graph assembly.
var (
	// ErrInvariant indicates that some node lacks a neighbour in some
	// colour after all build phases.
	ErrInvariant = errors.New("kirbygraph: node missing a coloured neighbour after assembly")

	// ErrDimension indicates a dimension other than 3 or 4.
	ErrDimension = errors.New("kirbygraph: dimension must be 3 or 4")
)

// Node identifies a graph node: the gadget-template ID, the strand
// slot (a template position 1–4 before PD substitution, a PD strand
// label after; 0 for internal nodes), and the crossing the gadget
// came from.
type Node struct {
	ID     int
	Strand int
	Comp   int
}

func (n Node) String() string {
	return fmt.Sprintf("(%d,%d,%d)", n.ID, n.Strand, n.Comp)
}

// nodeLess is the canonical node ordering: by ID, then strand slot,
// then component. Phase iteration order and gluing-list numbering both
// follow it.
func nodeLess(a, b Node) bool {
	if a.ID != b.ID {
		return a.ID < b.ID
	}
	if a.Strand != b.Strand {
		return a.Strand < b.Strand
	}

	return a.Comp < b.Comp
}

// Gluing is one edge of the finished graph, exported for the
// triangulation builder: simplices From and To share facet Facet.
type Gluing struct {
	From, To int
	Facet    int
}

// Option configures a build.
type Option func(*options)

type options struct {
	log *zerolog.Logger
}

func defaultOptions() options {
	l := zerolog.Nop()

	return options{log: &l}
}

// WithLogger installs a logger for per-phase progress diagnostics.
func WithLogger(l *zerolog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}
