// Build orchestration: phases 0–7 for dimension 4, phases 0–2 for
// dimension 3.
package kirbygraph

import (
	"github.com/katalvlaran/kirby/link"
)

// Build assembles the edge-coloured graph of a framed diagram. The
// diagram must already be self-framed (see link.Diagram.SelfFrame);
// in dimension 4 every 2-handle needs its quadricolour site.
//
// Dimension 3 stops after fusion and yields a 4-coloured graph — the
// dual of a tetrahedral triangulation of the surgered 3-manifold.
// Dimension 4 runs the colour-4 phases and yields a 5-coloured graph.
// In both cases the per-colour perfect matching is verified before
// returning.
func Build(d *link.Diagram, dim int, opts ...Option) (*Graph, error) {
	if dim != 3 && dim != 4 {
		return nil, ErrDimension
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	l := d.Link()
	code := l.Code()
	signs := l.Signs()

	// Phase 0: one gadget per crossing, keyed by kind and sign.
	g := newGraph(dim)
	for i, kind := range l.Kinds() {
		var t template
		switch kind {
		case link.Regular:
			if signs[i] == 1 {
				t = posCross
			} else {
				t = negCross
			}
		case link.PosCurlA:
			t = posCurlA
		case link.PosCurlB:
			t = posCurlB
		case link.NegCurlA:
			t = negCurlA
		case link.NegCurlB:
			t = negCurlB
		}
		g.placeGadget(t, i)
	}
	o.log.Debug().Int("crossings", len(code)).Int("nodes", g.Size()).Msg("gadgets placed")

	// Phase 1: rename boundary nodes onto PD strand labels.
	g.pdSub(code)

	// Phase 2: fuse strand ends.
	for _, pair := range g.fuseList() {
		g.fuse(pair[0], pair[1])
	}
	o.log.Debug().Int("nodes", g.Size()).Msg("fused")

	if dim == 3 {
		if err := g.checkMatching(4); err != nil {
			return nil, err
		}

		return g, nil
	}

	// Phase 3: quadricolour edges, matched against the link-level
	// quadricolour sites.
	linkQuadris, err := d.QuadriCrossings()
	if err != nil {
		return nil, err
	}
	matched, err := g.matchQuadricolours(g.quadricolours(), linkQuadris)
	if err != nil {
		return nil, err
	}
	g.addQuadriEdges(matched)
	o.log.Debug().Int("quadricolours", len(matched)).Msg("quadricolour edges added")

	if d.HasOneHandles() {
		// Phase 4: 1-handle markers.
		g.addMarkerEdges(markerNodes(d.MarkedCrossings(), signs))

		// Phase 5: highlight edges.
		walks, err := d.HighlightCrossings()
		if err != nil {
			return nil, err
		}
		g.addHighlightEdges(walks)

		// Phases 6 and 7: double-1 and remainder edges.
		g.addDoubleOneEdges()
		if err := g.addRemainderEdges(); err != nil {
			return nil, err
		}
	} else {
		// Phase 6 alone saturates colour 4 without 1-handles.
		g.addDoubleOneEdges()
	}

	if err := g.checkMatching(5); err != nil {
		return nil, err
	}
	o.log.Debug().Int("nodes", g.Size()).Msg("assembly complete")

	return g, nil
}
