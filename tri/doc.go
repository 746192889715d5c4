// Package tri is the minimal triangulation collaborator consumed by
// the graph builder: simplices of a fixed dimension, identity facet
// gluings, validity checking and a canonical isomorphism signature.
//
// Because the edge-coloured graphs glue facet f of one simplex to
// facet f of another via the identity map, the whole triangulation is
// a facet pairing: glueings are stored as one target per facet. The
// signature canonicalises over every start simplex and every global
// facet relabelling, so two connected triangulations receive equal
// signatures exactly when their facet pairings are isomorphic. For a
// disconnected triangulation only the start simplex's component is
// encoded, plus the number of simplices outside it.
package tri
