package pipeline

import (
	"github.com/pedigraph/pedigraph/pkg/pedigree"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout computes node positions in place and returns the graph.
//
// Rows follow generation assignments, so graphs coming from Parse are ready
// for layout. Graphs deserialized from elsewhere are laid out with whatever
// generations they carry.
func GenerateLayout(g *pedigree.Graph, opts Options) *pedigree.Graph {
	pedigree.ComputeLayout(g, opts.LayoutOptions())
	return g
}
