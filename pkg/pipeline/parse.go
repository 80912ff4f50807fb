package pipeline

import (
	"context"

	"github.com/pedigraph/pedigraph/pkg/gedcom"
	"github.com/pedigraph/pedigraph/pkg/pedigree"
)

// Parse builds a pedigree graph from GEDCOM source.
//
// Parsing is total: malformed lines are skipped and dangling record
// references are dropped, so this stage only fails when the context is
// cancelled. Generation assignment happens here rather than in layout so
// the cached graph already carries generations.
func Parse(ctx context.Context, opts Options) (*pedigree.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := gedcom.Parse(opts.Source)
	g := pedigree.Build(doc)
	pedigree.AssignGenerations(g)

	if g.Stats.DroppedRefs > 0 {
		opts.Logger.Warn("dropped dangling record references",
			"count", g.Stats.DroppedRefs)
	}

	return g, nil
}
