package pedigree

import (
	"slices"
	"strings"
)

// Default layout geometry. One slot per node horizontally, one row per
// generation vertically.
const (
	DefaultHSpacing = 120.0
	DefaultVSpacing = 100.0

	// refinePasses is the fixed number of re-centering passes. Three is
	// enough for ancestors to settle over their descendants' centroid on
	// realistic documents without a full force simulation.
	refinePasses = 3

	// retainWeight/pullWeight blend a parent's current x with its
	// children's mean x on every pass - a damped pull, not a snap.
	retainWeight = 0.3
	pullWeight   = 0.7
)

// LayoutOptions tune the layout geometry. The zero value selects the
// defaults.
type LayoutOptions struct {
	HSpacing float64 // horizontal slot width, > 0
	VSpacing float64 // vertical row height, > 0
}

// withDefaults fills unset options.
func (o LayoutOptions) withDefaults() LayoutOptions {
	if o.HSpacing <= 0 {
		o.HSpacing = DefaultHSpacing
	}
	if o.VSpacing <= 0 {
		o.VSpacing = DefaultVSpacing
	}
	return o
}

// ComputeLayout assigns x and y coordinates to every node.
//
// Nodes are grouped into generation rows (AssignGenerations must have
// run). Within a row, spouses sit adjacent and everyone else follows
// display-name order for determinism. Initial positions are evenly
// spaced slots centered at x = 0; refinement passes then pull parents
// toward the mean x of their children and push apart any nodes that end
// up closer than one horizontal spacing unit. The finished tree is
// centered so its bounding box straddles x = 0.
func ComputeLayout(g *Graph, opts LayoutOptions) {
	if len(g.Nodes) == 0 {
		return
	}
	opts = opts.withDefaults()

	rows := buildRows(g)
	placeInitial(rows, opts)
	refine(g, rows, opts)
	centerTree(g)
}

// buildRows groups nodes by generation and orders each row: spouse pairs
// adjacent, otherwise lexical by display name.
func buildRows(g *Graph) [][]*Node {
	byGen := make(map[int][]*Node)
	maxGen := 0
	for _, n := range g.Nodes {
		byGen[n.Generation] = append(byGen[n.Generation], n)
		if n.Generation > maxGen {
			maxGen = n.Generation
		}
	}

	spouse := g.spouseOf()

	rows := make([][]*Node, maxGen+1)
	for gen, nodes := range byGen {
		rows[gen] = orderRow(nodes, spouse, g)
	}
	return rows
}

// orderRow sorts a generation row by display name, then rearranges so
// that each spouse pair is adjacent: a node immediately precedes its
// spouse when both share the row.
func orderRow(nodes []*Node, spouse map[string]string, g *Graph) []*Node {
	slices.SortFunc(nodes, func(a, b *Node) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID) // names collide, keep stable
	})

	inRow := make(map[string]*Node, len(nodes))
	for _, n := range nodes {
		inRow[n.ID] = n
	}

	ordered := make([]*Node, 0, len(nodes))
	placed := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if placed[n.ID] {
			continue
		}
		ordered = append(ordered, n)
		placed[n.ID] = true

		if partner, ok := inRow[spouse[n.ID]]; ok && !placed[partner.ID] {
			ordered = append(ordered, partner)
			placed[partner.ID] = true
		}
	}
	return ordered
}

// placeInitial assigns evenly spaced slots centered at 0 and the row's y.
func placeInitial(rows [][]*Node, opts LayoutOptions) {
	for gen, row := range rows {
		width := float64(len(row)) * opts.HSpacing
		for i, n := range row {
			n.X = float64(i)*opts.HSpacing - width/2 + opts.HSpacing/2
			n.Y = float64(gen) * opts.VSpacing
		}
	}
}

// refine runs the fixed re-centering passes. Each pass walks rows top to
// bottom, pulls every parent toward its children's mean x with the
// damped blend, then re-sorts the row by x and resolves overlap.
func refine(g *Graph, rows [][]*Node, opts LayoutOptions) {
	_, childrenOf := g.parentLinks()

	for pass := 0; pass < refinePasses; pass++ {
		for _, row := range rows {
			for _, n := range row {
				sum := 0.0
				count := 0
				for _, id := range childrenOf[n.ID] {
					// Hand-edited graph files can carry links to absent
					// nodes; treat them the same as dropped references.
					child, ok := g.Node(id)
					if !ok {
						continue
					}
					sum += child.X
					count++
				}
				if count == 0 {
					continue
				}
				mean := sum / float64(count)
				n.X = retainWeight*n.X + pullWeight*mean
			}
			separate(row, opts.HSpacing)
		}
	}
}

// separate re-sorts a row by current x and pushes nodes right until no
// pair is closer than the horizontal spacing.
func separate(row []*Node, hSpacing float64) {
	slices.SortFunc(row, func(a, b *Node) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		}
		return 0
	})
	for i := 1; i < len(row); i++ {
		if gap := row[i].X - row[i-1].X; gap < hSpacing {
			row[i].X = row[i-1].X + hSpacing
		}
	}
}

// centerTree shifts all nodes so the horizontal bounding box is centered
// at x = 0.
func centerTree(g *Graph) {
	minX, maxX := g.Nodes[0].X, g.Nodes[0].X
	for _, n := range g.Nodes {
		if n.X < minX {
			minX = n.X
		}
		if n.X > maxX {
			maxX = n.X
		}
	}
	shift := (minX + maxX) / 2
	if shift == 0 {
		return
	}
	for _, n := range g.Nodes {
		n.X -= shift
	}
}
