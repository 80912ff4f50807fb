package pedigree

import "strconv"

// Fallback generation estimate for individuals with no path from any
// root: one generation per 30 years from a year-1000 epoch. The
// constants are inherited behavior, tunable but not principled - do not
// adjust without revisiting every document that relies on them.
const (
	fallbackEpochYear = 1000
	fallbackGenSpan   = 30
)

// AssignGenerations gives every node a generation number.
//
// Roots (nodes with no recorded parent) start at generation 0. A
// breadth-first expansion assigns each child one generation below its
// parent, always keeping the deepest value seen: a node reachable via
// ancestor paths of different lengths lands at the longest one. A
// spouse follows their partner's generation so married-in individuals
// share the partner's row. Nodes the traversal never reaches -
// individuals with no parent-child links at all, or members of
// ancestry cycles - get an estimate from their birth year, or 0.
// Finally all generations are shifted so the minimum is 0.
func AssignGenerations(g *Graph) {
	if len(g.Nodes) == 0 {
		return
	}

	parentsOf, childrenOf := g.parentLinks()
	spouseOf := g.spouseOf()

	gen := make(map[string]int, len(g.Nodes))
	queue := make([]string, 0, len(g.Nodes))

	for _, n := range g.Nodes {
		if len(parentsOf[n.ID]) == 0 && len(childrenOf[n.ID]) > 0 {
			gen[n.ID] = 0
			queue = append(queue, n.ID)
		}
	}

	// No generation can exceed the longest simple path, so this bound
	// only stops contradictory ancestry (cycles) from looping forever.
	maxGen := len(g.Nodes)

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if partner, ok := spouseOf[curr]; ok {
			if assigned, seen := gen[partner]; !seen || gen[curr] > assigned {
				gen[partner] = gen[curr]
				queue = append(queue, partner)
			}
		}

		next := gen[curr] + 1
		if next > maxGen {
			continue
		}
		for _, child := range childrenOf[curr] {
			if assigned, ok := gen[child]; !ok || next > assigned {
				gen[child] = next
				queue = append(queue, child)
			}
		}
	}

	minGen := 0
	for i, n := range g.Nodes {
		assigned, ok := gen[n.ID]
		if !ok {
			assigned = fallbackGeneration(n)
		}
		n.Generation = assigned
		if i == 0 || assigned < minGen {
			minGen = assigned
		}
	}

	if minGen != 0 {
		for _, n := range g.Nodes {
			n.Generation -= minGen
		}
	}
}

// fallbackGeneration estimates a generation from the node's birth year.
// Without a recognizable year the node defaults to generation 0.
func fallbackGeneration(n *Node) int {
	text := eventYearText(n.Birth)
	if text == "" {
		return 0
	}
	year, err := strconv.Atoi(text)
	if err != nil {
		return 0
	}
	est := (year - fallbackEpochYear) / fallbackGenSpan
	if est < 0 {
		return 0
	}
	return est
}
