package pedigree

import (
	"slices"

	"github.com/pedigraph/pedigraph/pkg/gedcom"
)

// Link types.
const (
	LinkMarriage    = "marriage"
	LinkParentChild = "parent-child"
)

// Node is one individual in the layout graph.
//
// The graph builder creates nodes and fills every field except X, Y, and
// Generation; the layout stage is the only writer of those three after
// creation. Individual is a back-reference to the full record for detail
// lookups (alternate names, notes) and is not serialized.
type Node struct {
	ID          string        `json:"id" bson:"id"`
	Name        string        `json:"name" bson:"name"`
	Sex         string        `json:"sex,omitempty" bson:"sex,omitempty"`
	Birth       *gedcom.Event `json:"birth,omitempty" bson:"birth,omitempty"`
	Death       *gedcom.Event `json:"death,omitempty" bson:"death,omitempty"`
	Lifespan    string        `json:"lifespan,omitempty" bson:"lifespan,omitempty"`
	Nationality string        `json:"nationality,omitempty" bson:"nationality,omitempty"`
	Occupation  string        `json:"occupation,omitempty" bson:"occupation,omitempty"`
	Titles      []string      `json:"titles,omitempty" bson:"titles,omitempty"`

	X          float64 `json:"x" bson:"x"`
	Y          float64 `json:"y" bson:"y"`
	Generation int     `json:"generation" bson:"generation"`

	Individual *gedcom.Individual `json:"-" bson:"-"`
}

// Link is one derived relationship edge. Source and Target are node IDs;
// Family is the owning family's ID. Marriage links connect the two
// spouses, parent-child links run from a parent to a child.
type Link struct {
	Source string `json:"source" bson:"source"`
	Target string `json:"target" bson:"target"`
	Type   string `json:"type" bson:"type"`
	Family string `json:"family,omitempty" bson:"family,omitempty"`
}

// Stats counts what the builder saw and silently dropped.
type Stats struct {
	DroppedRefs int `json:"dropped_refs,omitempty" bson:"dropped_refs,omitempty"`
}

// Graph is the derived node/link graph for one parse cycle. It is created
// whole by Build and discarded on the next parse; downstream stages mutate
// only the coordinate fields they own.
type Graph struct {
	Nodes []*Node `json:"nodes" bson:"nodes"`
	Links []Link  `json:"links" bson:"links"`
	Stats Stats   `json:"stats,omitempty" bson:"stats,omitempty"`

	byID map[string]*Node
}

// Node returns the node with the given individual ID, or nil and false.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.byID[id]
	return n, ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.Nodes) }

// LinkCount returns the number of links.
func (g *Graph) LinkCount() int { return len(g.Links) }

// Rows groups node IDs by generation. Useful for row-oriented consumers
// and assertions; the order within a row follows Nodes order.
func (g *Graph) Rows() map[int][]string {
	rows := make(map[int][]string)
	for _, n := range g.Nodes {
		rows[n.Generation] = append(rows[n.Generation], n.ID)
	}
	return rows
}

// Generations returns the distinct generation numbers in ascending order.
func (g *Graph) Generations() []int {
	rows := g.Rows()
	gens := make([]int, 0, len(rows))
	for gen := range rows {
		gens = append(gens, gen)
	}
	slices.Sort(gens)
	return gens
}

// reindex rebuilds the ID lookup from Nodes. Called after construction
// and after deserialization.
func (g *Graph) reindex() {
	g.byID = make(map[string]*Node, len(g.Nodes))
	for _, n := range g.Nodes {
		g.byID[n.ID] = n
	}
}

// parentLinks returns adjacency maps derived from parent-child links:
// child ID to parent IDs, and parent ID to child IDs.
func (g *Graph) parentLinks() (parentsOf, childrenOf map[string][]string) {
	parentsOf = make(map[string][]string)
	childrenOf = make(map[string][]string)
	for _, l := range g.Links {
		if l.Type != LinkParentChild {
			continue
		}
		childrenOf[l.Source] = append(childrenOf[l.Source], l.Target)
		parentsOf[l.Target] = append(parentsOf[l.Target], l.Source)
	}
	return parentsOf, childrenOf
}

// spouseOf builds a spouse lookup from marriage links. Each person maps
// to one spouse; when multiple marriages exist the last one seen wins.
func (g *Graph) spouseOf() map[string]string {
	spouse := make(map[string]string)
	for _, l := range g.Links {
		if l.Type != LinkMarriage {
			continue
		}
		spouse[l.Source] = l.Target
		spouse[l.Target] = l.Source
	}
	return spouse
}
