package pedigree

import (
	"fmt"
	"regexp"

	"github.com/pedigraph/pedigraph/pkg/gedcom"
)

// yearPattern extracts a 3-4 digit year from a free-text GEDCOM date.
var yearPattern = regexp.MustCompile(`\d{3,4}`)

// Build converts the finalized record collections into a node/link graph.
//
// One node is emitted per individual. Per family: a marriage link between
// husband and wife when both resolve to nodes, and one parent-child link
// from each resolvable parent to each resolvable child, all tagged with
// the family ID. References to unknown individuals produce no link and
// are counted in Stats.DroppedRefs.
func Build(doc *gedcom.Document) *Graph {
	g := &Graph{Nodes: make([]*Node, 0, len(doc.Individuals))}

	for _, ind := range doc.Individuals {
		g.Nodes = append(g.Nodes, newNode(ind))
	}
	g.reindex()

	for _, fam := range doc.Families {
		g.linkFamily(fam)
	}

	return g
}

// newNode derives the layout node for one individual.
func newNode(ind *gedcom.Individual) *Node {
	return &Node{
		ID:          ind.ID,
		Name:        ind.DisplayName(),
		Sex:         ind.Sex,
		Birth:       ind.Birth,
		Death:       ind.Death,
		Lifespan:    lifespan(ind.Birth, ind.Death),
		Nationality: ind.Nationality,
		Occupation:  ind.Occupation,
		Titles:      ind.Titles,
		Individual:  ind,
	}
}

// linkFamily emits the marriage and parent-child links for one family.
func (g *Graph) linkFamily(fam *gedcom.Family) {
	husband := g.resolve(fam.Husband)
	wife := g.resolve(fam.Wife)

	if husband != "" && wife != "" {
		g.Links = append(g.Links, Link{
			Source: husband,
			Target: wife,
			Type:   LinkMarriage,
			Family: fam.ID,
		})
	}

	for _, childRef := range fam.Children {
		child := g.resolve(childRef)
		if child == "" {
			continue
		}
		for _, parent := range []string{husband, wife} {
			if parent == "" {
				continue
			}
			g.Links = append(g.Links, Link{
				Source: parent,
				Target: child,
				Type:   LinkParentChild,
				Family: fam.ID,
			})
		}
	}
}

// resolve returns the ID if it names a known node, "" otherwise. Empty
// references are absent, not dropped; only non-empty unknowns count.
func (g *Graph) resolve(id string) string {
	if id == "" {
		return ""
	}
	if _, ok := g.byID[id]; !ok {
		g.Stats.DroppedRefs++
		return ""
	}
	return id
}

// lifespan formats a "birth-death" year range from the event dates.
// Unknown years render as "?"; two unknown years render as "".
func lifespan(birth, death *gedcom.Event) string {
	b := eventYearText(birth)
	d := eventYearText(death)
	if b == "" && d == "" {
		return ""
	}
	if b == "" {
		b = "?"
	}
	if d == "" {
		d = "?"
	}
	return fmt.Sprintf("%s-%s", b, d)
}

// eventYearText returns the first 3-4 digit year in the event date, or "".
func eventYearText(ev *gedcom.Event) string {
	if ev == nil {
		return ""
	}
	return yearPattern.FindString(ev.Date)
}
