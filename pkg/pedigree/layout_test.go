package pedigree

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/pedigraph/pedigraph/pkg/gedcom"
)

const familyTree = `0 @I1@ INDI
1 NAME Adam /Stern/
0 @I2@ INDI
1 NAME Berta /Stern/
0 @I3@ INDI
1 NAME Carl /Stern/
0 @I4@ INDI
1 NAME Dora /Klein/
0 @I5@ INDI
1 NAME Emil /Stern/
0 @I6@ INDI
1 NAME Frida /Stern/
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I3@
0 @F2@ FAM
1 HUSB @I3@
1 WIFE @I4@
1 CHIL @I5@
1 CHIL @I6@
`

func laidOut(t *testing.T, src string) *Graph {
	t.Helper()
	g := Build(gedcom.Parse(src))
	AssignGenerations(g)
	ComputeLayout(g, LayoutOptions{})
	return g
}

func TestComputeLayoutRowsAndSpacing(t *testing.T) {
	g := laidOut(t, familyTree)

	// y strictly follows generation.
	for _, n := range g.Nodes {
		if want := float64(n.Generation) * DefaultVSpacing; n.Y != want {
			t.Errorf("%s: y = %v, want %v", n.ID, n.Y, want)
		}
	}

	// No two nodes in a row closer than one horizontal spacing unit.
	for gen, ids := range g.Rows() {
		xs := make([]float64, 0, len(ids))
		for _, id := range ids {
			n, _ := g.Node(id)
			xs = append(xs, n.X)
		}
		slices.Sort(xs)
		for i := 1; i < len(xs); i++ {
			if gap := xs[i] - xs[i-1]; gap < DefaultHSpacing-1e-9 {
				t.Errorf("generation %d: gap %v < spacing %v", gen, gap, DefaultHSpacing)
			}
		}
	}
}

func TestComputeLayoutSpousesAdjacent(t *testing.T) {
	g := laidOut(t, familyTree)

	pairs := [][2]string{{"I1", "I2"}, {"I3", "I4"}}
	for _, pair := range pairs {
		a, _ := g.Node(pair[0])
		b, _ := g.Node(pair[1])
		if a.Generation != b.Generation {
			t.Fatalf("spouses %s/%s in different generations", pair[0], pair[1])
		}
		if gap := math.Abs(a.X - b.X); gap > DefaultHSpacing+1e-9 {
			t.Errorf("spouses %s/%s separated by %v, want one slot", pair[0], pair[1], gap)
		}
	}
}

func TestComputeLayoutCenteredAtZero(t *testing.T) {
	g := laidOut(t, familyTree)

	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, n := range g.Nodes {
		minX = math.Min(minX, n.X)
		maxX = math.Max(maxX, n.X)
	}
	if center := (minX + maxX) / 2; math.Abs(center) > 1e-9 {
		t.Errorf("bounding box center = %v, want 0", center)
	}
}

func TestComputeLayoutParentsOverChildren(t *testing.T) {
	// Single parent with two children: after refinement the parent
	// should sit near the children's mean x.
	g := laidOut(t, `0 @I1@ INDI
1 NAME Solo /Parent/
0 @I2@ INDI
1 NAME Kid /One/
0 @I3@ INDI
1 NAME Kid /Two/
0 @F1@ FAM
1 HUSB @I1@
1 CHIL @I2@
1 CHIL @I3@
`)

	parent, _ := g.Node("I1")
	a, _ := g.Node("I2")
	b, _ := g.Node("I3")
	mean := (a.X + b.X) / 2
	if math.Abs(parent.X-mean) > DefaultHSpacing {
		t.Errorf("parent x = %v, children mean = %v; want parent pulled toward mean", parent.X, mean)
	}
}

func TestComputeLayoutDeterministic(t *testing.T) {
	a := laidOut(t, familyTree)
	b := laidOut(t, familyTree)

	for _, na := range a.Nodes {
		nb, ok := b.Node(na.ID)
		if !ok {
			t.Fatalf("node %s missing from second layout", na.ID)
		}
		if na.X != nb.X || na.Y != nb.Y || na.Generation != nb.Generation {
			t.Errorf("%s: (%v,%v,g%d) != (%v,%v,g%d)",
				na.ID, na.X, na.Y, na.Generation, nb.X, nb.Y, nb.Generation)
		}
	}
}

func TestComputeLayoutCustomSpacing(t *testing.T) {
	g := Build(gedcom.Parse(familyTree))
	AssignGenerations(g)
	ComputeLayout(g, LayoutOptions{HSpacing: 50, VSpacing: 40})

	for _, n := range g.Nodes {
		if want := float64(n.Generation) * 40; n.Y != want {
			t.Errorf("%s: y = %v, want %v", n.ID, n.Y, want)
		}
	}
}

func TestComputeLayoutDanglingLink(t *testing.T) {
	// Hand-edited graph files can reference nodes that are absent. The
	// layout must treat such links like dropped references, not crash.
	g, err := UnmarshalGraph([]byte(`{
		"nodes": [{"id": "I1", "name": "Only One"}],
		"links": [{"source": "I1", "target": "MISSING", "type": "parent-child"}]
	}`))
	if err != nil {
		t.Fatal(err)
	}

	ComputeLayout(g, LayoutOptions{}) // must not panic

	n, _ := g.Node("I1")
	if n.X != 0 {
		t.Errorf("x = %v, want 0 (no resolvable children to pull toward)", n.X)
	}
}

func TestComputeLayoutEmptyGraph(t *testing.T) {
	g := Build(gedcom.Parse(""))
	AssignGenerations(g)
	ComputeLayout(g, LayoutOptions{}) // must not panic
}

func TestComputeLayoutSingleNode(t *testing.T) {
	g := laidOut(t, "0 @I1@ INDI\n1 NAME Only /One/\n")
	n, _ := g.Node("I1")
	if n.X != 0 || n.Y != 0 {
		t.Errorf("single node at (%v,%v), want origin", n.X, n.Y)
	}
}

func TestToDOT(t *testing.T) {
	g := laidOut(t, familyTree)
	dot := ToDOT(g)

	for _, want := range []string{"digraph pedigree", `"I1" -> "I2" [dir=none`, `"I1" -> "I3";`, "rank=same"} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q", want)
		}
	}
}
