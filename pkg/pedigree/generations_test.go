package pedigree

import (
	"testing"

	"github.com/pedigraph/pedigraph/pkg/gedcom"
)

// buildGraph parses src and assigns generations.
func buildGraph(t *testing.T, src string) *Graph {
	t.Helper()
	g := Build(gedcom.Parse(src))
	AssignGenerations(g)
	return g
}

func generation(t *testing.T, g *Graph, id string) int {
	t.Helper()
	n, ok := g.Node(id)
	if !ok {
		t.Fatalf("node %s missing", id)
	}
	return n.Generation
}

func TestAssignGenerationsParentChild(t *testing.T) {
	g := buildGraph(t, `0 @I1@ INDI
1 BIRT
2 DATE 1 JAN 1900
0 @I2@ INDI
0 @F1@ FAM
1 HUSB @I1@
1 CHIL @I2@
`)

	if got := generation(t, g, "I1"); got != 0 {
		t.Errorf("generation(I1) = %d, want 0", got)
	}
	if got := generation(t, g, "I2"); got != 1 {
		t.Errorf("generation(I2) = %d, want 1", got)
	}
}

func TestAssignGenerationsDeepestPathWins(t *testing.T) {
	// I4 is reachable from the root I1 via two paths: directly as a
	// child (length 1... via F2), and through I2->I3 (length 3 via F1,
	// F3, F4). The deeper assignment must win.
	g := buildGraph(t, `0 @I1@ INDI
0 @I2@ INDI
0 @I3@ INDI
0 @I4@ INDI
0 @F1@ FAM
1 HUSB @I1@
1 CHIL @I2@
0 @F2@ FAM
1 HUSB @I1@
1 CHIL @I4@
0 @F3@ FAM
1 HUSB @I2@
1 CHIL @I3@
0 @F4@ FAM
1 HUSB @I3@
1 CHIL @I4@
`)

	if got := generation(t, g, "I4"); got != 3 {
		t.Errorf("generation(I4) = %d, want 3 (deepest path)", got)
	}
}

func TestAssignGenerationsLoneNodeNormalizesToZero(t *testing.T) {
	// A lone node takes the birth-year fallback, but it is also the
	// document minimum, so normalization shifts it back to 0.
	for _, date := range []string{"1 JAN 1900", "1960", "950", "sometime"} {
		g := Build(gedcom.Parse("0 @I1@ INDI\n1 BIRT\n2 DATE " + date + "\n"))
		AssignGenerations(g)

		n, _ := g.Node("I1")
		if n.Generation != 0 {
			t.Errorf("lone node with date %q: generation = %d, want 0", date, n.Generation)
		}
	}
}

func TestFallbackGeneration(t *testing.T) {
	tests := []struct {
		name string
		date string
		want int
	}{
		{name: "Year1900", date: "1 JAN 1900", want: 30},
		{name: "Year1960", date: "1960", want: 32},
		{name: "Year1029", date: "1029", want: 0},
		{name: "Year1030", date: "1030", want: 1},
		{name: "PreEpochClamped", date: "950", want: 0},
		{name: "NoYear", date: "sometime", want: 0},
		{name: "NoBirth", date: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &Node{}
			if tt.date != "" {
				n.Birth = &gedcom.Event{Date: tt.date}
			}
			if got := fallbackGeneration(n); got != tt.want {
				t.Errorf("fallbackGeneration(%q) = %d, want %d", tt.date, got, tt.want)
			}
		})
	}
}

func TestAssignGenerationsDisconnectedUsesFallback(t *testing.T) {
	// I1/I2 form a root chain; I9 is fully disconnected with a 1030
	// birth year, estimating generation 1. Minimum across the document
	// is 0, so nothing shifts.
	g := buildGraph(t, `0 @I1@ INDI
0 @I2@ INDI
0 @I9@ INDI
1 BIRT
2 DATE 1030
0 @F1@ FAM
1 HUSB @I1@
1 CHIL @I2@
`)

	if got := generation(t, g, "I9"); got != 1 {
		t.Errorf("generation(I9) = %d, want 1 (birth-year estimate)", got)
	}
	if got := generation(t, g, "I1"); got != 0 {
		t.Errorf("generation(I1) = %d, want 0", got)
	}
}

func TestAssignGenerationsMinimumIsZero(t *testing.T) {
	srcs := map[string]string{
		"TwoGenerations": `0 @I1@ INDI
0 @I2@ INDI
0 @F1@ FAM
1 HUSB @I1@
1 CHIL @I2@
`,
		"DisconnectedOnly": `0 @I1@ INDI
1 BIRT
2 DATE 1600
0 @I2@ INDI
1 BIRT
2 DATE 1700
`,
	}

	for name, src := range srcs {
		t.Run(name, func(t *testing.T) {
			g := buildGraph(t, src)
			min := int(^uint(0) >> 1)
			for _, n := range g.Nodes {
				if n.Generation < min {
					min = n.Generation
				}
			}
			if min != 0 {
				t.Errorf("minimum generation = %d, want 0", min)
			}
		})
	}
}

func TestAssignGenerationsFallbackOnlyShiftsToZero(t *testing.T) {
	// With no parent-child links at all, every node carries a birth-year
	// estimate (here 20 and 23). Normalization must shift the whole
	// document down so the earliest individual sits at generation 0 while
	// the gap between them survives.
	g := buildGraph(t, `0 @I1@ INDI
1 BIRT
2 DATE 1600
0 @I2@ INDI
1 BIRT
2 DATE 1700
`)

	if got := generation(t, g, "I1"); got != 0 {
		t.Errorf("generation(I1) = %d, want 0", got)
	}
	if got := generation(t, g, "I2"); got != 3 {
		t.Errorf("generation(I2) = %d, want 3 (estimate gap preserved)", got)
	}
}

func TestAssignGenerationsSpouseFollowsPartner(t *testing.T) {
	// I3 is a child of F1 and so lands at generation 1. Their spouse I4
	// has no recorded parents but must share I3's row, and the couple's
	// child sits one below.
	g := buildGraph(t, `0 @I1@ INDI
0 @I2@ INDI
0 @I3@ INDI
0 @I4@ INDI
0 @I5@ INDI
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I3@
0 @F2@ FAM
1 HUSB @I3@
1 WIFE @I4@
1 CHIL @I5@
`)

	if got := generation(t, g, "I3"); got != 1 {
		t.Errorf("generation(I3) = %d, want 1", got)
	}
	if got := generation(t, g, "I4"); got != 1 {
		t.Errorf("generation(I4) = %d, want 1 (married-in spouse follows partner)", got)
	}
	if got := generation(t, g, "I5"); got != 2 {
		t.Errorf("generation(I5) = %d, want 2", got)
	}
}

func TestAssignGenerationsEmptyGraph(t *testing.T) {
	g := Build(gedcom.Parse(""))
	AssignGenerations(g) // must not panic
	if g.NodeCount() != 0 {
		t.Errorf("nodes = %d", g.NodeCount())
	}
}
