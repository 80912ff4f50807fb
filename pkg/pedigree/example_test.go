package pedigree_test

import (
	"fmt"

	"github.com/pedigraph/pedigraph/pkg/gedcom"
	"github.com/pedigraph/pedigraph/pkg/pedigree"
)

func Example() {
	src := `0 @I1@ INDI
1 NAME Ann /Root/
0 @I2@ INDI
1 NAME Ben /Root/
0 @F1@ FAM
1 WIFE @I1@
1 CHIL @I2@
`
	g := pedigree.Build(gedcom.Parse(src))
	pedigree.AssignGenerations(g)
	pedigree.ComputeLayout(g, pedigree.LayoutOptions{})

	ann, _ := g.Node("I1")
	ben, _ := g.Node("I2")
	fmt.Printf("%s: generation %d\n", ann.Name, ann.Generation)
	fmt.Printf("%s: generation %d\n", ben.Name, ben.Generation)
	fmt.Println("links:", g.LinkCount())
	// Output:
	// Ann Root: generation 0
	// Ben Root: generation 1
	// links: 1
}
