package gedcom

import (
	"reflect"
	"testing"
)

const sampleDoc = `0 HEAD
1 SOUR pedigraph
1 CHAR UTF-8
0 @I1@ INDI
1 NAME John /Doe/
1 SEX M
1 BIRT
2 DATE 1 JAN 1900
2 PLAC Springfield
1 DEAT
2 DATE 12 MAR 1970
1 OCCU Carpenter
1 FAMS @F1@
0 @I2@ INDI
1 NAME Jane /Roe/
1 SEX F
1 FAMS @F1@
0 @I3@ INDI
1 NAME Jimmy /Doe/
1 FAMC @F1@
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I3@
1 MARR
2 DATE 5 JUN 1925
2 PLAC Shelbyville
0 TRLR
`

func TestParse(t *testing.T) {
	doc := Parse(sampleDoc)

	if got := len(doc.Individuals); got != 3 {
		t.Fatalf("individuals = %d, want 3", got)
	}
	if got := len(doc.Families); got != 1 {
		t.Fatalf("families = %d, want 1", got)
	}
	if doc.Header == nil {
		t.Fatal("header not captured")
	}
	if got := len(doc.Header.Lines); got != 2 {
		t.Errorf("header lines = %d, want 2", got)
	}

	john, ok := doc.Individual("I1")
	if !ok {
		t.Fatal("I1 not found")
	}
	if john.Sex != "M" {
		t.Errorf("sex = %q, want M", john.Sex)
	}
	if john.Birth == nil || john.Birth.Date != "1 JAN 1900" || john.Birth.Place != "Springfield" {
		t.Errorf("birth = %+v, want date and place populated", john.Birth)
	}
	if john.Death == nil || john.Death.Date != "12 MAR 1970" {
		t.Errorf("death = %+v, want date populated", john.Death)
	}
	if john.Occupation != "Carpenter" {
		t.Errorf("occupation = %q", john.Occupation)
	}
	if !reflect.DeepEqual(john.FamilySpouse, []string{"F1"}) {
		t.Errorf("family spouse = %v, want [F1]", john.FamilySpouse)
	}

	jimmy, _ := doc.Individual("I3")
	if jimmy == nil || jimmy.FamilyChild != "F1" {
		t.Errorf("jimmy family child = %+v, want F1", jimmy)
	}

	fam, ok := doc.Family("F1")
	if !ok {
		t.Fatal("F1 not found")
	}
	if fam.Husband != "I1" || fam.Wife != "I2" {
		t.Errorf("spouses = %q/%q, want I1/I2", fam.Husband, fam.Wife)
	}
	if !reflect.DeepEqual(fam.Children, []string{"I3"}) {
		t.Errorf("children = %v, want [I3]", fam.Children)
	}
	if fam.Marriage == nil || fam.Marriage.Date != "5 JUN 1925" || fam.Marriage.Place != "Shelbyville" {
		t.Errorf("marriage = %+v", fam.Marriage)
	}
}

func TestParseEmptyInput(t *testing.T) {
	doc := Parse("")
	if len(doc.Individuals) != 0 || len(doc.Families) != 0 || doc.Header != nil {
		t.Errorf("empty input should yield empty document, got %+v", doc)
	}
}

func TestParseIndividualWithoutXref(t *testing.T) {
	doc := Parse("0 INDI\n1 NAME Ghost /Person/\n0 @I1@ INDI\n1 NAME Real /Person/\n")
	if got := len(doc.Individuals); got != 1 {
		t.Fatalf("individuals = %d, want 1 (xref-less INDI must be discarded)", got)
	}
	if doc.Individuals[0].ID != "I1" {
		t.Errorf("id = %q, want I1", doc.Individuals[0].ID)
	}
}

func TestParseRepeatedTagsKeepOrder(t *testing.T) {
	doc := Parse(`0 @I1@ INDI
1 NOTE first
1 NOTE second
1 NOTE third
1 TITL Sir
1 TITL Lord
`)
	ind, _ := doc.Individual("I1")
	if !reflect.DeepEqual(ind.Notes, []string{"first", "second", "third"}) {
		t.Errorf("notes = %v", ind.Notes)
	}
	if !reflect.DeepEqual(ind.Titles, []string{"Sir", "Lord"}) {
		t.Errorf("titles = %v", ind.Titles)
	}
}

func TestParseOrphanedDate(t *testing.T) {
	// DATE with no enclosing BIRT/DEAT is dropped, not an error.
	doc := Parse("0 @I1@ INDI\n1 DATE 1 JAN 1900\n")
	ind, _ := doc.Individual("I1")
	if ind.Birth != nil || ind.Death != nil {
		t.Errorf("orphaned DATE should be dropped, got birth=%+v death=%+v", ind.Birth, ind.Death)
	}
}

func TestParseLevelGaps(t *testing.T) {
	// A jump from level 1 straight to level 3 still resolves the nearest
	// enclosing parent by the stack-pop rule, and a later level-1 line
	// pops all the way back.
	doc := Parse(`0 @I1@ INDI
1 BIRT
3 DATE 1 JAN 1800
1 DEAT
2 DATE 1 JAN 1880
`)
	ind, _ := doc.Individual("I1")
	if ind.Birth == nil || ind.Birth.Date != "1 JAN 1800" {
		t.Errorf("birth = %+v, want date from gapped level", ind.Birth)
	}
	if ind.Death == nil || ind.Death.Date != "1 JAN 1880" {
		t.Errorf("death = %+v", ind.Death)
	}
}

func TestParseMalformedLinesSkipped(t *testing.T) {
	doc := Parse(`garbage line
0 @I1@ INDI
not a gedcom line
1 SEX F
x1 NAME broken
`)
	ind, ok := doc.Individual("I1")
	if !ok {
		t.Fatal("record should survive surrounding garbage")
	}
	if ind.Sex != "F" {
		t.Errorf("sex = %q, want F", ind.Sex)
	}
}

func TestParseUnknownTagsIgnored(t *testing.T) {
	doc := Parse("0 @I1@ INDI\n1 RESI somewhere\n1 SEX M\n2 WEIRD deep\n")
	ind, _ := doc.Individual("I1")
	if ind.Sex != "M" {
		t.Errorf("sex = %q, want M", ind.Sex)
	}
}

func TestParseDuplicateChildrenKept(t *testing.T) {
	doc := Parse("0 @F1@ FAM\n1 CHIL @I1@\n1 CHIL @I1@\n")
	fam, _ := doc.Family("F1")
	if !reflect.DeepEqual(fam.Children, []string{"I1", "I1"}) {
		t.Errorf("children = %v, duplicates must be kept", fam.Children)
	}
}

func TestParseFinalizesAtEOF(t *testing.T) {
	// No trailing TRLR or further level-0 line - the open record is
	// finalized at end of input.
	doc := Parse("0 @I1@ INDI\n1 SEX F")
	if _, ok := doc.Individual("I1"); !ok {
		t.Error("record open at EOF must be finalized")
	}
}

func TestParseIdempotent(t *testing.T) {
	a := Parse(sampleDoc)
	b := Parse(sampleDoc)

	if len(a.Individuals) != len(b.Individuals) || len(a.Families) != len(b.Families) {
		t.Fatal("repeated parses disagree on collection sizes")
	}
	for i := range a.Individuals {
		if !reflect.DeepEqual(a.Individuals[i], b.Individuals[i]) {
			t.Errorf("individual %d differs between parses", i)
		}
	}
	for i := range a.Families {
		if !reflect.DeepEqual(a.Families[i], b.Families[i]) {
			t.Errorf("family %d differs between parses", i)
		}
	}
}
