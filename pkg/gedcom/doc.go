// Package gedcom parses GEDCOM-style genealogical text into typed records.
//
// GEDCOM is a line-oriented, level-tagged hierarchical format: each line
// carries a nesting level, an optional @-delimited cross-reference, a tag,
// and an optional value. This package turns that stream into Individual,
// Family, and Header records via a level-based nesting state machine.
//
// # Tolerance
//
// The parser is total over arbitrary input. Malformed lines are skipped,
// unknown tags are ignored, dangling context is dropped. Empty input yields
// an empty (but valid) Document. Parse never returns an error - real-world
// GEDCOM exports are messy, and partial data beats no data.
//
// # Usage
//
//	doc := gedcom.Parse(src)
//	for _, ind := range doc.Individuals {
//	    fmt.Println(ind.PrimaryName().Full)
//	}
//
// Only a fixed subset of tags is interpreted (NAME, SEX, BIRT, DEAT, DATE,
// PLAC, TYPE, OCCU, NATI, TITL, NOTE, FAMC, FAMS for individuals; HUSB,
// WIFE, CHIL, MARR, DIV, DATE, PLAC for families). This is intentionally
// not a full-grammar validator.
package gedcom
