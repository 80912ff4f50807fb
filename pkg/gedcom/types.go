package gedcom

// =============================================================================
// Records - Typed Genealogical Entities
// =============================================================================

// Name is one parsed name of an individual. Full is the display form with
// the surname delimiters stripped; Given, Surname, and Suffix are the
// segments around the /.../ pair, each trimmed and possibly empty.
type Name struct {
	Full    string `json:"full" bson:"full"`
	Given   string `json:"given,omitempty" bson:"given,omitempty"`
	Surname string `json:"surname,omitempty" bson:"surname,omitempty"`
	Suffix  string `json:"suffix,omitempty" bson:"suffix,omitempty"`
}

// Event is a dated, placed occurrence (birth, death, marriage, divorce).
// All fields are free text and may be empty - GEDCOM dates in particular
// range from "1 JAN 1900" to "ABT 1850" to arbitrary prose.
type Event struct {
	Date  string `json:"date,omitempty" bson:"date,omitempty"`
	Place string `json:"place,omitempty" bson:"place,omitempty"`
	Type  string `json:"type,omitempty" bson:"type,omitempty"`
}

// Individual is a single person record.
//
// ID is the cross-reference identifier, assigned exactly once at record
// creation and never changed. Names preserves insertion order; the first
// entry is the primary name. FamilyChild holds at most one reference (the
// family this person is a child in); FamilySpouse appends in order of
// appearance.
type Individual struct {
	ID           string   `json:"id" bson:"id"`
	Names        []Name   `json:"names,omitempty" bson:"names,omitempty"`
	Sex          string   `json:"sex,omitempty" bson:"sex,omitempty"` // "M", "F", or ""
	Birth        *Event   `json:"birth,omitempty" bson:"birth,omitempty"`
	Death        *Event   `json:"death,omitempty" bson:"death,omitempty"`
	Occupation   string   `json:"occupation,omitempty" bson:"occupation,omitempty"`
	Nationality  string   `json:"nationality,omitempty" bson:"nationality,omitempty"`
	Titles       []string `json:"titles,omitempty" bson:"titles,omitempty"`
	Notes        []string `json:"notes,omitempty" bson:"notes,omitempty"`
	FamilyChild  string   `json:"family_child,omitempty" bson:"family_child,omitempty"`
	FamilySpouse []string `json:"family_spouse,omitempty" bson:"family_spouse,omitempty"`
}

// PrimaryName returns the first recorded name, or the zero Name if none.
func (i *Individual) PrimaryName() Name {
	if len(i.Names) == 0 {
		return Name{}
	}
	return i.Names[0]
}

// DisplayName returns the best available display string: the primary
// name's full form, falling back to its given name, falling back to
// "Unknown".
func (i *Individual) DisplayName() string {
	n := i.PrimaryName()
	if n.Full != "" {
		return n.Full
	}
	if n.Given != "" {
		return n.Given
	}
	return "Unknown"
}

// Family is a family unit record. Husband and Wife are individual IDs or
// empty; the format does not enforce sex-matched roles, so references are
// accepted regardless of the referenced individual's sex. Children keeps
// input order and is not deduplicated.
type Family struct {
	ID       string   `json:"id" bson:"id"`
	Husband  string   `json:"husband,omitempty" bson:"husband,omitempty"`
	Wife     string   `json:"wife,omitempty" bson:"wife,omitempty"`
	Children []string `json:"children,omitempty" bson:"children,omitempty"`
	Marriage *Event   `json:"marriage,omitempty" bson:"marriage,omitempty"`
	Divorce  *Event   `json:"divorce,omitempty" bson:"divorce,omitempty"`
}

// Header is the opaque top-level metadata record. Lines under HEAD are
// captured whole as "TAG value" strings and not further interpreted.
type Header struct {
	Lines []string `json:"lines,omitempty" bson:"lines,omitempty"`
}

// =============================================================================
// Document - Parse Result
// =============================================================================

// Document holds the finalized record collections of one parse. Individuals
// and Families preserve document order; ByID lookups are available via
// Individual and Family.
type Document struct {
	Individuals []*Individual `json:"individuals" bson:"individuals"`
	Families    []*Family     `json:"families" bson:"families"`
	Header      *Header       `json:"header,omitempty" bson:"header,omitempty"`

	individualsByID map[string]*Individual
	familiesByID    map[string]*Family
}

// Individual returns the individual with the given xref ID, or nil and
// false if not present.
func (d *Document) Individual(id string) (*Individual, bool) {
	ind, ok := d.individualsByID[id]
	return ind, ok
}

// Family returns the family with the given xref ID, or nil and false if
// not present.
func (d *Document) Family(id string) (*Family, bool) {
	fam, ok := d.familiesByID[id]
	return fam, ok
}
