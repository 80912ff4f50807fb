package gedcom

// Subordinate tags interpreted for individuals and families. Anything
// else is ignored without error.
const (
	tagName         = "NAME"
	tagSex          = "SEX"
	tagBirth        = "BIRT"
	tagDeath        = "DEAT"
	tagDate         = "DATE"
	tagPlace        = "PLAC"
	tagType         = "TYPE"
	tagOccupation   = "OCCU"
	tagNationality  = "NATI"
	tagTitle        = "TITL"
	tagNote         = "NOTE"
	tagFamilyChild  = "FAMC"
	tagFamilySpouse = "FAMS"
	tagHusband      = "HUSB"
	tagWife         = "WIFE"
	tagChild        = "CHIL"
	tagMarriage     = "MARR"
	tagDivorce      = "DIV"
)

// interpretIndividual mutates ind according to one subordinate line.
// parentTag is the nearest enclosing open tag and selects which event a
// DATE/PLAC/TYPE routes into; values with no matching open event are
// dropped.
func interpretIndividual(ind *Individual, tag, value, parentTag string) {
	switch tag {
	case tagName:
		ind.Names = append(ind.Names, ParseName(value))
	case tagSex:
		ind.Sex = value
	case tagBirth:
		ind.Birth = &Event{}
	case tagDeath:
		ind.Death = &Event{}
	case tagDate:
		if ev := ind.eventFor(parentTag); ev != nil {
			ev.Date = value
		}
	case tagPlace:
		if ev := ind.eventFor(parentTag); ev != nil {
			ev.Place = value
		}
	case tagType:
		if ev := ind.eventFor(parentTag); ev != nil {
			ev.Type = value
		}
	case tagOccupation:
		ind.Occupation = value
	case tagNationality:
		ind.Nationality = value
	case tagTitle:
		ind.Titles = append(ind.Titles, value)
	case tagNote:
		ind.Notes = append(ind.Notes, value)
	case tagFamilyChild:
		ind.FamilyChild = stripXref(value)
	case tagFamilySpouse:
		ind.FamilySpouse = append(ind.FamilySpouse, stripXref(value))
	}
}

// eventFor selects the open birth or death event by enclosing tag.
func (i *Individual) eventFor(parentTag string) *Event {
	switch parentTag {
	case tagBirth:
		return i.Birth
	case tagDeath:
		return i.Death
	}
	return nil
}

// interpretFamily mutates fam according to one subordinate line.
func interpretFamily(fam *Family, tag, value, parentTag string) {
	switch tag {
	case tagHusband:
		fam.Husband = stripXref(value)
	case tagWife:
		fam.Wife = stripXref(value)
	case tagChild:
		fam.Children = append(fam.Children, stripXref(value))
	case tagMarriage:
		fam.Marriage = &Event{}
	case tagDivorce:
		fam.Divorce = &Event{}
	case tagDate:
		if ev := fam.eventFor(parentTag); ev != nil {
			ev.Date = value
		}
	case tagPlace:
		if ev := fam.eventFor(parentTag); ev != nil {
			ev.Place = value
		}
	}
}

// eventFor selects the open marriage or divorce event by enclosing tag.
func (f *Family) eventFor(parentTag string) *Event {
	switch parentTag {
	case tagMarriage:
		return f.Marriage
	case tagDivorce:
		return f.Divorce
	}
	return nil
}

// stripXref removes the @ delimiters from a cross-reference value.
// "@I1@" becomes "I1"; a bare value passes through unchanged.
func stripXref(value string) string {
	if len(value) >= 2 && value[0] == '@' && value[len(value)-1] == '@' {
		return value[1 : len(value)-1]
	}
	return value
}
