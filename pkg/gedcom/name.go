package gedcom

import "strings"

// ParseName splits a raw GEDCOM name value into its segments.
//
// GEDCOM marks the surname with slashes: "John /Doe/ Jr." has given name
// "John", surname "Doe", and suffix "Jr.". The full form is the input with
// the slashes stripped. A missing closing slash and empty segments are
// tolerated; a value with no slashes at all becomes both Given and Full.
func ParseName(value string) Name {
	full := strings.TrimSpace(strings.ReplaceAll(value, "/", " "))
	full = strings.Join(strings.Fields(full), " ")

	open := strings.Index(value, "/")
	if open < 0 {
		trimmed := strings.TrimSpace(value)
		return Name{Full: trimmed, Given: trimmed}
	}

	given := strings.TrimSpace(value[:open])
	inner := value[open+1:]

	var surname, suffix string
	if close := strings.Index(inner, "/"); close >= 0 {
		surname = strings.TrimSpace(inner[:close])
		suffix = strings.TrimSpace(inner[close+1:])
	} else {
		// Unterminated surname segment - take the rest as the surname.
		surname = strings.TrimSpace(inner)
	}

	return Name{Full: full, Given: given, Surname: surname, Suffix: suffix}
}
