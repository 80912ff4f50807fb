package gedcom

import (
	"strconv"
	"strings"
)

// token is one tokenized GEDCOM line: LEVEL [XREF] TAG [VALUE].
type token struct {
	level int
	xref  string // without the @ delimiters, "" if absent
	tag   string
	value string
}

// tokenize parses a single trimmed, non-empty line into a token.
// It returns false for lines that do not match the expected shape
// (non-numeric level, missing tag, unterminated xref); callers skip
// those lines rather than failing the parse.
func tokenize(line string) (token, bool) {
	rest := line

	levelText, rest := cutField(rest)
	level, err := strconv.Atoi(levelText)
	if err != nil || level < 0 {
		return token{}, false
	}

	var xref string
	if strings.HasPrefix(rest, "@") {
		end := strings.Index(rest[1:], "@")
		if end < 0 {
			return token{}, false
		}
		xref = rest[1 : 1+end]
		rest = strings.TrimLeft(rest[end+2:], " \t")
	}

	tag, rest := cutField(rest)
	if tag == "" {
		return token{}, false
	}

	return token{level: level, xref: xref, tag: tag, value: rest}, true
}

// cutField splits off the first whitespace-delimited field. The remainder
// is trimmed of leading whitespace but otherwise untouched, so values keep
// their internal spacing.
func cutField(s string) (field, rest string) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeft(s[i:], " \t")
}

// splitLines splits raw text into trimmed lines, handling both \n and
// \r\n endings. Blank lines are dropped.
func splitLines(src string) []string {
	raw := strings.Split(src, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(strings.TrimSuffix(l, "\r"))
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}
