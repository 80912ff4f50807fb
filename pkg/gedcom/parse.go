package gedcom

// Top-level record tags.
const (
	tagIndividual = "INDI"
	tagFamily     = "FAM"
	tagHeader     = "HEAD"
)

// stackEntry is one open tag in the nesting chain.
type stackEntry struct {
	level int
	tag   string
}

// builder is the nesting state machine. It holds the record currently
// under construction and the ancestor stack of open tags at increasing
// levels. A record is only visible in the Document once finalized.
type builder struct {
	doc *Document

	individual *Individual
	family     *Family
	header     *Header

	stack []stackEntry
}

// Parse tokenizes src and builds the record collections. It never fails:
// lines that don't tokenize are skipped, unknown tags are ignored, and
// empty input yields an empty Document.
func Parse(src string) *Document {
	b := &builder{
		doc: &Document{
			individualsByID: make(map[string]*Individual),
			familiesByID:    make(map[string]*Family),
		},
	}

	for _, line := range splitLines(src) {
		tok, ok := tokenize(line)
		if !ok {
			continue
		}
		b.consume(tok)
	}
	b.finalize()

	return b.doc
}

// consume advances the state machine by one token.
func (b *builder) consume(tok token) {
	if tok.level == 0 {
		b.finalize()
		b.open(tok)
		return
	}

	if !b.recordOpen() {
		// Subordinate line with no enclosing record. Happens after an
		// unrecognized level-0 line; ignore until the next record opens.
		return
	}

	// A line's parent is the most recent prior line with a strictly
	// smaller level, so pop everything at this level or deeper. This
	// tolerates level gaps, which "pop until level-1" would not.
	for len(b.stack) > 0 && b.stack[len(b.stack)-1].level >= tok.level {
		b.stack = b.stack[:len(b.stack)-1]
	}

	parentTag := ""
	if len(b.stack) > 0 {
		parentTag = b.stack[len(b.stack)-1].tag
	}
	b.interpret(tok, parentTag)

	b.stack = append(b.stack, stackEntry{level: tok.level, tag: tok.tag})
}

// open starts a new record for a level-0 token. INDI and FAM require an
// xref; a level-0 INDI without one opens nothing and its subordinate
// lines are discarded.
func (b *builder) open(tok token) {
	b.stack = b.stack[:0]

	switch {
	case tok.tag == tagIndividual && tok.xref != "":
		b.individual = &Individual{ID: tok.xref}
	case tok.tag == tagFamily && tok.xref != "":
		b.family = &Family{ID: tok.xref}
	case tok.tag == tagHeader:
		b.header = &Header{}
	default:
		return
	}
	b.stack = append(b.stack, stackEntry{level: 0, tag: tok.tag})
}

// interpret routes a subordinate token to the open record's interpreter.
func (b *builder) interpret(tok token, parentTag string) {
	switch {
	case b.individual != nil:
		interpretIndividual(b.individual, tok.tag, tok.value, parentTag)
	case b.family != nil:
		interpretFamily(b.family, tok.tag, tok.value, parentTag)
	case b.header != nil:
		line := tok.tag
		if tok.value != "" {
			line += " " + tok.value
		}
		b.header.Lines = append(b.header.Lines, line)
	}
}

// finalize stores the record under construction, if any, into the
// document collections.
func (b *builder) finalize() {
	switch {
	case b.individual != nil:
		b.doc.Individuals = append(b.doc.Individuals, b.individual)
		b.doc.individualsByID[b.individual.ID] = b.individual
		b.individual = nil
	case b.family != nil:
		b.doc.Families = append(b.doc.Families, b.family)
		b.doc.familiesByID[b.family.ID] = b.family
		b.family = nil
	case b.header != nil:
		b.doc.Header = b.header
		b.header = nil
	}
	b.stack = b.stack[:0]
}

func (b *builder) recordOpen() bool {
	return b.individual != nil || b.family != nil || b.header != nil
}
