// Package document derives the structural view of an input document and
// renders the text slice each evaluation scope submits to the model.
package document

import (
	"strings"

	"github.com/kmatsu/story-checker/internal/types"
)

// sectionSeparator joins sections and story paragraphs in concatenated text.
// Position offsets assume its length when accumulating across sections.
const sectionSeparator = "\n\n"

// CrossRef links a story paragraph to a span of the body. Reserved for
// structure-aware selection; not populated yet.
type CrossRef struct {
	StoryIndex int
	BodySpan   types.Span
}

// Structure is the read-only derived view of a document, built once per
// evaluation run.
type Structure struct {
	Summary   string
	Story     []string
	Body      string
	CrossRefs []CrossRef
}

// NewStructure builds the structural view from a validated document. Empty
// paragraphs are filtered, everything else is taken verbatim.
func NewStructure(doc *types.Document) *Structure {
	return &Structure{
		Summary: strings.TrimSpace(doc.Summary),
		Story:   doc.CleanParagraphs(),
		Body:    strings.TrimSpace(doc.FullText),
	}
}

// StoryText returns the story paragraphs joined with the section separator.
func (s *Structure) StoryText() string {
	return strings.Join(s.Story, sectionSeparator)
}

// FindSpan locates target inside the document's concatenated text, searching
// summary, then story, then body. Offsets are cumulative across sections with
// the separator length counted between non-adjacent sections. Returns nil when
// the target is empty or not found; an unresolved lookup is not an error.
func (s *Structure) FindSpan(target string) *types.Span {
	if target == "" {
		return nil
	}

	base := 0
	for _, section := range []string{s.Summary, s.StoryText(), s.Body} {
		if idx := strings.Index(section, target); idx >= 0 {
			return &types.Span{Start: base + idx, End: base + idx + len(target)}
		}
		base += len(section) + len(sectionSeparator)
	}
	return nil
}
