// Package types provides type definitions for structured data used throughout the story-checker system.
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Document is the immutable input to an evaluation run: a structured business
// document as received from the editor front-end.
type Document struct {
	Title      string   `json:"title" validate:"required,min=1"`
	Summary    string   `json:"summary"`
	Paragraphs []string `json:"paragraphs"`
	FullText   string   `json:"full_text" validate:"required,min=1"`
}

// Validate checks the document against the entry requirements: non-empty title
// and body. Paragraph filtering is handled separately by CleanParagraphs.
func (d *Document) Validate() error {
	validate := validator.New()
	if err := validate.Struct(d); err != nil {
		return err
	}
	if strings.TrimSpace(d.Title) == "" {
		return &ErrEmptyField{Field: "title"}
	}
	if strings.TrimSpace(d.FullText) == "" {
		return &ErrEmptyField{Field: "full_text"}
	}
	return nil
}

// CleanParagraphs returns the document's paragraphs with empty entries removed
// and surrounding whitespace trimmed, preserving order.
func (d *Document) CleanParagraphs() []string {
	cleaned := make([]string, 0, len(d.Paragraphs))
	for _, p := range d.Paragraphs {
		p = strings.TrimSpace(p)
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return cleaned
}
