package dua

import (
	"fmt"
	"strings"
)

// Entry is one supplication record from the bundled dataset. Entries are
// read-only once loaded.
type Entry struct {
	ID            int    `json:"id" yaml:"id"`
	Title         string `json:"title" yaml:"title"`
	Arabic        string `json:"arabic,omitempty" yaml:"arabic,omitempty"`
	Somali        string `json:"somali" yaml:"somali"`
	Translation   string `json:"translation,omitempty" yaml:"translation,omitempty"`
	Source        string `json:"source,omitempty" yaml:"source,omitempty"`
	Context       string `json:"context,omitempty" yaml:"context,omitempty"`
	Category      string `json:"category,omitempty" yaml:"category,omitempty"`
	CategoryColor string `json:"categoryColor,omitempty" yaml:"categoryColor,omitempty"`
}

// Matches reports whether lowerQuery, which must already be lowercased, is a
// substring of the title, the Somali text or the Arabic text.
func (e *Entry) Matches(lowerQuery string) bool {
	if strings.Contains(strings.ToLower(e.Title), lowerQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Somali), lowerQuery) {
		return true
	}
	return e.Arabic != "" && strings.Contains(strings.ToLower(e.Arabic), lowerQuery)
}

// HasInfo is true when the entry carries a source or context note.
func (e *Entry) HasInfo() bool {
	return e.Source != "" || e.Context != ""
}

// Row returns the id, title and category columns for table output.
func (e *Entry) Row() (string, string, string) {
	return fmt.Sprintf("%d", e.ID), e.Title, e.Category
}

func (e *Entry) String() string {
	return fmt.Sprintf("%d. %s", e.ID, e.Title)
}
