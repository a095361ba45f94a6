// Package guide provides parsing and classification of connection
// guide MDX files.
package guide

import (
	"fmt"
	"regexp"
)

// DescriptionPrefix is the minimum acceptable opening of a guide
// description when it deviates from the canonical sentence.
const DescriptionPrefix = "Follow these steps to connect"

// frontmatterPattern matches a --- fenced block at the start of the file.
var frontmatterPattern = regexp.MustCompile(`(?s)^---\n(.*?)\n---`)

// titlePattern and descriptionPattern match quoted scalar fields inside
// the frontmatter body. Unquoted or multiline values intentionally do
// not match; the template requires quoted single-line values.
var (
	titlePattern       = regexp.MustCompile(`title:\s*["']([^"']+)["']`)
	descriptionPattern = regexp.MustCompile(`description:\s*["']([^"']+)["']`)
)

// Document is a connection guide parsed once and shared by the
// classifier and all compliance rules.
type Document struct {
	// Path is the file path relative to the scanned root.
	Path string

	// Content is the raw file content.
	Content string

	// Frontmatter is the body between the --- fences, without them.
	Frontmatter    string
	HasFrontmatter bool

	// Title is the provider name extracted from the frontmatter.
	Title    string
	HasTitle bool

	Description    string
	HasDescription bool
}

// Parse extracts the frontmatter fields from raw guide content.
// It never fails: missing pieces are reported through the Has* flags
// so rules can decide what a gap means.
func Parse(path, content string) *Document {
	doc := &Document{
		Path:    path,
		Content: content,
	}

	matches := frontmatterPattern.FindStringSubmatch(content)
	if len(matches) < 2 {
		return doc
	}

	doc.HasFrontmatter = true
	doc.Frontmatter = matches[1]

	if m := titlePattern.FindStringSubmatch(doc.Frontmatter); len(m) >= 2 {
		doc.HasTitle = true
		doc.Title = m[1]
	}

	if m := descriptionPattern.FindStringSubmatch(doc.Frontmatter); len(m) >= 2 {
		doc.HasDescription = true
		doc.Description = m[1]
	}

	return doc
}

// ExpectedDescription returns the canonical description sentence for a
// provider title.
func ExpectedDescription(title string) string {
	return fmt.Sprintf("Follow these steps to connect %s via the StackOne Hub successfully.", title)
}
