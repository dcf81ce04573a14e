package rag

import (
	"strings"

	"github.com/tidwall/gjson"
)

// noContent is substituted when no text can be derived from a source.
const noContent = "No content available"

// Snippet flattens the document into the plain text form returned to
// callers: optional title, body text, optional trailing source URL.
func (d Document) Snippet() string {
	body := sourceText(d.Source)
	if body == "" {
		body = noContent
	}
	if d.Title != "" {
		body = d.Title + "\n\n" + body
	}
	if d.URL != "" {
		body = body + "\n\nSource: " + d.URL
	}
	return body
}

// Snippets flattens a collection, preserving count and order.
func Snippets(docs []Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Snippet())
	}
	return out
}

// sourceText derives the text body from a document source, which may be a
// part list, an object with a text field, or any other JSON value.
func sourceText(src gjson.Result) string {
	if parts := src.Get("content"); parts.IsArray() {
		var texts []string
		parts.ForEach(func(_, part gjson.Result) bool {
			if t := part.Get("text"); t.Type == gjson.String && t.String() != "" {
				texts = append(texts, t.String())
			}
			return true
		})
		if len(texts) > 0 {
			return strings.Join(texts, "\n")
		}
	}
	if t := src.Get("text"); t.Type == gjson.String {
		return t.String()
	}
	// Stringify fallback: raw JSON for objects and arrays, the bare value
	// for scalars, empty for null.
	return strings.TrimSpace(src.String())
}
