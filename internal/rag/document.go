// Package rag normalizes the citation payloads returned by
// retrieval-oriented completion endpoints into plain text snippets.
//
// The upstream schema drifts between versions: content arrives as a JSON
// string or a structured object, document sources as nested part lists,
// plain text fields, or arbitrary values. Parsing is deliberately
// permissive: unknown fields pass through untouched and malformed input
// degrades to an empty result instead of an error reaching the caller.
package rag

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	// ErrMalformedPayload indicates the raw payload was not valid JSON.
	ErrMalformedPayload = errors.New("malformed retrieval payload")
	// ErrInvalidDocument indicates a document in the collection is missing
	// a required field. The whole batch is rejected.
	ErrInvalidDocument = errors.New("invalid document in retrieval payload")
)

// Document is one retrieved reference unit. Type and Source are required;
// everything else is optional. The full raw element is retained so fields
// outside the known set survive parsing.
type Document struct {
	Type       string
	Title      string
	Context    string
	RecordType string
	URL        string
	Source     gjson.Result
	Raw        gjson.Result
}

// ParseDocuments parses the raw content field of a retrieval completion
// into an ordered document collection.
//
// A blank payload, a payload without a top-level "content" array, and an
// empty array all yield an empty collection with no error. Invalid JSON
// yields ErrMalformedPayload. A document missing a required field rejects
// the whole batch with ErrInvalidDocument; order is preserved otherwise.
func ParseDocuments(raw string) ([]Document, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if !gjson.Valid(raw) {
		return nil, ErrMalformedPayload
	}

	items := gjson.Parse(raw).Get("content")
	if !items.IsArray() {
		return nil, nil
	}

	var docs []Document
	var invalid error
	index := 0
	items.ForEach(func(_, item gjson.Result) bool {
		typ := item.Get("type")
		src := item.Get("source")
		if typ.Type != gjson.String || typ.String() == "" || !src.Exists() {
			invalid = fmt.Errorf("%w: element %d", ErrInvalidDocument, index)
			return false
		}
		docs = append(docs, Document{
			Type:       typ.String(),
			Title:      item.Get("title").String(),
			Context:    item.Get("context").String(),
			RecordType: item.Get("record_type").String(),
			URL:        item.Get("url").String(),
			Source:     src,
			Raw:        item,
		})
		index++
		return true
	})
	if invalid != nil {
		return nil, invalid
	}
	return docs, nil
}

// ParseValue parses a content value that may already be structured rather
// than JSON-encoded. Strings take the ParseDocuments path directly;
// anything else is serialized first.
func ParseValue(v any) ([]Document, error) {
	if s, ok := v.(string); ok {
		return ParseDocuments(s)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return ParseDocuments(string(b))
}
