// Package parse decodes multipart form fields that clients send either as a
// structured JSON value or as a plain serialized string. Each helper fixes
// one fallback policy so a malformed payload is never silently accepted
// where it would hide a client bug.
package parse

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError marks a field whose encoded form could not be decoded.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// StringList decodes tag-like fields. Policy: JSON array when it looks like
// one, otherwise fall back to comma-splitting. Never errors.
func StringList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if strings.HasPrefix(raw, "[") {
		var list []string
		if err := json.Unmarshal([]byte(raw), &list); err == nil {
			return clean(list)
		}
		// fall through to comma-split
	}

	return clean(strings.Split(raw, ","))
}

// ObjectList decodes sub-document fields (subtopics, timeline entries,
// history sections). Policy: a JSON array decodes as-is, a single JSON
// object is wrapped into a one-element list, anything else rejects.
func ObjectList[T any](field, raw string) ([]T, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if strings.HasPrefix(raw, "[") {
		var list []T
		if err := json.Unmarshal([]byte(raw), &list); err != nil {
			return nil, &ParseError{Field: field, Err: err}
		}
		return list, nil
	}

	var single T
	if err := json.Unmarshal([]byte(raw), &single); err != nil {
		return nil, &ParseError{Field: field, Err: err}
	}
	return []T{single}, nil
}

// Object decodes a single structured sub-document.
func Object[T any](field, raw string) (*T, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, &ParseError{Field: field, Err: err}
	}
	return &v, nil
}

// Paragraphs decodes an ordered paragraph list. Policy: a JSON array of
// strings decodes as-is; a bare string becomes a single paragraph.
func Paragraphs(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if strings.HasPrefix(raw, "[") {
		var list []string
		if err := json.Unmarshal([]byte(raw), &list); err == nil {
			return clean(list)
		}
	}

	return []string{raw}
}

func clean(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
