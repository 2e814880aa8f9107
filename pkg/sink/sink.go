package sink

import (
	"bytes"
	"context"
	"errors"
	"fmt"
)

var (
	// ErrMarkerNotFound is returned when the output document has no insertion marker
	ErrMarkerNotFound = errors.New("insertion marker not found")

	// ErrWriteFailed is returned when the output document cannot be read or written
	ErrWriteFailed = errors.New("output write failed")
)

// Sink receives the template document once and rendered unit text after it
type Sink interface {
	// WriteTemplate creates (or replaces) the output document
	WriteTemplate(ctx context.Context, content string) error

	// Append inserts text immediately before the insertion marker
	Append(ctx context.Context, text string) error
}

// InsertionPoint returns the marker token for the named insertion point
func InsertionPoint(name string) string {
	return "@@protoc_insertion_point(" + name + ")"
}

// MarkerComment returns the XML comment carrying the named insertion point
func MarkerComment(name string) string {
	return "<!-- " + InsertionPoint(name) + " -->"
}

// Splice inserts text at the start of the line holding the marker comment of
// the named insertion point. A bare token elsewhere in the document does not
// match. text is terminated with a newline if it is not already, so the
// marker keeps its own line.
func Splice(doc []byte, point string, text []byte) ([]byte, error) {
	marker := []byte(MarkerComment(point))
	idx := bytes.Index(doc, marker)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMarkerNotFound, point)
	}
	lineStart := bytes.LastIndexByte(doc[:idx], '\n') + 1

	out := make([]byte, 0, len(doc)+len(text)+1)
	out = append(out, doc[:lineStart]...)
	out = append(out, text...)
	if len(text) > 0 && text[len(text)-1] != '\n' {
		out = append(out, '\n')
	}
	out = append(out, doc[lineStart:]...)

	return out, nil
}
