package combine

import (
	"sort"
	"strings"
)

// Document accumulates one formatted record per accepted file, in the order
// files are appended. A relative path is accepted at most once.
type Document struct {
	buf   strings.Builder
	paths map[string]struct{}
	order []string
}

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return &Document{paths: make(map[string]struct{})}
}

// Append writes the record for f. It returns false, writing nothing, when
// f.Path was already appended.
func (d *Document) Append(f AcceptedFile) bool {
	if _, ok := d.paths[f.Path]; ok {
		return false
	}
	d.paths[f.Path] = struct{}{}
	d.order = append(d.order, f.Path)

	d.buf.WriteString("---\n")
	d.buf.WriteString("file: ")
	d.buf.WriteString(f.Path)
	d.buf.WriteString("\n---\n\n")
	d.buf.WriteString(f.Content)
	d.buf.WriteString("\n\n")
	return true
}

// String returns the assembled document.
func (d *Document) String() string {
	return d.buf.String()
}

// Len returns the number of accepted files.
func (d *Document) Len() int {
	return len(d.order)
}

// Paths returns the accepted relative paths, sorted.
func (d *Document) Paths() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	sort.Strings(out)
	return out
}
