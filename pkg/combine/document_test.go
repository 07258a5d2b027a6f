package combine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentRecordFormat(t *testing.T) {
	doc := NewDocument()
	assert.True(t, doc.Append(AcceptedFile{Path: "src/main.go", Content: "package main"}))
	assert.True(t, doc.Append(AcceptedFile{Path: "README.md", Content: "hello"}))

	want := "---\nfile: src/main.go\n---\n\npackage main\n\n" +
		"---\nfile: README.md\n---\n\nhello\n\n"
	assert.Equal(t, want, doc.String())
	assert.Equal(t, 2, doc.Len())
}

func TestDocumentRejectsDuplicatePaths(t *testing.T) {
	doc := NewDocument()
	assert.True(t, doc.Append(AcceptedFile{Path: "a.txt", Content: "first"}))
	before := doc.String()

	assert.False(t, doc.Append(AcceptedFile{Path: "a.txt", Content: "second"}))
	assert.Equal(t, before, doc.String())
	assert.Equal(t, 1, doc.Len())
}

func TestDocumentPathsSorted(t *testing.T) {
	doc := NewDocument()
	for _, p := range []string{"z.go", "a/b.go", "m.md"} {
		doc.Append(AcceptedFile{Path: p})
	}

	paths := doc.Paths()
	assert.Equal(t, []string{"a/b.go", "m.md", "z.go"}, paths)

	paths[0] = "mutated"
	assert.Equal(t, "a/b.go", doc.Paths()[0])
}

func TestEmptyDocument(t *testing.T) {
	doc := NewDocument()
	assert.Equal(t, "", doc.String())
	assert.Empty(t, doc.Paths())
}
