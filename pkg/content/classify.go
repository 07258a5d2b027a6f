// Package content sniffs byte buffers for text encodings and decodes them.
package content

import (
	"bytes"
)

// Type is a coarse content classification.
type Type int

const (
	UTF8 Type = iota
	UTF16LE
	UTF16BE
	UTF32LE
	UTF32BE
	Binary
)

// scanSize is how many leading bytes are searched for NUL bytes.
const scanSize = 1024

// byteOrderMarks are checked in order; UTF-32LE must precede UTF-16LE
// since it shares its first two bytes.
var byteOrderMarks = []struct {
	bom []byte
	typ Type
}{
	{[]byte{0xEF, 0xBB, 0xBF}, UTF8},
	{[]byte{0xFF, 0xFE, 0x00, 0x00}, UTF32LE},
	{[]byte{0xFF, 0xFE}, UTF16LE},
	{[]byte{0xFE, 0xFF}, UTF16BE},
	{[]byte{0x00, 0x00, 0xFE, 0xFF}, UTF32BE},
}

// magicNumbers mark formats that may be NUL-free in their header but are binary.
var magicNumbers = [][]byte{
	[]byte("%PDF"),
	[]byte("\x89PNG"),
}

func (t Type) String() string {
	switch t {
	case UTF8:
		return "UTF-8"
	case UTF16LE:
		return "UTF-16LE"
	case UTF16BE:
		return "UTF-16BE"
	case UTF32LE:
		return "UTF-32LE"
	case UTF32BE:
		return "UTF-32BE"
	default:
		return "binary"
	}
}

// IsText reports whether files of this type are included in the output.
func (t Type) IsText() bool {
	return t == UTF8 || t == UTF16LE || t == UTF16BE
}

// Classifier reports the content type of a buffer.
type Classifier interface {
	Classify(buf []byte) Type
}

// Sniffer is the default Classifier.
type Sniffer struct{}

// Classify implements Classifier.
func (Sniffer) Classify(buf []byte) Type {
	return Classify(buf)
}

// Classify inspects the start of buf. The result is a heuristic: only the
// byte-order mark, the first scanSize bytes and a few magic numbers are
// considered.
func Classify(buf []byte) Type {
	for _, m := range byteOrderMarks {
		if bytes.HasPrefix(buf, m.bom) {
			return m.typ
		}
	}

	head := buf
	if len(head) > scanSize {
		head = head[:scanSize]
	}
	if bytes.IndexByte(head, 0x00) >= 0 {
		return Binary
	}

	for _, magic := range magicNumbers {
		if bytes.HasPrefix(buf, magic) {
			return Binary
		}
	}
	return UTF8
}
