package content

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// DecodeLossy decodes b as UTF-8, replacing every invalid byte sequence
// with U+FFFD instead of failing. Valid UTF-8 passes through unchanged.
func DecodeLossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	// The UTF-8 decoder substitutes U+FFFD and never reports an error.
	out, _ := unicode.UTF8.NewDecoder().Bytes(b)
	return string(out)
}
