package adapter

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeSource converts raw file bytes to text. A UTF-8 or UTF-16 byte order
// mark selects the encoding, otherwise UTF-8 is assumed. Undecodable bytes
// are replaced rather than reported so one broken file never fails a scan.
func DecodeSource(raw []byte) string {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())

	text, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		text = raw
	}

	return strings.ToValidUTF8(string(text), "�")
}
