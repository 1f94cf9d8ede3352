// Package encoding provides text encoding utilities for OBJ source files.
package encoding

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// HasBOM reports whether data starts with a UTF-8 or UTF-16 byte order mark.
func HasBOM(data []byte) bool {
	return bytes.HasPrefix(data, bomUTF8) ||
		bytes.HasPrefix(data, bomUTF16BE) ||
		bytes.HasPrefix(data, bomUTF16LE)
}

// ToUTF8 strips a UTF-8 BOM and converts BOM-marked UTF-16 text to UTF-8.
// Data without a BOM is returned as-is.
func ToUTF8(data []byte) ([]byte, error) {
	if !HasBOM(data) {
		return data, nil
	}
	result, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UTF8ToUTF16LE encodes UTF-8 text as UTF-16LE with a leading BOM, the form
// some Windows exporters write.
func UTF8ToUTF16LE(s string) ([]byte, error) {
	encoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	result, _, err := transform.Bytes(encoder, []byte(s))
	if err != nil {
		return nil, err
	}
	return result, nil
}
