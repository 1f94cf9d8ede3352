package obj

import (
	"errors"
	"fmt"
)

// OBJ parse errors.
var (
	ErrStructural      = errors.New("structural mismatch")
	ErrTrailingContent = errors.New("unparsed trailing content")
	ErrOpen            = errors.New("file open failed")
	ErrInternal        = errors.New("internal parser fault")
)

const maxSnippet = 32

// ParseError describes where and why a parse failed.
type ParseError struct {
	Kind      error  // one of ErrStructural, ErrTrailingContent, ErrInternal
	Message   string // fault description
	Offset    int    // byte offset of the fault
	Line      int    // 1-based
	Column    int    // 1-based, in bytes
	Remainder string // unparsed input from the last record boundary
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// Unwrap returns the error kind so callers can use errors.Is.
func (e *ParseError) Unwrap() error {
	return e.Kind
}

// newParseError builds a ParseError for a fault at offset within data.
// rest is the offset the unparsed remainder starts at.
func newParseError(kind error, msg string, data []byte, offset, rest int) *ParseError {
	line, col := lineColumn(data, offset)
	return &ParseError{
		Kind:      kind,
		Message:   msg,
		Offset:    offset,
		Line:      line,
		Column:    col,
		Remainder: string(data[rest:]),
	}
}

// lineColumn converts a byte offset into a 1-based line and column.
func lineColumn(data []byte, offset int) (line, col int) {
	if offset > len(data) {
		offset = len(data)
	}
	line, col = 1, 1
	for i := 0; i < offset; i++ {
		switch data[i] {
		case '\n':
			line++
			col = 1
		case '\r':
			if i+1 < len(data) && data[i+1] == '\n' {
				col++
				continue
			}
			line++
			col = 1
		default:
			col++
		}
	}
	return line, col
}

// snippet returns the rest of the line at offset, cut to maxSnippet bytes.
func snippet(data []byte, offset int) string {
	end := offset
	for end < len(data) && end-offset < maxSnippet && data[end] != '\n' && data[end] != '\r' {
		end++
	}
	return string(data[offset:end])
}
