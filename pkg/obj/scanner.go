package obj

import (
	"errors"
	"math"
	"strconv"
)

// scanner is a backtracking cursor over OBJ text. Rules save pos before an
// attempt and restore it when the attempt fails.
type scanner struct {
	data []byte
	pos  int

	// Furthest structural fault seen since the last reset.
	faultPos int
	faultMsg string
}

func newScanner(data []byte) *scanner {
	return &scanner{data: data, faultPos: -1}
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.data)
}

// skip consumes whitespace, comments and ignored directives.
func (s *scanner) skip() {
	for !s.atEnd() {
		c := s.data[s.pos]
		switch {
		case isSpace(c):
			s.pos++
		case c == '#':
			s.toEOL()
		case s.hasPrefix("mtllib"), s.hasPrefix("usemtl"):
			s.toEOL()
		default:
			return
		}
	}
}

// toEOL advances to the next '\r' or '\n' without consuming it.
func (s *scanner) toEOL() {
	for !s.atEnd() && s.data[s.pos] != '\n' && s.data[s.pos] != '\r' {
		s.pos++
	}
}

func (s *scanner) hasPrefix(lit string) bool {
	if len(s.data)-s.pos < len(lit) {
		return false
	}
	return string(s.data[s.pos:s.pos+len(lit)]) == lit
}

// literal skips, then consumes lit if it is next in the input.
func (s *scanner) literal(lit string) bool {
	s.skip()
	if !s.hasPrefix(lit) {
		return false
	}
	s.pos += len(lit)
	return true
}

// float skips, then reads a real number. The cursor is left after the
// skipped prefix when no number is present.
func (s *scanner) float() (float32, bool) {
	s.skip()
	start := s.pos
	i := start
	if i < len(s.data) && (s.data[i] == '+' || s.data[i] == '-') {
		i++
	}

	if n := s.special(i); n > 0 {
		nan := lower(s.data[i]) == 'n'
		s.pos = i + n
		switch {
		case nan:
			return float32(math.NaN()), true
		case s.data[start] == '-':
			return float32(math.Inf(-1)), true
		default:
			return float32(math.Inf(1)), true
		}
	}

	intDigits := s.digits(i)
	i += intDigits
	fracDigits := 0
	if i < len(s.data) && s.data[i] == '.' {
		fracDigits = s.digits(i + 1)
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0, false
	}

	if i < len(s.data) && (s.data[i] == 'e' || s.data[i] == 'E') {
		j := i + 1
		if j < len(s.data) && (s.data[j] == '+' || s.data[j] == '-') {
			j++
		}
		if n := s.digits(j); n > 0 {
			i = j + n
		}
	}

	v, err := strconv.ParseFloat(string(s.data[start:i]), 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	s.pos = i
	return float32(v), true
}

// special returns the length of "nan", "infinity" or "inf" at i, or 0.
func (s *scanner) special(i int) int {
	for _, word := range []string{"nan", "infinity", "inf"} {
		if s.foldedAt(i, word) {
			return len(word)
		}
	}
	return 0
}

// foldedAt reports whether word appears at i, ignoring ASCII case.
func (s *scanner) foldedAt(i int, word string) bool {
	if len(s.data)-i < len(word) {
		return false
	}
	for k := 0; k < len(word); k++ {
		if lower(s.data[i+k]) != word[k] {
			return false
		}
	}
	return true
}

// integer skips, then reads a signed decimal that fits in 32 bits.
func (s *scanner) integer() (int, bool) {
	s.skip()
	i := s.pos
	if i < len(s.data) && (s.data[i] == '+' || s.data[i] == '-') {
		i++
	}
	n := s.digits(i)
	if n == 0 {
		return 0, false
	}
	i += n
	v, err := strconv.ParseInt(string(s.data[s.pos:i]), 10, 32)
	if err != nil {
		return 0, false
	}
	s.pos = i
	return int(v), true
}

// digits returns the length of the decimal digit run starting at i.
func (s *scanner) digits(i int) int {
	n := 0
	for i+n < len(s.data) && s.data[i+n] >= '0' && s.data[i+n] <= '9' {
		n++
	}
	return n
}

// fail records a structural fault at the current position. The furthest
// fault wins; on a tie the first one recorded is kept.
func (s *scanner) fail(msg string) {
	if s.pos > s.faultPos {
		s.faultPos = s.pos
		s.faultMsg = msg
	}
}

func (s *scanner) resetFault() {
	s.faultPos = -1
	s.faultMsg = ""
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
