package obj

import (
	"fmt"
	"strconv"
)

// accumulator receives records in source order.
type accumulator interface {
	add(r Record)
}

// variantAccumulator keeps every record in one ordered sequence.
type variantAccumulator struct {
	records []Record
}

func (a *variantAccumulator) add(r Record) {
	a.records = append(a.records, r)
}

// aggregateAccumulator partitions records by kind.
type aggregateAccumulator struct {
	agg Aggregate
}

func (a *aggregateAccumulator) add(r Record) {
	switch r := r.(type) {
	case VertexPosition:
		a.agg.Positions = append(a.agg.Positions, r)
	case VertexNormal:
		a.agg.Normals = append(a.agg.Normals, r)
	case VertexTextureCoordinate:
		a.agg.TexCoords = append(a.agg.TexCoords, r)
	case Face:
		a.agg.Faces = append(a.agg.Faces, r)
	default:
		panic("obj: unknown record type")
	}
}

// record tries each record rule in priority order and returns the first
// match.
func (s *scanner) record() (Record, bool) {
	if p, ok := s.position(); ok {
		return p, true
	}
	if n, ok := s.normal(); ok {
		return n, true
	}
	if t, ok := s.texCoord(); ok {
		return t, true
	}
	if f, ok := s.face(); ok {
		return f, true
	}
	return nil, false
}

// parseDocument feeds every record in data to acc. It fails unless the
// whole input is made of records and skip content. A panic during the
// parse is returned as an ErrInternal fault at the scanner position.
func parseDocument(data []byte, acc accumulator) (err error) {
	s := newScanner(data)
	rest := 0
	defer func() {
		if r := recover(); r != nil {
			err = newParseError(ErrInternal, fmt.Sprint(r), data, s.pos, rest)
		}
	}()

	for {
		s.resetFault()
		s.skip()
		rest = s.pos
		r, ok := s.record()
		if !ok {
			break
		}
		acc.add(r)
	}

	rest = s.pos
	s.skip()
	if s.atEnd() {
		return nil
	}

	if s.faultPos >= 0 {
		return newParseError(ErrStructural, s.faultMsg, data, s.faultPos, rest)
	}
	msg := "unexpected " + strconv.Quote(snippet(data, s.pos))
	return newParseError(ErrTrailingContent, msg, data, s.pos, rest)
}

// Collect partitions a variant sequence by kind. The result equals what
// the aggregate parser returns for the same input.
func Collect(records []Record) *Aggregate {
	acc := &aggregateAccumulator{}
	for _, r := range records {
		acc.add(r)
	}
	return &acc.agg
}
