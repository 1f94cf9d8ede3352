package obj

import (
	"fmt"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/Faultbox/wavefront/pkg/encoding"
)

// Parser runs the OBJ grammar and reports failures to a logger.
// A Parser holds no per-parse state and may be shared between goroutines.
type Parser struct {
	log            *zap.Logger
	remainderLimit int
}

// Option configures a Parser.
type Option func(*Parser)

// WithRemainderLimit caps how many bytes of unparsed input are logged on
// failure. Zero logs the whole remainder.
func WithRemainderLimit(n int) Option {
	return func(p *Parser) {
		if n >= 0 {
			p.remainderLimit = n
		}
	}
}

// NewParser returns a Parser logging to log. A nil log discards output.
func NewParser(log *zap.Logger, opts ...Option) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Parser{log: log}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseVariant parses data into records in source order.
func (p *Parser) ParseVariant(data []byte) ([]Record, error) {
	acc := &variantAccumulator{records: []Record{}}
	if err := p.run("variant", data, acc); err != nil {
		return nil, err
	}
	p.log.Debug("obj parsed", zap.String("mode", "variant"), zap.Int("records", len(acc.records)))
	return acc.records, nil
}

// ParseAggregate parses data into per-kind sequences.
func (p *Parser) ParseAggregate(data []byte) (*Aggregate, error) {
	acc := &aggregateAccumulator{}
	if err := p.run("aggregate", data, acc); err != nil {
		return nil, err
	}
	p.log.Debug("obj parsed",
		zap.String("mode", "aggregate"),
		zap.Int("positions", len(acc.agg.Positions)),
		zap.Int("normals", len(acc.agg.Normals)),
		zap.Int("texcoords", len(acc.agg.TexCoords)),
		zap.Int("faces", len(acc.agg.Faces)),
	)
	return &acc.agg, nil
}

// LoadVariant reads the file at path and parses it with ParseVariant.
func (p *Parser) LoadVariant(path string) ([]Record, error) {
	data, err := p.load(path)
	if err != nil {
		return nil, err
	}
	return p.ParseVariant(data)
}

// LoadAggregate reads the file at path and parses it with ParseAggregate.
func (p *Parser) LoadAggregate(path string) (*Aggregate, error) {
	data, err := p.load(path)
	if err != nil {
		return nil, err
	}
	return p.ParseAggregate(data)
}

// run is the single boundary between the grammar and callers. Every
// failure, including a recovered internal fault, is logged here.
func (p *Parser) run(mode string, data []byte, acc accumulator) error {
	err := parseDocument(data, acc)
	if perr, ok := err.(*ParseError); ok {
		p.logFailure(mode, perr)
	}
	return err
}

func (p *Parser) logFailure(mode string, e *ParseError) {
	var msg string
	switch e.Kind {
	case ErrTrailingContent:
		msg = "obj unparsed"
	case ErrInternal:
		msg = "obj parse exception"
	default:
		msg = "obj parse failed"
	}
	p.log.Error(msg,
		zap.String("mode", mode),
		zap.Error(e),
		zap.Int("offset", e.Offset),
		zap.Int("line", e.Line),
		zap.Int("column", e.Column),
		zap.String("remainder", truncate(e.Remainder, p.remainderLimit)),
		zap.Int("remainder_len", len(e.Remainder)),
	)
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
// n <= 0 leaves s whole.
func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func (p *Parser) load(path string) ([]byte, error) {
	data, err := ReadFile(path)
	if err != nil {
		p.log.Error("obj file open failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	return data, nil
}

// ReadFile reads an OBJ file into memory as UTF-8 text.
func ReadFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	data, err := encoding.ToUTF8(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", ErrOpen, path, err)
	}
	return data, nil
}

// defaultParser logs to the process-wide zap logger.
func defaultParser() *Parser {
	return NewParser(zap.L())
}

// ParseVariant parses data into records in source order. On failure it
// returns nil and an error wrapping ErrStructural or ErrTrailingContent.
func ParseVariant(data []byte) ([]Record, error) {
	return defaultParser().ParseVariant(data)
}

// ParseAggregate parses data into per-kind sequences.
func ParseAggregate(data []byte) (*Aggregate, error) {
	return defaultParser().ParseAggregate(data)
}

// LoadVariant reads and parses the OBJ file at path.
func LoadVariant(path string) ([]Record, error) {
	return defaultParser().LoadVariant(path)
}

// LoadAggregate reads and parses the OBJ file at path.
func LoadAggregate(path string) (*Aggregate, error) {
	return defaultParser().LoadAggregate(path)
}
