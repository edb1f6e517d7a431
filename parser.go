package cali

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Parser resolves command-line tokens against a set of registered flags.
//
// A Parser is not safe for concurrent use. Register all flags before calling [Parser.Parse].
type Parser struct {
	definitions []*FlagDefinition
	matches     []*MatchedFlag
	logger      *slog.Logger
}

// Option configures a [Parser].
type Option func(*Parser)

// WithLogger sets the logger used to report matched flags at debug level. By default nothing is
// logged.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New returns a Parser with no registered flags.
func New(opts ...Option) *Parser {
	p := &Parser{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Register adds a flag definition. short and long are given without leading dashes; either may be
// empty, but not both. If takesValue is set the token following the flag is captured as its value,
// and optionalValue allows that value to be absent.
//
// Identifiers must be unique across the parser. This is checked by [Parser.Parse], not here.
func (p *Parser) Register(short, long, description string, takesValue, optionalValue bool, opts ...FlagOption) {
	d := &FlagDefinition{
		short:         short,
		long:          long,
		description:   description,
		takesValue:    takesValue,
		optionalValue: optionalValue,
	}
	for _, opt := range opts {
		opt(d)
	}
	p.definitions = append(p.definitions, d)
}

// Definitions returns a copy of the registered definitions in registration order.
func (p *Parser) Definitions() []FlagDefinition {
	defs := make([]FlagDefinition, 0, len(p.definitions))
	for _, d := range p.definitions {
		defs = append(defs, *d)
	}
	return defs
}

// Parse resolves tokens against the registered flags. tokens[0] is the program name and is
// skipped, so os.Args can be passed as is.
//
// Every token must be a flag, or the value of the flag before it. A value-taking flag consumes the
// next token unless that token starts with "-". In that case, or at the end of input, a flag with an
// optional value is matched without one and any other value-taking flag fails with
// [ErrMissingValue].
//
// The matches are returned in input order, and are also kept for [Parser.LookupLong] and
// [Parser.LookupShort]. Each call replaces the previous results. On error no results are kept.
func (p *Parser) Parse(tokens []string) ([]*MatchedFlag, error) {
	p.matches = nil
	if err := p.validate(); err != nil {
		return nil, err
	}

	var matches []*MatchedFlag
	i := 1
	for i < len(tokens) {
		token := tokens[i]
		def, err := p.resolve(token)
		if err != nil {
			return nil, err
		}
		i++
		m := &MatchedFlag{definition: def}
		if def.takesValue {
			if i < len(tokens) && !isFlagToken(tokens[i]) {
				if err := m.capture(tokens[i]); err != nil {
					return nil, err
				}
				i++
			} else if !def.optionalValue {
				return nil, &ParseError{Err: ErrMissingValue, Token: token}
			}
		}
		attrs := []any{
			slog.String("short", def.short),
			slog.String("long", def.long),
		}
		if v, ok := m.Value(); ok {
			attrs = append(attrs, slog.String("value", v))
		}
		p.logger.Debug("matched flag", attrs...)
		matches = append(matches, m)
	}
	p.matches = matches
	return matches, nil
}

// LookupLong returns the first parsed match whose definition has the given long identifier, or nil.
// The name may be given with or without leading dashes.
func (p *Parser) LookupLong(long string) *MatchedFlag {
	for _, m := range p.matches {
		if m.definition.MatchesLong(long) {
			return m
		}
	}
	return nil
}

// LookupShort returns the first parsed match whose definition has the given short identifier, or
// nil. The name may be given with or without a leading dash.
func (p *Parser) LookupShort(short string) *MatchedFlag {
	for _, m := range p.matches {
		if m.definition.MatchesShort(short) {
			return m
		}
	}
	return nil
}

// Matches returns the results of the last successful [Parser.Parse].
func (p *Parser) Matches() []*MatchedFlag {
	return p.matches
}

func (p *Parser) resolve(token string) (*FlagDefinition, error) {
	var match func(*FlagDefinition, string) bool
	switch {
	case strings.HasPrefix(token, "--"):
		match = (*FlagDefinition).MatchesLong
	case strings.HasPrefix(token, "-"):
		match = (*FlagDefinition).MatchesShort
	default:
		return nil, &ParseError{Err: ErrUnrecognizedToken, Token: token}
	}
	for _, d := range p.definitions {
		if match(d, token) {
			return d, nil
		}
	}
	return nil, &ParseError{Err: ErrUnrecognizedToken, Token: token}
}

func (m *MatchedFlag) capture(value string) error {
	if m.definition.newValue != nil {
		v := m.definition.newValue()
		if err := v.Set(value); err != nil {
			return &ParseError{
				Err:   fmt.Errorf("%w %q: %w", ErrInvalidValue, value, err),
				Token: m.definition.name(),
			}
		}
		m.typed = v
	}
	m.value = &value
	return nil
}

func (p *Parser) validate() error {
	shorts := make(map[string]bool)
	longs := make(map[string]bool)
	for i, d := range p.definitions {
		if d.short == "" && d.long == "" {
			return &ParseError{
				Err: fmt.Errorf("%w: definition #%d has no short or long identifier", ErrInvalidDefinition, i+1),
			}
		}
		if strings.HasPrefix(d.short, "-") || strings.HasPrefix(d.long, "-") {
			return &ParseError{
				Err:   fmt.Errorf("%w: identifier must not start with a dash", ErrInvalidDefinition),
				Token: d.name(),
			}
		}
		if d.short != "" {
			if shorts[d.short] {
				return &ParseError{Err: ErrDuplicateDefinition, Token: "-" + d.short}
			}
			shorts[d.short] = true
		}
		if d.long != "" {
			if longs[d.long] {
				return &ParseError{Err: ErrDuplicateDefinition, Token: "--" + d.long}
			}
			longs[d.long] = true
		}
	}
	return nil
}

func isFlagToken(token string) bool {
	return strings.HasPrefix(token, "-")
}
