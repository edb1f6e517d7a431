package cali

import (
	"flag"
	"strings"
)

// FlagDefinition describes a single flag the parser recognizes. Definitions are created by
// [Parser.Register] and are immutable afterwards.
type FlagDefinition struct {
	short       string
	long        string
	description string

	// takesValue reports whether a value token must follow the flag.
	takesValue bool
	// optionalValue tolerates a missing value when takesValue is set.
	optionalValue bool

	defaultValue string
	newValue     func() flag.Value
}

// FlagOption configures a [FlagDefinition] at registration time.
type FlagOption func(*FlagDefinition)

// WithDefault sets the value reported by [MatchedFlag.ValueOrDefault] when a flag is matched
// without a value. It is also shown in help text.
func WithDefault(value string) FlagOption {
	return func(d *FlagDefinition) {
		d.defaultValue = value
	}
}

// WithType attaches a value type to a value-taking flag. For every captured value, newValue is
// called to obtain a fresh [flag.Value] and the captured string is passed to its Set method. A Set
// error fails parsing with [ErrInvalidValue].
//
// The types in the flagtype package can be used directly:
//
//	p.Register("n", "count", "number of items", true, false, cali.WithType(flagtype.Int))
func WithType(newValue func() flag.Value) FlagOption {
	return func(d *FlagDefinition) {
		d.newValue = newValue
	}
}

// Short returns the short identifier, without a leading dash.
func (d *FlagDefinition) Short() string { return d.short }

// Long returns the long identifier, without leading dashes.
func (d *FlagDefinition) Long() string { return d.long }

// Description returns the help text of the flag.
func (d *FlagDefinition) Description() string { return d.description }

// TakesValue reports whether a value token follows the flag.
func (d *FlagDefinition) TakesValue() bool { return d.takesValue }

// OptionalValue reports whether the flag may appear without its value.
func (d *FlagDefinition) OptionalValue() bool { return d.takesValue && d.optionalValue }

// DefaultValue returns the default set with [WithDefault], or an empty string.
func (d *FlagDefinition) DefaultValue() string { return d.defaultValue }

// MatchesLong reports whether token names this flag's long identifier. Leading dashes are stripped
// from token before the case-sensitive comparison.
func (d *FlagDefinition) MatchesLong(token string) bool {
	return d.long != "" && strings.TrimLeft(token, "-") == d.long
}

// MatchesShort reports whether token names this flag's short identifier. Leading dashes are
// stripped from token before the comparison.
func (d *FlagDefinition) MatchesShort(token string) bool {
	return d.short != "" && strings.TrimLeft(token, "-") == d.short
}

// String returns the flag as it appears in help text, e.g. "-o, --output <value>".
func (d *FlagDefinition) String() string {
	var names []string
	if d.short != "" {
		names = append(names, "-"+d.short)
	}
	if d.long != "" {
		names = append(names, "--"+d.long)
	}
	s := strings.Join(names, ", ")
	switch {
	case d.OptionalValue():
		s += " [<value>]"
	case d.takesValue:
		s += " <value>"
	}
	return s
}

// name returns the identifier used in error messages, preferring the long form.
func (d *FlagDefinition) name() string {
	if d.long != "" {
		return "--" + d.long
	}
	return "-" + d.short
}
