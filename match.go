package cali

import "flag"

// MatchedFlag is the result of resolving one input token against a registered [FlagDefinition].
type MatchedFlag struct {
	definition *FlagDefinition
	value      *string
	typed      flag.Value
}

// Definition returns the definition the token matched.
func (m *MatchedFlag) Definition() *FlagDefinition {
	return m.definition
}

// Value returns the captured value and whether one was captured. A value is only ever captured for
// flags that take a value.
func (m *MatchedFlag) Value() (string, bool) {
	if m.value == nil {
		return "", false
	}
	return *m.value, true
}

// HasValue reports whether a value was captured.
func (m *MatchedFlag) HasValue() bool {
	return m.value != nil
}

// ValueOrDefault returns the captured value, falling back to the definition's default.
func (m *MatchedFlag) ValueOrDefault() string {
	if m.value != nil {
		return *m.value
	}
	if m.definition == nil {
		return ""
	}
	return m.definition.defaultValue
}

// GetValue returns the typed value of a flag registered with [WithType]. The second result is
// false if m is nil, no value was captured, the flag has no value type, or the type does not
// implement [flag.Getter] returning a T.
//
//	if n, ok := cali.GetValue[int](p.LookupLong("count")); ok {
//	    ...
//	}
func GetValue[T any](m *MatchedFlag) (T, bool) {
	var zero T
	if m == nil || m.typed == nil {
		return zero, false
	}
	getter, ok := m.typed.(flag.Getter)
	if !ok {
		return zero, false
	}
	v, ok := getter.Get().(T)
	if !ok {
		return zero, false
	}
	return v, true
}
