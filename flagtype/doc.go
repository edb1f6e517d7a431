// Package flagtype provides value types for flags registered with [cali.WithType].
//
// Every constructor returns a factory producing a fresh [flag.Value] that also implements
// [flag.Getter], so the converted value can be read with [cali.GetValue].
//
// The following types are available:
//   - [Int] - parses a base-10 integer, retrieved as int
//   - [Bool] - parses a boolean as [strconv.ParseBool] does, retrieved as bool
//   - [Enum] - restricts values to a predefined set, retrieved as string
//   - [EnumDefault] - like [Enum] but with an initial default value
//   - [URL] - parses and validates a URL (must have scheme and host), retrieved as *url.URL
//   - [Regexp] - compiles a regular expression, retrieved as *regexp.Regexp
//
// Example registration:
//
//	p := cali.New()
//	p.Register("n", "count", "number of items", true, false, cali.WithType(flagtype.Int))
//	p.Register("f", "format", "output format", true, false, cali.WithType(flagtype.Enum("json", "yaml")))
//	p.Register("e", "endpoint", "server endpoint", true, false, cali.WithType(flagtype.URL))
//
// Example retrieval after parsing:
//
//	count, _ := cali.GetValue[int](p.LookupLong("count"))
//	format, _ := cali.GetValue[string](p.LookupLong("format"))
package flagtype
