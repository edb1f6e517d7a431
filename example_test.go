package cali_test

import (
	"errors"
	"fmt"

	"github.com/pressly/cali"
	"github.com/pressly/cali/flagtype"
)

func Example() {
	p := cali.New()
	p.Register("v", "verbose", "enable verbose output", false, false)
	p.Register("o", "output", "output file", true, true, cali.WithDefault("out.txt"))
	p.Register("n", "count", "number of items", true, false, cali.WithType(flagtype.Int))

	if _, err := p.Parse([]string{"prog", "--count", "3", "-o", "-v"}); err != nil {
		fmt.Println("error:", err)
		return
	}
	count, _ := cali.GetValue[int](p.LookupLong("count"))
	fmt.Println("count:", count)
	fmt.Println("output:", p.LookupShort("o").ValueOrDefault())
	fmt.Println("verbose:", p.LookupLong("verbose") != nil)
	// Output:
	// count: 3
	// output: out.txt
	// verbose: true
}

func ExampleParser_Parse_missingValue() {
	p := cali.New()
	p.Register("t", "test", "a test flag", true, false)

	_, err := p.Parse([]string{"prog", "--test"})
	fmt.Println(err)
	fmt.Println(errors.Is(err, cali.ErrMissingValue))
	// Output:
	// missing value for flag "--test"
	// true
}

func ExampleDefaultUsage() {
	p := cali.New()
	p.Register("v", "verbose", "enable verbose output", false, false)
	p.Register("t", "test", "a test flag", true, false)

	fmt.Println(cali.DefaultUsage(p, "prog [flags]"))
	// Output:
	// Usage:
	//   prog [flags]
	//
	// Flags:
	//   -v, --verbose         enable verbose output
	//   -t, --test <value>    a test flag
}
