package flagtype

import (
	"flag"
	"strconv"
)

type intValue struct {
	n int
}

// Int returns a value that parses the flag value as a base-10 integer.
//
// Use [cali.GetValue] with type int to retrieve the value.
func Int() flag.Value {
	return &intValue{}
}

func (v *intValue) String() string {
	return strconv.Itoa(v.n)
}

func (v *intValue) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	v.n = n
	return nil
}

func (v *intValue) Get() any {
	return v.n
}

type boolValue struct {
	b bool
}

// Bool returns a value that parses the flag value with [strconv.ParseBool], so "1", "t", "true",
// "0", "f", "false" and their upper-case forms are accepted.
//
// Use [cali.GetValue] with type bool to retrieve the value.
func Bool() flag.Value {
	return &boolValue{}
}

func (v *boolValue) String() string {
	return strconv.FormatBool(v.b)
}

func (v *boolValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	v.b = b
	return nil
}

func (v *boolValue) Get() any {
	return v.b
}
