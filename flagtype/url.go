package flagtype

import (
	"errors"
	"flag"
	"net/url"
)

type urlValue struct {
	u *url.URL
}

// URL returns a value that parses the flag value as a URL. The URL must have both a scheme and a
// host.
//
// Use [cali.GetValue] with type *url.URL to retrieve the value.
func URL() flag.Value {
	return &urlValue{}
}

func (v *urlValue) String() string {
	if v.u == nil {
		return ""
	}
	return v.u.String()
}

func (v *urlValue) Set(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return errors.New("URL must have a scheme and host")
	}
	v.u = u
	return nil
}

func (v *urlValue) Get() any {
	return v.u
}
