package uri

import (
	"io"
	"iter"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/aeronuri/internal/ioutil"
)

// Param is a raw key/value pair of a channel URI.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of parameters not recognized as well-known
// for the transport. Duplicate keys are allowed and all retained.
// Keys are case-sensitive.
type Params []Param

// Get returns the value of the first parameter with the given key.
func (ps Params) Get(key string) (string, bool) {
	for _, p := range ps {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Last returns the value of the last parameter with the given key.
func (ps Params) Last(key string) (string, bool) {
	for i := len(ps) - 1; i >= 0; i-- {
		if ps[i].Key == key {
			return ps[i].Value, true
		}
	}
	return "", false
}

// Values returns all values of the given key in encounter order.
func (ps Params) Values(key string) []string {
	var vals []string
	for _, p := range ps {
		if p.Key == key {
			vals = append(vals, p.Value)
		}
	}
	return vals
}

// Has checks whether a given key is in the list.
func (ps Params) Has(key string) bool {
	return slices.ContainsFunc(ps, func(p Param) bool { return p.Key == key })
}

// Len returns the number of parameters.
func (ps Params) Len() int { return len(ps) }

// Append appends a parameter and returns the updated list.
func (ps Params) Append(key, value string) Params {
	return append(ps, Param{Key: key, Value: value})
}

// All iterates over parameters in encounter order.
func (ps Params) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, p := range ps {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Clone returns a copy of the list.
func (ps Params) Clone() Params {
	if len(ps) == 0 {
		return nil
	}
	return slices.Clone(ps)
}

// Equal reports whether both lists hold the same pairs in the same order.
func (ps Params) Equal(other Params) bool {
	return slices.Equal(ps, other)
}

// RenderTo writes the parameters as "key=value" pairs separated by "|".
func (ps Params) RenderTo(w io.Writer) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	for i, p := range ps {
		if i > 0 {
			cw.WriteStrings("|")
		}
		cw.WriteStrings(p.Key, "=", p.Value)
	}
	return errtrace.Wrap2(cw.Result())
}

// IsValid reports whether every parameter survives rendering and parsing:
// keys must not contain "=" and values must not contain "|".
func (ps Params) IsValid() bool {
	for _, p := range ps {
		if strings.IndexByte(p.Key, '=') >= 0 || strings.IndexByte(p.Value, '|') >= 0 {
			return false
		}
	}
	return true
}
