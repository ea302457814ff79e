// Package grammar parses channel URIs and address specifications
// into ABNF node trees.
package grammar

//go:generate go tool errtrace -w .
//go:generate go tool abnf generate -y ./aeron/aeron.yml

import (
	"fmt"

	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/aeronuri/internal/grammar/aeron"
)

func init() {
	abnf.EnableNodeCache(10 * 1024)
}

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrNodeNotFound Error = "node not found"
	ErrUnexpectNode Error = "unexpected node"
)

// MustGetNode returns a pointer to the ABNF node with the given key.
func MustGetNode(n *abnf.Node, k string) *abnf.Node {
	sn, ok := n.GetNode(k)
	if !ok {
		panic(fmt.Errorf("get node %q from node %q: %w", k, n.Key, ErrNodeNotFound))
	}
	return sn
}

// IsZone reports whether s is a valid IPv6 zone identifier.
func IsZone[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := aeron.Rules().ZoneName([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}
