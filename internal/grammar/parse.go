package grammar

import (
	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/aeronuri/internal/errorutil"
	"github.com/ghettovoice/aeronuri/internal/grammar/aeron"
)

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

// ParseURI parses a channel URI.
// When only a prefix of s matches, the node of that prefix is returned
// along with [ErrMalformedInput].
func ParseURI[T ~string | ~[]byte](s T) (*abnf.Node, error) {
	return errtrace.Wrap2(parse(aeron.Rules().ChannelUri, s))
}

// ParseHostPort parses a host[:port] address specification.
// Partial matches are reported as by [ParseURI].
func ParseHostPort[T ~string | ~[]byte](s T) (*abnf.Node, error) {
	return errtrace.Wrap2(parse(aeron.Rules().HostPort, s))
}

// ParseInterface parses a host[:port][/prefix] interface specification.
// Partial matches are reported as by [ParseURI].
func ParseInterface[T ~string | ~[]byte](s T) (*abnf.Node, error) {
	return errtrace.Wrap2(parse(aeron.Rules().Interface, s))
}

func parse[T ~string | ~[]byte](rule abnf.Rule, s T) (*abnf.Node, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := rule([]byte(s), ns); err != nil {
		return nil, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return n, errtrace.Wrap(newMalformedInputErr("node length %d < input length %d", nl, il))
	}
	return n, nil
}
