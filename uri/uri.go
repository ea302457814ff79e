package uri

//go:generate go tool errtrace -w .

import (
	"io"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/aeronuri/internal/errorutil"
	"github.com/ghettovoice/aeronuri/internal/grammar"
	"github.com/ghettovoice/aeronuri/internal/ioutil"
	"github.com/ghettovoice/aeronuri/internal/util"
)

// Scheme is the prefix of every channel URI.
const Scheme = "aeron:"

// Transport names the channel medium.
type Transport string

const (
	TransportIPC Transport = "ipc"
	TransportUDP Transport = "udp"
)

// URI is a parsed channel URI.
// It is implemented by [*IPC] and [*UDP] only.
type URI interface {
	// Transport returns the transport of the URI.
	Transport() Transport
	// Render returns the canonical textual form of the URI.
	Render() string
	// RenderTo writes the canonical textual form of the URI to w.
	RenderTo(w io.Writer) (int, error)
	String() string
	// Clone returns a deep copy of the URI.
	Clone() URI
	// IsValid reports whether the URI renders to text that parses back to an equal URI.
	IsValid() bool
	// Equal reports whether the URI equals the provided value.
	Equal(val any) bool

	sealed()
}

// Parse parses a channel URI from the given input s (string or []byte).
//
// Parsing of:
//   - "aeron:ipc" returns [*IPC];
//   - "aeron:udp?..." returns [*UDP].
//
// Any other input fails with [ErrInvalidScheme], [ErrUnknownTransport] or [ErrMalformedParam].
// See [ParseIPC], [ParseUDP].
func Parse[T ~string | ~[]byte](s T) (URI, error) {
	src := string(s)

	node, transport, hasQuery, err := parseChannel(src)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	switch transport {
	case TransportIPC:
		u, err := buildIPC(node, src)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		return u, nil
	case TransportUDP:
		// The udp transport always carries a query, possibly an empty one.
		if !hasQuery {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrUnknownTransport,
				"%q requires parameters in %q", transport, src))
		}
		u, err := buildUDP(node, src)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		return u, nil
	default:
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrUnknownTransport, "%q in %q", transport, src))
	}
}

// GetParams returns the additional parameters of the URI.
// If the URI is nil, nil is returned.
// If the URI is of unknown type, a panic is raised.
func GetParams(u URI) Params {
	if u == nil {
		return nil
	}

	switch u := u.(type) {
	case *IPC:
		return u.Params
	case *UDP:
		return u.Params
	default:
		panic(newUnexpectURITypeErr(u))
	}
}

func newUnexpectURITypeErr(u URI) error {
	return errorutil.Errorf("unexpected URI type %T", u) //errtrace:skip
}

// parseChannel matches src against the channel URI grammar and returns the tree
// with the transport name. The tree may cover only a prefix of src when the
// query is malformed. That case is reported by [walkParams].
func parseChannel(src string) (*abnf.Node, Transport, bool, error) {
	node, _ := grammar.ParseURI(src)
	if node == nil {
		return nil, "", false, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidScheme,
			"missing %q prefix in %q", Scheme, src))
	}

	tn := grammar.MustGetNode(node, "transport")
	end := int(tn.Pos) + tn.Len()
	if end == len(Scheme) && end == len(src) {
		return nil, "", false, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidScheme,
			"missing transport in %q", src))
	}
	return node, Transport(tn.String()), end < len(src), nil
}

// walkParams passes each parameter of the matched URI to fn in encounter order.
// Input left after the matched prefix is a parameter without "=".
func walkParams(node *abnf.Node, src string, fn func(key, val string)) error {
	if rest := src[node.Len():]; rest != "" {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedParam, "missing '=' in %q", rest))
	}
	for _, p := range node.GetNodes("param") {
		fn(grammar.MustGetNode(p, "param-key").String(), grammar.MustGetNode(p, "param-value").String())
	}
	return nil
}

// renderParams writes pairs separated by "|", starting with one unless first is set.
func renderParams(cw *ioutil.CountingWriter, ps Params, first bool) {
	if len(ps) == 0 {
		return
	}
	if !first {
		cw.WriteStrings("|")
	}
	cw.Call(ps.RenderTo)
}

func renderString(u URI) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb) //nolint:errcheck
	return sb.String()
}
