package uri

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/aeronuri/internal/errorutil"
	"github.com/ghettovoice/aeronuri/internal/ioutil"
)

// IPC implements "aeron:ipc" URI of an in-process channel.
type IPC struct {
	// Additional parameters in encounter order.
	Params Params
}

func (*IPC) sealed() {}

// Transport returns [TransportIPC].
func (*IPC) Transport() Transport { return TransportIPC }

// Clone returns a deep copy of the IPC URI.
func (u *IPC) Clone() URI {
	if u == nil {
		return nil
	}
	u2 := *u
	u2.Params = u.Params.Clone()
	return &u2
}

// RenderTo writes the IPC URI to the provided writer.
func (u *IPC) RenderTo(w io.Writer) (int, error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	cw.WriteStrings(Scheme, string(TransportIPC))
	if len(u.Params) > 0 {
		cw.WriteStrings("?")
		renderParams(cw, u.Params, true)
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the IPC URI.
func (u *IPC) Render() string {
	if u == nil {
		return ""
	}
	return renderString(u)
}

// String returns the string representation of the IPC URI.
func (u *IPC) String() string { return u.Render() }

// Format implements fmt.Formatter for custom formatting of the IPC URI.
func (u *IPC) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, u.String())
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
	default:
		type hideMethods IPC
		type IPC hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*IPC)(u))
	}
}

// Equal reports whether the IPC URI equals the provided value, accepting IPC and *IPC.
func (u *IPC) Equal(val any) bool {
	var other *IPC
	switch v := val.(type) {
	case IPC:
		other = &v
	case *IPC:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}
	return u.Params.Equal(other.Params)
}

// IsValid checks whether the IPC URI survives rendering and parsing unchanged.
func (u *IPC) IsValid() bool {
	return u != nil && u.Params.IsValid()
}

// MarshalText implements [encoding.TextMarshaler].
func (u *IPC) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *IPC) UnmarshalText(text []byte) error {
	u1, err := ParseIPC(text)
	if err != nil {
		*u = IPC{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}

// ParseIPC parses an IPC URI from the given input s (string or []byte).
// Valid channel URIs of another transport fail with [ErrUnknownTransport].
func ParseIPC[T ~string | ~[]byte](s T) (*IPC, error) {
	src := string(s)

	node, transport, _, err := parseChannel(src)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if transport != TransportIPC {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrUnknownTransport,
			"expected %q, got %q in %q", TransportIPC, transport, src))
	}
	return errtrace.Wrap2(buildIPC(node, src))
}

func buildIPC(node *abnf.Node, src string) (*IPC, error) {
	var u IPC
	if err := walkParams(node, src, func(key, val string) {
		u.Params = u.Params.Append(key, val)
	}); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &u, nil
}
