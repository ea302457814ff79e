package uri

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/aeronuri/internal/errorutil"
	"github.com/ghettovoice/aeronuri/internal/ioutil"
	"github.com/ghettovoice/aeronuri/netaddr"
)

// Well-known parameter keys of the udp transport.
const (
	ParamEndpoint  = "endpoint"
	ParamInterface = "interface"
	ParamControl   = "control"
	ParamTTL       = "ttl"
)

// IsWellKnownUDPParam reports whether key is lifted into a dedicated [UDP] field.
func IsWellKnownUDPParam(key string) bool {
	switch key {
	case ParamEndpoint, ParamInterface, ParamControl, ParamTTL:
		return true
	default:
		return false
	}
}

// UDP implements "aeron:udp" URI of a UDP unicast or multicast channel.
// Well-known values are kept verbatim, an empty string means absent.
type UDP struct {
	// Endpoint is the host:port the channel sends to or receives on.
	Endpoint string
	// Interface is the address[/prefix][:port] of the local interface.
	Interface string
	// Control is the host:port of the control endpoint for multi-destination casts.
	Control string
	// TTL is the multicast time to live.
	TTL string
	// Additional parameters in encounter order.
	Params Params
}

func (*UDP) sealed() {}

// Transport returns [TransportUDP].
func (*UDP) Transport() Transport { return TransportUDP }

// Clone returns a deep copy of the UDP URI.
func (u *UDP) Clone() URI {
	if u == nil {
		return nil
	}
	u2 := *u
	u2.Params = u.Params.Clone()
	return &u2
}

// RenderTo writes the UDP URI to the provided writer.
func (u *UDP) RenderTo(w io.Writer) (int, error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	cw.WriteStrings(Scheme, string(TransportUDP), "?")

	first := true
	for _, kv := range [...][2]string{
		{ParamEndpoint, u.Endpoint},
		{ParamInterface, u.Interface},
		{ParamControl, u.Control},
		{ParamTTL, u.TTL},
	} {
		if kv[1] == "" {
			continue
		}
		if !first {
			cw.WriteStrings("|")
		}
		first = false
		cw.WriteStrings(kv[0], "=", kv[1])
	}
	renderParams(cw, u.Params, first)

	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the UDP URI.
func (u *UDP) Render() string {
	if u == nil {
		return ""
	}
	return renderString(u)
}

// String returns the string representation of the UDP URI.
func (u *UDP) String() string { return u.Render() }

// Format implements fmt.Formatter for custom formatting of the UDP URI.
func (u *UDP) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, u.String())
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
	default:
		type hideMethods UDP
		type UDP hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*UDP)(u))
	}
}

// Equal reports whether the UDP URI equals the provided value, accepting UDP and *UDP.
// Well-known values and parameters are compared verbatim, parameters in order.
func (u *UDP) Equal(val any) bool {
	var other *UDP
	switch v := val.(type) {
	case UDP:
		other = &v
	case *UDP:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}
	return u.Endpoint == other.Endpoint &&
		u.Interface == other.Interface &&
		u.Control == other.Control &&
		u.TTL == other.TTL &&
		u.Params.Equal(other.Params)
}

// IsValid checks whether the UDP URI survives rendering and parsing unchanged:
// well-known values must not contain "|" and no well-known key may appear in Params.
func (u *UDP) IsValid() bool {
	if u == nil || !u.Params.IsValid() {
		return false
	}
	for _, v := range [...]string{u.Endpoint, u.Interface, u.Control, u.TTL} {
		if strings.IndexByte(v, '|') >= 0 {
			return false
		}
	}
	for _, p := range u.Params {
		if IsWellKnownUDPParam(p.Key) {
			return false
		}
	}
	return true
}

// ParseTTL returns the numeric multicast TTL.
// It fails with [ErrMissingParam] when TTL is absent and with [ErrInvalidTTL]
// when it is not a decimal in [0,255].
func (u *UDP) ParseTTL() (uint8, error) {
	if u == nil || u.TTL == "" {
		return 0, errtrace.Wrap(errorutil.NewWrapperError(ErrMissingParam, "%q", ParamTTL))
	}
	for i := range len(u.TTL) {
		if u.TTL[i] < '0' || u.TTL[i] > '9' {
			return 0, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidTTL, "non-numeric %q", u.TTL))
		}
	}
	n, err := strconv.ParseUint(u.TTL, 10, 8)
	if err != nil {
		return 0, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidTTL, "%q out of range", u.TTL))
	}
	return uint8(n), nil
}

// ResolveEndpoint resolves the endpoint with r, or with [netaddr.DefaultResolver] if r is nil.
func (u *UDP) ResolveEndpoint(ctx context.Context, r *netaddr.Resolver) (netaddr.Address, error) {
	if u == nil || u.Endpoint == "" {
		return netaddr.Address{}, errtrace.Wrap(errorutil.NewWrapperError(ErrMissingParam, "%q", ParamEndpoint))
	}
	addr, err := resolverOrDefault(r).ResolveHostPort(ctx, u.Endpoint)
	if err != nil {
		return netaddr.Address{}, errtrace.Wrap(fmt.Errorf("%s: %w", ParamEndpoint, err))
	}
	return addr, nil
}

// ResolveControl resolves the control endpoint with r, or with [netaddr.DefaultResolver] if r is nil.
func (u *UDP) ResolveControl(ctx context.Context, r *netaddr.Resolver) (netaddr.Address, error) {
	if u == nil || u.Control == "" {
		return netaddr.Address{}, errtrace.Wrap(errorutil.NewWrapperError(ErrMissingParam, "%q", ParamControl))
	}
	addr, err := resolverOrDefault(r).ResolveHostPort(ctx, u.Control)
	if err != nil {
		return netaddr.Address{}, errtrace.Wrap(fmt.Errorf("%s: %w", ParamControl, err))
	}
	return addr, nil
}

// ResolveInterface resolves the interface with r, or with [netaddr.DefaultResolver] if r is nil.
func (u *UDP) ResolveInterface(ctx context.Context, r *netaddr.Resolver) (netaddr.Interface, error) {
	if u == nil || u.Interface == "" {
		return netaddr.Interface{}, errtrace.Wrap(errorutil.NewWrapperError(ErrMissingParam, "%q", ParamInterface))
	}
	iface, err := resolverOrDefault(r).ResolveInterface(ctx, u.Interface)
	if err != nil {
		return netaddr.Interface{}, errtrace.Wrap(fmt.Errorf("%s: %w", ParamInterface, err))
	}
	return iface, nil
}

func resolverOrDefault(r *netaddr.Resolver) *netaddr.Resolver {
	if r == nil {
		return netaddr.DefaultResolver()
	}
	return r
}

// MarshalText implements [encoding.TextMarshaler].
func (u *UDP) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *UDP) UnmarshalText(text []byte) error {
	u1, err := ParseUDP(text)
	if err != nil {
		*u = UDP{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}

// ParseUDP parses a UDP URI from the given input s (string or []byte).
// Valid channel URIs of another transport fail with [ErrUnknownTransport].
func ParseUDP[T ~string | ~[]byte](s T) (*UDP, error) {
	u, err := Parse(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	udp, ok := u.(*UDP)
	if !ok {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrUnknownTransport,
			"expected %q, got %q in %q", TransportUDP, u.Transport(), string(s)))
	}
	return udp, nil
}

func buildUDP(node *abnf.Node, src string) (*UDP, error) {
	var u UDP
	if err := walkParams(node, src, func(key, val string) {
		switch key {
		case ParamEndpoint:
			u.Endpoint = val
		case ParamInterface:
			u.Interface = val
		case ParamControl:
			u.Control = val
		case ParamTTL:
			u.TTL = val
		default:
			u.Params = u.Params.Append(key, val)
		}
	}); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &u, nil
}
