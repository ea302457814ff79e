package netaddr

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/aeronuri/internal/errorutil"
	"github.com/ghettovoice/aeronuri/internal/grammar"
)

// hostSpec is the lexical host part of an address string.
type hostSpec struct {
	host string
	zone string
}

type hostPortSpec struct {
	hostSpec
	port uint16
}

type interfaceSpec struct {
	hostSpec
	port      uint16
	prefixLen int
	hasPrefix bool
}

func parseHostPort(s string) (hostPortSpec, error) {
	var spec hostPortSpec
	if s == "" {
		return spec, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPort, "missing port in %q", s))
	}

	node, err := grammar.ParseHostPort(s)
	if err != nil {
		return spec, errtrace.Wrap(unparsedErr(node, s))
	}

	portNode, ok := node.GetNode("port")
	if !ok {
		return spec, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPort, "missing port in %q", s))
	}
	if spec.hostSpec, err = buildHostSpec(grammar.MustGetNode(node, "host"), s); err != nil {
		return spec, errtrace.Wrap(err)
	}
	if spec.port, err = parsePort(portNode.String()); err != nil {
		return spec, errtrace.Wrap(err)
	}
	return spec, nil
}

func parseInterface(s string) (interfaceSpec, error) {
	var spec interfaceSpec
	if s == "" {
		return spec, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAddress, "empty host in %q", s))
	}

	node, err := grammar.ParseInterface(s)
	if err != nil {
		return spec, errtrace.Wrap(unparsedErr(node, s))
	}

	host := grammar.MustGetNode(node, "host")
	ports, prefixes := node.GetNodes("port"), node.GetNodes("prefix-len")
	if len(ports) > 1 {
		if !isBracketed(host) {
			return spec, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAddress,
				"IPv6 address must be enclosed in brackets in %q", s))
		}
		return spec, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAddress, "duplicate port in %q", s))
	}
	if len(prefixes) > 1 {
		return spec, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPrefixLength, "duplicate prefix in %q", s))
	}

	if spec.hostSpec, err = buildHostSpec(host, s); err != nil {
		return spec, errtrace.Wrap(err)
	}
	if len(ports) == 1 {
		if spec.port, err = parsePort(ports[0].String()); err != nil {
			return spec, errtrace.Wrap(err)
		}
	}
	if len(prefixes) == 1 {
		spec.hasPrefix = true
		if spec.prefixLen, err = parsePrefixLen(prefixes[0].String()); err != nil {
			return spec, errtrace.Wrap(err)
		}
	}
	return spec, nil
}

func buildHostSpec(node *abnf.Node, s string) (hostSpec, error) {
	var spec hostSpec

	lit, ok := node.GetNode("ip-literal")
	if !ok {
		spec.host = node.String()
		if spec.host == "" {
			return spec, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAddress, "empty host in %q", s))
		}
		return spec, nil
	}

	spec.host = grammar.MustGetNode(lit, "ip-host").String()
	if spec.host == "" {
		return spec, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAddress, "empty host in %q", s))
	}
	if zn, ok := lit.GetNode("zone-id"); ok {
		spec.zone = zn.String()
		if !grammar.IsZone(spec.zone) {
			return spec, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAddress,
				"invalid zone %q in %q", spec.zone, s))
		}
	}
	return spec, nil
}

// unparsedErr explains why the input after the longest matched prefix was rejected.
func unparsedErr(node *abnf.Node, s string) error {
	rest := s[node.Len():]
	if rest == "" {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAddress, "malformed address %q", s))
	}

	var bracketed bool
	if host, ok := node.GetNode("host"); ok {
		bracketed = isBracketed(host)
	}

	switch {
	case rest[0] == '[':
		return errtrace.Wrap(errorutil.NewWrapperError(ErrUnmatchedBracket, "unclosed or nested '[' in %q", s))
	case !bracketed && strings.IndexByte(rest, ']') >= 0:
		return errtrace.Wrap(errorutil.NewWrapperError(ErrUnmatchedBracket, "missing '[' in %q", s))
	case !bracketed && rest[0] == ':':
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAddress,
			"IPv6 address must be enclosed in brackets in %q", s))
	case !bracketed && rest[0] == '%':
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAddress,
			"zone requires a bracketed IPv6 address in %q", s))
	}

	switch lastSuffix(node) {
	case "port":
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPort, "non-numeric port in %q", s))
	case "prefix-len":
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPrefixLength, "non-numeric prefix length in %q", s))
	}
	return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAddress, "unexpected %q in %q", rest, s))
}

func isBracketed(host *abnf.Node) bool { return host.Contains("ip-literal") }

// lastSuffix returns the key of the rightmost port or prefix node.
func lastSuffix(node *abnf.Node) string {
	var last *abnf.Node
	for _, k := range [...]string{"port", "prefix-len"} {
		for _, n := range node.GetNodes(k) {
			if last == nil || n.Pos > last.Pos {
				last = n
			}
		}
	}
	if last == nil {
		return ""
	}
	return last.Key
}

func parsePort(s string) (uint16, error) {
	if s == "" {
		return 0, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPort, "empty port"))
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPort, "port %q out of range", s))
	}
	return uint16(n), nil
}

func parsePrefixLen(s string) (int, error) {
	if s == "" {
		return 0, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPrefixLength, "empty prefix length"))
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil || n > 128 {
		return 0, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPrefixLength, "prefix length %q out of range", s))
	}
	return int(n), nil
}
