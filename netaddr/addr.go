package netaddr

import (
	"net"
	"net/netip"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/aeronuri/internal/errorutil"
	"github.com/ghettovoice/aeronuri/internal/util"
)

// Family is an IP address family.
type Family uint8

const (
	// FamilyUnspec accepts addresses of any family.
	FamilyUnspec Family = iota
	FamilyIPv4
	FamilyIPv6
)

// ParseFamily parses family names as used in configuration files:
// "" or "ip" for [FamilyUnspec], "ip4"/"ipv4" and "ip6"/"ipv6".
func ParseFamily(s string) (Family, error) {
	switch util.LCase(s) {
	case "", "ip", "any":
		return FamilyUnspec, nil
	case "ip4", "ipv4":
		return FamilyIPv4, nil
	case "ip6", "ipv6":
		return FamilyIPv6, nil
	default:
		return FamilyUnspec, errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown address family %q", s))
	}
}

func (f Family) String() string {
	switch f {
	case FamilyIPv4:
		return "ipv4"
	case FamilyIPv6:
		return "ipv6"
	default:
		return "unspec"
	}
}

// Bits returns the address width of the family, or 0 for [FamilyUnspec].
func (f Family) Bits() int {
	switch f {
	case FamilyIPv4:
		return 32
	case FamilyIPv6:
		return 128
	default:
		return 0
	}
}

// network returns the network name understood by [net.Resolver.LookupNetIP].
func (f Family) network() string {
	switch f {
	case FamilyIPv4:
		return "ip4"
	case FamilyIPv6:
		return "ip6"
	default:
		return "ip"
	}
}

func (f Family) accepts(addr netip.Addr) bool {
	switch f {
	case FamilyIPv4:
		return addr.Is4()
	case FamilyIPv6:
		return addr.Is6()
	default:
		return true
	}
}

func familyOf(addr netip.Addr) Family {
	switch {
	case addr.Is4():
		return FamilyIPv4
	case addr.Is6():
		return FamilyIPv6
	default:
		return FamilyUnspec
	}
}

// Address is a resolved socket address.
// IPv6 addresses may carry a zone identifier.
type Address struct {
	IP   netip.Addr
	Port uint16
}

// Family returns the address family of the IP.
func (a Address) Family() Family { return familyOf(a.IP) }

// Zone returns the IPv6 zone identifier, if any.
func (a Address) Zone() string { return a.IP.Zone() }

// IsMulticast reports whether the IP is in 224.0.0.0/4 or ff00::/8.
func (a Address) IsMulticast() bool { return a.IP.IsMulticast() }

// IsValid reports whether the address holds an IP.
func (a Address) IsValid() bool { return a.IP.IsValid() }

// AddrPort returns the address as [netip.AddrPort].
func (a Address) AddrPort() netip.AddrPort { return netip.AddrPortFrom(a.IP, a.Port) }

// UDPAddr returns the address as [net.UDPAddr] ready to bind or dial.
func (a Address) UDPAddr() *net.UDPAddr {
	if !a.IP.IsValid() {
		return nil
	}
	return net.UDPAddrFromAddrPort(a.AddrPort())
}

// String returns the address in host:port form, bracketing IPv6 addresses.
func (a Address) String() string {
	if !a.IP.IsValid() {
		return ""
	}
	return a.AddrPort().String()
}

// Equal reports whether the address equals the provided value, accepting Address and *Address.
func (a Address) Equal(val any) bool {
	var other Address
	switch v := val.(type) {
	case Address:
		other = v
	case *Address:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return a.IP == other.IP && a.Port == other.Port
}

// Interface is a resolved interface: an address and the number
// of its leading bits that are significant when matching local interfaces.
type Interface struct {
	Address
	PrefixLen int
}

// Prefix returns the masked network prefix of the interface, without zone.
// The result is invalid when the prefix length does not fit the family.
func (i Interface) Prefix() netip.Prefix {
	p, err := i.IP.WithZone("").Prefix(i.PrefixLen)
	if err != nil {
		return netip.Prefix{}
	}
	return p
}

// Contains reports whether ip belongs to the interface prefix.
// Zones are ignored.
func (i Interface) Contains(ip netip.Addr) bool {
	p := i.Prefix()
	return p.IsValid() && p.Contains(ip.WithZone(""))
}

// String returns the interface in address/prefix[:port] form.
func (i Interface) String() string {
	if !i.IP.IsValid() {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	if i.IP.Is6() {
		sb.WriteString("[")
		sb.WriteString(i.IP.String())
		sb.WriteString("]")
	} else {
		sb.WriteString(i.IP.String())
	}
	sb.WriteString("/")
	sb.WriteString(strconv.Itoa(i.PrefixLen))
	if i.Port != 0 {
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(int(i.Port)))
	}
	return sb.String()
}

// Equal reports whether the interface equals the provided value, accepting Interface and *Interface.
func (i Interface) Equal(val any) bool {
	var other Interface
	switch v := val.(type) {
	case Interface:
		other = v
	case *Interface:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return i.Address.Equal(other.Address) && i.PrefixLen == other.PrefixLen
}
