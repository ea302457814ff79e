// Package netaddr resolves the address strings found in channel URI parameters
// into concrete IP addresses.
//
// Two textual forms are supported.
//
// Host and port, used by the "endpoint" and "control" parameters:
//
//	192.168.1.20:40123
//	media.example.com:40123
//	[::1]:40123
//	[fe80::1%eth0]:40123
//
// IPv6 literals must be enclosed in brackets. The optional zone identifier
// after "%" may contain letters, digits and the characters "~_.-".
// The port is mandatory.
//
// Interface, used by the "interface" parameter:
//
//	192.168.1.20
//	192.168.1.20/24
//	192.168.1.20/24:40123
//	[::1]/48
//
// The prefix length defaults to the full width of the address family and the
// port defaults to zero. The "/prefix" and ":port" suffixes may be given in either order.
//
// Numeric literals are used as is. Any other host is handed to the [HostResolver]
// configured on the [Resolver], the first usable address it returns wins.
// Matching an interface against the local network interfaces is
// left to the caller, see [Interface.Contains].
package netaddr
