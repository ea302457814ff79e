// Package dns provides host name resolution backends for channel addresses.
package dns

//go:generate go tool errtrace -w .

import (
	"context"
	"net"
	"net/netip"
	"strings"
	"time"

	"braces.dev/errtrace"
	"github.com/miekg/dns"
	"golang.org/x/net/idna"
)

// Resolver resolves host names to IP addresses.
//
// By default it delegates to the embedded [net.Resolver], i.e. to the platform's
// standard name resolution. When NameServer is set or Direct is true, A/AAAA
// queries are sent straight to a nameserver instead.
type Resolver struct {
	net.Resolver

	// NameServer specifies the DNS server address (e.g., "8.8.8.8:53").
	// Port 53 is assumed when the address has no port.
	NameServer string
	// Direct forces direct nameserver queries even when NameServer is empty,
	// in which case the first server from /etc/resolv.conf is used.
	Direct bool
	// Timeout specifies the timeout for a single direct DNS query.
	// If zero, defaults to 5 seconds.
	Timeout time.Duration
}

// Host names are converted to their ASCII form before lookup.
// Underscores are allowed, as in service labels.
var hostProfile = idna.New(idna.MapForLookup(), idna.BidiRule(), idna.StrictDomainName(false))

// LookupNetIP looks up host addresses for the network "ip", "ip4" or "ip6".
// Internationalized names are looked up by their punycode form.
// IPv4-mapped IPv6 results are unmapped. For the "ip" network direct queries
// return A records before AAAA records.
func (r *Resolver) LookupNetIP(ctx context.Context, network, host string) ([]netip.Addr, error) {
	if addr, err := netip.ParseAddr(host); err == nil {
		return []netip.Addr{addr.Unmap()}, nil
	}

	name, err := hostProfile.ToASCII(host)
	if err != nil {
		return nil, errtrace.Wrap(&net.DNSError{
			Err:  "invalid host name: " + err.Error(),
			Name: host,
		})
	}
	host = name

	if r.NameServer == "" && !r.Direct {
		addrs, err := r.Resolver.LookupNetIP(ctx, network, host)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		for i := range addrs {
			addrs[i] = addrs[i].Unmap()
		}
		return addrs, nil
	}

	var qtypes []uint16
	switch network {
	case "ip":
		qtypes = []uint16{dns.TypeA, dns.TypeAAAA}
	case "ip4":
		qtypes = []uint16{dns.TypeA}
	case "ip6":
		qtypes = []uint16{dns.TypeAAAA}
	default:
		return nil, errtrace.Wrap(net.UnknownNetworkError(network))
	}

	nameserver, err := r.nameserver()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	client := &dns.Client{Timeout: r.timeout()}
	var (
		addrs   []netip.Addr
		lastErr error
	)
	for _, qtype := range qtypes {
		recs, err := r.exchange(ctx, client, nameserver, host, qtype)
		if err != nil {
			lastErr = err
			continue
		}
		addrs = append(addrs, recs...)
	}
	if len(addrs) == 0 {
		if lastErr != nil {
			return nil, errtrace.Wrap(lastErr)
		}
		return nil, errtrace.Wrap(&net.DNSError{
			Err:        "no such host",
			Name:       host,
			Server:     nameserver,
			IsNotFound: true,
		})
	}
	return addrs, nil
}

func (r *Resolver) exchange(
	ctx context.Context,
	client *dns.Client,
	nameserver, host string,
	qtype uint16,
) ([]netip.Addr, error) {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(host), qtype)
	m.RecursionDesired = true

	resp, _, err := client.ExchangeContext(ctx, m, nameserver)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	if resp.Rcode != dns.RcodeSuccess {
		return nil, errtrace.Wrap(&net.DNSError{
			Err:        dns.RcodeToString[resp.Rcode],
			Name:       host,
			Server:     nameserver,
			IsNotFound: resp.Rcode == dns.RcodeNameError,
		})
	}

	addrs := make([]netip.Addr, 0, len(resp.Answer))
	for _, ans := range resp.Answer {
		var ip net.IP
		switch rr := ans.(type) {
		case *dns.A:
			ip = rr.A
		case *dns.AAAA:
			ip = rr.AAAA
		default:
			continue
		}
		if addr, ok := netip.AddrFromSlice(ip); ok {
			addrs = append(addrs, addr.Unmap())
		}
	}
	return addrs, nil
}

func (r *Resolver) timeout() time.Duration {
	if r.Timeout > 0 {
		return r.Timeout
	}
	return 5 * time.Second
}

func (r *Resolver) nameserver() (string, error) {
	if r.NameServer != "" {
		if _, _, err := net.SplitHostPort(r.NameServer); err != nil {
			host := strings.TrimSuffix(strings.TrimPrefix(r.NameServer, "["), "]")
			return net.JoinHostPort(host, "53"), nil //nolint:nilerr
		}
		return r.NameServer, nil
	}

	conf, err := dns.ClientConfigFromFile(resolvConfPath)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	if len(conf.Servers) == 0 {
		return "", errtrace.Wrap(&net.DNSError{
			Err:  "no DNS servers configured",
			Name: "resolv.conf",
		})
	}

	return net.JoinHostPort(conf.Servers[0], conf.Port), nil
}

var resolvConfPath = "/etc/resolv.conf"

var defResolver = &Resolver{}

// DefaultResolver returns the shared system-backed resolver.
func DefaultResolver() *Resolver { return defResolver }

// LookupNetIP looks up host addresses with the [DefaultResolver].
func LookupNetIP(ctx context.Context, network, host string) ([]netip.Addr, error) {
	return errtrace.Wrap2(defResolver.LookupNetIP(ctx, network, host))
}
