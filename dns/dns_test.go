package dns_test

import (
	"context"
	"errors"
	"net"
	"net/netip"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	mdns "github.com/miekg/dns"
	"go.uber.org/goleak"

	"github.com/ghettovoice/aeronuri/dns"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var zone = map[string]map[uint16][]string{
	"media.example.": {
		mdns.TypeA:    {"10.0.0.7", "10.0.0.8"},
		mdns.TypeAAAA: {"2001:db8::7"},
	},
	"v6only.example.": {
		mdns.TypeAAAA: {"2001:db8::9"},
	},
	"group.example.": {
		mdns.TypeA: {"224.10.9.8"},
	},
	"xn--bcher-kva.example.": {
		mdns.TypeA: {"10.0.0.9"},
	},
	"my_host.example.": {
		mdns.TypeA: {"10.0.0.10"},
	},
}

func startServer(t *testing.T) string {
	t.Helper()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.ListenPacket() error = %v, want nil", err)
	}

	started := make(chan struct{})
	srv := &mdns.Server{
		PacketConn:        pc,
		NotifyStartedFunc: func() { close(started) },
		Handler: mdns.HandlerFunc(func(w mdns.ResponseWriter, req *mdns.Msg) {
			resp := new(mdns.Msg)
			resp.SetReply(req)

			q := req.Question[0]
			recs, ok := zone[q.Name]
			if !ok {
				resp.SetRcode(req, mdns.RcodeNameError)
				w.WriteMsg(resp) //nolint:errcheck
				return
			}
			for _, v := range recs[q.Qtype] {
				hdr := mdns.RR_Header{Name: q.Name, Rrtype: q.Qtype, Class: mdns.ClassINET, Ttl: 60}
				switch q.Qtype {
				case mdns.TypeA:
					resp.Answer = append(resp.Answer, &mdns.A{Hdr: hdr, A: net.ParseIP(v).To4()})
				case mdns.TypeAAAA:
					resp.Answer = append(resp.Answer, &mdns.AAAA{Hdr: hdr, AAAA: net.ParseIP(v)})
				}
			}
			w.WriteMsg(resp) //nolint:errcheck
		}),
	}

	go srv.ActivateAndServe() //nolint:errcheck
	<-started
	t.Cleanup(func() { srv.Shutdown() }) //nolint:errcheck

	return pc.LocalAddr().String()
}

func addrs(ss ...string) []netip.Addr {
	out := make([]netip.Addr, len(ss))
	for i, s := range ss {
		out[i] = netip.MustParseAddr(s)
	}
	return out
}

func TestResolver_LookupNetIP_NameServer(t *testing.T) {
	t.Parallel()

	r := &dns.Resolver{NameServer: startServer(t), Timeout: 2 * time.Second}

	cases := []struct {
		name    string
		network string
		host    string
		want    []netip.Addr
		wantErr bool
	}{
		{"any family", "ip", "media.example", addrs("10.0.0.7", "10.0.0.8", "2001:db8::7"), false},
		{"ipv4 only", "ip4", "media.example", addrs("10.0.0.7", "10.0.0.8"), false},
		{"ipv6 only", "ip6", "media.example", addrs("2001:db8::7"), false},
		{"fqdn", "ip", "group.example.", addrs("224.10.9.8"), false},
		{"missing family", "ip4", "v6only.example", nil, true},
		{"nxdomain", "ip", "nowhere.example", nil, true},
		{"literal", "ip", "192.168.1.20", addrs("192.168.1.20"), false},
		{"mapped literal", "ip", "::ffff:10.1.1.1", addrs("10.1.1.1"), false},
		{"idn", "ip4", "bücher.example", addrs("10.0.0.9"), false},
		{"punycode", "ip4", "xn--bcher-kva.example", addrs("10.0.0.9"), false},
		{"mixed case", "ip4", "Media.Example", addrs("10.0.0.7", "10.0.0.8"), false},
		{"underscore", "ip4", "my_host.example", addrs("10.0.0.10"), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.LookupNetIP(context.Background(), c.network, c.host)
			if (err != nil) != c.wantErr {
				t.Fatalf("r.LookupNetIP(ctx, %q, %q) error = %v, want error %v", c.network, c.host, err, c.wantErr)
			}
			if diff := cmp.Diff(got, c.want, cmpopts.EquateComparable(netip.Addr{})); diff != "" {
				t.Errorf("r.LookupNetIP(ctx, %q, %q) = %v, want %v\ndiff (-got +want):\n%v", c.network, c.host, got, c.want, diff)
			}
		})
	}
}

func TestResolver_LookupNetIP_NotFound(t *testing.T) {
	t.Parallel()

	r := &dns.Resolver{NameServer: startServer(t)}

	_, err := r.LookupNetIP(context.Background(), "ip", "nowhere.example")
	var dnsErr *net.DNSError
	if !errors.As(err, &dnsErr) {
		t.Fatalf("r.LookupNetIP() error = %v, want *net.DNSError", err)
	}
	if !dnsErr.IsNotFound {
		t.Errorf("dnsErr.IsNotFound = false, want true")
	}
}

func TestResolver_LookupNetIP_UnknownNetwork(t *testing.T) {
	t.Parallel()

	r := &dns.Resolver{NameServer: "127.0.0.1"}

	_, err := r.LookupNetIP(context.Background(), "udp", "media.example")
	var netErr net.UnknownNetworkError
	if !errors.As(err, &netErr) {
		t.Errorf("r.LookupNetIP(ctx, \"udp\", ...) error = %v, want net.UnknownNetworkError", err)
	}
}

func TestResolver_LookupNetIP_Canceled(t *testing.T) {
	t.Parallel()

	r := &dns.Resolver{NameServer: startServer(t)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.LookupNetIP(ctx, "ip4", "media.example"); err == nil {
		t.Errorf("r.LookupNetIP(canceled ctx) error = nil, want non-nil")
	}
}

//nolint:paralleltest
func TestResolver_LookupNetIP_ResolvConf(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.conf")
	if err := os.WriteFile(empty, []byte("search example\n"), 0o600); err != nil {
		t.Fatalf("os.WriteFile() error = %v, want nil", err)
	}

	cases := []struct {
		name string
		path string
	}{
		{"no servers", empty},
		{"missing file", filepath.Join(dir, "missing.conf")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			restore := dns.SetResolvConfPath(c.path)
			defer restore()

			r := &dns.Resolver{Direct: true}
			if _, err := r.LookupNetIP(context.Background(), "ip", "media.example"); err == nil {
				t.Errorf("r.LookupNetIP() error = nil, want non-nil")
			}
		})
	}
}

func TestResolver_NameServer(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"127.0.0.1", "127.0.0.1:53"},
		{"127.0.0.1:5353", "127.0.0.1:5353"},
		{"ns.example", "ns.example:53"},
		{"::1", "[::1]:53"},
		{"[::1]", "[::1]:53"},
		{"[::1]:5353", "[::1]:5353"},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			r := &dns.Resolver{NameServer: c.in}
			got, err := r.NameServerAddr()
			if err != nil {
				t.Fatalf("r.NameServerAddr() error = %v, want nil", err)
			}
			if got != c.want {
				t.Errorf("r.NameServerAddr() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestDefaultResolver(t *testing.T) {
	t.Parallel()

	if dns.DefaultResolver() != dns.DefaultResolver() {
		t.Errorf("dns.DefaultResolver() returned different instances")
	}

	got, err := dns.LookupNetIP(context.Background(), "ip", "::1")
	if err != nil {
		t.Fatalf("dns.LookupNetIP(ctx, \"ip\", \"::1\") error = %v, want nil", err)
	}
	if diff := cmp.Diff(got, addrs("::1"), cmpopts.EquateComparable(netip.Addr{})); diff != "" {
		t.Errorf("dns.LookupNetIP() diff (-got +want):\n%v", diff)
	}
}
