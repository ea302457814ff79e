package netaddr

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -destination=../internal/testutil/resolvermock/mock.go -package=resolvermock . HostResolver

import (
	"context"
	"fmt"
	"log/slog"
	"net/netip"
	"slices"
	"time"

	"braces.dev/errtrace"
	"github.com/hashicorp/go-metrics"

	"github.com/ghettovoice/aeronuri/dns"
	"github.com/ghettovoice/aeronuri/internal/errorutil"
	"github.com/ghettovoice/aeronuri/internal/log"
)

// HostResolver maps a host name to candidate IP addresses.
// The network is one of "ip", "ip4" or "ip6".
// Both [net.Resolver] and [dns.Resolver] implement it.
type HostResolver interface {
	LookupNetIP(ctx context.Context, network, host string) ([]netip.Addr, error)
}

// HostResolverFunc is an adapter to use ordinary functions as [HostResolver].
type HostResolverFunc func(ctx context.Context, network, host string) ([]netip.Addr, error)

// LookupNetIP calls f(ctx, network, host).
func (f HostResolverFunc) LookupNetIP(ctx context.Context, network, host string) ([]netip.Addr, error) {
	return errtrace.Wrap2(f(ctx, network, host))
}

// ResolverOptions configures a [Resolver].
type ResolverOptions struct {
	// HostResolver resolves host names that are not IP literals.
	// If nil, [dns.DefaultResolver] is used.
	HostResolver HostResolver
	// Family restricts host name resolution to one address family.
	// Literal addresses are not affected.
	Family Family
	// Logger is used for debug logging of host name resolution.
	// If nil, logging is disabled.
	Logger *slog.Logger
	// MetricSink receives resolution metrics.
	// If nil, the global sink of go-metrics is used.
	MetricSink metrics.MetricSink
	// MetricLabels are attached to every emitted metric.
	MetricLabels []metrics.Label
}

func (o *ResolverOptions) hostResolver() HostResolver {
	if o == nil || o.HostResolver == nil {
		return dns.DefaultResolver()
	}
	return o.HostResolver
}

func (o *ResolverOptions) family() Family {
	if o == nil {
		return FamilyUnspec
	}
	return o.Family
}

func (o *ResolverOptions) log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Noop
	}
	return o.Logger
}

func (o *ResolverOptions) metricSink() metrics.MetricSink {
	if o == nil || o.MetricSink == nil {
		return metrics.Default()
	}
	return o.MetricSink
}

func (o *ResolverOptions) metricLabels() []metrics.Label {
	if o == nil {
		return nil
	}
	return slices.Clone(o.MetricLabels)
}

// Resolver turns host:port and interface strings into addresses.
// It is immutable and safe for concurrent use.
type Resolver struct {
	hosts   HostResolver
	family  Family
	log     *slog.Logger
	msink   metrics.MetricSink
	mlabels []metrics.Label
}

// NewResolver creates a new resolver. Options are optional and may be nil.
func NewResolver(opts *ResolverOptions) *Resolver {
	return &Resolver{
		hosts:   opts.hostResolver(),
		family:  opts.family(),
		log:     opts.log(),
		msink:   opts.metricSink(),
		mlabels: opts.metricLabels(),
	}
}

var defResolver = NewResolver(nil)

// DefaultResolver returns the resolver used by the package-level functions.
// It is backed by [dns.DefaultResolver] and never changes; build a custom
// [Resolver] with [NewResolver] to plug in another host resolution strategy.
func DefaultResolver() *Resolver { return defResolver }

// Family returns the address family the resolver restricts host names to.
func (r *Resolver) Family() Family { return r.family }

// ResolveHostPort resolves host:port string s.
// The port is mandatory, IPv6 literals must be bracketed.
func (r *Resolver) ResolveHostPort(ctx context.Context, s string) (Address, error) {
	spec, err := parseHostPort(s)
	if err != nil {
		return Address{}, errtrace.Wrap(err)
	}

	ip, err := r.resolveHost(ctx, spec.hostSpec)
	if err != nil {
		return Address{}, errtrace.Wrap(err)
	}
	return Address{IP: ip, Port: spec.port}, nil
}

// ResolveInterface resolves interface string s of the form address[/prefix][:port].
// The prefix length defaults to the width of the address family and the port to zero.
func (r *Resolver) ResolveInterface(ctx context.Context, s string) (Interface, error) {
	spec, err := parseInterface(s)
	if err != nil {
		return Interface{}, errtrace.Wrap(err)
	}

	ip, err := r.resolveHost(ctx, spec.hostSpec)
	if err != nil {
		return Interface{}, errtrace.Wrap(err)
	}

	bits := familyOf(ip).Bits()
	prefixLen := bits
	if spec.hasPrefix {
		if spec.prefixLen > bits {
			return Interface{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPrefixLength,
				"prefix length %d exceeds %d bits of %s address in %q", spec.prefixLen, bits, familyOf(ip), s))
		}
		prefixLen = spec.prefixLen
	}

	return Interface{
		Address:   Address{IP: ip, Port: spec.port},
		PrefixLen: prefixLen,
	}, nil
}

func (r *Resolver) resolveHost(ctx context.Context, spec hostSpec) (netip.Addr, error) {
	ip, err := netip.ParseAddr(spec.host)
	if err != nil {
		if ip, err = r.lookupHost(ctx, spec.host); err != nil {
			return netip.Addr{}, errtrace.Wrap(err)
		}
	}

	if spec.zone != "" {
		if !ip.Is6() {
			return netip.Addr{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAddress,
				"zone %q on IPv4 address %s", spec.zone, ip))
		}
		ip = ip.WithZone(spec.zone)
	}
	return ip, nil
}

func (r *Resolver) lookupHost(ctx context.Context, host string) (netip.Addr, error) {
	start := time.Now()
	addrs, err := r.hosts.LookupNetIP(ctx, r.family.network(), host)
	elapsed := time.Since(start)
	r.msink.AddSampleWithLabels(MetricResolveLatency, float32(elapsed.Seconds()*1e3), r.mlabels)

	if err != nil {
		reason := "lookup"
		if errorutil.IsTimeoutErr(err) {
			reason = "timeout"
		}
		r.failed(ctx, host, reason, err)
		return netip.Addr{}, errtrace.Wrap(errorutil.NewWrapperError(ErrHostNotResolved,
			fmt.Errorf("host %q: %w", host, err)))
	}

	for _, addr := range addrs {
		addr = addr.Unmap()
		if !addr.IsValid() || !r.family.accepts(addr) {
			continue
		}

		r.msink.IncrCounterWithLabels(MetricResolveCount, 1, r.mlabels)
		r.log.LogAttrs(ctx, slog.LevelDebug, "host name resolved",
			LabelHost.L(host),
			slog.Any("addr", addr),
			LabelFamily.L(r.family.String()),
			slog.Duration("elapsed", elapsed),
		)
		return addr, nil
	}

	err = errorutil.NewWrapperError(ErrHostNotResolved, "no usable address for host %q (family %s)", host, r.family)
	r.failed(ctx, host, "no_address", err)
	return netip.Addr{}, errtrace.Wrap(err)
}

func (r *Resolver) failed(ctx context.Context, host, reason string, err error) {
	r.msink.IncrCounterWithLabels(MetricResolveErrorCount, 1, append(slices.Clip(r.mlabels), LabelError.M(reason)))
	r.log.LogAttrs(ctx, slog.LevelDebug, "host name resolution failed",
		LabelHost.L(host),
		LabelFamily.L(r.family.String()),
		slog.String("reason", reason),
		slog.Any("error", err),
	)
}

// ResolveHostPort resolves host:port string s with the [DefaultResolver].
func ResolveHostPort(ctx context.Context, s string) (Address, error) {
	return errtrace.Wrap2(defResolver.ResolveHostPort(ctx, s))
}

// ResolveInterface resolves interface string s with the [DefaultResolver].
func ResolveInterface(ctx context.Context, s string) (Interface, error) {
	return errtrace.Wrap2(defResolver.ResolveInterface(ctx, s))
}
