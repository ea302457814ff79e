// Command aeronuri parses channel URIs, prints their structure and optionally
// resolves their address parameters.
//
// Usage:
//
//	aeronuri [-c config.yaml] [-r] [-d] [-m] [-t timeout] uri...
//
// The exit code is 2 when a URI or address is malformed and 1 on any other failure.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"sort"
	"time"

	"braces.dev/errtrace"
	"github.com/hashicorp/go-metrics"

	"github.com/ghettovoice/aeronuri/internal/errorutil"
	"github.com/ghettovoice/aeronuri/internal/log"
	"github.com/ghettovoice/aeronuri/netaddr"
	"github.com/ghettovoice/aeronuri/uri"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("aeronuri", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfile := fs.String("c", "", "specify YAML config file")
	resolve := fs.Bool("r", false, "resolve address parameters of udp channels")
	debug := fs.Bool("d", false, "print debug logs")
	dump := fs.Bool("m", false, "dump resolution metrics")
	timeout := fs.Duration("t", 0, "overall resolution timeout")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg := new(Config)
	if *cfile != "" {
		var err error
		if cfg, err = LoadConfig(*cfile); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	level, _ := cfg.level()
	if *debug {
		level = slog.LevelDebug
	}
	logger := log.New(stderr, log.Format(cfg.Log.Format), level)

	sink := metrics.NewInmemSink(10*time.Second, time.Minute)
	resolver := cfg.newResolver(logger, sink)

	channels := append(slices.Clone(cfg.Channels), fs.Args()...)
	if len(channels) == 0 {
		fmt.Fprintln(stderr, "no channel URIs given")
		fs.Usage()
		return 2
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	var code int
	for _, ch := range channels {
		if err := inspect(ctx, stdout, logger, resolver, ch, *resolve); err != nil {
			logger.Debug("channel inspection failed", slog.String("uri", ch), slog.Any("error", err))
			fmt.Fprintf(stderr, "%q: %v\n", ch, err)
			code = max(code, exitCode(err))
		}
	}

	if *dump {
		dumpMetrics(stdout, sink)
	}
	return code
}

func exitCode(err error) int {
	if errorutil.IsGrammarErr(err) {
		return 2
	}
	return 1
}

func inspect(ctx context.Context, w io.Writer, logger *slog.Logger, r *netaddr.Resolver, s string, resolve bool) error {
	u, err := uri.Parse(s)
	if err != nil {
		return errtrace.Wrap(err)
	}
	logger.LogAttrs(ctx, slog.LevelDebug, "channel parsed", slog.Any("uri", log.FmtValue(u, false)))

	fmt.Fprintln(w, u.String())
	fmt.Fprintf(w, "  transport: %s\n", u.Transport())

	udp, ok := u.(*uri.UDP)
	if ok {
		for _, kv := range [...][2]string{
			{uri.ParamEndpoint, udp.Endpoint},
			{uri.ParamInterface, udp.Interface},
			{uri.ParamControl, udp.Control},
			{uri.ParamTTL, udp.TTL},
		} {
			if kv[1] != "" {
				fmt.Fprintf(w, "  %s: %s\n", kv[0], kv[1])
			}
		}
	}
	for k, v := range uri.GetParams(u).All() {
		fmt.Fprintf(w, "  param: %s=%s\n", k, v)
	}

	if !ok || !resolve {
		return nil
	}
	return errtrace.Wrap(resolveUDP(ctx, w, r, udp))
}

func resolveUDP(ctx context.Context, w io.Writer, r *netaddr.Resolver, u *uri.UDP) error {
	var errs []error

	printAddr := func(name string, addr netaddr.Address) {
		kind := "unicast"
		if addr.IsMulticast() {
			kind = "multicast"
		}
		fmt.Fprintf(w, "  resolved %s: %s (%s, %s)\n", name, addr, addr.Family(), kind)
	}

	if u.Endpoint != "" {
		if addr, err := u.ResolveEndpoint(ctx, r); err != nil {
			errs = append(errs, err)
		} else {
			printAddr(uri.ParamEndpoint, addr)
		}
	}
	if u.Control != "" {
		if addr, err := u.ResolveControl(ctx, r); err != nil {
			errs = append(errs, err)
		} else {
			printAddr(uri.ParamControl, addr)
		}
	}
	if u.Interface != "" {
		if iface, err := u.ResolveInterface(ctx, r); err != nil {
			errs = append(errs, err)
		} else {
			fmt.Fprintf(w, "  resolved %s: %s (%s, prefix %s)\n",
				uri.ParamInterface, iface, iface.Family(), iface.Prefix())
		}
	}
	if u.TTL != "" {
		if ttl, err := u.ParseTTL(); err != nil {
			errs = append(errs, err)
		} else {
			fmt.Fprintf(w, "  resolved %s: %d\n", uri.ParamTTL, ttl)
		}
	}

	return errtrace.Wrap(errorutil.JoinPrefix("resolve:", errs...))
}

func dumpMetrics(w io.Writer, sink *metrics.InmemSink) {
	for _, im := range sink.Data() {
		keys := make([]string, 0, len(im.Counters)+len(im.Samples))
		vals := make(map[string]metrics.SampledValue, cap(keys))
		for k, v := range im.Counters {
			keys = append(keys, "counter "+k)
			vals["counter "+k] = v
		}
		for k, v := range im.Samples {
			keys = append(keys, "sample "+k)
			vals["sample "+k] = v
		}
		sort.Strings(keys)

		for _, k := range keys {
			v := vals[k]
			fmt.Fprintf(w, "%s count=%d sum=%g\n", k, v.Count, v.Sum)
		}
	}
}
