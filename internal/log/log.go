// Package log provides logging utilities.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/netip"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(addr *net.UDPAddr) slog.Value {
		if addr == nil {
			return slog.StringValue("<nil>")
		}
		attrs := []slog.Attr{
			slog.String("ip", addr.IP.String()),
			slog.Int("port", addr.Port),
		}
		if addr.Zone != "" {
			attrs = append(attrs, slog.String("zone", addr.Zone))
		}
		return slog.GroupValue(attrs...)
	}),
	slogformatter.FormatByType(func(p netip.Prefix) slog.Value {
		return slog.StringValue(p.String())
	}),
)

// Format selects the output handler of a logger built with [New].
type Format string

const (
	// FormatConsole writes human-readable colored lines.
	FormatConsole Format = "console"
	// FormatDev writes verbose multi-line records for local debugging.
	FormatDev Format = "dev"
	// FormatJSON writes one JSON object per record.
	FormatJSON Format = "json"
)

// New builds a logger writing to w with the given format and minimum level.
// Unknown formats fall back to [FormatConsole].
func New(w io.Writer, format Format, level slog.Leveler) *slog.Logger {
	var h slog.Handler
	switch format {
	case FormatDev:
		h = devslog.NewHandler(w, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     level,
			},
			SortKeys:   true,
			TimeFormat: time.RFC3339Nano,
		})
	case FormatJSON:
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	default:
		h = console.NewHandler(w, &console.HandlerOptions{
			Level:      level,
			TimeFormat: time.RFC3339Nano,
		})
	}
	return slog.New(newHandler(h))
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

type fmtValue struct {
	v        any
	goSyntax bool
}

func (v fmtValue) LogValue() slog.Value {
	if v.goSyntax {
		return slog.StringValue(fmt.Sprintf("%#v", v.v))
	}
	return slog.StringValue(fmt.Sprintf("%+v", v.v))
}

// FmtValue returns a value logger that formats values using '%+v' or '%#v' syntax.
func FmtValue(v any, goSyntax bool) slog.LogValuer { return fmtValue{v, goSyntax} }
