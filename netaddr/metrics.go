package netaddr

import (
	"log/slog"

	"github.com/hashicorp/go-metrics"
)

var (
	// MetricResolveCount counts successful host name resolutions.
	MetricResolveCount = []string{"aeron", "resolve", "host", "count"}
	// MetricResolveErrorCount counts failed host name resolutions, labeled by [LabelError].
	MetricResolveErrorCount = []string{"aeron", "resolve", "host", "error", "count"}
	// MetricResolveLatency samples host resolver latency in milliseconds.
	MetricResolveLatency = []string{"aeron", "resolve", "host", "latency", "ms"}
)

// TelemetryLabel is a name shared by metric labels and log attributes.
type TelemetryLabel string

var (
	LabelError  TelemetryLabel = "error"
	LabelFamily TelemetryLabel = "family"
	LabelHost   TelemetryLabel = "host"
)

// M returns the label as a metric label.
func (lab TelemetryLabel) M(val string) metrics.Label {
	return metrics.Label{Name: string(lab), Value: val}
}

// L returns the label as a log attribute.
func (lab TelemetryLabel) L(val any) slog.Attr {
	return slog.Attr{
		Key:   string(lab),
		Value: slog.AnyValue(val),
	}
}
