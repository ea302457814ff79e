package uri

import "github.com/ghettovoice/aeronuri/internal/errorutil"

// Error represents a channel URI error.
// See [errorutil.Error].
type Error = errorutil.Error

// GrammarError represents a channel URI syntax error.
// See [errorutil.GrammarError].
type GrammarError = errorutil.GrammarError

const (
	// ErrInvalidScheme is returned when the input does not start with "aeron:"
	// or nothing follows the colon.
	ErrInvalidScheme GrammarError = "invalid scheme"
	// ErrUnknownTransport is returned for any transport other than "ipc" or "udp".
	ErrUnknownTransport GrammarError = "unknown transport"
	// ErrMalformedParam is returned for a parameter without "=".
	ErrMalformedParam GrammarError = "malformed param"
	// ErrInvalidTTL is returned when the "ttl" parameter is not a decimal in [0,255].
	ErrInvalidTTL GrammarError = "invalid ttl"
)

// ErrMissingParam is returned when a well-known parameter is needed but absent.
const ErrMissingParam Error = "missing param"
