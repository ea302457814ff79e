package netaddr

import "github.com/ghettovoice/aeronuri/internal/errorutil"

// Error represents a resolution error.
// See [errorutil.Error].
type Error = errorutil.Error

// GrammarError represents a syntax error of an address string.
// See [errorutil.GrammarError].
type GrammarError = errorutil.GrammarError

// Syntax errors.
const (
	// ErrInvalidPort is returned when the port is missing, empty, non-numeric or out of range.
	ErrInvalidPort GrammarError = "invalid port"
	// ErrInvalidAddress is returned when the host part is not a valid address literal or host name.
	ErrInvalidAddress GrammarError = "invalid address"
	// ErrUnmatchedBracket is returned when an IPv6 bracket is not closed or opened.
	ErrUnmatchedBracket GrammarError = "unmatched bracket"
	// ErrInvalidPrefixLength is returned when the prefix length is non-numeric
	// or exceeds the width of the address family.
	ErrInvalidPrefixLength GrammarError = "invalid prefix length"
)

// ErrHostNotResolved is returned when the host resolver fails or returns no usable address.
const ErrHostNotResolved Error = "host not resolved"
