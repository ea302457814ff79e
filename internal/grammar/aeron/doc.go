// Package aeron implements channel URI and address rules defined in aeron.abnf.
//
// Rules are generated as ready to use operators.
package aeron
