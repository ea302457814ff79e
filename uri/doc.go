// Package uri parses and renders channel URIs of the form
//
//	aeron:<transport>[?key=value|key=value|...]
//
// Two transports are supported: in-process "ipc" and "udp".
//
// # Parsing
//
//	u, err := uri.Parse("aeron:udp?endpoint=224.10.9.8:40456|interface=192.168.0.3/24|ttl=16")
//	if err != nil {
//	    return err
//	}
//	switch u := u.(type) {
//	case *uri.UDP:
//	    // u.Endpoint == "224.10.9.8:40456"
//	case *uri.IPC:
//	    // ...
//	}
//
// [ParseIPC] and [ParseUDP] return the concrete type and fail when the transport differs.
//
// # Parameters
//
// Parameters are separated by "|". A parameter is split into key and value on its
// first "=", any later "=" belongs to the value. The key runs up to that "=" and
// may therefore contain "|", the value runs up to the next "|". Nothing is escaped
// or unescaped, keys are case-sensitive.
//
// The "udp" transport lifts the well-known keys "endpoint", "interface", "control"
// and "ttl" into dedicated [UDP] fields. When such a key is repeated, the last
// occurrence wins. All other parameters are kept in [Params] in the order they
// appear, duplicates included. The "ipc" transport has no well-known keys.
//
// # Addresses
//
// Address parameters are validated and resolved lazily with a [netaddr.Resolver],
// see [UDP.ResolveEndpoint], [UDP.ResolveControl] and [UDP.ResolveInterface].
//
// # Rendering
//
// [URI.String] renders the canonical form: well-known UDP keys first, in the
// order endpoint, interface, control, ttl, followed by the other parameters.
// Parsing the canonical form of a valid URI yields an equal value.
package uri
