// Package clientip extracts apparent client IP addresses from framed
// requests.
//
// Servers behind proxies and load balancers see the proxy as the transport
// peer; the original client arrives in forwarding headers. This package
// checks those headers in priority order:
//  1. Fly-Client-IP (Fly.io edge)
//  2. X-Forwarded-For (most common proxy header; leftmost value is the client)
//  3. X-Real-IP (nginx and other proxies)
//  4. the transport-layer peer address (direct connection)
//
// Every candidate is validated and normalized with net.ParseIP; malformed or
// unspecified (0.0.0.0, ::) values fall through to the next source. If
// nothing validates, the raw peer address is returned so callers always get a
// value. IPv6 addresses, including IPv4-mapped forms, are handled throughout.
//
// Note that this is display identity only: rate limiting deliberately keys on
// the transport peer address, never on a spoofable header.
package clientip
