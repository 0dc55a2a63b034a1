// Package wire frames, parses, and writes minimal HTTP/1.1 messages over raw
// byte streams.
//
// ReadRequest pulls one complete textual request off a connection: it reads
// in fixed-size chunks, stops once the header terminator and the declared
// Content-Length worth of body bytes have arrived, stops early when the peer
// closes, and never accumulates more than MaxRequestBytes. ParseRequest then
// derives method, path, a case-insensitive header map, and the body, treating
// malformed input as degradable rather than fatal.
//
// WriteResponse emits exactly one connection-closing response. There is no
// keep-alive, chunked transfer encoding, or pipelining; every connection
// carries one request and one response.
package wire
