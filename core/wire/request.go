package wire

import (
	"bytes"
	"strings"
)

// Header is a case-insensitive header mapping. Keys are stored lowercased;
// duplicate headers keep the last value.
type Header map[string]string

// Get returns the value for the given header name, matching
// case-insensitively. Missing headers return "".
func (h Header) Get(name string) string {
	return h[strings.ToLower(name)]
}

// Request is one framed request, owned exclusively by the worker processing
// its connection and discarded once the response is sent.
type Request struct {
	Method string
	Path   string
	Header Header
	Body   []byte

	// PeerIP is the transport-layer peer address the request arrived from,
	// independent of any forwarded/proxy header.
	PeerIP string
}

// ParseRequest derives method, path, headers, and body from a framed request
// buffer. Malformed input degrades instead of erroring: a broken request line
// yields empty method and path, broken header lines are skipped, and invalid
// byte sequences are replaced during decoding.
func ParseRequest(raw []byte, peerIP string) *Request {
	req := &Request{
		Header: make(Header),
		PeerIP: peerIP,
	}

	head := raw
	if i := bytes.Index(raw, headerTerminator); i >= 0 {
		head = raw[:i]
		req.Body = raw[i+len(headerTerminator):]
	}

	lines := strings.Split(lossyString(head), "\r\n")

	if fields := strings.Fields(lines[0]); len(fields) >= 2 {
		req.Method = fields[0]
		req.Path = fields[1]
	}

	for _, line := range lines[1:] {
		if line == "" {
			break
		}
		name, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		req.Header[strings.ToLower(strings.TrimSpace(name))] = strings.TrimSpace(value)
	}

	return req
}
