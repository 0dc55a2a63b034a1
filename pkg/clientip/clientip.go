package clientip

import (
	"net"
	"strings"
)

// Headers is the read side of a request header map. Lookups must be
// case-insensitive.
type Headers interface {
	Get(name string) string
}

// proxyHeaders are checked in priority order. The most reliable sources come
// first; X-Forwarded-For may hold a comma-separated chain where the leftmost
// entry is the original client.
var proxyHeaders = []string{
	"fly-client-ip",
	"x-forwarded-for",
	"x-real-ip",
}

// FromRequest extracts the client's apparent IP address. It walks the proxy
// headers in priority order, takes the first comma-separated value of the
// first header that yields a valid IP, and falls back to the transport-layer
// peer address. It never panics and always returns a string; normalization
// goes through net.ParseIP.
func FromRequest(h Headers, peerIP string) string {
	for _, name := range proxyHeaders {
		value := h.Get(name)
		if value == "" {
			continue
		}

		first, _, _ := strings.Cut(value, ",")
		if ip := normalize(first); ip != "" {
			return ip
		}
	}

	if ip := normalize(peerIP); ip != "" {
		return ip
	}
	return peerIP
}

// normalize validates and canonicalizes a candidate address. The unspecified
// address is rejected: it indicates no valid client IP.
func normalize(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil || ip.IsUnspecified() {
		return ""
	}
	return ip.String()
}
