package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echoip/echoip/core/wire"
)

func TestParseRequest(t *testing.T) {
	t.Parallel()

	t.Run("parses request line, headers, and body", func(t *testing.T) {
		t.Parallel()

		raw := []byte("POST /ip HTTP/1.1\r\nHost: example.com\r\nX-Forwarded-For: 1.2.3.4, 10.0.0.1\r\nContent-Length: 5\r\n\r\nhello")

		req := wire.ParseRequest(raw, "192.168.0.7")
		require.NotNil(t, req)

		assert.Equal(t, "POST", req.Method)
		assert.Equal(t, "/ip", req.Path)
		assert.Equal(t, "192.168.0.7", req.PeerIP)
		assert.Equal(t, "example.com", req.Header.Get("host"))
		assert.Equal(t, "1.2.3.4, 10.0.0.1", req.Header.Get("X-Forwarded-For"))
		assert.Equal(t, []byte("hello"), req.Body)
	})

	t.Run("lowercases header names and keeps the last duplicate", func(t *testing.T) {
		t.Parallel()

		raw := []byte("GET / HTTP/1.1\r\nX-Real-IP: 1.1.1.1\r\nx-real-ip: 2.2.2.2\r\n\r\n")

		req := wire.ParseRequest(raw, "10.0.0.1")
		assert.Equal(t, "2.2.2.2", req.Header.Get("X-Real-Ip"))
	})

	t.Run("degrades on a malformed request line", func(t *testing.T) {
		t.Parallel()

		req := wire.ParseRequest([]byte("garbage\r\n\r\n"), "10.0.0.1")
		assert.Empty(t, req.Method)
		assert.Empty(t, req.Path)
		assert.Empty(t, req.Header)
	})

	t.Run("skips header lines without a colon", func(t *testing.T) {
		t.Parallel()

		raw := []byte("GET / HTTP/1.1\r\nnot a header\r\nUser-Agent: curl/8.0\r\n\r\n")

		req := wire.ParseRequest(raw, "10.0.0.1")
		assert.Equal(t, "curl/8.0", req.Header.Get("user-agent"))
		assert.Len(t, req.Header, 1)
	})

	t.Run("replaces invalid byte sequences instead of failing", func(t *testing.T) {
		t.Parallel()

		raw := []byte("GET /\xff\xfe HTTP/1.1\r\n\r\n")

		req := wire.ParseRequest(raw, "10.0.0.1")
		assert.Equal(t, "GET", req.Method)
		assert.NotEmpty(t, req.Path)
	})

	t.Run("handles a buffer without a header terminator", func(t *testing.T) {
		t.Parallel()

		req := wire.ParseRequest([]byte("GET / HTTP/1.1\r\nHost: x"), "10.0.0.1")
		assert.Equal(t, "GET", req.Method)
		assert.Equal(t, "/", req.Path)
		assert.Nil(t, req.Body)
	})
}
