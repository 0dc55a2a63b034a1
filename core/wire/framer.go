package wire

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
)

const (
	// ReadChunkSize is the maximum number of bytes pulled from the
	// connection per read.
	ReadChunkSize = 8192

	// MaxRequestBytes caps the accumulated request, as defense against
	// unbounded or malformed requests.
	MaxRequestBytes = 16384
)

// headerTerminator separates the request head from the body.
var headerTerminator = []byte("\r\n\r\n")

// ReadRequest extracts one complete request from a raw byte stream without
// assuming the whole body is already buffered. It returns whatever has
// accumulated when:
//   - the buffer holds the header terminator plus at least the declared
//     Content-Length bytes after it,
//   - the peer closes the connection, or
//   - the buffer reaches MaxRequestBytes.
//
// Any other read error aborts with that error; the caller is expected to
// abandon the connection without responding.
func ReadRequest(r io.Reader) ([]byte, error) {
	buf := make([]byte, 0, ReadChunkSize)
	chunk := make([]byte, ReadChunkSize)

	for {
		room := min(ReadChunkSize, MaxRequestBytes-len(buf))

		n, err := r.Read(chunk[:room])
		if n > 0 {
			buf = append(buf, chunk[:n]...)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return buf, nil
			}
			return buf, err
		}
		if n == 0 {
			return buf, nil
		}

		if complete(buf) || len(buf) >= MaxRequestBytes {
			return buf, nil
		}
	}
}

// complete reports whether buf holds the header terminator followed by at
// least the declared body length.
func complete(buf []byte) bool {
	i := bytes.Index(buf, headerTerminator)
	if i < 0 {
		return false
	}
	return len(buf)-(i+len(headerTerminator)) >= declaredBodyLength(buf[:i])
}

// declaredBodyLength scans header lines for the first case-insensitive
// Content-Length match. An absent, negative, or unparsable value counts as 0;
// malformed input degrades to a safe default rather than erroring.
func declaredBodyLength(head []byte) int {
	for _, line := range strings.SplitAfter(lossyString(head), "\n") {
		if line == "" {
			continue
		}
		name, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(name), "content-length") {
			continue
		}

		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			return 0
		}
		return n
	}
	return 0
}

// lossyString decodes bytes as UTF-8, replacing invalid sequences instead of
// aborting.
func lossyString(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
