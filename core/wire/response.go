package wire

import (
	"bytes"
	"fmt"
	"io"
)

// Status lines understood by this server.
const (
	StatusOK              = "200 OK"
	StatusNotFound        = "404 Not Found"
	StatusTooManyRequests = "429 Too Many Requests"
)

// Common content types.
const (
	ContentTypeText = "text/plain"
	ContentTypeHTML = "text/html"
	ContentTypeJSON = "application/json"
)

// Response is what a handler produces for one request.
type Response struct {
	Status      string
	ContentType string
	Body        []byte
}

// Handler consumes one framed request and produces the response to transmit.
type Handler func(*Request) Response

// Text builds a text/plain response.
func Text(status, body string) Response {
	return Response{Status: status, ContentType: ContentTypeText, Body: []byte(body)}
}

// WriteResponse writes one well-formed HTTP/1.1 response and implicitly
// flushes by issuing a single Write. The server speaks no keep-alive: every
// response carries Connection: close and the caller closes the connection
// afterward.
func WriteResponse(w io.Writer, resp Response) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "HTTP/1.1 %s\r\nContent-Type: %s\r\nContent-Length: %d\r\nConnection: close\r\n\r\n",
		resp.Status, resp.ContentType, len(resp.Body))
	b.Write(resp.Body)

	if _, err := w.Write(b.Bytes()); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
