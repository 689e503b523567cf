package gateway

import (
	"bytes"
	"io"
	"net/http"
)

// HTTPClient is the transport a gateway client sends its requests through.
// *http.Client satisfies it; timeouts and connection reuse are its concern.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// BodyFactory turns a serialized request body into the reader attached to
// the outgoing request.
type BodyFactory interface {
	CreateBody(content []byte) io.Reader
}

// DefaultBodyFactory wraps the content in a *bytes.Reader so that
// net/http can set Content-Length and rewind the body on redirects.
type DefaultBodyFactory struct{}

// CreateBody implements BodyFactory.
func (DefaultBodyFactory) CreateBody(content []byte) io.Reader {
	return bytes.NewReader(content)
}

// BodyFactoryFunc adapts a plain function to BodyFactory.
type BodyFactoryFunc func(content []byte) io.Reader

// CreateBody implements BodyFactory.
func (f BodyFactoryFunc) CreateBody(content []byte) io.Reader {
	return f(content)
}
