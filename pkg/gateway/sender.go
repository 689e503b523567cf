package gateway

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// Sender issues exactly one request per call through an HTTPClient and
// reports transport failures as a *BadRequestError of its kind.
type Sender struct {
	client HTTPClient
	bodies BodyFactory
	kind   error
	logger *slog.Logger
}

// NewSender builds a Sender. A nil bodies falls back to DefaultBodyFactory
// and a nil logger to slog.Default().
func NewSender(client HTTPClient, bodies BodyFactory, kind error, logger *slog.Logger) *Sender {
	if bodies == nil {
		bodies = DefaultBodyFactory{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Sender{client: client, bodies: bodies, kind: kind, logger: logger}
}

// Send builds the request from params and dispatches it. Any response the
// transport returns is handed back unchanged, whatever its status code.
func (s *Sender) Send(
	ctx context.Context,
	method, url string,
	params RequestParams,
) (*http.Response, error) {
	var body io.Reader
	if params.HasBody() {
		body = s.bodies.CreateBody(params.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInvalidInput, err)
	}
	for key, value := range params.Headers {
		req.Header.Set(key, value)
	}

	log := s.logger.With("method", method, "url", url)
	resp, err := s.client.Do(req)
	if err != nil {
		log.Error("gateway request failed", "error", err)
		return nil, &BadRequestError{Kind: s.kind, Method: method, URL: url, Err: err}
	}

	log.Debug("gateway request completed", "status", resp.StatusCode)
	return resp, nil
}
