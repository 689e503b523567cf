package httpclient

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/amirasaad/paygate/pkg/config"
)

// redactedHeaders are never written to the log.
var redactedHeaders = []string{"Authorization", "Cookie", "Set-Cookie"}

// LoggingTransport is an http.RoundTripper that logs every exchange with
// slog. Bodies are logged only when LogBodies is set; the request is then
// cloned before its body is replaced.
type LoggingTransport struct {
	Transport     http.RoundTripper
	Logger        *slog.Logger
	LogBodies     bool
	MaxLoggedBody int
}

// RoundTrip implements http.RoundTripper.
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	logger := t.Logger
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("method", req.Method, "url", req.URL.String())

	attrs := []any{"headers", redact(req.Header)}
	if t.LogBodies && req.Body != nil && req.Body != http.NoBody {
		body, err := io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, err
		}
		req = req.Clone(req.Context())
		req.Body = io.NopCloser(bytes.NewReader(body))
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
		attrs = append(attrs, "body", t.truncate(body))
	}
	log.Debug("HTTP request", attrs...)

	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	start := time.Now()
	resp, err := transport.RoundTrip(req)
	duration := time.Since(start)
	if err != nil {
		log.Warn("HTTP request failed", "duration", duration, "error", err)
		return nil, err
	}

	attrs = []any{"status", resp.StatusCode, "duration", duration}
	if t.LogBodies && resp.Body != nil {
		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			return nil, err
		}
		resp.Body = io.NopCloser(bytes.NewReader(body))
		attrs = append(attrs, "body", t.truncate(body))
	}
	log.Info("HTTP response", attrs...)

	return resp, nil
}

func (t *LoggingTransport) truncate(body []byte) string {
	if len(body) == 0 {
		return "empty"
	}
	if t.MaxLoggedBody > 0 && len(body) > t.MaxLoggedBody {
		return string(body[:t.MaxLoggedBody]) + "...(truncated)"
	}
	return string(body)
}

func redact(h http.Header) http.Header {
	out := h.Clone()
	for _, key := range redactedHeaders {
		if out.Get(key) != "" {
			out.Set(key, "[REDACTED]")
		}
	}
	return out
}

// New returns the *http.Client every gateway client sends through. Timeouts
// are enforced here and nowhere else.
func New(cfg *config.HTTPClient, logger *slog.Logger) *http.Client {
	if cfg == nil {
		cfg = &config.HTTPClient{Timeout: 30 * time.Second}
	}
	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &LoggingTransport{
			Transport:     http.DefaultTransport,
			Logger:        logger,
			LogBodies:     cfg.LogBodies,
			MaxLoggedBody: cfg.MaxLoggedBody,
		},
	}
}
