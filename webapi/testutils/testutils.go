// Package testutils provides a fake payment gateway and request helpers for
// handler tests.
package testutils

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/amirasaad/paygate/infra/configuration"
	"github.com/amirasaad/paygate/pkg/config"
	"github.com/amirasaad/paygate/pkg/gateway"
	"github.com/amirasaad/paygate/pkg/gateway/imoje"
	"github.com/amirasaad/paygate/pkg/gateway/ing"
	"github.com/gofiber/fiber/v2"
)

// Payment method codes registered by NewDeps.
const (
	ImojeCode = "imoje"
	IngCode   = "ing"
)

// RecordedRequest is a request received by a FakeGateway.
type RecordedRequest struct {
	Method        string
	Path          string
	Authorization string
	Body          string
}

// FakeGateway answers every request with a canned response and records what
// it received.
type FakeGateway struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewFakeGateway starts a gateway answering with status, contentType and body.
// It is closed when the test ends.
func NewFakeGateway(t *testing.T, status int, contentType, body string) *FakeGateway {
	t.Helper()
	g := &FakeGateway{}
	g.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, _ := io.ReadAll(r.Body)
		g.mu.Lock()
		g.requests = append(g.requests, RecordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			Body:          string(payload),
		})
		g.mu.Unlock()

		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(g.Close)
	return g
}

// Requests returns a copy of the requests received so far.
func (g *FakeGateway) Requests() []RecordedRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]RecordedRequest(nil), g.requests...)
}

// NewDeps wires both client providers to gatewayURL, with the Imoje method
// under merchant M1 and the ING method under merchant M2.
func NewDeps(t *testing.T, gatewayURL string) *config.Deps {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.App{
		Env:        "test",
		RateLimit:  &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
		HTTPClient: &config.HTTPClient{Timeout: 5 * time.Second},
		Imoje: &config.Imoje{
			Code:        ImojeCode,
			Token:       "imoje-token",
			MerchantID:  "M1",
			ServiceID:   "svc1",
			Environment: "sandbox",
			SandboxURL:  gatewayURL,
		},
		Ing: &config.Ing{
			Code:        IngCode,
			Token:       "ing-token",
			MerchantID:  "M2",
			ServiceID:   "svc2",
			Environment: "sandbox",
			SandboxURL:  gatewayURL,
		},
	}

	configs := configuration.NewEnvProvider(cfg, logger)
	httpClient := &http.Client{Timeout: cfg.HTTPClient.Timeout}
	params := gateway.NewJSONParamsProvider()
	return &config.Deps{
		Configurations: configs,
		HTTPClient:     httpClient,
		Imoje:          imoje.NewClientProvider(configs, params, httpClient, logger),
		Ing:            ing.NewClientProvider(configs, params, httpClient, logger),
		Logger:         logger,
		Config:         cfg,
	}
}

// MakeRequest sends a request to app and returns the response.
func MakeRequest(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

// ReadBody reads and closes the response body.
func ReadBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close() //nolint:errcheck
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(body)
}

// TransactionJSON is a valid transaction body for either gateway.
const TransactionJSON = `{
	"type": "sale",
	"serviceId": "svc1",
	"amount": 1000,
	"currency": "PLN",
	"orderId": "order-1",
	"title": "Order 1",
	"successReturnUrl": "https://shop.example/success",
	"failureReturnUrl": "https://shop.example/failure",
	"customer": {"firstName": "Jan", "lastName": "Kowalski", "email": "jan@example.com"}
}`
