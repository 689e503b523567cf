package imoje

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/amirasaad/paygate/pkg/gateway"
)

// ErrBadRequest is the kind of every transport failure reported by Client.
var ErrBadRequest = errors.New("imoje bad request")

const (
	transactionEndpoint = "transaction"
	serviceEndpoint     = "service/"
)

// Client calls the Imoje merchant API. Responses from CreateTransaction,
// GetTransactionData and RefundTransaction are returned whatever their status
// code; the caller inspects the status and closes the body.
type Client struct {
	params gateway.ParamsProvider
	sender *gateway.Sender
	token  string
	url    string
	logger *slog.Logger
}

// Option customizes a Client.
type Option func(*clientOptions)

type clientOptions struct {
	bodies gateway.BodyFactory
	logger *slog.Logger
}

// WithBodyFactory replaces the default request body construction.
func WithBodyFactory(f gateway.BodyFactory) Option {
	return func(o *clientOptions) { o.bodies = f }
}

// WithLogger sets the logger used by the client.
func WithLogger(l *slog.Logger) Option {
	return func(o *clientOptions) { o.logger = l }
}

// NewClient builds a Client bound to baseURL, which must end with "/"
// (e.g. https://api.imoje.pl/v1/merchant/{merchantId}/).
func NewClient(
	params gateway.ParamsProvider,
	httpClient gateway.HTTPClient,
	token, baseURL string,
	opts ...Option,
) *Client {
	o := clientOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger.With("gateway", gateway.Imoje)
	return &Client{
		params: params,
		sender: gateway.NewSender(httpClient, o.bodies, ErrBadRequest, logger),
		token:  token,
		url:    baseURL,
		logger: logger,
	}
}

// BaseURL returns the merchant URL the client is bound to.
func (c *Client) BaseURL() string {
	return c.url
}

// CreateTransaction posts the model to the transaction endpoint.
func (c *Client) CreateTransaction(
	ctx context.Context,
	model TransactionModel,
) (*http.Response, error) {
	if err := gateway.Validate(model); err != nil {
		return nil, err
	}
	parameters, err := c.params.BuildRequestParams(model, c.token)
	if err != nil {
		return nil, err
	}
	c.logger.Info("creating transaction",
		"order_id", model.OrderID,
		"amount", model.Amount,
		"currency", model.Currency,
	)
	return c.sender.Send(ctx, http.MethodPost, c.url+transactionEndpoint, parameters)
}

// GetShopInfo fetches the shop service and decodes its "service" object.
// A body that is not a JSON object, or one whose service is missing, null or
// empty, yields a zero ServiceModel. The status code is not inspected.
func (c *Client) GetShopInfo(ctx context.Context, serviceID string) (*ServiceModel, error) {
	if serviceID == "" {
		return nil, fmt.Errorf("%w: service id is required", gateway.ErrInvalidInput)
	}
	parameters := c.params.BuildAuthorizeRequest(c.token)

	shopURL := c.url + serviceEndpoint + url.PathEscape(serviceID)

	resp, err := c.sender.Send(ctx, http.MethodGet, shopURL, parameters)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &gateway.BadRequestError{
			Kind:   ErrBadRequest,
			Method: http.MethodGet,
			URL:    shopURL,
			Err:    err,
		}
	}

	service := &ServiceModel{}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		c.logger.Warn("shop info body is not a JSON object",
			"status", resp.StatusCode,
			"error", err,
		)
		return service, nil
	}

	raw := payload["service"]
	if isEmptyJSON(raw) {
		return service, nil
	}
	if err := json.Unmarshal(raw, service); err != nil {
		return nil, fmt.Errorf("%w: service: %v", gateway.ErrDecodeResponse, err)
	}
	return service, nil
}

// isEmptyJSON reports whether raw is absent, null, [] or {}, whitespace
// ignored.
func isEmptyJSON(raw json.RawMessage) bool {
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return len(bytes.TrimSpace(raw)) == 0
	}
	switch compact.String() {
	case "", "null", "[]", "{}":
		return true
	}
	return false
}

// GetTransactionData fetches the transaction behind a URL the gateway
// returned earlier.
func (c *Client) GetTransactionData(ctx context.Context, transactionURL string) (*http.Response, error) {
	if err := gateway.ValidateURL(transactionURL); err != nil {
		return nil, err
	}
	parameters := c.params.BuildAuthorizeRequest(c.token)
	return c.sender.Send(ctx, http.MethodGet, transactionURL, parameters)
}

// RefundTransaction posts a refund of amount for serviceID to refundURL.
func (c *Client) RefundTransaction(
	ctx context.Context,
	refundURL, serviceID string,
	amount int64,
) (*http.Response, error) {
	if err := gateway.ValidateRefund(refundURL, serviceID, amount); err != nil {
		return nil, err
	}
	parameters, err := c.params.BuildRequestRefundParams(c.token, serviceID, amount)
	if err != nil {
		return nil, err
	}
	c.logger.Info("refunding transaction", "service_id", serviceID, "amount", amount)
	return c.sender.Send(ctx, http.MethodPost, refundURL, parameters)
}
