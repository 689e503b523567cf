package ing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/amirasaad/paygate/pkg/gateway"
)

// ErrBadRequest is the kind of every transport failure reported by Client.
var ErrBadRequest = errors.New("ing bad request")

// ActionTransaction is the action that creates a regular transaction.
const ActionTransaction = "transaction"

// Client calls the ING payment API. Responses are returned whatever their
// status code; the caller inspects the status and closes the body.
type Client struct {
	params  gateway.ParamsProvider
	sender  *gateway.Sender
	token   string
	baseURL string
	logger  *slog.Logger
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

// NewClient builds a Client. Actions are appended to baseURL as
// {baseURL}/{action}. An empty token sends no Authorization header.
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
	logger := o.logger.With("gateway", gateway.Ing)
	return &Client{
		params:  params,
		sender:  gateway.NewSender(httpClient, o.bodies, ErrBadRequest, logger),
		token:   token,
		baseURL: baseURL,
		logger:  logger,
	}
}

// BaseURL returns the URL actions are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CreateTransaction posts the model to {baseURL}/{action}. Leading slashes on
// action are dropped and an action that is then empty fails with
// gateway.ErrInvalidInput before any request is sent.
func (c *Client) CreateTransaction(
	ctx context.Context,
	model TransactionModel,
	action string,
) (*http.Response, error) {
	action = strings.TrimLeft(action, "/")
	if action == "" {
		return nil, fmt.Errorf("%w: action is required", gateway.ErrInvalidInput)
	}
	if err := gateway.Validate(model); err != nil {
		return nil, err
	}
	parameters, err := c.params.BuildRequestParams(model, c.token)
	if err != nil {
		return nil, err
	}
	c.logger.Info("creating transaction",
		"action", action,
		"order_id", model.OrderID,
		"amount", model.Amount,
	)
	return c.sender.Send(ctx, http.MethodPost, c.buildURL(action), parameters)
}

// GetTransactionData fetches the transaction behind a URL the gateway
// returned earlier.
func (c *Client) GetTransactionData(ctx context.Context, transactionURL string) (*http.Response, error) {
	if err := gateway.ValidateURL(transactionURL); err != nil {
		return nil, err
	}
	return c.sender.Send(ctx, http.MethodGet, transactionURL, c.params.BuildAuthorizeRequest(c.token))
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

func (c *Client) buildURL(action string) string {
	return fmt.Sprintf("%s/%s", c.baseURL, action)
}
