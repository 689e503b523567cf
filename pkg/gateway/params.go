package gateway

import (
	"encoding/json"
	"fmt"
)

const (
	HeaderAccept        = "Accept"
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"

	ContentTypeJSON = "application/json"

	refundType = "refund"
)

// RequestParams is the body and header bundle built for a single call.
// A nil Body means the request is sent without one.
type RequestParams struct {
	Body    []byte
	Headers map[string]string
}

// HasBody reports whether the bundle carries a body.
func (p RequestParams) HasBody() bool {
	return p.Body != nil
}

// RefundRequest is the body posted to a transaction refund URL.
type RefundRequest struct {
	Type      string `json:"type"`
	ServiceID string `json:"serviceId"`
	Amount    int64  `json:"amount"`
}

// ParamsProvider builds the per-operation request bundles.
type ParamsProvider interface {
	// BuildRequestParams serializes a transaction model and adds auth headers.
	BuildRequestParams(model any, token string) (RequestParams, error)
	// BuildAuthorizeRequest returns a body-less bundle with auth headers only.
	BuildAuthorizeRequest(token string) RequestParams
	// BuildRequestRefundParams serializes a refund of amount for serviceID.
	BuildRequestRefundParams(token, serviceID string, amount int64) (RequestParams, error)
}

// JSONParamsProvider is the default ParamsProvider. Bodies are encoded with
// encoding/json; the Authorization header is omitted for an empty token.
type JSONParamsProvider struct{}

// NewJSONParamsProvider returns the default ParamsProvider.
func NewJSONParamsProvider() *JSONParamsProvider {
	return &JSONParamsProvider{}
}

// BuildRequestParams implements ParamsProvider.
func (p *JSONParamsProvider) BuildRequestParams(model any, token string) (RequestParams, error) {
	body, err := json.Marshal(model)
	if err != nil {
		return RequestParams{}, fmt.Errorf("failed to serialize transaction model: %w", err)
	}
	return RequestParams{Body: body, Headers: p.headers(token)}, nil
}

// BuildAuthorizeRequest implements ParamsProvider.
func (p *JSONParamsProvider) BuildAuthorizeRequest(token string) RequestParams {
	return RequestParams{Headers: p.headers(token)}
}

// BuildRequestRefundParams implements ParamsProvider.
func (p *JSONParamsProvider) BuildRequestRefundParams(
	token, serviceID string,
	amount int64,
) (RequestParams, error) {
	body, err := json.Marshal(RefundRequest{
		Type:      refundType,
		ServiceID: serviceID,
		Amount:    amount,
	})
	if err != nil {
		return RequestParams{}, fmt.Errorf("failed to serialize refund request: %w", err)
	}
	return RequestParams{Body: body, Headers: p.headers(token)}, nil
}

func (p *JSONParamsProvider) headers(token string) map[string]string {
	h := map[string]string{
		HeaderAccept:      ContentTypeJSON,
		HeaderContentType: ContentTypeJSON,
	}
	if token != "" {
		h[HeaderAuthorization] = "Bearer " + token
	}
	return h
}

var _ ParamsProvider = (*JSONParamsProvider)(nil)
