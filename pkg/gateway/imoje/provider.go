package imoje

import (
	"context"
	"log/slog"

	"github.com/amirasaad/paygate/pkg/gateway"
)

// ClientProvider builds Imoje clients for configured payment methods.
type ClientProvider struct {
	configs    gateway.ConfigurationProvider
	params     gateway.ParamsProvider
	httpClient gateway.HTTPClient
	opts       []Option
	logger     *slog.Logger
}

// NewClientProvider creates a ClientProvider. opts are applied to every
// client it builds.
func NewClientProvider(
	configs gateway.ConfigurationProvider,
	params gateway.ParamsProvider,
	httpClient gateway.HTTPClient,
	logger *slog.Logger,
	opts ...Option,
) *ClientProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClientProvider{
		configs:    configs,
		params:     params,
		httpClient: httpClient,
		opts:       append([]Option{WithLogger(logger)}, opts...),
		logger:     logger,
	}
}

// GetClient resolves the configuration of code and returns a new client
// bound to {environmentURL}/{merchantID}/.
func (p *ClientProvider) GetClient(ctx context.Context, code string) (*Client, error) {
	cfg, err := p.configs.GetPaymentMethodConfiguration(ctx, code)
	if err != nil {
		p.logger.Warn("imoje configuration lookup failed", "code", code, "error", err)
		return nil, err
	}
	if err := cfg.ValidateFor(gateway.Imoje); err != nil {
		return nil, err
	}

	completeURL := cfg.MerchantURL() + "/"
	p.logger.Debug("building imoje client",
		"code", code,
		"environment", cfg.Environment,
		"url", completeURL,
	)
	return NewClient(p.params, p.httpClient, cfg.Token, completeURL, p.opts...), nil
}
