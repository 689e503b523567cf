package ing

import (
	"context"
	"log/slog"

	"github.com/amirasaad/paygate/pkg/gateway"
)

// ClientProvider builds ING clients for configured payment methods.
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
// bound to {environmentURL}/{merchantID}.
func (p *ClientProvider) GetClient(ctx context.Context, code string) (*Client, error) {
	cfg, err := p.configs.GetPaymentMethodConfiguration(ctx, code)
	if err != nil {
		p.logger.Warn("ing configuration lookup failed", "code", code, "error", err)
		return nil, err
	}
	if err := cfg.ValidateFor(gateway.Ing); err != nil {
		return nil, err
	}
	return NewClient(p.params, p.httpClient, cfg.Token, cfg.MerchantURL(), p.opts...), nil
}
