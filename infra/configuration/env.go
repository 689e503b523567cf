package configuration

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/paygate/pkg/config"
	"github.com/amirasaad/paygate/pkg/gateway"
)

// EnvProvider serves the payment methods configured through environment
// variables, at most one per gateway.
type EnvProvider struct {
	configs map[string]gateway.Configuration
}

// NewEnvProvider registers every enabled gateway of cfg.
func NewEnvProvider(cfg *config.App, logger *slog.Logger) *EnvProvider {
	if logger == nil {
		logger = slog.Default()
	}
	p := &EnvProvider{configs: make(map[string]gateway.Configuration)}
	if cfg == nil {
		return p
	}
	p.register(gateway.Imoje, cfg.Imoje.Gateway(), logger)
	p.register(gateway.Ing, cfg.Ing.Gateway(), logger)
	return p
}

func (p *EnvProvider) register(name gateway.Name, g *config.Gateway, logger *slog.Logger) {
	if !g.Enabled() {
		logger.Debug("Gateway not configured from environment", "gateway", name)
		return
	}
	p.configs[g.Code] = gateway.Configuration{
		Code:        g.Code,
		Gateway:     name,
		Token:       g.Token,
		MerchantID:  g.MerchantID,
		ServiceID:   g.ServiceID,
		Environment: gateway.Environment(g.Environment),
		SandboxURL:  g.SandboxURL,
		ProdURL:     g.ProdURL,
	}
	logger.Info("Payment method registered from environment",
		"gateway", name,
		"code", g.Code,
		"environment", g.Environment,
	)
}

// Codes returns the registered payment method codes.
func (p *EnvProvider) Codes() []string {
	codes := make([]string, 0, len(p.configs))
	for code := range p.configs {
		codes = append(codes, code)
	}
	return codes
}

// GetPaymentMethodConfiguration implements gateway.ConfigurationProvider.
// The returned value is a copy.
func (p *EnvProvider) GetPaymentMethodConfiguration(
	_ context.Context,
	code string,
) (*gateway.Configuration, error) {
	cfg, ok := p.configs[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", gateway.ErrConfigurationNotFound, code)
	}
	return &cfg, nil
}

var _ gateway.ConfigurationProvider = (*EnvProvider)(nil)
