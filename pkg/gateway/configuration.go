package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Environment selects which gateway URL a configuration points at.
type Environment string

const (
	EnvironmentSandbox    Environment = "sandbox"
	EnvironmentProduction Environment = "production"
)

// Name identifies a gateway a payment method is backed by.
type Name string

const (
	Imoje Name = "imoje"
	Ing   Name = "ing"
)

// Configuration holds the per-payment-method settings a client provider
// needs. It is read-only for the clients built from it.
type Configuration struct {
	Code        string
	Gateway     Name
	Token       string
	MerchantID  string
	ServiceID   string
	Environment Environment
	SandboxURL  string
	ProdURL     string
}

// IsProd reports whether the production URL is selected.
func (c Configuration) IsProd() bool {
	return c.Environment == EnvironmentProduction
}

// EnvironmentURL returns the production URL when IsProd, the sandbox URL
// otherwise.
func (c Configuration) EnvironmentURL() string {
	if c.IsProd() {
		return c.ProdURL
	}
	return c.SandboxURL
}

// MerchantURL joins the selected environment URL and the merchant id,
// dropping trailing slashes from the former.
func (c Configuration) MerchantURL() string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(c.EnvironmentURL(), "/"), c.MerchantID)
}

// Validate checks the fields every client needs. Environment must be empty,
// sandbox or production.
func (c Configuration) Validate() error {
	switch c.Environment {
	case "", EnvironmentSandbox, EnvironmentProduction:
	default:
		return fmt.Errorf("%w: %q has unknown environment %q",
			ErrInvalidConfiguration, c.Code, c.Environment)
	}
	var missing []string
	if c.Token == "" {
		missing = append(missing, "token")
	}
	if c.MerchantID == "" {
		missing = append(missing, "merchant id")
	}
	if c.EnvironmentURL() == "" {
		missing = append(missing, string(c.environment())+" url")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %q is missing %s",
			ErrInvalidConfiguration, c.Code, strings.Join(missing, ", "))
	}
	return nil
}

// ValidateFor checks the configuration and that it belongs to gateway name.
// A configuration with no gateway set is accepted by every gateway.
func (c Configuration) ValidateFor(name Name) error {
	if c.Gateway != "" && c.Gateway != name {
		return fmt.Errorf("%w: %q is configured for %s, not %s",
			ErrInvalidConfiguration, c.Code, c.Gateway, name)
	}
	return c.Validate()
}

func (c Configuration) environment() Environment {
	if c.IsProd() {
		return EnvironmentProduction
	}
	return EnvironmentSandbox
}

// ConfigurationProvider resolves the configuration of a payment method.
// Implementations return ErrConfigurationNotFound for unknown codes.
type ConfigurationProvider interface {
	GetPaymentMethodConfiguration(ctx context.Context, code string) (*Configuration, error)
}

// ChainConfigurationProvider asks each provider in turn and returns the first
// configuration found.
type ChainConfigurationProvider []ConfigurationProvider

// GetPaymentMethodConfiguration implements ConfigurationProvider.
func (c ChainConfigurationProvider) GetPaymentMethodConfiguration(
	ctx context.Context,
	code string,
) (*Configuration, error) {
	for _, p := range c {
		cfg, err := p.GetPaymentMethodConfiguration(ctx, code)
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, ErrConfigurationNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrConfigurationNotFound, code)
}
