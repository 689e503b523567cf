package paymentmethod

import (
	"time"

	"github.com/amirasaad/paygate/pkg/gateway"
	"github.com/google/uuid"
)

// PaymentMethodConfiguration is a stored payment method of one gateway.
type PaymentMethodConfiguration struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        string    `gorm:"uniqueIndex;not null;size:64"`
	Gateway     string    `gorm:"not null;size:32"`
	Token       string    `gorm:"not null"`
	MerchantID  string    `gorm:"not null;size:128"`
	ServiceID   string    `gorm:"size:128"`
	Environment string    `gorm:"not null;size:16"`
	SandboxURL  string    `gorm:"size:255"`
	ProdURL     string    `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for the PaymentMethodConfiguration model.
func (PaymentMethodConfiguration) TableName() string {
	return "payment_method_configurations"
}

func mapModelToConfiguration(m *PaymentMethodConfiguration) *gateway.Configuration {
	return &gateway.Configuration{
		Code:        m.Code,
		Gateway:     gateway.Name(m.Gateway),
		Token:       m.Token,
		MerchantID:  m.MerchantID,
		ServiceID:   m.ServiceID,
		Environment: gateway.Environment(m.Environment),
		SandboxURL:  m.SandboxURL,
		ProdURL:     m.ProdURL,
	}
}

func mapConfigurationToModel(cfg *gateway.Configuration) *PaymentMethodConfiguration {
	env := cfg.Environment
	if env == "" {
		env = gateway.EnvironmentSandbox
	}
	return &PaymentMethodConfiguration{
		ID:          uuid.New(),
		Code:        cfg.Code,
		Gateway:     string(cfg.Gateway),
		Token:       cfg.Token,
		MerchantID:  cfg.MerchantID,
		ServiceID:   cfg.ServiceID,
		Environment: string(env),
		SandboxURL:  cfg.SandboxURL,
		ProdURL:     cfg.ProdURL,
	}
}
