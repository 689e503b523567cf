package paymentmethod

import (
	"context"
	"fmt"

	"github.com/amirasaad/paygate/infra/repository"
	"github.com/amirasaad/paygate/pkg/gateway"
	"gorm.io/gorm"
)

// Repository stores payment method configurations in Postgres. It is a
// gateway.ConfigurationProvider.
type Repository struct {
	db *gorm.DB
}

// New returns a Repository backed by db.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the payment_method_configurations table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&PaymentMethodConfiguration{})
}

// Create stores cfg. The code must be unique and the gateway known.
func (r *Repository) Create(
	ctx context.Context,
	cfg *gateway.Configuration,
) error {
	if cfg == nil || cfg.Code == "" {
		return fmt.Errorf("%w: payment method code is required", gateway.ErrInvalidConfiguration)
	}
	switch cfg.Gateway {
	case gateway.Imoje, gateway.Ing:
	default:
		return fmt.Errorf("%w: unknown gateway %q", gateway.ErrInvalidConfiguration, cfg.Gateway)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	model := mapConfigurationToModel(cfg)
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(model).Error
	})
}

// GetPaymentMethodConfiguration implements gateway.ConfigurationProvider.
func (r *Repository) GetPaymentMethodConfiguration(
	ctx context.Context,
	code string,
) (*gateway.Configuration, error) {
	var model PaymentMethodConfiguration
	if err := r.db.WithContext(
		ctx,
	).Where("code = ?", code).First(&model).Error; err != nil {
		return nil, repository.MapGormError(err)
	}
	return mapModelToConfiguration(&model), nil
}

// List returns every stored configuration ordered by code.
func (r *Repository) List(ctx context.Context) ([]*gateway.Configuration, error) {
	var models []PaymentMethodConfiguration
	if err := r.db.WithContext(
		ctx,
	).Order("code").Find(&models).Error; err != nil {
		return nil, repository.MapGormError(err)
	}

	result := make([]*gateway.Configuration, 0, len(models))
	for i := range models {
		result = append(result, mapModelToConfiguration(&models[i]))
	}
	return result, nil
}

// Delete removes the configuration with the given code.
func (r *Repository) Delete(ctx context.Context, code string) error {
	res := r.db.WithContext(ctx).Where("code = ?", code).Delete(&PaymentMethodConfiguration{})
	if res.Error != nil {
		return repository.MapGormError(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %q", gateway.ErrConfigurationNotFound, code)
	}
	return nil
}

var _ gateway.ConfigurationProvider = (*Repository)(nil)
