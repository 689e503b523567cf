package repository

import (
	"errors"
	"fmt"

	"github.com/amirasaad/paygate/pkg/gateway"
	"gorm.io/gorm"
)

// ErrAlreadyExists is returned when a payment method code is already taken.
var ErrAlreadyExists = errors.New("payment method configuration already exists")

// MapGormError converts GORM errors into the errors gateway callers match on.
// Unknown errors are returned unchanged.
func MapGormError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", gateway.ErrConfigurationNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	}
	return err
}

// WrapError runs a GORM operation and maps its error.
//
//	err := WrapError(func() error {
//	    return r.db.WithContext(ctx).Create(model).Error
//	})
func WrapError(op func() error) error {
	return MapGormError(op())
}
