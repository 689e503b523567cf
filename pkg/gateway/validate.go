package gateway

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks v against its `validate` struct tags.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// ValidateRefund checks the arguments of a refund call.
func ValidateRefund(url, serviceID string, amount int64) error {
	if err := ValidateURL(url); err != nil {
		return err
	}
	if serviceID == "" {
		return fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}
	if amount < 0 {
		return fmt.Errorf("%w: amount must not be negative, got %d", ErrInvalidInput, amount)
	}
	return nil
}

// ValidateURL checks a caller-supplied gateway URL.
func ValidateURL(url string) error {
	if err := validate.Var(url, "required,url"); err != nil {
		return fmt.Errorf("%w: invalid url %q", ErrInvalidInput, url)
	}
	return nil
}
