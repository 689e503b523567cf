package imoje

import "strings"

// TransactionTypeSale is the only transaction type the checkout creates.
const TransactionTypeSale = "sale"

// Customer identifies the payer of a transaction.
type Customer struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`
}

// TransactionModel is the payload posted to create a transaction.
// Amount is expressed in minor units of Currency.
type TransactionModel struct {
	Type              string   `json:"type" validate:"required,oneof=sale"`
	ServiceID         string   `json:"serviceId" validate:"required"`
	Amount            int64    `json:"amount" validate:"min=0"`
	Currency          string   `json:"currency" validate:"required,len=3,uppercase"`
	OrderID           string   `json:"orderId" validate:"required"`
	Title             string   `json:"title,omitempty"`
	PaymentMethod     string   `json:"paymentMethod,omitempty"`
	PaymentMethodCode string   `json:"paymentMethodCode,omitempty"`
	SuccessReturnURL  string   `json:"successReturnUrl" validate:"required,url"`
	FailureReturnURL  string   `json:"failureReturnUrl" validate:"required,url"`
	Customer          Customer `json:"customer"`
}

// TransactionLimit is one bound of a payment method's accepted amounts.
type TransactionLimit struct {
	Type  string `json:"type"`
	Value int64  `json:"value"`
}

// TransactionLimits bounds the amounts a payment method accepts.
// A zero Value means the bound is not set.
type TransactionLimits struct {
	MinTransaction TransactionLimit `json:"minTransaction"`
	MaxTransaction TransactionLimit `json:"maxTransaction"`
}

// Admits reports whether amount falls within the limits.
func (l TransactionLimits) Admits(amount int64) bool {
	if l.MinTransaction.Value > 0 && amount < l.MinTransaction.Value {
		return false
	}
	if l.MaxTransaction.Value > 0 && amount > l.MaxTransaction.Value {
		return false
	}
	return true
}

// PaymentMethod is a method enabled on a shop service.
type PaymentMethod struct {
	ID                string            `json:"id"`
	PaymentMethod     string            `json:"paymentMethod"`
	PaymentMethodCode string            `json:"paymentMethodCode"`
	Description       string            `json:"description"`
	Currency          string            `json:"currency"`
	IsActive          bool              `json:"isActive"`
	IsOnline          bool              `json:"isOnline"`
	TransactionLimits TransactionLimits `json:"transactionLimits"`
}

// ServiceModel describes the merchant's shop service as returned by Imoje.
type ServiceModel struct {
	ID             string          `json:"id"`
	MerchantID     string          `json:"merchantId"`
	Name           string          `json:"name"`
	IsActive       bool            `json:"isActive"`
	PaymentMethods []PaymentMethod `json:"paymentMethods"`
}

// AvailablePaymentMethods returns the active, online methods that accept
// amount in currency. An inactive service offers none.
func (s ServiceModel) AvailablePaymentMethods(currency string, amount int64) []PaymentMethod {
	if !s.IsActive {
		return nil
	}
	var methods []PaymentMethod
	for _, m := range s.PaymentMethods {
		if !m.IsActive || !m.IsOnline {
			continue
		}
		if m.Currency != "" && !strings.EqualFold(m.Currency, currency) {
			continue
		}
		if !m.TransactionLimits.Admits(amount) {
			continue
		}
		methods = append(methods, m)
	}
	return methods
}
