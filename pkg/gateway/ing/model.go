package ing

// Customer identifies the payer of a transaction.
type Customer struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`
}

// TransactionModel is the payload posted to create an ING transaction.
// Amount is expressed in minor units of Currency.
type TransactionModel struct {
	Type             string   `json:"type" validate:"required,oneof=sale"`
	ServiceID        string   `json:"serviceId" validate:"required"`
	Amount           int64    `json:"amount" validate:"min=0"`
	Currency         string   `json:"currency" validate:"required,len=3,uppercase"`
	OrderID          string   `json:"orderId" validate:"required"`
	Title            string   `json:"title,omitempty"`
	PaymentMethod    string   `json:"paymentMethod,omitempty"`
	SuccessReturnURL string   `json:"successReturnUrl" validate:"required,url"`
	FailureReturnURL string   `json:"failureReturnUrl" validate:"required,url"`
	Customer         Customer `json:"customer"`
}
