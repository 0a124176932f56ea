package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Method string

const (
	MethodCash Method = "Cash"
	MethodUPI  Method = "UPI"
)

type Status string

const (
	StatusPending Status = "Pending"
	StatusPartial Status = "Partial"
	StatusPaid    Status = "Paid"
)

// Payment is the single payment row of an order. Amount mirrors the order total.
type Payment struct {
	ID            int64           `json:"id"`
	OrderID       int64           `json:"order_id"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"number"`
	AmountPaid    decimal.Decimal `json:"amount_paid" swaggertype:"number"`
	Status        Status          `json:"status"`
	Method        Method          `json:"method"`
	TransactionID string          `json:"transaction_id"`
	AppName       string          `json:"app_name"`
	PaymentDate   time.Time       `json:"payment_date"`
	UserMobile    string          `json:"-"`
}

// Input is what an admin records against an order.
// swagger:model PaymentInput
type Input struct {
	Method        Method          `json:"method"         example:"UPI"`
	AmountPaid    decimal.Decimal `json:"amount_paid"    swaggertype:"number" example:"250.00"`
	TransactionID string          `json:"transaction_id" example:"T2401011234"`
	AppName       string          `json:"app_name"       example:"GPay"`
	PaymentDate   *time.Time      `json:"payment_date,omitempty"`
}
