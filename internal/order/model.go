package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/homefood/internal/payment"
)

type Order struct {
	ID           int64           `json:"id"`
	UserMobile   string          `json:"user_mobile"`
	TotalAmount  decimal.Decimal `json:"total_amount" swaggertype:"number"`
	Status       Status          `json:"status"`
	DeliverySlot string          `json:"delivery_slot"`
	DeliveryDate string          `json:"delivery_date"` // YYYY-MM-DD or empty
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Item is a snapshot of a catalog product at order time.
type Item struct {
	ID          int64           `json:"id"`
	OrderID     int64           `json:"order_id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price" swaggertype:"number"`
	TotalPrice  decimal.Decimal `json:"total_price" swaggertype:"number"`
	Unit        string          `json:"unit,omitempty"`
}

// Summary is a list row: the order, its payment progress and its items.
type Summary struct {
	Order
	PaymentStatus payment.Status  `json:"payment_status"`
	AmountPaid    decimal.Decimal `json:"amount_paid" swaggertype:"number"`
	UserName      string          `json:"user_name,omitempty"`
	UserAddress   string          `json:"user_address,omitempty"`
	Items         []Item          `json:"items"`
}

type UserInfo struct {
	MobileNumber    string `json:"mobile_number"`
	Name            string `json:"name"`
	AltMobileNumber string `json:"alt_mobile_number"`
	Address         string `json:"address"`
	Status          string `json:"status"`
}

type Detail struct {
	Order   Order            `json:"order"`
	Items   []Item           `json:"items"`
	Payment *payment.Payment `json:"payment"`
	User    *UserInfo        `json:"user"`
}

// Filter narrows List. Zero fields match everything.
type Filter struct {
	UserMobile  string
	CreatedFrom time.Time // inclusive
	CreatedTo   time.Time // exclusive
	Limit       int
	WithUser    bool
}
