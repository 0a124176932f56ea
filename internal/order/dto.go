package order

import "github.com/shopspring/decimal"

// ItemInput is one cart line. Name and price are taken from the catalog.
// swagger:model ItemInput
type ItemInput struct {
	ProductID int64 `json:"id"       example:"3"`
	Quantity  int   `json:"quantity" example:"2"`
}

// OrderInput payload of order create and update.
// swagger:model OrderInput
type OrderInput struct {
	Items        []ItemInput      `json:"items"`
	TotalAmount  *decimal.Decimal `json:"total_amount,omitempty" swaggertype:"number" example:"240.00"`
	DeliverySlot string           `json:"delivery_slot"          example:"Lunch (12-2 PM)"`
	DeliveryDate string           `json:"delivery_date"          example:"2024-01-02"`
}

// StatusInput payload of the admin status change.
// swagger:model StatusInput
type StatusInput struct {
	Status string `json:"status" example:"Accepted"`
}

// CreatedResponse is returned after an order is placed.
// swagger:model OrderCreated
type CreatedResponse struct {
	Message string `json:"message" example:"Order placed"`
	OrderID int64  `json:"orderId" example:"12"`
}
