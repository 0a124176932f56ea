package business

import (
	"time"

	"github.com/shopspring/decimal"
)

var defaultCartValue = decimal.NewFromInt(1000)

// Profile is one saved revision of the shop's public details. The newest row wins.
type Profile struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	ContactNumber  string          `json:"contact_number"`
	DeliveryCharge decimal.Decimal `json:"delivery_charge" swaggertype:"number"`
	HandlingCharge decimal.Decimal `json:"handling_charge" swaggertype:"number"`
	CartValue      decimal.Decimal `json:"cart_value" swaggertype:"number"`
	OpenTime       string          `json:"open_time"`
	CloseTime      string          `json:"close_time"`
	BreakStart     string          `json:"break_start"`
	BreakEnd       string          `json:"break_end"`
	WeeklyHoliday  string          `json:"weekly_holiday"`
	ShopImageURL   string          `json:"shop_image_url"`
	LicenceDocURL  string          `json:"licence_doc_url"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ProfileInput is the multipart form of the admin save. Money fields arrive as text.
type ProfileInput struct {
	Name           string `form:"name"`
	Address        string `form:"address"`
	ContactNumber  string `form:"contact_number"`
	DeliveryCharge string `form:"delivery_charge"`
	HandlingCharge string `form:"handling_charge"`
	CartValue      string `form:"cart_value"`
	OpenTime       string `form:"open_time"`
	CloseTime      string `form:"close_time"`
	BreakStart     string `form:"break_start"`
	BreakEnd       string `form:"break_end"`
	WeeklyHoliday  string `form:"weekly_holiday"`
}
