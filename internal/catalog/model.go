package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusAvailable    Status = "Available"
	StatusNotAvailable Status = "Not Available"
	StatusDeleted      Status = "Deleted"
)

// PlaceholderImageURL is stored when a product is saved without an image.
const PlaceholderImageURL = "https://www.shutterstock.com/shutterstock/photos/2616578275/display_1500/stock-vector-knife-fork-and-plate-silhouette-icon-vector-illustration-2616578275.jpg"

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	ImageURL    string          `json:"image_url"`
	Unit        string          `json:"unit"`
	Quantity    string          `json:"quantity"` // descriptive, e.g. "500g"
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" swaggertype:"number"`
	Status      Status          `json:"status"`
	FoodType    string          `json:"food_type"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductInput is the create/update payload. Update overwrites every field.
// swagger:model ProductInput
type ProductInput struct {
	Name        string          `json:"name"        example:"Veg Biryani"`
	ImageURL    string          `json:"image_url"   example:""`
	Unit        string          `json:"unit"        example:"plate"`
	Quantity    string          `json:"quantity"    example:"500g"`
	Description string          `json:"description" example:"Basmati rice with vegetables"`
	Price       decimal.Decimal `json:"price"       example:"180.00" swaggertype:"number"`
	Status      Status          `json:"status"      example:"Available"`
	FoodType    string          `json:"food_type"   example:"Veg"`
}

// CreatedResponse is returned by product creation.
// swagger:model
type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
