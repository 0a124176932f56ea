package report

import (
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/homefood/internal/order"
)

type DayRevenue struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total" swaggertype:"number"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type Counts struct {
	Users    int64
	Orders   int64
	Products int64
}

// Stats is the admin dashboard.
type Stats struct {
	Users            int64           `json:"users"`
	Orders           int64           `json:"orders"`
	Products         int64           `json:"products"`
	Revenue          decimal.Decimal `json:"revenue" swaggertype:"number"`
	TodayOrdersCount int64           `json:"today_orders_count"`
	TodayRevenue     decimal.Decimal `json:"today_revenue" swaggertype:"number"`
	TodayOrders      []order.Summary `json:"today_orders"`
	RevenueChart     []DayRevenue    `json:"revenue_chart"`
	StatusChart      []StatusCount   `json:"status_chart"`
}

type Breakdown struct {
	Cash    decimal.Decimal `json:"cash" swaggertype:"number"`
	UPI     decimal.Decimal `json:"upi" swaggertype:"number"`
	Pending decimal.Decimal `json:"pending" swaggertype:"number"`
}

type UserSummary struct {
	MobileNumber    string          `json:"mobile_number"`
	Name            string          `json:"name"`
	AltMobileNumber string          `json:"alt_mobile_number"`
	Address         string          `json:"address"`
	TotalOrders     int64           `json:"total_orders"`
	TotalBillAmount decimal.Decimal `json:"total_bill_amount" swaggertype:"number"`
	TotalPaidAmount decimal.Decimal `json:"total_paid_amount" swaggertype:"number"`
	TotalRemaining  decimal.Decimal `json:"total_remaining" swaggertype:"number"`
}
