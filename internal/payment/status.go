package payment

import "github.com/shopspring/decimal"

// DeriveStatus classifies paid against total. A zero-total order counts as paid.
func DeriveStatus(paid, total decimal.Decimal) Status {
	switch {
	case paid.GreaterThanOrEqual(total):
		return StatusPaid
	case paid.IsPositive():
		return StatusPartial
	default:
		return StatusPending
	}
}
