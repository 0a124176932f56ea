package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// FillDays returns one entry per calendar day from start to end inclusive, ascending,
// taking totals from byDay and zero for missing days.
func FillDays(start, end time.Time, byDay map[string]decimal.Decimal) []DayRevenue {
	start = truncateDay(start)
	end = truncateDay(end)
	out := []DayRevenue{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		total, ok := byDay[key]
		if !ok {
			total = decimal.Zero
		}
		out = append(out, DayRevenue{Date: key, Total: total})
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
