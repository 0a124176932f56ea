package report

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type Repository interface {
	Counts(ctx context.Context) (Counts, error)
	PaidRevenue(ctx context.Context) (decimal.Decimal, error)
	DayTotals(ctx context.Context, from, to time.Time) (int64, decimal.Decimal, error)
	RevenueByDay(ctx context.Context, from, to time.Time, loc *time.Location, paidOnly bool) (map[string]decimal.Decimal, error)
	StatusCounts(ctx context.Context) ([]StatusCount, error)
	Breakdown(ctx context.Context) (Breakdown, error)
	UserSummaries(ctx context.Context) ([]UserSummary, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Counts(ctx context.Context) (Counts, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c Counts
	err := r.db.QueryRow(ctx, `
		SELECT (SELECT COUNT(*) FROM users),
		       (SELECT COUNT(*) FROM orders),
		       (SELECT COUNT(*) FROM products WHERE status <> 'Deleted')
	`).Scan(&c.Users, &c.Orders, &c.Products)
	return c, err
}

// PaidRevenue sums amount_paid over fully paid, non-cancelled orders.
func (r *PGRepo) PaidRevenue(ctx context.Context) (decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s string
	if err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(p.amount_paid), 0)::text
		FROM payments p JOIN orders o ON o.id = p.order_id
		WHERE p.status = 'Paid' AND o.status <> 'Cancelled'
	`).Scan(&s); err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(s)
}

// DayTotals counts orders created in [from, to) and sums what has been paid on them.
func (r *PGRepo) DayTotals(ctx context.Context, from, to time.Time) (int64, decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var (
		n int64
		s string
	)
	if err := r.db.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(p.amount_paid), 0)::text
		FROM orders o LEFT JOIN payments p ON p.order_id = o.id
		WHERE o.created_at >= $1 AND o.created_at < $2
	`, from, to).Scan(&n, &s); err != nil {
		return 0, decimal.Zero, err
	}
	total, err := decimal.NewFromString(s)
	return n, total, err
}

// RevenueByDay groups amount_paid of non-cancelled orders paid in [from, to) by the
// payment's calendar date in loc, keyed YYYY-MM-DD.
func (r *PGRepo) RevenueByDay(ctx context.Context, from, to time.Time, loc *time.Location, paidOnly bool) (map[string]decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT to_char(p.payment_date AT TIME ZONE $3::text, 'YYYY-MM-DD'), SUM(p.amount_paid)::text
		FROM payments p JOIN orders o ON o.id = p.order_id
		WHERE p.payment_date >= $1 AND p.payment_date < $2
		  AND o.status <> 'Cancelled'
		  AND (NOT $4::boolean OR p.status = 'Paid')
		GROUP BY 1
	`, from, to, loc.String(), paidOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]decimal.Decimal{}
	for rows.Next() {
		var day, s string
		if err := rows.Scan(&day, &s); err != nil {
			return nil, err
		}
		v, err := decimal.NewFromString(s)
		if err != nil {
			return nil, err
		}
		out[day] = v
	}
	return out, rows.Err()
}

func (r *PGRepo) StatusCounts(ctx context.Context) ([]StatusCount, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM orders GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []StatusCount{}
	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

func (r *PGRepo) Breakdown(ctx context.Context) (Breakdown, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cash, upi, pending string
	if err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(p.amount_paid) FILTER (WHERE p.method = 'Cash'), 0)::text,
		       COALESCE(SUM(p.amount_paid) FILTER (WHERE p.method = 'UPI'), 0)::text,
		       COALESCE(SUM(GREATEST(o.total_amount - COALESCE(p.amount_paid, 0), 0)), 0)::text
		FROM orders o LEFT JOIN payments p ON p.order_id = o.id
		WHERE o.status <> 'Cancelled'
	`).Scan(&cash, &upi, &pending); err != nil {
		return Breakdown{}, err
	}
	var (
		b   Breakdown
		err error
	)
	if b.Cash, err = decimal.NewFromString(cash); err != nil {
		return Breakdown{}, err
	}
	if b.UPI, err = decimal.NewFromString(upi); err != nil {
		return Breakdown{}, err
	}
	if b.Pending, err = decimal.NewFromString(pending); err != nil {
		return Breakdown{}, err
	}
	return b, nil
}

func (r *PGRepo) UserSummaries(ctx context.Context) ([]UserSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT u.mobile_number, u.name, u.alt_mobile_number, u.address,
		       COUNT(o.id),
		       COALESCE(SUM(o.total_amount), 0)::text,
		       COALESCE(SUM(p.amount_paid), 0)::text
		FROM users u
		LEFT JOIN orders o ON o.user_mobile = u.mobile_number
		LEFT JOIN payments p ON p.order_id = o.id
		WHERE u.status <> 'Deleted'
		GROUP BY u.mobile_number
		ORDER BY COUNT(o.id) DESC, u.mobile_number
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []UserSummary{}
	for rows.Next() {
		var (
			us         UserSummary
			bill, paid string
		)
		if err := rows.Scan(&us.MobileNumber, &us.Name, &us.AltMobileNumber, &us.Address, &us.TotalOrders, &bill, &paid); err != nil {
			return nil, err
		}
		if us.TotalBillAmount, err = decimal.NewFromString(bill); err != nil {
			return nil, err
		}
		if us.TotalPaidAmount, err = decimal.NewFromString(paid); err != nil {
			return nil, err
		}
		us.TotalRemaining = us.TotalBillAmount.Sub(us.TotalPaidAmount)
		out = append(out, us)
	}
	return out, rows.Err()
}
