package payment

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/homefood/internal/apperr"
	"github.com/MikeMC777/homefood/internal/storage"
)

var (
	ErrNotFound      = apperr.NotFound("Payment not found")
	ErrOrderNotFound = apperr.NotFound("Order not found")
)

type Repository interface {
	Get(ctx context.Context, orderID int64) (*Payment, error)
	Record(ctx context.Context, orderID int64, in Input) (*Payment, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const paymentColumns = `p.id, p.order_id, p.amount::text, p.amount_paid::text, p.status,
	COALESCE(p.method, ''), COALESCE(p.transaction_id, ''), COALESCE(p.app_name, ''), p.payment_date, o.user_mobile`

func scanPayment(row pgx.Row) (*Payment, error) {
	var (
		p         Payment
		amt, paid string
		method    string
	)
	if err := row.Scan(&p.ID, &p.OrderID, &amt, &paid, &p.Status, &method,
		&p.TransactionID, &p.AppName, &p.PaymentDate, &p.UserMobile); err != nil {
		return nil, err
	}
	var err error
	if p.Amount, err = decimal.NewFromString(amt); err != nil {
		return nil, err
	}
	if p.AmountPaid, err = decimal.NewFromString(paid); err != nil {
		return nil, err
	}
	p.Method = Method(method)
	return &p, nil
}

func (r *PGRepo) Get(ctx context.Context, orderID int64) (*Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p, err := scanPayment(r.db.QueryRow(ctx, `
		SELECT `+paymentColumns+`
		FROM payments p JOIN orders o ON o.id = p.order_id
		WHERE p.order_id = $1
	`, orderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// Record locks the order, then overwrites (or creates) its payment row with a status derived from the locked total.
func (r *PGRepo) Record(ctx context.Context, orderID int64, in Input) (*Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var out *Payment
	err := storage.InTx(ctx, r.db, func(tx pgx.Tx) error {
		var totalText string
		err := tx.QueryRow(ctx, `SELECT total_amount::text FROM orders WHERE id = $1 FOR UPDATE`, orderID).Scan(&totalText)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrOrderNotFound
		}
		if err != nil {
			return err
		}
		total, err := decimal.NewFromString(totalText)
		if err != nil {
			return err
		}
		date := time.Now().UTC()
		if in.PaymentDate != nil {
			date = *in.PaymentDate
		}
		var method any
		if in.Method != "" {
			method = string(in.Method)
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO payments (order_id, amount, amount_paid, status, method, transaction_id, app_name, payment_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (order_id) DO UPDATE
			SET amount = EXCLUDED.amount, amount_paid = EXCLUDED.amount_paid, status = EXCLUDED.status,
			    method = EXCLUDED.method, transaction_id = EXCLUDED.transaction_id,
			    app_name = EXCLUDED.app_name, payment_date = EXCLUDED.payment_date
		`, orderID, total.String(), in.AmountPaid.String(), string(DeriveStatus(in.AmountPaid, total)),
			method, in.TransactionID, in.AppName, date); err != nil {
			return err
		}
		out, err = scanPayment(tx.QueryRow(ctx, `
			SELECT `+paymentColumns+`
			FROM payments p JOIN orders o ON o.id = p.order_id
			WHERE p.order_id = $1
		`, orderID))
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePending opens the payment row of a freshly inserted order.
func CreatePending(ctx context.Context, tx pgx.Tx, orderID int64, total decimal.Decimal) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO payments (order_id, amount, amount_paid, status)
		VALUES ($1, $2, 0, $3)
	`, orderID, total.String(), string(DeriveStatus(decimal.Zero, total)))
	return err
}

// SyncAmount sets the payment amount to a new order total, keeping amount_paid and re-deriving the status.
func SyncAmount(ctx context.Context, tx pgx.Tx, orderID int64, total decimal.Decimal) error {
	var paidText string
	err := tx.QueryRow(ctx, `SELECT amount_paid::text FROM payments WHERE order_id = $1 FOR UPDATE`, orderID).Scan(&paidText)
	if errors.Is(err, pgx.ErrNoRows) {
		return CreatePending(ctx, tx, orderID, total)
	}
	if err != nil {
		return err
	}
	paid, err := decimal.NewFromString(paidText)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `UPDATE payments SET amount = $2, status = $3 WHERE order_id = $1`,
		orderID, total.String(), string(DeriveStatus(paid, total)))
	return err
}
