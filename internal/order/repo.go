package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/homefood/internal/apperr"
	"github.com/MikeMC777/homefood/internal/payment"
	"github.com/MikeMC777/homefood/internal/storage"
)

var ErrNotFound = apperr.NotFound("Order not found")

// Guard inspects the locked current row inside a mutation and may veto it.
type Guard func(cur *Order) error

type Repository interface {
	Insert(ctx context.Context, o *Order, items []Item) error
	Get(ctx context.Context, id int64) (*Order, error)
	Replace(ctx context.Context, o *Order, items []Item, guard Guard) error
	SetStatus(ctx context.Context, id int64, to Status, guard Guard) error
	List(ctx context.Context, f Filter) ([]Summary, error)
	Items(ctx context.Context, orderID int64) ([]Item, error)
	User(ctx context.Context, mobile string) (*UserInfo, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const orderColumns = `o.id, o.user_mobile, o.total_amount::text, o.status, o.delivery_slot,
	COALESCE(to_char(o.delivery_date, 'YYYY-MM-DD'), ''), o.created_at, o.updated_at`

func scanOrder(row pgx.Row, extra ...any) (*Order, error) {
	var (
		o     Order
		total string
	)
	dest := append([]any{&o.ID, &o.UserMobile, &total, &o.Status, &o.DeliverySlot, &o.DeliveryDate, &o.CreatedAt, &o.UpdatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	var err error
	if o.TotalAmount, err = decimal.NewFromString(total); err != nil {
		return nil, err
	}
	return &o, nil
}

// Insert stores the order, its items and a pending payment in one transaction.
func (r *PGRepo) Insert(ctx context.Context, o *Order, items []Item) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return storage.InTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, `
			INSERT INTO orders (user_mobile, total_amount, status, delivery_slot, delivery_date)
			VALUES ($1, $2, $3, $4, NULLIF($5, '')::date)
			RETURNING id, created_at, updated_at
		`, o.UserMobile, o.TotalAmount.String(), string(o.Status), o.DeliverySlot, o.DeliveryDate).
			Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return err
		}
		if err := insertItems(ctx, tx, o.ID, items); err != nil {
			return err
		}
		return payment.CreatePending(ctx, tx, o.ID, o.TotalAmount)
	})
}

func insertItems(ctx context.Context, tx pgx.Tx, orderID int64, items []Item) error {
	for i := range items {
		it := &items[i]
		it.OrderID = orderID
		if err := tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price, total_price)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, orderID, it.ProductID, it.ProductName, it.Quantity, it.UnitPrice.String(), it.TotalPrice.String()).
			Scan(&it.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *PGRepo) Get(ctx context.Context, id int64) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders o WHERE o.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return o, err
}

func lockOrder(ctx context.Context, tx pgx.Tx, id int64) (*Order, error) {
	o, err := scanOrder(tx.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders o WHERE o.id = $1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return o, err
}

// Replace overwrites totals, delivery fields and items, and resyncs the payment amount.
func (r *PGRepo) Replace(ctx context.Context, o *Order, items []Item, guard Guard) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return storage.InTx(ctx, r.db, func(tx pgx.Tx) error {
		cur, err := lockOrder(ctx, tx, o.ID)
		if err != nil {
			return err
		}
		if err := guard(cur); err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, `
			UPDATE orders
			SET total_amount = $2, delivery_slot = $3, delivery_date = NULLIF($4, '')::date, updated_at = NOW()
			WHERE id = $1
			RETURNING updated_at
		`, o.ID, o.TotalAmount.String(), o.DeliverySlot, o.DeliveryDate).Scan(&o.UpdatedAt); err != nil {
			return err
		}
		if err := payment.SyncAmount(ctx, tx, o.ID, o.TotalAmount); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, o.ID); err != nil {
			return err
		}
		return insertItems(ctx, tx, o.ID, items)
	})
}

func (r *PGRepo) SetStatus(ctx context.Context, id int64, to Status, guard Guard) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return storage.InTx(ctx, r.db, func(tx pgx.Tx) error {
		cur, err := lockOrder(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := guard(cur); err != nil {
			return err
		}
		if cur.Status == to {
			return nil
		}
		_, err = tx.Exec(ctx, `UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`, id, string(to))
		return err
	})
}

// List returns matching orders newest first, each with payment progress and items.
func (r *PGRepo) List(ctx context.Context, f Filter) ([]Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var (
		conds []string
		args  []any
	)
	if f.UserMobile != "" {
		args = append(args, f.UserMobile)
		conds = append(conds, fmt.Sprintf("o.user_mobile = $%d", len(args)))
	}
	if !f.CreatedFrom.IsZero() {
		args = append(args, f.CreatedFrom)
		conds = append(conds, fmt.Sprintf("o.created_at >= $%d", len(args)))
	}
	if !f.CreatedTo.IsZero() {
		args = append(args, f.CreatedTo)
		conds = append(conds, fmt.Sprintf("o.created_at < $%d", len(args)))
	}
	q := `
		SELECT ` + orderColumns + `,
		       COALESCE(p.status, 'Pending'), COALESCE(p.amount_paid, 0)::text,
		       COALESCE(u.name, ''), COALESCE(u.address, '')
		FROM orders o
		LEFT JOIN payments p ON p.order_id = o.id
		LEFT JOIN users u ON u.mobile_number = o.user_mobile`
	if len(conds) > 0 {
		q += "\n\t\tWHERE " + strings.Join(conds, " AND ")
	}
	q += "\n\t\tORDER BY o.created_at DESC, o.id DESC"
	if f.Limit > 0 {
		q += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Summary{}
	ids := []int64{}
	for rows.Next() {
		var (
			s    Summary
			paid string
		)
		o, err := scanOrder(rows, &s.PaymentStatus, &paid, &s.UserName, &s.UserAddress)
		if err != nil {
			return nil, err
		}
		s.Order = *o
		if s.AmountPaid, err = decimal.NewFromString(paid); err != nil {
			return nil, err
		}
		if !f.WithUser {
			s.UserName, s.UserAddress = "", ""
		}
		out = append(out, s)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}

	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		if its, ok := items[out[i].ID]; ok {
			out[i].Items = its
		} else {
			out[i].Items = []Item{}
		}
	}
	return out, nil
}

func (r *PGRepo) Items(ctx context.Context, orderID int64) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	m, err := r.itemsFor(ctx, []int64{orderID})
	if err != nil {
		return nil, err
	}
	if its, ok := m[orderID]; ok {
		return its, nil
	}
	return []Item{}, nil
}

// itemsFor loads the items of several orders at once, joined with the current product unit.
func (r *PGRepo) itemsFor(ctx context.Context, orderIDs []int64) (map[int64][]Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, oi.product_name, oi.quantity,
		       oi.unit_price::text, oi.total_price::text, COALESCE(p.unit, '')
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.order_id, oi.id
	`, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int64][]Item{}
	for rows.Next() {
		var (
			it          Item
			unit, total string
		)
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity, &unit, &total, &it.Unit); err != nil {
			return nil, err
		}
		if it.UnitPrice, err = decimal.NewFromString(unit); err != nil {
			return nil, err
		}
		if it.TotalPrice, err = decimal.NewFromString(total); err != nil {
			return nil, err
		}
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	return out, rows.Err()
}

// User returns nil without error when the account is gone.
func (r *PGRepo) User(ctx context.Context, mobile string) (*UserInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var u UserInfo
	err := r.db.QueryRow(ctx, `
		SELECT mobile_number, name, alt_mobile_number, address, status FROM users WHERE mobile_number = $1
	`, mobile).Scan(&u.MobileNumber, &u.Name, &u.AltMobileNumber, &u.Address, &u.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
