package business

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Latest(ctx context.Context) (*Profile, error)
	Insert(ctx context.Context, p *Profile) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// Latest returns nil when nothing has been saved yet.
func (r *PGRepo) Latest(ctx context.Context) (*Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var (
		p                  Profile
		delivery, handling string
		cart               string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, name, address, contact_number,
		       delivery_charge::text, handling_charge::text, cart_value::text,
		       open_time, close_time, break_start, break_end, weekly_holiday,
		       COALESCE(shop_image_url, ''), COALESCE(licence_doc_url, ''), created_at
		FROM business_info ORDER BY id DESC LIMIT 1
	`).Scan(&p.ID, &p.Name, &p.Address, &p.ContactNumber, &delivery, &handling, &cart,
		&p.OpenTime, &p.CloseTime, &p.BreakStart, &p.BreakEnd, &p.WeeklyHoliday,
		&p.ShopImageURL, &p.LicenceDocURL, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if p.DeliveryCharge, err = decimal.NewFromString(delivery); err != nil {
		return nil, err
	}
	if p.HandlingCharge, err = decimal.NewFromString(handling); err != nil {
		return nil, err
	}
	if p.CartValue, err = decimal.NewFromString(cart); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PGRepo) Insert(ctx context.Context, p *Profile) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.db.QueryRow(ctx, `
		INSERT INTO business_info (name, address, contact_number, delivery_charge, handling_charge, cart_value,
		                           open_time, close_time, break_start, break_end, weekly_holiday,
		                           shop_image_url, licence_doc_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULLIF($12, ''), NULLIF($13, ''))
		RETURNING id, created_at
	`, p.Name, p.Address, p.ContactNumber, p.DeliveryCharge.String(), p.HandlingCharge.String(), p.CartValue.String(),
		p.OpenTime, p.CloseTime, p.BreakStart, p.BreakEnd, p.WeeklyHoliday,
		p.ShopImageURL, p.LicenceDocURL).Scan(&p.ID, &p.CreatedAt)
}
