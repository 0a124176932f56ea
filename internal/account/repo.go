package account

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeMC777/homefood/internal/apperr"
	"github.com/MikeMC777/homefood/internal/storage"
)

var (
	ErrUserNotFound  = apperr.NotFound("User not found")
	ErrAdminNotFound = apperr.NotFound("Admin not found")
)

type Repository interface {
	GetOrCreate(ctx context.Context, mobile string) (*User, bool, error)
	GetUser(ctx context.Context, mobile string) (*User, error)
	UpdateProfile(ctx context.Context, mobile string, in ProfileInput) error
	UpdateUser(ctx context.Context, mobile string, in AdminUserInput) error
	DeleteCascade(ctx context.Context, mobile string) error
	GetAdmin(ctx context.Context, username string) (*Admin, error)
	ReplaceAdmins(ctx context.Context, username, passwordHash string) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const userColumns = `mobile_number, name, alt_mobile_number, address, status, created_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(&u.MobileNumber, &u.Name, &u.AltMobileNumber, &u.Address, &u.Status, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetOrCreate inserts a bare row for an unknown mobile. The bool reports a new row.
func (r *PGRepo) GetOrCreate(ctx context.Context, mobile string) (*User, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	u, err := scanUser(r.db.QueryRow(ctx, `
		INSERT INTO users (mobile_number) VALUES ($1)
		ON CONFLICT (mobile_number) DO NOTHING
		RETURNING `+userColumns, mobile))
	if err == nil {
		return u, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}
	u, err = scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE mobile_number=$1`, mobile))
	if err != nil {
		return nil, false, err
	}
	return u, false, nil
}

func (r *PGRepo) GetUser(ctx context.Context, mobile string) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE mobile_number=$1`, mobile))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (r *PGRepo) UpdateProfile(ctx context.Context, mobile string, in ProfileInput) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE users SET name = $2, alt_mobile_number = $3, address = $4
		WHERE mobile_number = $1
	`, mobile, in.Name, in.AltMobile, in.Address)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *PGRepo) UpdateUser(ctx context.Context, mobile string, in AdminUserInput) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET name = $2, alt_mobile_number = $3, address = $4,
		    status = COALESCE(NULLIF($5, ''), status)
		WHERE mobile_number = $1
	`, mobile, in.Name, in.AltMobile, in.Address, string(in.Status))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeleteCascade removes the user's order items, payments and orders, then the user, atomically.
func (r *PGRepo) DeleteCascade(ctx context.Context, mobile string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return storage.InTx(ctx, r.db, func(tx pgx.Tx) error {
		steps := []string{
			`DELETE FROM order_items WHERE order_id IN (SELECT id FROM orders WHERE user_mobile = $1)`,
			`DELETE FROM payments WHERE order_id IN (SELECT id FROM orders WHERE user_mobile = $1)`,
			`DELETE FROM orders WHERE user_mobile = $1`,
		}
		for _, q := range steps {
			if _, err := tx.Exec(ctx, q, mobile); err != nil {
				return err
			}
		}
		tag, err := tx.Exec(ctx, `DELETE FROM users WHERE mobile_number = $1`, mobile)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}

func (r *PGRepo) GetAdmin(ctx context.Context, username string) (*Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var a Admin
	err := r.db.QueryRow(ctx, `SELECT id, username, password_hash FROM admins WHERE username=$1`, username).
		Scan(&a.ID, &a.Username, &a.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ReplaceAdmins leaves exactly one admin row with the given credentials.
func (r *PGRepo) ReplaceAdmins(ctx context.Context, username, passwordHash string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return storage.InTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM admins`); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `INSERT INTO admins (username, password_hash) VALUES ($1, $2)`, username, passwordHash)
		return err
	})
}
