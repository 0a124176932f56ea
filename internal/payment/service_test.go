package payment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/homefood/internal/apperr"
	"github.com/MikeMC777/homefood/internal/session"
)

type order struct {
	total decimal.Decimal
	owner string
}

type stubRepo struct {
	orders   map[int64]order
	payments map[int64]*Payment
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		orders: map[int64]order{
			1: {total: decimal.RequireFromString("250.00"), owner: "9000000001"},
		},
		payments: map[int64]*Payment{},
	}
}

func (s *stubRepo) Get(_ context.Context, orderID int64) (*Payment, error) {
	p, ok := s.payments[orderID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *stubRepo) Record(_ context.Context, orderID int64, in Input) (*Payment, error) {
	o, ok := s.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	date := time.Now().UTC()
	if in.PaymentDate != nil {
		date = *in.PaymentDate
	}
	p := &Payment{
		OrderID: orderID, Amount: o.total, AmountPaid: in.AmountPaid,
		Status: DeriveStatus(in.AmountPaid, o.total), Method: in.Method,
		TransactionID: in.TransactionID, AppName: in.AppName, PaymentDate: date, UserMobile: o.owner,
	}
	s.payments[orderID] = p
	cp := *p
	return &cp, nil
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDeriveStatus(t *testing.T) {
	require.Equal(t, StatusPaid, DeriveStatus(d("250"), d("250")))
	require.Equal(t, StatusPaid, DeriveStatus(d("300"), d("250")))
	require.Equal(t, StatusPartial, DeriveStatus(d("100"), d("250")))
	require.Equal(t, StatusPending, DeriveStatus(decimal.Zero, d("250")))
	require.Equal(t, StatusPaid, DeriveStatus(decimal.Zero, decimal.Zero))
}

func TestRecordValidation(t *testing.T) {
	svc := NewService(newStubRepo())
	ctx := context.Background()

	_, err := svc.Record(ctx, 1, Input{Method: "Card", AmountPaid: d("10")})
	require.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.Record(ctx, 1, Input{Method: MethodUPI, AmountPaid: d("10"), AppName: "GPay"})
	require.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.Record(ctx, 1, Input{Method: MethodCash, AmountPaid: d("-1")})
	require.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.Record(ctx, 99, Input{Method: MethodCash, AmountPaid: d("1")})
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRecordDerivesStatusAndClearsCashFields(t *testing.T) {
	svc := NewService(newStubRepo())
	ctx := context.Background()

	p, err := svc.Record(ctx, 1, Input{Method: MethodCash, AmountPaid: d("100"), TransactionID: "x", AppName: "y"})
	require.NoError(t, err)
	require.Equal(t, StatusPartial, p.Status)
	require.Empty(t, p.TransactionID)
	require.Empty(t, p.AppName)
	require.False(t, p.PaymentDate.IsZero())

	when := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	p, err = svc.Record(ctx, 1, Input{Method: MethodUPI, AmountPaid: d("250"), TransactionID: " T1 ", AppName: "GPay", PaymentDate: &when})
	require.NoError(t, err)
	require.Equal(t, StatusPaid, p.Status)
	require.Equal(t, "T1", p.TransactionID)
	require.True(t, when.Equal(p.PaymentDate))
}

func TestGetChecksViewer(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Get(ctx, 1, session.Identity{AdminID: 1})
	require.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Record(ctx, 1, Input{Method: MethodCash, AmountPaid: d("250")})
	require.NoError(t, err)

	p, err := svc.Get(ctx, 1, session.Identity{UserMobile: "9000000001"})
	require.NoError(t, err)
	require.Equal(t, StatusPaid, p.Status)

	_, err = svc.Get(ctx, 1, session.Identity{UserMobile: "9000000002"})
	require.ErrorIs(t, err, apperr.ErrForbidden)
}
