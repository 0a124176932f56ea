package payment

import (
	"context"
	"strings"

	"github.com/MikeMC777/homefood/internal/apperr"
	"github.com/MikeMC777/homefood/internal/session"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record validates in and stores it as the order's payment.
func (s *Service) Record(ctx context.Context, orderID int64, in Input) (*Payment, error) {
	in.TransactionID = strings.TrimSpace(in.TransactionID)
	in.AppName = strings.TrimSpace(in.AppName)

	switch in.Method {
	case MethodCash:
		in.TransactionID, in.AppName = "", ""
	case MethodUPI:
		if in.TransactionID == "" || in.AppName == "" {
			return nil, apperr.Validation("UPI payments need transaction_id and app_name")
		}
	default:
		return nil, apperr.Validation("invalid payment method: %s", in.Method)
	}
	if in.AmountPaid.IsNegative() {
		return nil, apperr.Validation("amount_paid must be non-negative")
	}
	in.AmountPaid = in.AmountPaid.Round(2)

	p, err := s.repo.Record(ctx, orderID, in)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return p, nil
}

// Get returns the payment of an order to an admin or to the order's owner.
func (s *Service) Get(ctx context.Context, orderID int64, viewer session.Identity) (*Payment, error) {
	p, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if !viewer.IsAdmin() && viewer.UserMobile != p.UserMobile {
		return nil, apperr.Forbidden("Forbidden: not your order")
	}
	return p, nil
}
