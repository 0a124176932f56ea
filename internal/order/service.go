package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/homefood/internal/account"
	"github.com/MikeMC777/homefood/internal/apperr"
	"github.com/MikeMC777/homefood/internal/catalog"
	"github.com/MikeMC777/homefood/internal/payment"
	"github.com/MikeMC777/homefood/internal/session"
)

// Catalog resolves cart lines to current products.
type Catalog interface {
	GetByIDs(ctx context.Context, ids []int64) (map[int64]catalog.Product, error)
}

type Payments interface {
	Get(ctx context.Context, orderID int64) (*payment.Payment, error)
}

type Service struct {
	repo     Repository
	catalog  Catalog
	payments Payments
}

func NewService(repo Repository, cat Catalog, pay Payments) *Service {
	return &Service{repo: repo, catalog: cat, payments: pay}
}

// Create places a new order for mobile and returns its id.
func (s *Service) Create(ctx context.Context, mobile string, in OrderInput) (int64, error) {
	if err := s.requireActive(ctx, mobile); err != nil {
		return 0, err
	}
	o, items, err := s.build(ctx, mobile, in)
	if err != nil {
		return 0, err
	}
	if err := s.repo.Insert(ctx, o, items); err != nil {
		return 0, apperr.Storage(err)
	}
	return o.ID, nil
}

// Update replaces the contents of an order that mobile owns and that has not left the kitchen.
func (s *Service) Update(ctx context.Context, id int64, mobile string, in OrderInput) error {
	guard := func(cur *Order) error {
		if cur.UserMobile != mobile {
			return ErrNotFound
		}
		if !cur.Status.Editable() {
			return apperr.State("Cannot update order with status: %s", cur.Status)
		}
		return nil
	}

	if err := s.requireActive(ctx, mobile); err != nil {
		return err
	}
	cur, err := s.repo.Get(ctx, id)
	if err != nil {
		return apperr.Storage(err)
	}
	if err := guard(cur); err != nil {
		return err
	}
	o, items, err := s.build(ctx, mobile, in)
	if err != nil {
		return err
	}
	o.ID = id
	if err := s.repo.Replace(ctx, o, items, guard); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

func (s *Service) ListForUser(ctx context.Context, mobile string) ([]Summary, error) {
	return s.list(ctx, Filter{UserMobile: mobile})
}

func (s *Service) ListAll(ctx context.Context) ([]Summary, error) {
	return s.list(ctx, Filter{WithUser: true})
}

func (s *Service) ListForUserAdmin(ctx context.Context, mobile string) ([]Summary, error) {
	return s.list(ctx, Filter{UserMobile: mobile, WithUser: true})
}

// ListCreatedBetween returns at most limit orders placed in [from, to).
func (s *Service) ListCreatedBetween(ctx context.Context, from, to time.Time, limit int) ([]Summary, error) {
	return s.list(ctx, Filter{CreatedFrom: from, CreatedTo: to, Limit: limit, WithUser: true})
}

func (s *Service) list(ctx context.Context, f Filter) ([]Summary, error) {
	out, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}

// Detail is visible to admins and to the order's own user.
func (s *Service) Detail(ctx context.Context, id int64, viewer session.Identity) (*Detail, error) {
	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if !viewer.IsAdmin() && (!viewer.IsUser() || viewer.UserMobile != o.UserMobile) {
		return nil, apperr.Forbidden("Forbidden")
	}

	items, err := s.repo.Items(ctx, id)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	pay, err := s.payments.Get(ctx, id)
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.Storage(err)
	}
	user, err := s.repo.User(ctx, o.UserMobile)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return &Detail{Order: *o, Items: items, Payment: pay, User: user}, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, raw string) error {
	to, err := ParseStatus(strings.TrimSpace(raw))
	if err != nil {
		return err
	}
	err = s.repo.SetStatus(ctx, id, to, func(cur *Order) error {
		if !CanTransition(cur.Status, to) {
			return apperr.State("Cannot change status from %s to %s", cur.Status, to)
		}
		return nil
	})
	return apperr.Storage(err)
}

// requireActive rejects sessions whose account was deleted after login.
func (s *Service) requireActive(ctx context.Context, mobile string) error {
	u, err := s.repo.User(ctx, mobile)
	if err != nil {
		return apperr.Storage(err)
	}
	if u == nil || u.Status == string(account.UserDeleted) {
		return apperr.Forbidden("Account has been deleted")
	}
	return nil
}

// build validates in against the catalog and prices every line server side.
func (s *Service) build(ctx context.Context, mobile string, in OrderInput) (*Order, []Item, error) {
	if len(in.Items) == 0 {
		return nil, nil, apperr.Validation("Cart is empty")
	}
	ids := make([]int64, 0, len(in.Items))
	for _, li := range in.Items {
		if li.Quantity <= 0 {
			return nil, nil, apperr.Validation("quantity must be positive for product %d", li.ProductID)
		}
		ids = append(ids, li.ProductID)
	}

	products, err := s.catalog.GetByIDs(ctx, ids)
	if err != nil {
		return nil, nil, apperr.Storage(err)
	}

	total := decimal.Zero
	items := make([]Item, 0, len(in.Items))
	for _, li := range in.Items {
		p, ok := products[li.ProductID]
		if !ok || p.Status != catalog.StatusAvailable {
			return nil, nil, apperr.Validation("product %d is not available", li.ProductID)
		}
		line := p.Price.Mul(decimal.NewFromInt(int64(li.Quantity))).Round(2)
		total = total.Add(line)
		items = append(items, Item{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    li.Quantity,
			UnitPrice:   p.Price,
			TotalPrice:  line,
			Unit:        p.Unit,
		})
	}
	if in.TotalAmount != nil && !in.TotalAmount.Round(2).Equal(total) {
		return nil, nil, apperr.Validation("total_amount %s does not match order total %s", in.TotalAmount.StringFixed(2), total.StringFixed(2))
	}

	date := strings.TrimSpace(in.DeliveryDate)
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return nil, nil, apperr.Validation("delivery_date must be YYYY-MM-DD")
		}
	}
	return &Order{
		UserMobile:   mobile,
		TotalAmount:  total,
		Status:       StatusPending,
		DeliverySlot: strings.TrimSpace(in.DeliverySlot),
		DeliveryDate: date,
	}, items, nil
}
