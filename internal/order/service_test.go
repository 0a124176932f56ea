package order

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/MikeMC777/homefood/internal/apperr"
	"github.com/MikeMC777/homefood/internal/catalog"
	"github.com/MikeMC777/homefood/internal/payment"
	"github.com/MikeMC777/homefood/internal/session"
)

// stubRepo keeps orders, items and payments in memory.
type stubRepo struct {
	orders   map[int64]*Order
	items    map[int64][]Item
	payments map[int64]*payment.Payment
	nextID   int64

	softDeleted map[string]bool
	removed     map[string]bool
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		orders:      map[int64]*Order{},
		items:       map[int64][]Item{},
		payments:    map[int64]*payment.Payment{},
		softDeleted: map[string]bool{},
		removed:     map[string]bool{},
	}
}

func (s *stubRepo) Insert(_ context.Context, o *Order, items []Item) error {
	s.nextID++
	o.ID = s.nextID
	o.CreatedAt = time.Now().UTC()
	cp := *o
	s.orders[o.ID] = &cp
	s.items[o.ID] = append([]Item(nil), items...)
	s.payments[o.ID] = &payment.Payment{OrderID: o.ID, Amount: o.TotalAmount, Status: payment.DeriveStatus(decimal.Zero, o.TotalAmount), UserMobile: o.UserMobile}
	return nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (s *stubRepo) Replace(_ context.Context, o *Order, items []Item, guard Guard) error {
	cur, ok := s.orders[o.ID]
	if !ok {
		return ErrNotFound
	}
	if err := guard(cur); err != nil {
		return err
	}
	cur.TotalAmount, cur.DeliverySlot, cur.DeliveryDate = o.TotalAmount, o.DeliverySlot, o.DeliveryDate
	p := s.payments[o.ID]
	p.Amount = o.TotalAmount
	p.Status = payment.DeriveStatus(p.AmountPaid, o.TotalAmount)
	s.items[o.ID] = append([]Item(nil), items...)
	return nil
}

func (s *stubRepo) SetStatus(_ context.Context, id int64, to Status, guard Guard) error {
	cur, ok := s.orders[id]
	if !ok {
		return ErrNotFound
	}
	if err := guard(cur); err != nil {
		return err
	}
	cur.Status = to
	return nil
}

func (s *stubRepo) List(_ context.Context, f Filter) ([]Summary, error) {
	out := []Summary{}
	for id, o := range s.orders {
		if f.UserMobile != "" && o.UserMobile != f.UserMobile {
			continue
		}
		if !f.CreatedFrom.IsZero() && o.CreatedAt.Before(f.CreatedFrom) {
			continue
		}
		if !f.CreatedTo.IsZero() && !o.CreatedAt.Before(f.CreatedTo) {
			continue
		}
		p := s.payments[id]
		out = append(out, Summary{Order: *o, PaymentStatus: p.Status, AmountPaid: p.AmountPaid, Items: s.items[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (s *stubRepo) Items(_ context.Context, orderID int64) ([]Item, error) {
	return s.items[orderID], nil
}

func (s *stubRepo) User(_ context.Context, mobile string) (*UserInfo, error) {
	if s.removed[mobile] {
		return nil, nil
	}
	status := "Active"
	if s.softDeleted[mobile] {
		status = "Deleted"
	}
	return &UserInfo{MobileNumber: mobile, Name: "Asha", Status: status}, nil
}

type stubCatalog map[int64]catalog.Product

func (c stubCatalog) GetByIDs(_ context.Context, ids []int64) (map[int64]catalog.Product, error) {
	out := map[int64]catalog.Product{}
	for _, id := range ids {
		if p, ok := c[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

type stubPayments struct{ repo *stubRepo }

func (p stubPayments) Get(_ context.Context, orderID int64) (*payment.Payment, error) {
	pay, ok := p.repo.payments[orderID]
	if !ok {
		return nil, payment.ErrNotFound
	}
	cp := *pay
	return &cp, nil
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type OrderServiceSuite struct {
	suite.Suite
	repo *stubRepo
	svc  *Service
	ctx  context.Context
}

func (s *OrderServiceSuite) SetupTest() {
	s.repo = newStubRepo()
	cat := stubCatalog{
		1: {ID: 1, Name: "Veg Thali", Unit: "plate", Price: d("120.00"), Status: catalog.StatusAvailable},
		2: {ID: 2, Name: "Lassi", Unit: "glass", Price: d("40.50"), Status: catalog.StatusAvailable},
		3: {ID: 3, Name: "Biryani", Price: d("200"), Status: catalog.StatusNotAvailable},
		4: {ID: 4, Name: "Old Dish", Price: d("90"), Status: catalog.StatusDeleted},
	}
	s.svc = NewService(s.repo, cat, stubPayments{repo: s.repo})
	s.ctx = context.Background()
}

func (s *OrderServiceSuite) TestCreateSnapshotsCatalogPrices() {
	id, err := s.svc.Create(s.ctx, "9000000001", OrderInput{
		Items:        []ItemInput{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 1}},
		DeliverySlot: " Lunch ",
		DeliveryDate: "2024-01-02",
	})
	s.Require().NoError(err)

	o := s.repo.orders[id]
	s.Require().True(d("280.50").Equal(o.TotalAmount))
	s.Require().Equal(StatusPending, o.Status)
	s.Require().Equal("Lunch", o.DeliverySlot)

	items := s.repo.items[id]
	s.Require().Len(items, 2)
	s.Require().Equal("Veg Thali", items[0].ProductName)
	s.Require().True(d("240").Equal(items[0].TotalPrice))

	p := s.repo.payments[id]
	s.Require().Equal(payment.StatusPending, p.Status)
	s.Require().True(o.TotalAmount.Equal(p.Amount))
}

func (s *OrderServiceSuite) TestCreateRejectsBadCarts() {
	cases := map[string]OrderInput{
		"empty":         {},
		"zero quantity": {Items: []ItemInput{{ProductID: 1, Quantity: 0}}},
		"unknown":       {Items: []ItemInput{{ProductID: 99, Quantity: 1}}},
		"unavailable":   {Items: []ItemInput{{ProductID: 3, Quantity: 1}}},
		"deleted":       {Items: []ItemInput{{ProductID: 4, Quantity: 1}}},
		"bad date":      {Items: []ItemInput{{ProductID: 1, Quantity: 1}}, DeliveryDate: "02/01/2024"},
	}
	for name, in := range cases {
		_, err := s.svc.Create(s.ctx, "9000000001", in)
		s.Require().ErrorIs(err, apperr.ErrValidation, name)
	}
	s.Require().Empty(s.repo.orders)
}

func (s *OrderServiceSuite) TestCreateChecksClientTotal() {
	wrong := d("100")
	_, err := s.svc.Create(s.ctx, "9000000001", OrderInput{Items: []ItemInput{{ProductID: 1, Quantity: 1}}, TotalAmount: &wrong})
	s.Require().ErrorIs(err, apperr.ErrValidation)

	right := d("120")
	_, err = s.svc.Create(s.ctx, "9000000001", OrderInput{Items: []ItemInput{{ProductID: 1, Quantity: 1}}, TotalAmount: &right})
	s.Require().NoError(err)
}

func (s *OrderServiceSuite) TestUpdateKeepsAmountPaid() {
	id, err := s.svc.Create(s.ctx, "9000000001", OrderInput{Items: []ItemInput{{ProductID: 1, Quantity: 1}}})
	s.Require().NoError(err)
	s.repo.payments[id].AmountPaid = d("120")
	s.repo.payments[id].Status = payment.StatusPaid

	err = s.svc.Update(s.ctx, id, "9000000001", OrderInput{Items: []ItemInput{{ProductID: 1, Quantity: 2}}})
	s.Require().NoError(err)

	p := s.repo.payments[id]
	s.Require().True(d("240").Equal(p.Amount))
	s.Require().True(d("120").Equal(p.AmountPaid))
	s.Require().Equal(payment.StatusPartial, p.Status)
	s.Require().Len(s.repo.items[id], 1)
	s.Require().Equal(2, s.repo.items[id][0].Quantity)
}

func (s *OrderServiceSuite) TestUpdateGuards() {
	id, err := s.svc.Create(s.ctx, "9000000001", OrderInput{Items: []ItemInput{{ProductID: 1, Quantity: 1}}})
	s.Require().NoError(err)
	in := OrderInput{Items: []ItemInput{{ProductID: 2, Quantity: 1}}}

	s.Require().ErrorIs(s.svc.Update(s.ctx, id, "9000000002", in), apperr.ErrNotFound)
	s.Require().ErrorIs(s.svc.Update(s.ctx, 404, "9000000001", in), apperr.ErrNotFound)

	s.repo.orders[id].Status = StatusDelivered
	s.Require().ErrorIs(s.svc.Update(s.ctx, id, "9000000001", in), apperr.ErrState)
}

func (s *OrderServiceSuite) TestDetailVisibility() {
	id, err := s.svc.Create(s.ctx, "9000000001", OrderInput{Items: []ItemInput{{ProductID: 1, Quantity: 1}}})
	s.Require().NoError(err)

	det, err := s.svc.Detail(s.ctx, id, session.Identity{UserMobile: "9000000001"})
	s.Require().NoError(err)
	s.Require().Equal(id, det.Order.ID)
	s.Require().Len(det.Items, 1)
	s.Require().NotNil(det.Payment)
	s.Require().Equal("Asha", det.User.Name)

	_, err = s.svc.Detail(s.ctx, id, session.Identity{AdminID: 1})
	s.Require().NoError(err)

	_, err = s.svc.Detail(s.ctx, id, session.Identity{UserMobile: "9000000002"})
	s.Require().ErrorIs(err, apperr.ErrForbidden)
	_, err = s.svc.Detail(s.ctx, id, session.Identity{})
	s.Require().ErrorIs(err, apperr.ErrForbidden)
	_, err = s.svc.Detail(s.ctx, 404, session.Identity{AdminID: 1})
	s.Require().ErrorIs(err, apperr.ErrNotFound)
}

func (s *OrderServiceSuite) TestUpdateStatusFollowsTable() {
	id, err := s.svc.Create(s.ctx, "9000000001", OrderInput{Items: []ItemInput{{ProductID: 1, Quantity: 1}}})
	s.Require().NoError(err)

	s.Require().ErrorIs(s.svc.UpdateStatus(s.ctx, id, "Shipped"), apperr.ErrValidation)
	s.Require().ErrorIs(s.svc.UpdateStatus(s.ctx, id, "Delivered"), apperr.ErrState)
	s.Require().NoError(s.svc.UpdateStatus(s.ctx, id, "Accepted"))
	s.Require().NoError(s.svc.UpdateStatus(s.ctx, id, "Accepted"))
	s.Require().NoError(s.svc.UpdateStatus(s.ctx, id, "Preparing"))
	s.Require().NoError(s.svc.UpdateStatus(s.ctx, id, "Delivered"))
	s.Require().ErrorIs(s.svc.UpdateStatus(s.ctx, id, "Cancelled"), apperr.ErrState)
	s.Require().ErrorIs(s.svc.UpdateStatus(s.ctx, 404, "Accepted"), apperr.ErrNotFound)
}

func (s *OrderServiceSuite) TestListsNewestFirst() {
	for i := 0; i < 3; i++ {
		_, err := s.svc.Create(s.ctx, "9000000001", OrderInput{Items: []ItemInput{{ProductID: 1, Quantity: 1}}})
		s.Require().NoError(err)
	}
	_, err := s.svc.Create(s.ctx, "9000000002", OrderInput{Items: []ItemInput{{ProductID: 2, Quantity: 1}}})
	s.Require().NoError(err)

	mine, err := s.svc.ListForUser(s.ctx, "9000000001")
	s.Require().NoError(err)
	s.Require().Len(mine, 3)
	s.Require().Greater(mine[0].ID, mine[1].ID)

	all, err := s.svc.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 4)

	now := time.Now()
	recent, err := s.svc.ListCreatedBetween(s.ctx, now.Add(-time.Hour), now.Add(time.Hour), 2)
	s.Require().NoError(err)
	s.Require().Len(recent, 2)

	yesterday, err := s.svc.ListCreatedBetween(s.ctx, now.Add(-48*time.Hour), now.Add(-24*time.Hour), 10)
	s.Require().NoError(err)
	s.Require().Empty(yesterday)
}

func (s *OrderServiceSuite) TestDeletedAccountCannotOrder() {
	in := OrderInput{Items: []ItemInput{{ProductID: 1, Quantity: 1}}}
	id, err := s.svc.Create(s.ctx, "9000000001", in)
	s.Require().NoError(err)

	s.repo.softDeleted["9000000001"] = true
	_, err = s.svc.Create(s.ctx, "9000000001", in)
	s.Require().ErrorIs(err, apperr.ErrForbidden)
	s.Require().ErrorIs(s.svc.Update(s.ctx, id, "9000000001", in), apperr.ErrForbidden)

	s.repo.removed["9000000002"] = true
	_, err = s.svc.Create(s.ctx, "9000000002", in)
	s.Require().ErrorIs(err, apperr.ErrForbidden)
	s.Require().Len(s.repo.orders, 1)
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceSuite))
}

func TestTransitions(t *testing.T) {
	require.True(t, CanTransition(StatusPending, StatusAccepted))
	require.True(t, CanTransition(StatusPending, StatusCancelled))
	require.False(t, CanTransition(StatusPending, StatusPreparing))
	require.True(t, CanTransition(StatusPreparing, StatusDelivered))
	require.False(t, CanTransition(StatusDelivered, StatusCancelled))
	require.False(t, CanTransition(StatusCancelled, StatusPending))
	require.True(t, CanTransition(StatusCancelled, StatusCancelled))

	require.True(t, StatusPreparing.Editable())
	require.False(t, StatusDelivered.Editable())

	_, err := ParseStatus("pending")
	require.ErrorIs(t, err, apperr.ErrValidation)
}
