package main

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/homefood/internal/account"
	"github.com/MikeMC777/homefood/internal/business"
	"github.com/MikeMC777/homefood/internal/catalog"
	"github.com/MikeMC777/homefood/internal/order"
	"github.com/MikeMC777/homefood/internal/payment"
	"github.com/MikeMC777/homefood/internal/report"
	"github.com/MikeMC777/homefood/internal/session"
)

//
// ---------- IN-MEMORY FAKES ----------
//

type memSessions struct {
	mu   sync.Mutex
	data map[string]session.Identity
}

func (m *memSessions) Get(_ context.Context, token string) (session.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.data[token]
	if !ok {
		return session.Identity{}, session.ErrNoSession
	}
	return id, nil
}

func (m *memSessions) Set(_ context.Context, token string, id session.Identity, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[token] = id
	return nil
}

func (m *memSessions) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, token)
	return nil
}

// world is the shared state behind every fake repository.
type world struct {
	users    map[string]*account.User
	admins   []account.Admin
	products map[int64]*catalog.Product
	orders   map[int64]*order.Order
	items    map[int64][]order.Item
	payments map[int64]*payment.Payment
	nextID   int64
}

func newWorld() *world {
	return &world{
		users:    map[string]*account.User{},
		products: map[int64]*catalog.Product{},
		orders:   map[int64]*order.Order{},
		items:    map[int64][]order.Item{},
		payments: map[int64]*payment.Payment{},
	}
}

func (w *world) id() int64 { w.nextID++; return w.nextID }

// accounts

type fakeAccounts struct{ w *world }

func (f fakeAccounts) GetOrCreate(_ context.Context, mobile string) (*account.User, bool, error) {
	if u, ok := f.w.users[mobile]; ok {
		cp := *u
		return &cp, false, nil
	}
	u := &account.User{MobileNumber: mobile, Status: account.UserActive}
	f.w.users[mobile] = u
	cp := *u
	return &cp, true, nil
}

func (f fakeAccounts) GetUser(_ context.Context, mobile string) (*account.User, error) {
	u, ok := f.w.users[mobile]
	if !ok {
		return nil, account.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f fakeAccounts) UpdateProfile(_ context.Context, mobile string, in account.ProfileInput) error {
	u, ok := f.w.users[mobile]
	if !ok {
		return account.ErrUserNotFound
	}
	u.Name, u.AltMobileNumber, u.Address = in.Name, in.AltMobile, in.Address
	return nil
}

func (f fakeAccounts) UpdateUser(ctx context.Context, mobile string, in account.AdminUserInput) error {
	if err := f.UpdateProfile(ctx, mobile, in.ProfileInput); err != nil {
		return err
	}
	if in.Status != "" {
		f.w.users[mobile].Status = in.Status
	}
	return nil
}

func (f fakeAccounts) DeleteCascade(_ context.Context, mobile string) error {
	if _, ok := f.w.users[mobile]; !ok {
		return account.ErrUserNotFound
	}
	for id, o := range f.w.orders {
		if o.UserMobile == mobile {
			delete(f.w.orders, id)
			delete(f.w.items, id)
			delete(f.w.payments, id)
		}
	}
	delete(f.w.users, mobile)
	return nil
}

func (f fakeAccounts) GetAdmin(_ context.Context, username string) (*account.Admin, error) {
	for _, a := range f.w.admins {
		if a.Username == username {
			cp := a
			return &cp, nil
		}
	}
	return nil, account.ErrAdminNotFound
}

func (f fakeAccounts) ReplaceAdmins(_ context.Context, username, hash string) error {
	f.w.admins = []account.Admin{{ID: 1, Username: username, PasswordHash: hash}}
	return nil
}

// catalog

type fakeProducts struct{ w *world }

func (f fakeProducts) Create(_ context.Context, p *catalog.Product) error {
	p.ID = f.w.id()
	cp := *p
	f.w.products[p.ID] = &cp
	return nil
}

func (f fakeProducts) GetByID(_ context.Context, id int64) (*catalog.Product, error) {
	p, ok := f.w.products[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f fakeProducts) GetByIDs(_ context.Context, ids []int64) (map[int64]catalog.Product, error) {
	out := map[int64]catalog.Product{}
	for _, id := range ids {
		if p, ok := f.w.products[id]; ok {
			out[id] = *p
		}
	}
	return out, nil
}

func (f fakeProducts) List(context.Context) ([]catalog.Product, error) {
	out := []catalog.Product{}
	for _, p := range f.w.products {
		if p.Status != catalog.StatusDeleted {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f fakeProducts) Update(_ context.Context, p *catalog.Product) error {
	cur, ok := f.w.products[p.ID]
	if !ok || cur.Status == catalog.StatusDeleted {
		return catalog.ErrNotFound
	}
	cp := *p
	f.w.products[p.ID] = &cp
	return nil
}

func (f fakeProducts) SoftDelete(_ context.Context, id int64) error {
	cur, ok := f.w.products[id]
	if !ok || cur.Status == catalog.StatusDeleted {
		return catalog.ErrNotFound
	}
	cur.Status = catalog.StatusDeleted
	return nil
}

// orders

type fakeOrders struct{ w *world }

func (f fakeOrders) Insert(_ context.Context, o *order.Order, items []order.Item) error {
	o.ID = f.w.id()
	o.CreatedAt = time.Now().UTC()
	cp := *o
	f.w.orders[o.ID] = &cp
	f.w.items[o.ID] = append([]order.Item(nil), items...)
	f.w.payments[o.ID] = &payment.Payment{
		OrderID: o.ID, Amount: o.TotalAmount, Status: payment.StatusPending, UserMobile: o.UserMobile,
	}
	return nil
}

func (f fakeOrders) Get(_ context.Context, id int64) (*order.Order, error) {
	o, ok := f.w.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f fakeOrders) Replace(_ context.Context, o *order.Order, items []order.Item, guard order.Guard) error {
	cur, ok := f.w.orders[o.ID]
	if !ok {
		return order.ErrNotFound
	}
	if err := guard(cur); err != nil {
		return err
	}
	cur.TotalAmount = o.TotalAmount
	f.w.items[o.ID] = append([]order.Item(nil), items...)
	p := f.w.payments[o.ID]
	p.Amount = o.TotalAmount
	p.Status = payment.DeriveStatus(p.AmountPaid, o.TotalAmount)
	return nil
}

func (f fakeOrders) SetStatus(_ context.Context, id int64, to order.Status, guard order.Guard) error {
	cur, ok := f.w.orders[id]
	if !ok {
		return order.ErrNotFound
	}
	if err := guard(cur); err != nil {
		return err
	}
	cur.Status = to
	return nil
}

func (f fakeOrders) List(_ context.Context, flt order.Filter) ([]order.Summary, error) {
	out := []order.Summary{}
	for id, o := range f.w.orders {
		if flt.UserMobile != "" && o.UserMobile != flt.UserMobile {
			continue
		}
		p := f.w.payments[id]
		out = append(out, order.Summary{Order: *o, PaymentStatus: p.Status, AmountPaid: p.AmountPaid, Items: f.w.items[id]})
	}
	return out, nil
}

func (f fakeOrders) Items(_ context.Context, id int64) ([]order.Item, error) {
	return f.w.items[id], nil
}

func (f fakeOrders) User(_ context.Context, mobile string) (*order.UserInfo, error) {
	u, ok := f.w.users[mobile]
	if !ok {
		return nil, nil
	}
	return &order.UserInfo{MobileNumber: u.MobileNumber, Name: u.Name, Address: u.Address, Status: string(u.Status)}, nil
}

// payments

type fakePayments struct{ w *world }

func (f fakePayments) Get(_ context.Context, orderID int64) (*payment.Payment, error) {
	p, ok := f.w.payments[orderID]
	if !ok {
		return nil, payment.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f fakePayments) Record(_ context.Context, orderID int64, in payment.Input) (*payment.Payment, error) {
	o, ok := f.w.orders[orderID]
	if !ok {
		return nil, payment.ErrOrderNotFound
	}
	p := &payment.Payment{
		OrderID: orderID, Amount: o.TotalAmount, AmountPaid: in.AmountPaid,
		Status: payment.DeriveStatus(in.AmountPaid, o.TotalAmount), Method: in.Method,
		TransactionID: in.TransactionID, AppName: in.AppName, PaymentDate: time.Now().UTC(), UserMobile: o.UserMobile,
	}
	f.w.payments[orderID] = p
	cp := *p
	return &cp, nil
}

// reports

type fakeReports struct{}

func (fakeReports) Counts(context.Context) (report.Counts, error) { return report.Counts{}, nil }
func (fakeReports) PaidRevenue(context.Context) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (fakeReports) DayTotals(context.Context, time.Time, time.Time) (int64, decimal.Decimal, error) {
	return 0, decimal.Zero, nil
}
func (fakeReports) RevenueByDay(context.Context, time.Time, time.Time, *time.Location, bool) (map[string]decimal.Decimal, error) {
	return map[string]decimal.Decimal{}, nil
}
func (fakeReports) StatusCounts(context.Context) ([]report.StatusCount, error) {
	return []report.StatusCount{}, nil
}
func (fakeReports) Breakdown(context.Context) (report.Breakdown, error) {
	return report.Breakdown{}, nil
}
func (fakeReports) UserSummaries(context.Context) ([]report.UserSummary, error) {
	return []report.UserSummary{}, nil
}

// business

type fakeBusiness struct{ rows []business.Profile }

func (f *fakeBusiness) Latest(context.Context) (*business.Profile, error) {
	if len(f.rows) == 0 {
		return nil, nil
	}
	cp := f.rows[len(f.rows)-1]
	return &cp, nil
}

func (f *fakeBusiness) Insert(_ context.Context, p *business.Profile) error {
	p.ID = int64(len(f.rows) + 1)
	f.rows = append(f.rows, *p)
	return nil
}

type fakeFiles struct{ names []string }

func (f *fakeFiles) Put(_ context.Context, name string, r io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	f.names = append(f.names, name)
	return "/uploads/" + name, nil
}

type fakeProber struct{ err error }

func (f fakeProber) Probe(context.Context) error { return f.err }

var errDown = errors.New("redis: connection refused")
