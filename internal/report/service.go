package report

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MikeMC777/homefood/internal/apperr"
	"github.com/MikeMC777/homefood/internal/order"
)

const (
	chartDays      = 7
	todayListLimit = 10
	maxRangeDays   = 366
)

// RecentOrders lists orders placed in [from, to).
type RecentOrders interface {
	ListCreatedBetween(ctx context.Context, from, to time.Time, limit int) ([]order.Summary, error)
}

type Service struct {
	repo   Repository
	recent RecentOrders
	loc    *time.Location
	now    func() time.Time
}

// NewService reports calendar days as seen in loc. A nil loc means UTC.
func NewService(repo Repository, recent RecentOrders, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{repo: repo, recent: recent, loc: loc, now: time.Now}
}

// dayStart is midnight of t's calendar day in the reporting zone.
func (s *Service) dayStart(t time.Time) time.Time {
	y, m, d := t.In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.loc)
}

// Dashboard gathers every dashboard figure concurrently. Any failing query fails the whole call.
func (s *Service) Dashboard(ctx context.Context, now time.Time) (*Stats, error) {
	today := s.dayStart(now)
	tomorrow := today.AddDate(0, 0, 1)
	st := &Stats{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		c, err := s.repo.Counts(ctx)
		st.Users, st.Orders, st.Products = c.Users, c.Orders, c.Products
		return err
	})
	g.Go(func() (err error) {
		st.Revenue, err = s.repo.PaidRevenue(ctx)
		return err
	})
	g.Go(func() (err error) {
		st.TodayOrdersCount, st.TodayRevenue, err = s.repo.DayTotals(ctx, today, tomorrow)
		return err
	})
	g.Go(func() (err error) {
		st.TodayOrders, err = s.recent.ListCreatedBetween(ctx, today, tomorrow, todayListLimit)
		return err
	})
	g.Go(func() error {
		start := today.AddDate(0, 0, -(chartDays - 1))
		byDay, err := s.repo.RevenueByDay(ctx, start, tomorrow, s.loc, true)
		if err != nil {
			return err
		}
		st.RevenueChart = FillDays(start, today, byDay)
		return nil
	})
	g.Go(func() (err error) {
		st.StatusChart, err = s.repo.StatusCounts(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperr.Storage(err)
	}
	return st, nil
}

func (s *Service) Breakdown(ctx context.Context) (*Breakdown, error) {
	b, err := s.repo.Breakdown(ctx)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return &b, nil
}

// DailyRevenue takes YYYY-MM-DD bounds. Both empty means the trailing week ending today.
func (s *Service) DailyRevenue(ctx context.Context, startDate, endDate string) ([]DayRevenue, error) {
	start, end, err := s.revenueRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	byDay, err := s.repo.RevenueByDay(ctx, start, end.AddDate(0, 0, 1), s.loc, false)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return FillDays(start, end, byDay), nil
}

func (s *Service) revenueRange(startDate, endDate string) (time.Time, time.Time, error) {
	switch {
	case startDate == "" && endDate == "":
		end := s.dayStart(s.now())
		return end.AddDate(0, 0, -(chartDays - 1)), end, nil
	case startDate == "" || endDate == "":
		return time.Time{}, time.Time{}, apperr.Validation("startDate and endDate must be given together")
	}
	start, err := time.ParseInLocation(dateLayout, startDate, s.loc)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("startDate must be YYYY-MM-DD")
	}
	end, err := time.ParseInLocation(dateLayout, endDate, s.loc)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("endDate must be YYYY-MM-DD")
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, apperr.Validation("startDate must not be after endDate")
	}
	if truncateDay(end).Sub(truncateDay(start)) >= maxRangeDays*24*time.Hour {
		return time.Time{}, time.Time{}, apperr.Validation("date range exceeds %d days", maxRangeDays)
	}
	return start, end, nil
}

func (s *Service) UserSummaries(ctx context.Context) ([]UserSummary, error) {
	out, err := s.repo.UserSummaries(ctx)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}

