package business

import (
	"context"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/homefood/internal/apperr"
)

// Upload is one file from the admin form.
type Upload struct {
	Filename string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

type Service struct {
	repo     Repository
	files    FileStore
	maxBytes int64
}

func NewService(repo Repository, files FileStore, maxBytes int64) *Service {
	return &Service{repo: repo, files: files, maxBytes: maxBytes}
}

// Current returns the newest saved profile, or nil if none exists.
func (s *Service) Current(ctx context.Context) (*Profile, error) {
	p, err := s.repo.Latest(ctx)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return p, nil
}

// Save appends a new revision. Documents not re-uploaded carry over from the previous one.
func (s *Service) Save(ctx context.Context, in ProfileInput, shopImage, licenceDoc *Upload) (*Profile, error) {
	p := &Profile{
		Name:          strings.TrimSpace(in.Name),
		Address:       strings.TrimSpace(in.Address),
		ContactNumber: strings.TrimSpace(in.ContactNumber),
		OpenTime:      strings.TrimSpace(in.OpenTime),
		CloseTime:     strings.TrimSpace(in.CloseTime),
		BreakStart:    strings.TrimSpace(in.BreakStart),
		BreakEnd:      strings.TrimSpace(in.BreakEnd),
		WeeklyHoliday: strings.TrimSpace(in.WeeklyHoliday),
	}
	var err error
	if p.DeliveryCharge, err = money("delivery_charge", in.DeliveryCharge, decimal.Zero); err != nil {
		return nil, err
	}
	if p.HandlingCharge, err = money("handling_charge", in.HandlingCharge, decimal.Zero); err != nil {
		return nil, err
	}
	if p.CartValue, err = money("cart_value", in.CartValue, defaultCartValue); err != nil {
		return nil, err
	}

	prev, err := s.repo.Latest(ctx)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if prev != nil {
		p.ShopImageURL, p.LicenceDocURL = prev.ShopImageURL, prev.LicenceDocURL
	}
	if shopImage != nil {
		if p.ShopImageURL, err = s.store(ctx, shopImage); err != nil {
			return nil, err
		}
	}
	if licenceDoc != nil {
		if p.LicenceDocURL, err = s.store(ctx, licenceDoc); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, apperr.Storage(err)
	}
	return p, nil
}

func (s *Service) store(ctx context.Context, up *Upload) (string, error) {
	if s.maxBytes > 0 && up.Size > s.maxBytes {
		return "", apperr.Validation("file %s exceeds %d bytes", up.Filename, s.maxBytes)
	}
	rc, err := up.Open()
	if err != nil {
		return "", apperr.Validation("cannot read upload %s", up.Filename)
	}
	defer rc.Close()

	url, err := s.files.Put(ctx, storedName(up.Filename), rc)
	if err != nil {
		return "", apperr.Storage(err)
	}
	return url, nil
}

// money parses an optional non-negative amount; blank means def.
func money(field, raw string, def decimal.Decimal) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, apperr.Validation("%s must be a number", field)
	}
	if v.IsNegative() {
		return decimal.Zero, apperr.Validation("%s must be non-negative", field)
	}
	return v.Round(2), nil
}
