package catalog

import (
	"context"
	"strings"

	"github.com/MikeMC777/homefood/internal/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every product that is not soft-deleted.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}

// Get hides soft-deleted products.
func (s *Service) Get(ctx context.Context, id int64) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if p.Status == StatusDeleted {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, in ProductInput) (int64, error) {
	p, err := normalize(in)
	if err != nil {
		return 0, err
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return 0, apperr.Storage(err)
	}
	return p.ID, nil
}

func (s *Service) Update(ctx context.Context, id int64, in ProductInput) error {
	p, err := normalize(in)
	if err != nil {
		return err
	}
	p.ID = id
	if err := s.repo.Update(ctx, &p); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

func normalize(in ProductInput) (Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Product{}, apperr.Validation("name is required")
	}
	if in.Price.IsNegative() {
		return Product{}, apperr.Validation("price must be non-negative")
	}
	status := in.Status
	switch status {
	case "":
		status = StatusAvailable
	case StatusAvailable, StatusNotAvailable:
	default:
		return Product{}, apperr.Validation("invalid status: %s", status)
	}
	img := strings.TrimSpace(in.ImageURL)
	if img == "" {
		img = PlaceholderImageURL
	}
	return Product{
		Name:        name,
		ImageURL:    img,
		Unit:        strings.TrimSpace(in.Unit),
		Quantity:    strings.TrimSpace(in.Quantity),
		Description: in.Description,
		Price:       in.Price.Round(2),
		Status:      status,
		FoodType:    strings.TrimSpace(in.FoodType),
	}, nil
}
