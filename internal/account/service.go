package account

import (
	"context"
	"errors"
	"strings"

	"github.com/MikeMC777/homefood/internal/apperr"
	"github.com/MikeMC777/homefood/internal/session"
)

var errBadCredentials = apperr.Auth("Invalid credentials")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Login returns the account for mobile, creating it on first sight.
func (s *Service) Login(ctx context.Context, mobile string) (*User, bool, error) {
	mobile = strings.TrimSpace(mobile)
	if mobile == "" {
		return nil, false, apperr.Validation("Mobile number is required")
	}
	u, created, err := s.repo.GetOrCreate(ctx, mobile)
	if err != nil {
		return nil, false, apperr.Storage(err)
	}
	if u.Status == UserDeleted {
		return nil, false, apperr.Forbidden("Account has been deleted")
	}
	return u, created, nil
}

func (s *Service) Profile(ctx context.Context, mobile string) (*User, error) {
	u, err := s.repo.GetUser(ctx, mobile)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return u, nil
}

// UpdateProfile lets a logged-in user edit only their own record.
func (s *Service) UpdateProfile(ctx context.Context, id session.Identity, mobile string, in ProfileInput) error {
	if !id.IsUser() {
		return apperr.Unauthorized("Unauthorized: User login required")
	}
	if id.UserMobile != mobile {
		return apperr.Forbidden("Forbidden: cannot update another user's profile")
	}
	if err := s.repo.UpdateProfile(ctx, mobile, trimProfile(in)); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

func (s *Service) AdminLogin(ctx context.Context, username, password string) (int64, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return 0, apperr.Validation("username and password are required")
	}
	a, err := s.repo.GetAdmin(ctx, username)
	if errors.Is(err, apperr.ErrNotFound) {
		return 0, errBadCredentials
	}
	if err != nil {
		return 0, apperr.Storage(err)
	}
	if !CheckPassword(a.PasswordHash, password) {
		return 0, errBadCredentials
	}
	return a.ID, nil
}

// SeedAdmin replaces every admin row with the configured one.
func (s *Service) SeedAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return apperr.Validation("admin username and password must be configured")
	}
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	return apperr.Storage(s.repo.ReplaceAdmins(ctx, username, hash))
}

func (s *Service) AdminUpdateUser(ctx context.Context, mobile string, in AdminUserInput) error {
	switch in.Status {
	case "", UserActive, UserDeleted:
	default:
		return apperr.Validation("invalid status: %s", in.Status)
	}
	in.ProfileInput = trimProfile(in.ProfileInput)
	if err := s.repo.UpdateUser(ctx, mobile, in); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

// DeleteUser removes the user together with their orders, items and payments.
func (s *Service) DeleteUser(ctx context.Context, mobile string) error {
	if strings.TrimSpace(mobile) == "" {
		return apperr.Validation("Mobile number is required")
	}
	if err := s.repo.DeleteCascade(ctx, mobile); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

func trimProfile(in ProfileInput) ProfileInput {
	return ProfileInput{
		Name:      strings.TrimSpace(in.Name),
		AltMobile: strings.TrimSpace(in.AltMobile),
		Address:   strings.TrimSpace(in.Address),
	}
}
