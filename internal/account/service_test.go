package account

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/homefood/internal/apperr"
	"github.com/MikeMC777/homefood/internal/session"
)

type stubRepo struct {
	users   map[string]*User
	admins  []Admin
	deleted []string
}

func newStubRepo() *stubRepo { return &stubRepo{users: map[string]*User{}} }

func (s *stubRepo) GetOrCreate(_ context.Context, mobile string) (*User, bool, error) {
	if u, ok := s.users[mobile]; ok {
		cp := *u
		return &cp, false, nil
	}
	u := &User{MobileNumber: mobile, Status: UserActive, CreatedAt: time.Now().UTC()}
	s.users[mobile] = u
	cp := *u
	return &cp, true, nil
}

func (s *stubRepo) GetUser(_ context.Context, mobile string) (*User, error) {
	u, ok := s.users[mobile]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *stubRepo) UpdateProfile(_ context.Context, mobile string, in ProfileInput) error {
	u, ok := s.users[mobile]
	if !ok {
		return ErrUserNotFound
	}
	u.Name, u.AltMobileNumber, u.Address = in.Name, in.AltMobile, in.Address
	return nil
}

func (s *stubRepo) UpdateUser(ctx context.Context, mobile string, in AdminUserInput) error {
	if err := s.UpdateProfile(ctx, mobile, in.ProfileInput); err != nil {
		return err
	}
	if in.Status != "" {
		s.users[mobile].Status = in.Status
	}
	return nil
}

func (s *stubRepo) DeleteCascade(_ context.Context, mobile string) error {
	if _, ok := s.users[mobile]; !ok {
		return ErrUserNotFound
	}
	delete(s.users, mobile)
	s.deleted = append(s.deleted, mobile)
	return nil
}

func (s *stubRepo) GetAdmin(_ context.Context, username string) (*Admin, error) {
	for _, a := range s.admins {
		if a.Username == username {
			cp := a
			return &cp, nil
		}
	}
	return nil, ErrAdminNotFound
}

func (s *stubRepo) ReplaceAdmins(_ context.Context, username, hash string) error {
	s.admins = []Admin{{ID: int64(len(s.admins) + 1), Username: username, PasswordHash: hash}}
	return nil
}

func TestLoginCreatesThenReturnsExisting(t *testing.T) {
	svc := NewService(newStubRepo())
	ctx := context.Background()

	u, created, err := svc.Login(ctx, " 9000000001 ")
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, "9000000001", u.MobileNumber)

	_, created, err = svc.Login(ctx, "9000000001")
	require.NoError(t, err)
	require.False(t, created)
}

func TestLoginValidationAndDeleted(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "  ")
	require.ErrorIs(t, err, apperr.ErrValidation)

	repo.users["9000000002"] = &User{MobileNumber: "9000000002", Status: UserDeleted}
	_, _, err = svc.Login(ctx, "9000000002")
	require.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestUpdateProfileOwnership(t *testing.T) {
	repo := newStubRepo()
	repo.users["9000000001"] = &User{MobileNumber: "9000000001", Status: UserActive}
	svc := NewService(repo)
	ctx := context.Background()
	in := ProfileInput{Name: " Asha ", Address: "12 MG Road"}

	err := svc.UpdateProfile(ctx, session.Identity{}, "9000000001", in)
	require.ErrorIs(t, err, apperr.ErrUnauthorized)

	err = svc.UpdateProfile(ctx, session.Identity{UserMobile: "9000000009"}, "9000000001", in)
	require.ErrorIs(t, err, apperr.ErrForbidden)

	require.NoError(t, svc.UpdateProfile(ctx, session.Identity{UserMobile: "9000000001"}, "9000000001", in))
	require.Equal(t, "Asha", repo.users["9000000001"].Name)
}

func TestSeedAndAdminLogin(t *testing.T) {
	repo := newStubRepo()
	repo.admins = []Admin{{ID: 7, Username: "old", PasswordHash: "x"}}
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.SeedAdmin(ctx, "ADMIN", "Admin143"))
	require.Len(t, repo.admins, 1)
	require.NotEqual(t, "Admin143", repo.admins[0].PasswordHash)

	id, err := svc.AdminLogin(ctx, "ADMIN", "Admin143")
	require.NoError(t, err)
	require.Equal(t, repo.admins[0].ID, id)

	_, err = svc.AdminLogin(ctx, "ADMIN", "wrong")
	require.ErrorIs(t, err, apperr.ErrAuth)
	_, err = svc.AdminLogin(ctx, "old", "x")
	require.ErrorIs(t, err, apperr.ErrAuth)
}

func TestAdminUpdateUserSoftDelete(t *testing.T) {
	repo := newStubRepo()
	repo.users["9000000001"] = &User{MobileNumber: "9000000001", Status: UserActive}
	svc := NewService(repo)
	ctx := context.Background()

	require.ErrorIs(t, svc.AdminUpdateUser(ctx, "9000000001", AdminUserInput{Status: "Gone"}), apperr.ErrValidation)
	require.ErrorIs(t, svc.AdminUpdateUser(ctx, "9000000099", AdminUserInput{}), apperr.ErrNotFound)

	require.NoError(t, svc.AdminUpdateUser(ctx, "9000000001", AdminUserInput{Status: UserDeleted}))
	_, _, err := svc.Login(ctx, "9000000001")
	require.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestDeleteUser(t *testing.T) {
	repo := newStubRepo()
	repo.users["9000000001"] = &User{MobileNumber: "9000000001"}
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.DeleteUser(ctx, "9000000001"))
	require.Equal(t, []string{"9000000001"}, repo.deleted)
	require.ErrorIs(t, svc.DeleteUser(ctx, "9000000001"), apperr.ErrNotFound)
}
