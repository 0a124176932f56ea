package business

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/homefood/internal/apperr"
)

type stubRepo struct{ rows []Profile }

func (s *stubRepo) Latest(context.Context) (*Profile, error) {
	if len(s.rows) == 0 {
		return nil, nil
	}
	cp := s.rows[len(s.rows)-1]
	return &cp, nil
}

func (s *stubRepo) Insert(_ context.Context, p *Profile) error {
	p.ID = int64(len(s.rows) + 1)
	p.CreatedAt = time.Now().UTC()
	s.rows = append(s.rows, *p)
	return nil
}

type memFiles struct{ saved map[string][]byte }

func (m *memFiles) Put(_ context.Context, name string, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.saved[name] = b
	return "/uploads/" + name, nil
}

func upload(name, body string) *Upload {
	return &Upload{
		Filename: name,
		Size:     int64(len(body)),
		Open:     func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader(body)), nil },
	}
}

func TestCurrentEmpty(t *testing.T) {
	svc := NewService(&stubRepo{}, &memFiles{saved: map[string][]byte{}}, 0)
	p, err := svc.Current(context.Background())
	require.NoError(t, err)
	require.Nil(t, p)
}

func TestSaveDefaultsAndUploads(t *testing.T) {
	repo := &stubRepo{}
	files := &memFiles{saved: map[string][]byte{}}
	svc := NewService(repo, files, 1024)
	ctx := context.Background()

	p, err := svc.Save(ctx, ProfileInput{Name: " Home Kitchen "}, upload("shop front.png", "png"), nil)
	require.NoError(t, err)
	require.Equal(t, "Home Kitchen", p.Name)
	require.True(t, p.DeliveryCharge.IsZero())
	require.True(t, decimal.NewFromInt(1000).Equal(p.CartValue))
	require.True(t, strings.HasPrefix(p.ShopImageURL, "/uploads/"))
	require.True(t, strings.HasSuffix(p.ShopImageURL, "-shop_front.png"))
	require.Empty(t, p.LicenceDocURL)
	require.Len(t, files.saved, 1)

	p2, err := svc.Save(ctx, ProfileInput{Name: "Home Kitchen", DeliveryCharge: "30", CartValue: "500"}, nil, upload("licence.pdf", "pdf"))
	require.NoError(t, err)
	require.Equal(t, p.ShopImageURL, p2.ShopImageURL)
	require.NotEmpty(t, p2.LicenceDocURL)
	require.True(t, decimal.NewFromInt(30).Equal(p2.DeliveryCharge))
	require.Len(t, repo.rows, 2)

	cur, err := svc.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, p2.ID, cur.ID)
}

func TestSaveRejectsBadInput(t *testing.T) {
	svc := NewService(&stubRepo{}, &memFiles{saved: map[string][]byte{}}, 4)
	ctx := context.Background()

	_, err := svc.Save(ctx, ProfileInput{DeliveryCharge: "abc"}, nil, nil)
	require.ErrorIs(t, err, apperr.ErrValidation)
	_, err = svc.Save(ctx, ProfileInput{HandlingCharge: "-5"}, nil, nil)
	require.ErrorIs(t, err, apperr.ErrValidation)
	_, err = svc.Save(ctx, ProfileInput{}, upload("big.png", "too large"), nil)
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestDiskStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	ds, err := NewDiskStore(dir, "/uploads/")
	require.NoError(t, err)

	url, err := ds.Put(context.Background(), "a.txt", bytes.NewBufferString("hello"))
	require.NoError(t, err)
	require.Equal(t, "/uploads/a.txt", url)

	b, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	require.Equal(t, "hello", string(b))
}

func TestStoredName(t *testing.T) {
	n := storedName(`C:\docs\my licence.pdf`)
	require.True(t, strings.HasSuffix(n, "-my_licence.pdf"))
	require.NotContains(t, n, "/")
	require.True(t, strings.HasSuffix(storedName(""), "-upload"))
}
