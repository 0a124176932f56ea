package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsMatchesByKind(t *testing.T) {
	err := NotFound("order not found")
	require.True(t, errors.Is(err, ErrNotFound))
	require.False(t, errors.Is(err, ErrValidation))

	wrapped := fmt.Errorf("load order: %w", err)
	require.True(t, errors.Is(wrapped, ErrNotFound))
	require.Equal(t, "load order: order not found", wrapped.Error())
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("cart is empty"), http.StatusBadRequest},
		{Auth("invalid credentials"), http.StatusUnauthorized},
		{Unauthorized("login required"), http.StatusUnauthorized},
		{Forbidden("forbidden"), http.StatusForbidden},
		{NotFound("missing"), http.StatusNotFound},
		{State("cannot update order with status: %s", "Delivered"), http.StatusConflict},
		{Storage(errors.New("connection refused")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestStorageKeepsClassifiedErrors(t *testing.T) {
	nf := NotFound("user not found")
	require.Same(t, nf, Storage(nf))
	require.Nil(t, Storage(nil))

	raw := errors.New("duplicate key")
	st := Storage(raw)
	require.Equal(t, "duplicate key", st.Error())
	require.ErrorIs(t, st, raw)
	require.Equal(t, KindStorage, KindOf(st))
}
