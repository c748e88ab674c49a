package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_UnwrapASentinela(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusBadRequest, ErrInvalidInput},
		{http.StatusUnprocessableEntity, ErrInvalidInput},
		{http.StatusConflict, ErrConflict},
		{http.StatusBadGateway, ErrUpstream},
	}
	for _, tc := range cases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			err := fmt.Errorf("api: listar productos: %w", &APIError{Status: tc.status})
			assert.True(t, errors.Is(err, tc.want))
			assert.True(t, IsStatus(err, tc.status))
		})
	}
}

func TestServerMessage(t *testing.T) {
	msg, ok := ServerMessage(fmt.Errorf("envuelto: %w", &APIError{Status: 400, Message: "Stock insuficiente"}))
	assert.True(t, ok)
	assert.Equal(t, "Stock insuficiente", msg)

	_, ok = ServerMessage(&APIError{Status: 500})
	assert.False(t, ok, "sin texto del servidor no hay mensaje")

	_, ok = ServerMessage(errors.New("red caída"))
	assert.False(t, ok)
}
