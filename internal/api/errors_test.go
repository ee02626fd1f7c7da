package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"testing"

	"restaurant_system/internal/domain"

	"github.com/stretchr/testify/assert"
)

func itoa(id uint) string { return strconv.FormatUint(uint64(id), 10) }

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.Validationf("bad"), http.StatusBadRequest},
		{domain.NotFoundf("gone"), http.StatusNotFound},
		{domain.InvalidTransitionf("no"), http.StatusUnprocessableEntity},
		{domain.Authorizationf("who"), http.StatusForbidden},
		{domain.ServiceUnavailablef("off"), http.StatusServiceUnavailable},
		{domain.Conflictf("race"), http.StatusConflict},
		{fmt.Errorf("wrapped: %w", domain.NotFoundf("gone")), http.StatusNotFound},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}
