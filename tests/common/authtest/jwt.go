//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"library-backend/internal/domain/account"
	"library-backend/internal/pkg/clock"
	"library-backend/internal/pkg/config"
	"library-backend/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) Service() *jwt.Service {
	return jwt.NewService(h.cfg.Secret, h.cfg.Lifetime(), clock.NewRealClock())
}

func (h *JWTHelper) GenerateToken(t *testing.T, email string, role account.Role, id uuid.UUID) string {
	t.Helper()
	token, err := h.Service().Issue(email, role, id)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs with a clock set two lifetimes in the past.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, email string, role account.Role, id uuid.UUID) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-2 * h.cfg.Lifetime()))
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Lifetime(), past).Issue(email, role, id)
	require.NoError(t, err)
	return token
}
