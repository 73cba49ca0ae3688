//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"coshare-scheduler/internal/domain/user"
	"coshare-scheduler/internal/pkg/config"
	"coshare-scheduler/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const defaultTokenTTL = 15 * time.Minute

type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret, cfg.Issuer, cfg.Leeway)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, role, defaultTokenTTL)
	require.NoError(t, err)
	return token
}

// issued an hour in the past, well beyond any configured leeway
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, role, -time.Hour)
	require.NoError(t, err)
	return token
}
