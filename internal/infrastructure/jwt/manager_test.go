package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
	"github.com/Ganapati12/Edulists-sub001/internal/infrastructure/jwt"
)

func TestGenerateAndVerify(t *testing.T) {
	manager := jwt.NewManager("secret", time.Hour)

	token, err := manager.GenerateAccessToken("user-1", entity.RoleInstitute)
	require.NoError(t, err)

	claims, err := manager.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, entity.RoleInstitute, claims.Role)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestVerify_Expired(t *testing.T) {
	manager := jwt.NewManager("secret", -time.Minute)

	token, err := manager.GenerateAccessToken("user-1", entity.RoleUser)
	require.NoError(t, err)

	_, err = manager.VerifyToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	manager := jwt.NewManager("secret", time.Hour)
	other := jwt.NewManager("different-secret", time.Hour)

	token, err := other.GenerateAccessToken("user-1", entity.RoleUser)
	require.NoError(t, err)

	_, err = manager.VerifyToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
}

func TestVerify_Garbage(t *testing.T) {
	manager := jwt.NewManager("secret", time.Hour)

	_, err := manager.VerifyToken("definitely.not.a.token")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
}
