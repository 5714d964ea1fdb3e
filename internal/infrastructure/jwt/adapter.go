package jwt

import (
	"github.com/Ganapati12/Edulists-sub001/internal/usecase"
)

// Manager satisfies the usecase-facing token service directly.
var _ usecase.JWTService = (*Manager)(nil)

// NewJWTService exposes the manager through the usecase.JWTService interface.
func NewJWTService(m *Manager) usecase.JWTService {
	return m
}
