package uuidgen

import (
	"github.com/google/uuid"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/contract"
)

// Generator issues uuid-v4 identifiers.
type Generator struct{}

var _ contract.IUUIDGenerator = (*Generator)(nil)

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) NewUUID() string {
	return uuid.New().String()
}
