package contract

import (
	"context"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
)

// IInstituteRepository persists institute accounts and their denormalized
// stats block.
type IInstituteRepository interface {
	CreateInstitute(ctx context.Context, institute *entity.Institute) error
	GetInstituteByID(ctx context.Context, id string) (*entity.Institute, error)
	GetInstituteByEmail(ctx context.Context, email string) (*entity.Institute, error)
	UpdateInstitute(ctx context.Context, id string, updates map[string]interface{}) (*entity.Institute, error)
	UpdateInstitutePassword(ctx context.Context, id string, hashedPassword string) error

	// UpdateRatingStats unconditionally overwrites stats.rating,
	// stats.reviews_count and stats.last_updated_at. Last writer wins.
	UpdateRatingStats(ctx context.Context, id string, rating float64, reviewsCount int) error
	// IncrementCounter adjusts one of the stats counters by delta.
	IncrementCounter(ctx context.Context, id string, field string, delta int) error
	CountInstitutes(ctx context.Context) (int64, error)
}
