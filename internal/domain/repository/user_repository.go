package repository

import (
	"context"

	"tokohub/internal/domain/entity"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByIDs returns the users that exist, keyed by id. Missing ids are
	// simply absent from the map, not an error.
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error)
}
