package advisor

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("advisor not found")

type Advisor struct {
	ID        uuid.UUID
	Name      string
	Active    bool
	CreatedAt time.Time
}

type Repository interface {
	GetAll(ctx context.Context) ([]Advisor, error)
	GetActive(ctx context.Context) ([]Advisor, error)
	GetByID(ctx context.Context, id uuid.UUID) (Advisor, error)
	Create(ctx context.Context, a Advisor) (Advisor, error)
}
