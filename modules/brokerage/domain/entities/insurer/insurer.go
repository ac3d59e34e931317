package insurer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("insurer not found")

type Insurer struct {
	ID        uuid.UUID
	Name      string
	Active    bool
	CreatedAt time.Time
}

type Repository interface {
	GetAll(ctx context.Context) ([]Insurer, error)
	GetByID(ctx context.Context, id uuid.UUID) (Insurer, error)
	Create(ctx context.Context, ins Insurer) (Insurer, error)
}
