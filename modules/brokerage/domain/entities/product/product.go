package product

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("product not found")

// Product always belongs to one insurer; the resolver uses that ownership to
// scope name matching.
type Product struct {
	ID        uuid.UUID
	InsurerID uuid.UUID
	Name      string
	Active    bool
	CreatedAt time.Time
}

type Repository interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByInsurer(ctx context.Context, insurerID uuid.UUID) ([]Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (Product, error)
	Create(ctx context.Context, p Product) (Product, error)
}
