// Package bank carries the bank reference list used by the income import
// flow to resolve free-text bank names on collection rows.
package bank

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("bank not found")

type Bank struct {
	ID        uuid.UUID
	Name      string
	Code      string
	CreatedAt time.Time
}

type Repository interface {
	GetAll(ctx context.Context) ([]Bank, error)
	GetByID(ctx context.Context, id uuid.UUID) (Bank, error)
	Create(ctx context.Context, b Bank) (Bank, error)
}
