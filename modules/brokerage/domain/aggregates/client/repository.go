package client

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound            = errors.New("client not found")
	ErrIdentificationTaken = errors.New("identification number already registered")
)

type FindParams struct {
	Q      string
	Limit  int
	Offset int
}

type Repository interface {
	GetPaginated(ctx context.Context, params *FindParams) ([]Client, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (Client, error)
	GetByIdentification(ctx context.Context, identificationNumber string) (Client, error)
	GetAll(ctx context.Context) ([]Client, error)
	Create(ctx context.Context, c Client) (Client, error)
}
