package policy

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("policy not found")
	ErrNumberTaken = errors.New("policy number already registered")
)

type FindParams struct {
	Q        string
	ClientID uuid.UUID
	Limit    int
	Offset   int
}

type Repository interface {
	GetPaginated(ctx context.Context, params *FindParams) ([]Policy, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (Policy, error)
	GetByNumber(ctx context.Context, number string) (Policy, error)
	GetAll(ctx context.Context) ([]Policy, error)
	Create(ctx context.Context, p Policy) (Policy, error)
	AddBeneficiary(ctx context.Context, policyID uuid.UUID, b Beneficiary) error
}
