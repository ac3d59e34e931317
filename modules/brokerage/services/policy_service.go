package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aseguralo/backoffice/modules/brokerage/domain/aggregates/policy"
	"github.com/aseguralo/backoffice/pkg/serrors"
)

type PolicyService struct {
	repo policy.Repository
}

func NewPolicyService(repo policy.Repository) *PolicyService {
	return &PolicyService{repo: repo}
}

func (s *PolicyService) GetPaginated(ctx context.Context, params *policy.FindParams) ([]policy.Policy, int64, error) {
	if params != nil {
		params.Q = strings.TrimSpace(params.Q)
	}
	return s.repo.GetPaginated(ctx, params)
}

func (s *PolicyService) GetByID(ctx context.Context, id uuid.UUID) (policy.Policy, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PolicyService) GetByNumber(ctx context.Context, number string) (policy.Policy, error) {
	return s.repo.GetByNumber(ctx, number)
}

func (s *PolicyService) Create(ctx context.Context, dto *policy.CreateDTO) (policy.Policy, error) {
	if dto == nil {
		return policy.Policy{}, serrors.NewError("invalid_input", "missing policy payload", "")
	}
	if messages, ok := dto.Ok(); !ok {
		return policy.Policy{}, serrors.NewError("invalid_input", "policy payload failed validation", joinMessages(messages))
	}

	clientID, err := uuid.Parse(dto.ClientID)
	if err != nil {
		return policy.Policy{}, serrors.NewError("invalid_input", "client is invalid", dto.ClientID)
	}

	entity := policy.New(dto.Number, clientID).
		WithTerms(dto.PaymentFrequency, dto.Status).
		WithNotes(dto.Notes)
	if id, err := uuid.Parse(dto.InsurerID); err == nil {
		entity = entity.WithInsurer(id, "")
	}
	if id, err := uuid.Parse(dto.ProductID); err == nil {
		entity = entity.WithProduct(id, "")
	}
	start := parseDate(dto.StartDate)
	end := parseDate(dto.EndDate)
	if !start.IsZero() || !end.IsZero() {
		entity = entity.WithTerm(start, end)
	}
	entity = entity.WithAmounts(parseAmount(dto.Premium), parseAmount(dto.CoverageAmount), parseAmount(dto.Deductible))
	return s.repo.Create(ctx, entity)
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseAmount(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
