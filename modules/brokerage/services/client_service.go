package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aseguralo/backoffice/modules/brokerage/domain/aggregates/client"
	"github.com/aseguralo/backoffice/pkg/serrors"
)

type ClientService struct {
	repo client.Repository
}

func NewClientService(repo client.Repository) *ClientService {
	return &ClientService{repo: repo}
}

func (s *ClientService) GetPaginated(ctx context.Context, params *client.FindParams) ([]client.Client, int64, error) {
	if params != nil {
		params.Q = strings.TrimSpace(params.Q)
	}
	return s.repo.GetPaginated(ctx, params)
}

func (s *ClientService) GetByID(ctx context.Context, id uuid.UUID) (client.Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ClientService) GetByIdentification(ctx context.Context, identificationNumber string) (client.Client, error) {
	return s.repo.GetByIdentification(ctx, identificationNumber)
}

func (s *ClientService) Create(ctx context.Context, dto *client.CreateDTO) (client.Client, error) {
	if dto == nil {
		return client.Client{}, serrors.NewError("invalid_input", "missing client payload", "")
	}
	if messages, ok := dto.Ok(); !ok {
		return client.Client{}, serrors.NewError("invalid_input", "client payload failed validation", joinMessages(messages))
	}

	entity := client.New(dto.FirstName, dto.LastName, dto.IdentificationType, dto.IdentificationNumber).
		WithContact(dto.Email, dto.Phone).
		WithAddress(dto.Address)
	if dto.BirthDate != "" {
		if t, err := time.Parse("2006-01-02", dto.BirthDate); err == nil {
			entity = entity.WithBirthDate(t)
		}
	}
	return s.repo.Create(ctx, entity)
}

func joinMessages(messages map[string]string) string {
	parts := make([]string, 0, len(messages))
	for field, msg := range messages {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}
