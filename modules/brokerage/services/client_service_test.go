package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/aseguralo/backoffice/modules/brokerage/domain/aggregates/client"
)

type mockClientRepo struct {
	created      []client.Client
	calledCreate bool
}

func (m *mockClientRepo) GetPaginated(ctx context.Context, params *client.FindParams) ([]client.Client, int64, error) {
	return nil, 0, nil
}

func (m *mockClientRepo) GetByID(ctx context.Context, id uuid.UUID) (client.Client, error) {
	return client.Client{}, client.ErrNotFound
}

func (m *mockClientRepo) GetByIdentification(ctx context.Context, identificationNumber string) (client.Client, error) {
	return client.Client{}, client.ErrNotFound
}

func (m *mockClientRepo) GetAll(ctx context.Context) ([]client.Client, error) {
	return m.created, nil
}

func (m *mockClientRepo) Create(ctx context.Context, c client.Client) (client.Client, error) {
	m.calledCreate = true
	m.created = append(m.created, c)
	return c, nil
}

func TestClientService_Create(t *testing.T) {
	repo := &mockClientRepo{}
	svc := NewClientService(repo)

	created, err := svc.Create(context.Background(), &client.CreateDTO{
		FirstName:            "  María ",
		LastName:             "Pérez",
		IdentificationNumber: "V-12345678",
		Email:                "maria@example.com",
		BirthDate:            "1990-06-15",
	})
	require.NoError(t, err)
	require.True(t, repo.calledCreate)
	require.Equal(t, "María", created.FirstName())
	require.Equal(t, "v12345678", created.NormalizedIdentification())
	require.Equal(t, time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC), created.BirthDate())
}

func TestClientService_CreateInvalid(t *testing.T) {
	repo := &mockClientRepo{}
	svc := NewClientService(repo)

	cases := []struct {
		name string
		dto  *client.CreateDTO
	}{
		{"nil payload", nil},
		{"missing identification", &client.CreateDTO{FirstName: "Ana"}},
		{"bad email", &client.CreateDTO{
			FirstName:            "Ana",
			IdentificationNumber: "V-1",
			Email:                "not-an-email",
		}},
		{"bad birth date", &client.CreateDTO{
			FirstName:            "Ana",
			IdentificationNumber: "V-1",
			BirthDate:            "15/06/1990",
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.dto)
			require.Error(t, err)
		})
	}
	require.False(t, repo.calledCreate, "repository should not be invoked on validation failure")
}
