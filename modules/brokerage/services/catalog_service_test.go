package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/aseguralo/backoffice/modules/brokerage/domain/entities/bank"
)

type mockBankRepo struct {
	banks []bank.Bank
}

func (m *mockBankRepo) GetAll(ctx context.Context) ([]bank.Bank, error) {
	return m.banks, nil
}

func (m *mockBankRepo) GetByID(ctx context.Context, id uuid.UUID) (bank.Bank, error) {
	for _, b := range m.banks {
		if b.ID == id {
			return b, nil
		}
	}
	return bank.Bank{}, bank.ErrNotFound
}

func (m *mockBankRepo) Create(ctx context.Context, b bank.Bank) (bank.Bank, error) {
	m.banks = append(m.banks, b)
	return b, nil
}

func TestCatalogService_ResolveBank(t *testing.T) {
	mercantil := uuid.New()
	banesco := uuid.New()
	svc := NewCatalogService(nil, nil, nil, &mockBankRepo{banks: []bank.Bank{
		{ID: mercantil, Name: "Banco Mercantil", Code: "0105"},
		{ID: banesco, Name: "Banesco", Code: "0134"},
	}})

	ref, err := svc.ResolveBank(context.Background(), "mercantil")
	require.NoError(t, err)
	require.True(t, ref.Resolved())
	require.Equal(t, mercantil.String(), ref.ResolvedID)

	ref, err = svc.ResolveBank(context.Background(), "Banco del Tesoro")
	require.NoError(t, err)
	require.False(t, ref.Resolved())
	require.Equal(t, "Banco del Tesoro", ref.RawLabel)
}
