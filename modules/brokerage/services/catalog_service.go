package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/aseguralo/backoffice/modules/brokerage/domain/entities/advisor"
	"github.com/aseguralo/backoffice/modules/brokerage/domain/entities/bank"
	"github.com/aseguralo/backoffice/modules/brokerage/domain/entities/insurer"
	"github.com/aseguralo/backoffice/modules/brokerage/domain/entities/product"
	"github.com/aseguralo/backoffice/modules/importing/resolve"
)

// CatalogService exposes the reference lists (insurers, products, advisors,
// banks) consumed by the import flows and review screens.
type CatalogService struct {
	insurers insurer.Repository
	products product.Repository
	advisors advisor.Repository
	banks    bank.Repository
}

func NewCatalogService(
	insurers insurer.Repository,
	products product.Repository,
	advisors advisor.Repository,
	banks bank.Repository,
) *CatalogService {
	return &CatalogService{insurers: insurers, products: products, advisors: advisors, banks: banks}
}

func (s *CatalogService) Insurers(ctx context.Context) ([]insurer.Insurer, error) {
	return s.insurers.GetAll(ctx)
}

func (s *CatalogService) Products(ctx context.Context) ([]product.Product, error) {
	return s.products.GetAll(ctx)
}

func (s *CatalogService) ProductsByInsurer(ctx context.Context, insurerID uuid.UUID) ([]product.Product, error) {
	return s.products.GetByInsurer(ctx, insurerID)
}

func (s *CatalogService) ActiveAdvisors(ctx context.Context) ([]advisor.Advisor, error) {
	return s.advisors.GetActive(ctx)
}

func (s *CatalogService) Banks(ctx context.Context) ([]bank.Bank, error) {
	return s.banks.GetAll(ctx)
}

// ResolveBank matches a free-text bank name from an income row against the
// bank list, with the same matching rules the policy import uses.
func (s *CatalogService) ResolveBank(ctx context.Context, name string) (resolve.Reference, error) {
	banks, err := s.banks.GetAll(ctx)
	if err != nil {
		return resolve.Reference{RawLabel: name}, err
	}
	candidates := make([]resolve.NamedRef, 0, len(banks))
	for _, b := range banks {
		candidates = append(candidates, resolve.NamedRef{ID: b.ID.String(), Name: b.Name})
	}
	return resolve.MatchName(name, candidates), nil
}
