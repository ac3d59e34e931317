package persistence

import (
	"context"

	"github.com/aseguralo/backoffice/modules/brokerage/domain/aggregates/client"
	"github.com/aseguralo/backoffice/modules/brokerage/domain/aggregates/policy"
	"github.com/aseguralo/backoffice/modules/brokerage/domain/entities/advisor"
	"github.com/aseguralo/backoffice/modules/brokerage/domain/entities/insurer"
	"github.com/aseguralo/backoffice/modules/brokerage/domain/entities/product"
	"github.com/aseguralo/backoffice/modules/importing/resolve"
)

// ReferenceLoader assembles the resolver's read-only reference lists from the
// brokerage repositories.
type ReferenceLoader struct {
	clients  client.Repository
	policies policy.Repository
	insurers insurer.Repository
	products product.Repository
	advisors advisor.Repository
}

func NewReferenceLoader(
	clients client.Repository,
	policies policy.Repository,
	insurers insurer.Repository,
	products product.Repository,
	advisors advisor.Repository,
) *ReferenceLoader {
	return &ReferenceLoader{
		clients:  clients,
		policies: policies,
		insurers: insurers,
		products: products,
		advisors: advisors,
	}
}

func (l *ReferenceLoader) LoadReferences(ctx context.Context) (resolve.References, error) {
	var refs resolve.References

	clients, err := l.clients.GetAll(ctx)
	if err != nil {
		return refs, err
	}
	for _, c := range clients {
		refs.Clients = append(refs.Clients, resolve.ExistingClient{
			ID:                   c.ID().String(),
			IdentificationNumber: c.IdentificationNumber(),
		})
	}

	policies, err := l.policies.GetAll(ctx)
	if err != nil {
		return refs, err
	}
	for _, p := range policies {
		refs.Policies = append(refs.Policies, resolve.ExistingPolicy{
			ID:     p.ID().String(),
			Number: p.Number(),
		})
	}

	insurers, err := l.insurers.GetAll(ctx)
	if err != nil {
		return refs, err
	}
	for _, ins := range insurers {
		refs.Insurers = append(refs.Insurers, resolve.NamedRef{ID: ins.ID.String(), Name: ins.Name})
	}

	products, err := l.products.GetAll(ctx)
	if err != nil {
		return refs, err
	}
	for _, p := range products {
		refs.Products = append(refs.Products, resolve.ProductRef{
			ID:        p.ID.String(),
			Name:      p.Name,
			InsurerID: p.InsurerID.String(),
		})
	}

	advisors, err := l.advisors.GetActive(ctx)
	if err != nil {
		return refs, err
	}
	for _, a := range advisors {
		refs.Advisors = append(refs.Advisors, resolve.NamedRef{ID: a.ID.String(), Name: a.Name})
	}

	return refs, nil
}
