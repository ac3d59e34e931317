package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aseguralo/backoffice/modules/brokerage/domain/aggregates/client"
	"github.com/aseguralo/backoffice/modules/brokerage/domain/aggregates/policy"
	"github.com/aseguralo/backoffice/modules/importing/executor"
)

// ImportStore adapts the brokerage repositories to the executor's
// record-creation capability.
type ImportStore struct {
	clients  client.Repository
	policies policy.Repository
}

func NewImportStore(clients client.Repository, policies policy.Repository) *ImportStore {
	return &ImportStore{clients: clients, policies: policies}
}

func (s *ImportStore) CreateClient(ctx context.Context, rec executor.ClientRecord) (string, error) {
	c := client.New(rec.FirstName, rec.LastName, rec.IDType, rec.IDNumber).
		WithContact(rec.Email, rec.Phone).
		WithBirthDate(parseISODate(rec.BirthDate)).
		WithAddress(rec.Address)
	created, err := s.clients.Create(ctx, c)
	if err != nil {
		return "", err
	}
	return created.ID().String(), nil
}

func (s *ImportStore) CreatePolicy(ctx context.Context, rec executor.PolicyRecord) (string, error) {
	p := policy.New(rec.Number, parseUUID(rec.ClientID)).
		WithInsurer(parseUUID(rec.InsurerID), rec.InsurerName).
		WithProduct(parseUUID(rec.ProductID), rec.ProductName).
		WithTerm(parseISODate(rec.StartDate), parseISODate(rec.EndDate)).
		WithAmounts(rec.Premium, rec.Coverage, rec.Deductible).
		WithTerms(rec.Frequency, rec.Status).
		WithAdvisors(parseUUID(rec.AdvisorID), rec.AdvisorName, parseUUID(rec.CoAdvisorID), rec.CoAdvisorName).
		WithNotes(rec.Notes)
	created, err := s.policies.Create(ctx, p)
	if err != nil {
		return "", err
	}
	return created.ID().String(), nil
}

func (s *ImportStore) CreateBeneficiary(ctx context.Context, rec executor.BeneficiaryRecord) (string, error) {
	policyID := parseUUID(rec.PolicyID)
	b := policy.Beneficiary{
		FirstName:            rec.FirstName,
		LastName:             rec.LastName,
		IdentificationNumber: rec.IDNumber,
		Relationship:         rec.Relationship,
		BirthDate:            parseISODate(rec.BirthDate),
		Percentage:           rec.Percentage,
	}
	if err := s.policies.AddBeneficiary(ctx, policyID, b); err != nil {
		return "", err
	}
	return rec.PolicyID, nil
}

func (s *ImportStore) LookupClientIDs(ctx context.Context, idNumbers []string) (map[string]string, error) {
	all, err := s.clients.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	wanted := make(map[string]bool, len(idNumbers))
	for _, n := range idNumbers {
		wanted[n] = true
	}
	out := map[string]string{}
	for _, c := range all {
		if key := c.NormalizedIdentification(); wanted[key] {
			out[key] = c.ID().String()
		}
	}
	return out, nil
}

func (s *ImportStore) LookupPolicyIDs(ctx context.Context, numbers []string) (map[string]string, error) {
	all, err := s.policies.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	wanted := make(map[string]bool, len(numbers))
	for _, n := range numbers {
		wanted[n] = true
	}
	out := map[string]string{}
	for _, p := range all {
		if key := p.NaturalKey(); wanted[key] {
			out[key] = p.ID().String()
		}
	}
	return out, nil
}

func parseUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func parseISODate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}
