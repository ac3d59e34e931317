package policy

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aseguralo/backoffice/pkg/textfold"
)

// Beneficiary is a nested value object; it has no identity outside its
// policy.
type Beneficiary struct {
	FirstName            string
	LastName             string
	IdentificationNumber string
	Relationship         string
	BirthDate            time.Time
	Percentage           float64
}

// Policy is the aggregate root. Insurer, product and advisor references keep
// the free-text label alongside the optional resolved id so unmatched values
// survive an import for later operator review.
type Policy struct {
	id            uuid.UUID
	number        string
	clientID      uuid.UUID
	insurerID     uuid.UUID
	insurerName   string
	productID     uuid.UUID
	productName   string
	startDate     time.Time
	endDate       time.Time
	premium       decimal.Decimal
	frequency     string
	coverage      decimal.Decimal
	deductible    decimal.Decimal
	status        string
	advisorID     uuid.UUID
	advisorName   string
	coAdvisorID   uuid.UUID
	coAdvisorName string
	notes         string
	beneficiaries []Beneficiary
	createdAt     time.Time
	updatedAt     time.Time
}

func New(number string, clientID uuid.UUID) Policy {
	return Policy{
		number:   strings.TrimSpace(number),
		clientID: clientID,
	}
}

func Hydrate(
	id uuid.UUID,
	number string,
	clientID uuid.UUID,
	insurerID uuid.UUID, insurerName string,
	productID uuid.UUID, productName string,
	startDate, endDate time.Time,
	premium, coverage, deductible decimal.Decimal,
	frequency, status string,
	advisorID uuid.UUID, advisorName string,
	coAdvisorID uuid.UUID, coAdvisorName string,
	notes string,
	beneficiaries []Beneficiary,
	createdAt, updatedAt time.Time,
) Policy {
	p := New(number, clientID)
	p.id = id
	p.insurerID = insurerID
	p.insurerName = strings.TrimSpace(insurerName)
	p.productID = productID
	p.productName = strings.TrimSpace(productName)
	p.startDate = startDate
	p.endDate = endDate
	p.premium = premium
	p.coverage = coverage
	p.deductible = deductible
	p.frequency = frequency
	p.status = status
	p.advisorID = advisorID
	p.advisorName = strings.TrimSpace(advisorName)
	p.coAdvisorID = coAdvisorID
	p.coAdvisorName = strings.TrimSpace(coAdvisorName)
	p.notes = strings.TrimSpace(notes)
	p.beneficiaries = beneficiaries
	p.createdAt = createdAt
	p.updatedAt = updatedAt
	return p
}

func (p Policy) WithInsurer(id uuid.UUID, name string) Policy {
	p.insurerID = id
	p.insurerName = strings.TrimSpace(name)
	return p
}

func (p Policy) WithProduct(id uuid.UUID, name string) Policy {
	p.productID = id
	p.productName = strings.TrimSpace(name)
	return p
}

func (p Policy) WithAdvisors(advisorID uuid.UUID, advisorName string, coAdvisorID uuid.UUID, coAdvisorName string) Policy {
	p.advisorID = advisorID
	p.advisorName = strings.TrimSpace(advisorName)
	p.coAdvisorID = coAdvisorID
	p.coAdvisorName = strings.TrimSpace(coAdvisorName)
	return p
}

func (p Policy) WithTerm(start, end time.Time) Policy {
	p.startDate = start
	p.endDate = end
	return p
}

func (p Policy) WithAmounts(premium, coverage, deductible decimal.Decimal) Policy {
	p.premium = premium
	p.coverage = coverage
	p.deductible = deductible
	return p
}

func (p Policy) WithTerms(frequency, status string) Policy {
	p.frequency = frequency
	p.status = status
	return p
}

func (p Policy) WithNotes(notes string) Policy {
	p.notes = strings.TrimSpace(notes)
	return p
}

func (p Policy) WithBeneficiaries(beneficiaries []Beneficiary) Policy {
	p.beneficiaries = beneficiaries
	return p
}

func (p Policy) ID() uuid.UUID               { return p.id }
func (p Policy) Number() string              { return p.number }
func (p Policy) ClientID() uuid.UUID         { return p.clientID }
func (p Policy) InsurerID() uuid.UUID        { return p.insurerID }
func (p Policy) InsurerName() string         { return p.insurerName }
func (p Policy) ProductID() uuid.UUID        { return p.productID }
func (p Policy) ProductName() string         { return p.productName }
func (p Policy) StartDate() time.Time        { return p.startDate }
func (p Policy) EndDate() time.Time          { return p.endDate }
func (p Policy) Premium() decimal.Decimal    { return p.premium }
func (p Policy) Frequency() string           { return p.frequency }
func (p Policy) Coverage() decimal.Decimal   { return p.coverage }
func (p Policy) Deductible() decimal.Decimal { return p.deductible }
func (p Policy) Status() string              { return p.status }
func (p Policy) AdvisorID() uuid.UUID        { return p.advisorID }
func (p Policy) AdvisorName() string         { return p.advisorName }
func (p Policy) CoAdvisorID() uuid.UUID      { return p.coAdvisorID }
func (p Policy) CoAdvisorName() string       { return p.coAdvisorName }
func (p Policy) Notes() string               { return p.notes }
func (p Policy) Beneficiaries() []Beneficiary {
	out := make([]Beneficiary, len(p.beneficiaries))
	copy(out, p.beneficiaries)
	return out
}
func (p Policy) CreatedAt() time.Time { return p.createdAt }
func (p Policy) UpdatedAt() time.Time { return p.updatedAt }
func (p Policy) IsZero() bool         { return p.id == uuid.Nil && p.number == "" }

// NaturalKey is the lookup key policies are deduplicated by.
func (p Policy) NaturalKey() string {
	return textfold.Key(p.number)
}
