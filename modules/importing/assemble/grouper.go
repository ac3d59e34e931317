// Package assemble folds raw sheet rows into logical policy entities keyed by
// their natural key (the policy number), with nested beneficiary sub-entities.
package assemble

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aseguralo/backoffice/modules/importing/mapping"
	"github.com/aseguralo/backoffice/modules/importing/normalize"
	"github.com/aseguralo/backoffice/pkg/spreadsheet"
	"github.com/aseguralo/backoffice/pkg/textfold"
)

// Client carries the root-level policy-holder fields of an entity.
type Client struct {
	FirstName string
	LastName  string
	IDType    string
	IDNumber  string
	Email     string
	Phone     string
	BirthDate normalize.Date
	Address   string
}

// PolicyFields carries the root-level policy fields of an entity.
type PolicyFields struct {
	Number     string
	Insurer    string
	Product    string
	StartDate  normalize.Date
	EndDate    normalize.Date
	Premium    decimal.Decimal
	Frequency  string
	Coverage   decimal.Decimal
	Deductible decimal.Decimal
	Status     string
	Advisor    string
	CoAdvisor  string
	Notes      string
}

// Beneficiary is one repeated sub-entity extracted from a group slot.
type Beneficiary struct {
	FirstName     string
	LastName      string
	IDNumber      string
	Relationship  string
	BirthDate     normalize.Date
	PercentageRaw string
	Percentage    float64
	PercentageOK  bool
}

// Policy is one logical entity: all raw rows sharing a normalized natural key
// folded together.
type Policy struct {
	// NaturalKey is the lowercased, trimmed policy number.
	NaturalKey string
	// FirstRow is the zero-based index of the group's first data row.
	FirstRow      int
	Client        Client
	Policy        PolicyFields
	Beneficiaries []Beneficiary
}

// Group collapses the sheet's rows into one Policy per distinct normalized
// natural key. Root fields come from the first row of each group; beneficiary
// slots are collected from every row of the group. Rows with no resolvable
// natural key are dropped; the second return is how many were.
func Group(s spreadsheet.Sheet, m *mapping.Mappings) ([]Policy, int) {
	keyHeader, hasKey := m.RootHeader(mapping.FieldPolicyNumber)
	if !hasKey {
		return nil, len(s.Rows)
	}

	root := func(row []string, field mapping.Field) string {
		header, ok := m.RootHeader(field)
		if !ok {
			return ""
		}
		return strings.TrimSpace(s.Cell(row, header))
	}
	child := func(row []string, field mapping.Field, group int) string {
		header, ok := m.ChildHeader(field, group)
		if !ok {
			return ""
		}
		return strings.TrimSpace(s.Cell(row, header))
	}

	var (
		order    []string
		byKey    = map[string]*Policy{}
		skipped  int
		groupIdx = m.GroupIndexes()
	)

	for i, row := range s.Rows {
		key := textfold.Key(s.Cell(row, keyHeader))
		if key == "" {
			skipped++
			continue
		}

		entity, seen := byKey[key]
		if !seen {
			entity = &Policy{
				NaturalKey: key,
				FirstRow:   i,
				Client: Client{
					FirstName: root(row, mapping.FieldClientFirstName),
					LastName:  root(row, mapping.FieldClientLastName),
					IDType:    normalize.IDType(root(row, mapping.FieldClientIDType)),
					IDNumber:  root(row, mapping.FieldClientIDNumber),
					Email:     root(row, mapping.FieldClientEmail),
					Phone:     root(row, mapping.FieldClientPhone),
					BirthDate: normalize.ParseDate(root(row, mapping.FieldClientBirthDate)),
					Address:   root(row, mapping.FieldClientAddress),
				},
				Policy: PolicyFields{
					Number:     root(row, mapping.FieldPolicyNumber),
					Insurer:    root(row, mapping.FieldInsurer),
					Product:    root(row, mapping.FieldProduct),
					StartDate:  normalize.ParseDate(root(row, mapping.FieldStartDate)),
					EndDate:    normalize.ParseDate(root(row, mapping.FieldEndDate)),
					Premium:    normalize.Money(root(row, mapping.FieldPremium)),
					Frequency:  normalize.PaymentFrequency(root(row, mapping.FieldFrequency)),
					Coverage:   normalize.Money(root(row, mapping.FieldCoverage)),
					Deductible: normalize.Money(root(row, mapping.FieldDeductible)),
					Status:     normalize.PolicyStatus(root(row, mapping.FieldStatus)),
					Advisor:    root(row, mapping.FieldAdvisor),
					CoAdvisor:  root(row, mapping.FieldCoAdvisor),
					Notes:      root(row, mapping.FieldNotes),
				},
			}
			byKey[key] = entity
			order = append(order, key)
		}
		// Duplicate root values on later rows of the group are ignored;
		// beneficiaries accumulate from every row.
		for _, g := range groupIdx {
			b := Beneficiary{
				FirstName:     child(row, mapping.FieldBeneficiaryFirstName, g),
				LastName:      child(row, mapping.FieldBeneficiaryLastName, g),
				IDNumber:      child(row, mapping.FieldBeneficiaryIDNumber, g),
				Relationship:  normalize.Relationship(child(row, mapping.FieldBeneficiaryRelationship, g)),
				BirthDate:     normalize.ParseDate(child(row, mapping.FieldBeneficiaryBirthDate, g)),
				PercentageRaw: child(row, mapping.FieldBeneficiaryPercentage, g),
			}
			if b.FirstName == "" && b.LastName == "" {
				continue
			}
			b.Percentage, b.PercentageOK = normalize.Number(b.PercentageRaw)
			entity.Beneficiaries = append(entity.Beneficiaries, b)
		}
	}

	out := make([]Policy, 0, len(order))
	for _, key := range order {
		out = append(out, *byKey[key])
	}
	return out, skipped
}
