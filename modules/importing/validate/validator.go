// Package validate applies required-field and format rules to assembled
// entities. Validation is total and idempotent: it returns verdicts, never
// errors, and has no side effects.
package validate

import (
	"fmt"

	"github.com/aseguralo/backoffice/modules/importing/assemble"
	"github.com/aseguralo/backoffice/modules/importing/mapping"
	"github.com/aseguralo/backoffice/modules/importing/normalize"
	"github.com/aseguralo/backoffice/pkg/constants"
)

// FieldError is one validation failure, naming the offending field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Verdict is the per-entity validation outcome.
type Verdict struct {
	Errors []FieldError `json:"errors"`
}

func (v Verdict) Valid() bool { return len(v.Errors) == 0 }

// Entities validates every entity against the canonical schema, aligned by
// index with the input.
func Entities(entities []assemble.Policy, defs []mapping.FieldDefinition) []Verdict {
	out := make([]Verdict, len(entities))
	for i, e := range entities {
		out[i] = Entity(e, defs)
	}
	return out
}

// Entity validates one entity.
func Entity(e assemble.Policy, defs []mapping.FieldDefinition) Verdict {
	var v Verdict
	add := func(field mapping.Field, msg string) {
		v.Errors = append(v.Errors, FieldError{Field: string(field), Message: msg})
	}

	for _, key := range mapping.RequiredFields(defs) {
		if rootValue(e, key) == "" {
			add(key, fmt.Sprintf("%s is required", mapping.FieldLabel(defs, key)))
		}
	}

	if e.Client.Email != "" {
		if err := constants.Validate.Var(e.Client.Email, "email"); err != nil {
			add(mapping.FieldClientEmail, fmt.Sprintf("%q is not a valid email address", e.Client.Email))
		}
	}

	checkDate := func(field mapping.Field, d normalize.Date) {
		if d.Provided() && !d.Parsed() {
			add(field, fmt.Sprintf("%q is not a recognized date", d.Raw))
		}
	}
	checkDate(mapping.FieldClientBirthDate, e.Client.BirthDate)
	checkDate(mapping.FieldStartDate, e.Policy.StartDate)
	checkDate(mapping.FieldEndDate, e.Policy.EndDate)

	for i, b := range e.Beneficiaries {
		prefix := fmt.Sprintf("beneficiary %d", i+1)
		if b.BirthDate.Provided() && !b.BirthDate.Parsed() {
			add(mapping.FieldBeneficiaryBirthDate, fmt.Sprintf("%s: %q is not a recognized date", prefix, b.BirthDate.Raw))
		}
		if b.PercentageRaw != "" {
			switch {
			case !b.PercentageOK:
				add(mapping.FieldBeneficiaryPercentage, fmt.Sprintf("%s: %q is not a number", prefix, b.PercentageRaw))
			case b.Percentage < 0 || b.Percentage > 100:
				add(mapping.FieldBeneficiaryPercentage, fmt.Sprintf("%s: percentage must be between 0 and 100", prefix))
			}
		}
	}

	return v
}

func rootValue(e assemble.Policy, field mapping.Field) string {
	switch field {
	case mapping.FieldClientFirstName:
		return e.Client.FirstName
	case mapping.FieldClientLastName:
		return e.Client.LastName
	case mapping.FieldClientIDType:
		return e.Client.IDType
	case mapping.FieldClientIDNumber:
		return e.Client.IDNumber
	case mapping.FieldClientEmail:
		return e.Client.Email
	case mapping.FieldClientPhone:
		return e.Client.Phone
	case mapping.FieldClientBirthDate:
		return e.Client.BirthDate.Raw
	case mapping.FieldClientAddress:
		return e.Client.Address
	case mapping.FieldPolicyNumber:
		return e.Policy.Number
	case mapping.FieldInsurer:
		return e.Policy.Insurer
	case mapping.FieldProduct:
		return e.Policy.Product
	case mapping.FieldStartDate:
		return e.Policy.StartDate.Raw
	case mapping.FieldEndDate:
		return e.Policy.EndDate.Raw
	case mapping.FieldFrequency:
		return e.Policy.Frequency
	case mapping.FieldStatus:
		return e.Policy.Status
	case mapping.FieldAdvisor:
		return e.Policy.Advisor
	case mapping.FieldCoAdvisor:
		return e.Policy.CoAdvisor
	case mapping.FieldNotes:
		return e.Policy.Notes
	}
	return ""
}
