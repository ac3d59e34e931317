package persistence

import (
	"github.com/aseguralo/backoffice/modules/brokerage/domain/aggregates/client"
	"github.com/aseguralo/backoffice/modules/brokerage/domain/aggregates/policy"
	"github.com/aseguralo/backoffice/modules/brokerage/domain/entities/advisor"
	"github.com/aseguralo/backoffice/modules/brokerage/domain/entities/bank"
	"github.com/aseguralo/backoffice/modules/brokerage/domain/entities/insurer"
	"github.com/aseguralo/backoffice/modules/brokerage/domain/entities/product"
	"github.com/aseguralo/backoffice/modules/brokerage/infrastructure/persistence/models"
)

func toDomainClient(row models.Client) client.Client {
	return client.Hydrate(
		uuidValue(row.ID),
		row.FirstName,
		row.LastName,
		row.IdentificationType,
		row.IdentificationNumber,
		row.Email,
		row.Phone,
		dateValue(row.BirthDate),
		row.Address,
		timeValue(row.CreatedAt),
		timeValue(row.UpdatedAt),
	)
}

func toDomainPolicy(row models.Policy, beneficiaries []models.Beneficiary) policy.Policy {
	out := make([]policy.Beneficiary, 0, len(beneficiaries))
	for _, b := range beneficiaries {
		out = append(out, toDomainBeneficiary(b))
	}
	return policy.Hydrate(
		uuidValue(row.ID),
		row.Number,
		uuidValue(row.ClientID),
		uuidValue(row.InsurerID), row.InsurerName,
		uuidValue(row.ProductID), row.ProductName,
		dateValue(row.StartDate), dateValue(row.EndDate),
		decimalValue(row.Premium), decimalValue(row.Coverage), decimalValue(row.Deductible),
		row.Frequency, row.Status,
		uuidValue(row.AdvisorID), row.AdvisorName,
		uuidValue(row.CoAdvisorID), row.CoAdvisorName,
		row.Notes,
		out,
		timeValue(row.CreatedAt),
		timeValue(row.UpdatedAt),
	)
}

func toDomainBeneficiary(row models.Beneficiary) policy.Beneficiary {
	return policy.Beneficiary{
		FirstName:            row.FirstName,
		LastName:             row.LastName,
		IdentificationNumber: row.IdentificationNumber,
		Relationship:         row.Relationship,
		BirthDate:            dateValue(row.BirthDate),
		Percentage:           row.Percentage,
	}
}

func toDomainInsurer(row models.Insurer) insurer.Insurer {
	return insurer.Insurer{
		ID:        uuidValue(row.ID),
		Name:      row.Name,
		Active:    row.Active,
		CreatedAt: timeValue(row.CreatedAt),
	}
}

func toDomainProduct(row models.Product) product.Product {
	return product.Product{
		ID:        uuidValue(row.ID),
		InsurerID: uuidValue(row.InsurerID),
		Name:      row.Name,
		Active:    row.Active,
		CreatedAt: timeValue(row.CreatedAt),
	}
}

func toDomainAdvisor(row models.Advisor) advisor.Advisor {
	return advisor.Advisor{
		ID:        uuidValue(row.ID),
		Name:      row.Name,
		Active:    row.Active,
		CreatedAt: timeValue(row.CreatedAt),
	}
}

func toDomainBank(row models.Bank) bank.Bank {
	return bank.Bank{
		ID:        uuidValue(row.ID),
		Name:      row.Name,
		Code:      row.Code,
		CreatedAt: timeValue(row.CreatedAt),
	}
}
