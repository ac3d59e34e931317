package policy

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aseguralo/backoffice/pkg/constants"
	"github.com/aseguralo/backoffice/pkg/serrors"
)

type CreateDTO struct {
	Number           string `json:"number" validate:"required"`
	ClientID         string `json:"client_id" validate:"required,uuid"`
	InsurerID        string `json:"insurer_id" validate:"omitempty,uuid"`
	ProductID        string `json:"product_id" validate:"omitempty,uuid"`
	StartDate        string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate          string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Premium          string `json:"premium" validate:"omitempty,numeric"`
	CoverageAmount   string `json:"coverage_amount" validate:"omitempty,numeric"`
	Deductible       string `json:"deductible" validate:"omitempty,numeric"`
	PaymentFrequency string `json:"payment_frequency"`
	Status           string `json:"status"`
	Notes            string `json:"notes"`
}

func (d *CreateDTO) Normalize() {
	d.Number = strings.TrimSpace(d.Number)
	d.ClientID = strings.TrimSpace(d.ClientID)
	d.InsurerID = strings.TrimSpace(d.InsurerID)
	d.ProductID = strings.TrimSpace(d.ProductID)
	d.StartDate = strings.TrimSpace(d.StartDate)
	d.EndDate = strings.TrimSpace(d.EndDate)
	d.Premium = strings.TrimSpace(d.Premium)
	d.CoverageAmount = strings.TrimSpace(d.CoverageAmount)
	d.Deductible = strings.TrimSpace(d.Deductible)
	d.PaymentFrequency = strings.TrimSpace(d.PaymentFrequency)
	d.Status = strings.TrimSpace(d.Status)
	d.Notes = strings.TrimSpace(d.Notes)
}

func (d *CreateDTO) Ok() (map[string]string, bool) {
	d.Normalize()

	errs := constants.Validate.Struct(d)
	if errs == nil {
		return map[string]string{}, true
	}

	validationErrors := make(serrors.ValidationErrors)
	for field, err := range serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), fieldLabel) {
		validationErrors[field] = err
	}
	return validationErrors.Messages(), false
}

func fieldLabel(field string) string {
	switch field {
	case "Number":
		return "policy number"
	case "ClientID":
		return "client"
	case "InsurerID":
		return "insurer"
	case "ProductID":
		return "product"
	case "StartDate":
		return "start date"
	case "EndDate":
		return "end date"
	case "Premium":
		return "premium"
	case "CoverageAmount":
		return "coverage amount"
	case "Deductible":
		return "deductible"
	default:
		return field
	}
}
