package client

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aseguralo/backoffice/pkg/constants"
	"github.com/aseguralo/backoffice/pkg/serrors"
)

type CreateDTO struct {
	FirstName            string `json:"first_name" validate:"required"`
	LastName             string `json:"last_name"`
	IdentificationType   string `json:"identification_type"`
	IdentificationNumber string `json:"identification_number" validate:"required"`
	Email                string `json:"email" validate:"omitempty,email"`
	Phone                string `json:"phone"`
	BirthDate            string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Address              string `json:"address"`
}

func (d *CreateDTO) Normalize() {
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.IdentificationType = strings.TrimSpace(d.IdentificationType)
	d.IdentificationNumber = strings.TrimSpace(d.IdentificationNumber)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	d.BirthDate = strings.TrimSpace(d.BirthDate)
	d.Address = strings.TrimSpace(d.Address)
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
	case "FirstName":
		return "first name"
	case "IdentificationNumber":
		return "identification number"
	case "Email":
		return "email"
	case "BirthDate":
		return "birth date"
	default:
		return field
	}
}
