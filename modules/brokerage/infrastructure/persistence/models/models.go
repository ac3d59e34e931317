package models

import "github.com/jackc/pgx/v5/pgtype"

type Client struct {
	ID                   pgtype.UUID
	FirstName            string
	LastName             string
	IdentificationType   string
	IdentificationNumber string
	Email                string
	Phone                string
	BirthDate            pgtype.Date
	Address              string
	CreatedAt            pgtype.Timestamptz
	UpdatedAt            pgtype.Timestamptz
}

type Policy struct {
	ID            pgtype.UUID
	Number        string
	ClientID      pgtype.UUID
	InsurerID     pgtype.UUID
	InsurerName   string
	ProductID     pgtype.UUID
	ProductName   string
	StartDate     pgtype.Date
	EndDate       pgtype.Date
	Premium       pgtype.Numeric
	Frequency     string
	Coverage      pgtype.Numeric
	Deductible    pgtype.Numeric
	Status        string
	AdvisorID     pgtype.UUID
	AdvisorName   string
	CoAdvisorID   pgtype.UUID
	CoAdvisorName string
	Notes         string
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type Beneficiary struct {
	ID                   pgtype.UUID
	PolicyID             pgtype.UUID
	FirstName            string
	LastName             string
	IdentificationNumber string
	Relationship         string
	BirthDate            pgtype.Date
	Percentage           float64
	CreatedAt            pgtype.Timestamptz
}

type Insurer struct {
	ID        pgtype.UUID
	Name      string
	Active    bool
	CreatedAt pgtype.Timestamptz
}

type Product struct {
	ID        pgtype.UUID
	InsurerID pgtype.UUID
	Name      string
	Active    bool
	CreatedAt pgtype.Timestamptz
}

type Advisor struct {
	ID        pgtype.UUID
	Name      string
	Active    bool
	CreatedAt pgtype.Timestamptz
}

type Bank struct {
	ID        pgtype.UUID
	Name      string
	Code      string
	CreatedAt pgtype.Timestamptz
}
