package client

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aseguralo/backoffice/pkg/textfold"
)

type Client struct {
	id                   uuid.UUID
	firstName            string
	lastName             string
	identificationType   string
	identificationNumber string
	email                string
	phone                string
	birthDate            time.Time
	address              string
	createdAt            time.Time
	updatedAt            time.Time
}

func New(firstName, lastName, identificationType, identificationNumber string) Client {
	return Client{
		firstName:            strings.TrimSpace(firstName),
		lastName:             strings.TrimSpace(lastName),
		identificationType:   strings.TrimSpace(identificationType),
		identificationNumber: strings.TrimSpace(identificationNumber),
	}
}

func Hydrate(
	id uuid.UUID,
	firstName, lastName, identificationType, identificationNumber string,
	email, phone string,
	birthDate time.Time,
	address string,
	createdAt, updatedAt time.Time,
) Client {
	c := New(firstName, lastName, identificationType, identificationNumber)
	c.id = id
	c.email = strings.TrimSpace(email)
	c.phone = strings.TrimSpace(phone)
	c.birthDate = birthDate
	c.address = strings.TrimSpace(address)
	c.createdAt = createdAt
	c.updatedAt = updatedAt
	return c
}

func (c Client) WithContact(email, phone string) Client {
	c.email = strings.TrimSpace(email)
	c.phone = strings.TrimSpace(phone)
	return c
}

func (c Client) WithBirthDate(birthDate time.Time) Client {
	c.birthDate = birthDate
	return c
}

func (c Client) WithAddress(address string) Client {
	c.address = strings.TrimSpace(address)
	return c
}

func (c Client) ID() uuid.UUID                { return c.id }
func (c Client) FirstName() string            { return c.firstName }
func (c Client) LastName() string             { return c.lastName }
func (c Client) IdentificationType() string   { return c.identificationType }
func (c Client) IdentificationNumber() string { return c.identificationNumber }
func (c Client) Email() string                { return c.email }
func (c Client) Phone() string                { return c.phone }
func (c Client) BirthDate() time.Time         { return c.birthDate }
func (c Client) Address() string              { return c.address }
func (c Client) CreatedAt() time.Time         { return c.createdAt }
func (c Client) UpdatedAt() time.Time         { return c.updatedAt }
func (c Client) IsZero() bool                 { return c.id == uuid.Nil && c.identificationNumber == "" }

// NormalizedIdentification is the lookup key clients are deduplicated by.
func (c Client) NormalizedIdentification() string {
	return textfold.Identification(c.identificationNumber)
}

func (c Client) FullName() string {
	return strings.TrimSpace(c.firstName + " " + c.lastName)
}
