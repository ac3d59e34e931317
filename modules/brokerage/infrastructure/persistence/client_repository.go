package persistence

import (
	"context"
	"errors"
	"strings"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aseguralo/backoffice/modules/brokerage/domain/aggregates/client"
	"github.com/aseguralo/backoffice/modules/brokerage/infrastructure/persistence/models"
	"github.com/aseguralo/backoffice/pkg/composables"
	"github.com/aseguralo/backoffice/pkg/repo"
	"github.com/aseguralo/backoffice/pkg/textfold"
)

const clientColumns = `
	id, first_name, last_name, identification_type, identification_number,
	email, phone, birth_date, address, created_at, updated_at`

type ClientRepository struct{}

func NewClientRepository() client.Repository {
	return &ClientRepository{}
}

func (r *ClientRepository) GetPaginated(ctx context.Context, params *client.FindParams) ([]client.Client, int64, error) {
	if params == nil {
		params = &client.FindParams{}
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, 0, err
	}

	where := "TRUE"
	args := []interface{}{}
	if q := strings.TrimSpace(params.Q); q != "" {
		where = `(first_name ILIKE $1 OR last_name ILIKE $1 OR identification_number ILIKE $1)`
		args = append(args, "%"+q+"%")
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT ` + clientColumns + `
		FROM clients
		WHERE ` + where + `
		ORDER BY last_name, first_name ` + repo.FormatLimitOffset(limit, params.Offset)

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out, err := scanClients(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM clients WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id uuid.UUID) (client.Client, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return client.Client{}, err
	}

	row := tx.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, pgUUID(id))
	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Client{}, client.ErrNotFound
		}
		return client.Client{}, gerrors.Wrap(err, "get client by id")
	}
	return c, nil
}

func (r *ClientRepository) GetByIdentification(ctx context.Context, identificationNumber string) (client.Client, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return client.Client{}, err
	}

	key := textfold.Identification(identificationNumber)
	row := tx.QueryRow(ctx, `
		SELECT `+clientColumns+`
		FROM clients
		WHERE lower(regexp_replace(identification_number, '[^a-zA-Z0-9]', '', 'g')) = $1`,
		key,
	)
	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Client{}, client.ErrNotFound
		}
		return client.Client{}, gerrors.Wrap(err, "get client by identification")
	}
	return c, nil
}

func (r *ClientRepository) GetAll(ctx context.Context) ([]client.Client, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanClients(rows)
}

func (r *ClientRepository) Create(ctx context.Context, c client.Client) (client.Client, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return client.Client{}, err
	}

	id := c.ID()
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := tx.QueryRow(ctx, `
		INSERT INTO clients (
			id, first_name, last_name, identification_type, identification_number,
			email, phone, birth_date, address
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+clientColumns,
		pgUUID(id),
		c.FirstName(),
		c.LastName(),
		c.IdentificationType(),
		c.IdentificationNumber(),
		c.Email(),
		c.Phone(),
		pgDate(c.BirthDate()),
		c.Address(),
	)
	created, err := scanClient(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return client.Client{}, client.ErrIdentificationTaken
		}
		return client.Client{}, gerrors.Wrap(err, "create client")
	}
	return created, nil
}

func scanClient(row pgx.Row) (client.Client, error) {
	var m models.Client
	if err := row.Scan(
		&m.ID,
		&m.FirstName,
		&m.LastName,
		&m.IdentificationType,
		&m.IdentificationNumber,
		&m.Email,
		&m.Phone,
		&m.BirthDate,
		&m.Address,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return client.Client{}, err
	}
	return toDomainClient(m), nil
}

func scanClients(rows pgx.Rows) ([]client.Client, error) {
	var out []client.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
