package persistence

import (
	"context"
	"errors"
	"strings"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aseguralo/backoffice/modules/brokerage/domain/aggregates/policy"
	"github.com/aseguralo/backoffice/modules/brokerage/infrastructure/persistence/models"
	"github.com/aseguralo/backoffice/pkg/composables"
	"github.com/aseguralo/backoffice/pkg/repo"
	"github.com/aseguralo/backoffice/pkg/textfold"
)

const policyColumns = `
	id, number, client_id, insurer_id, insurer_name, product_id, product_name,
	start_date, end_date, premium, frequency, coverage, deductible, status,
	advisor_id, advisor_name, co_advisor_id, co_advisor_name, notes,
	created_at, updated_at`

const beneficiaryColumns = `
	id, policy_id, first_name, last_name, identification_number, relationship,
	birth_date, percentage, created_at`

type PolicyRepository struct{}

func NewPolicyRepository() policy.Repository {
	return &PolicyRepository{}
}

func (r *PolicyRepository) GetPaginated(ctx context.Context, params *policy.FindParams) ([]policy.Policy, int64, error) {
	if params == nil {
		params = &policy.FindParams{}
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, 0, err
	}

	where := []string{"TRUE"}
	args := []interface{}{}
	if q := strings.TrimSpace(params.Q); q != "" {
		args = append(args, "%"+q+"%")
		where = append(where, `(number ILIKE $1 OR insurer_name ILIKE $1 OR product_name ILIKE $1)`)
	}
	if params.ClientID != uuid.Nil {
		args = append(args, pgUUID(params.ClientID))
		if len(args) == 1 {
			where = append(where, `client_id = $1`)
		} else {
			where = append(where, `client_id = $2`)
		}
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT ` + policyColumns + `
		FROM policies
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY created_at DESC ` + repo.FormatLimitOffset(limit, params.Offset)

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out, err := scanPolicies(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM policies WHERE `+strings.Join(where, " AND "),
		args...,
	).Scan(&total); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PolicyRepository) GetByID(ctx context.Context, id uuid.UUID) (policy.Policy, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return policy.Policy{}, err
	}

	row := tx.QueryRow(ctx, `SELECT `+policyColumns+` FROM policies WHERE id = $1`, pgUUID(id))
	p, err := scanPolicy(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.Policy{}, policy.ErrNotFound
		}
		return policy.Policy{}, gerrors.Wrap(err, "get policy by id")
	}
	return r.withBeneficiaries(ctx, p)
}

func (r *PolicyRepository) GetByNumber(ctx context.Context, number string) (policy.Policy, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return policy.Policy{}, err
	}

	row := tx.QueryRow(ctx,
		`SELECT `+policyColumns+` FROM policies WHERE lower(trim(number)) = $1`,
		textfold.Key(number),
	)
	p, err := scanPolicy(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.Policy{}, policy.ErrNotFound
		}
		return policy.Policy{}, gerrors.Wrap(err, "get policy by number")
	}
	return r.withBeneficiaries(ctx, p)
}

func (r *PolicyRepository) GetAll(ctx context.Context) ([]policy.Policy, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `SELECT `+policyColumns+` FROM policies ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPolicies(rows)
}

func (r *PolicyRepository) Create(ctx context.Context, p policy.Policy) (policy.Policy, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return policy.Policy{}, err
	}

	id := p.ID()
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := tx.QueryRow(ctx, `
		INSERT INTO policies (
			id, number, client_id, insurer_id, insurer_name, product_id, product_name,
			start_date, end_date, premium, frequency, coverage, deductible, status,
			advisor_id, advisor_name, co_advisor_id, co_advisor_name, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19
		)
		RETURNING `+policyColumns,
		pgUUID(id),
		p.Number(),
		pgUUID(p.ClientID()),
		pgUUID(p.InsurerID()),
		p.InsurerName(),
		pgUUID(p.ProductID()),
		p.ProductName(),
		pgDate(p.StartDate()),
		pgDate(p.EndDate()),
		pgNumeric(p.Premium()),
		p.Frequency(),
		pgNumeric(p.Coverage()),
		pgNumeric(p.Deductible()),
		p.Status(),
		pgUUID(p.AdvisorID()),
		p.AdvisorName(),
		pgUUID(p.CoAdvisorID()),
		p.CoAdvisorName(),
		p.Notes(),
	)
	created, err := scanPolicy(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return policy.Policy{}, policy.ErrNumberTaken
		}
		return policy.Policy{}, gerrors.Wrap(err, "create policy")
	}

	for _, b := range p.Beneficiaries() {
		if err := r.AddBeneficiary(ctx, created.ID(), b); err != nil {
			return policy.Policy{}, err
		}
	}
	return r.withBeneficiaries(ctx, created)
}

func (r *PolicyRepository) AddBeneficiary(ctx context.Context, policyID uuid.UUID, b policy.Beneficiary) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO beneficiaries (
			id, policy_id, first_name, last_name, identification_number,
			relationship, birth_date, percentage
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		pgUUID(uuid.New()),
		pgUUID(policyID),
		b.FirstName,
		b.LastName,
		b.IdentificationNumber,
		b.Relationship,
		pgDate(b.BirthDate),
		b.Percentage,
	)
	if err != nil {
		return gerrors.Wrap(err, "add beneficiary")
	}
	return nil
}

func (r *PolicyRepository) withBeneficiaries(ctx context.Context, p policy.Policy) (policy.Policy, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return policy.Policy{}, err
	}

	rows, err := tx.Query(ctx,
		`SELECT `+beneficiaryColumns+` FROM beneficiaries WHERE policy_id = $1 ORDER BY created_at`,
		pgUUID(p.ID()),
	)
	if err != nil {
		return policy.Policy{}, err
	}
	defer rows.Close()

	var out []policy.Beneficiary
	for rows.Next() {
		var m models.Beneficiary
		if err := rows.Scan(
			&m.ID,
			&m.PolicyID,
			&m.FirstName,
			&m.LastName,
			&m.IdentificationNumber,
			&m.Relationship,
			&m.BirthDate,
			&m.Percentage,
			&m.CreatedAt,
		); err != nil {
			return policy.Policy{}, err
		}
		out = append(out, toDomainBeneficiary(m))
	}
	if err := rows.Err(); err != nil {
		return policy.Policy{}, err
	}
	return p.WithBeneficiaries(out), nil
}

func scanPolicy(row pgx.Row) (policy.Policy, error) {
	var m models.Policy
	if err := row.Scan(
		&m.ID,
		&m.Number,
		&m.ClientID,
		&m.InsurerID,
		&m.InsurerName,
		&m.ProductID,
		&m.ProductName,
		&m.StartDate,
		&m.EndDate,
		&m.Premium,
		&m.Frequency,
		&m.Coverage,
		&m.Deductible,
		&m.Status,
		&m.AdvisorID,
		&m.AdvisorName,
		&m.CoAdvisorID,
		&m.CoAdvisorName,
		&m.Notes,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return policy.Policy{}, err
	}
	return toDomainPolicy(m, nil), nil
}

func scanPolicies(rows pgx.Rows) ([]policy.Policy, error) {
	var out []policy.Policy
	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
