package persistence

import (
	"context"
	"errors"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/aseguralo/backoffice/modules/brokerage/domain/entities/advisor"
	"github.com/aseguralo/backoffice/modules/brokerage/domain/entities/bank"
	"github.com/aseguralo/backoffice/modules/brokerage/domain/entities/insurer"
	"github.com/aseguralo/backoffice/modules/brokerage/domain/entities/product"
	"github.com/aseguralo/backoffice/modules/brokerage/infrastructure/persistence/models"
	"github.com/aseguralo/backoffice/pkg/composables"
)

type InsurerRepository struct{}

func NewInsurerRepository() insurer.Repository {
	return &InsurerRepository{}
}

func (r *InsurerRepository) GetAll(ctx context.Context) ([]insurer.Insurer, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `SELECT id, name, active, created_at FROM insurers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []insurer.Insurer
	for rows.Next() {
		var m models.Insurer
		if err := rows.Scan(&m.ID, &m.Name, &m.Active, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, toDomainInsurer(m))
	}
	return out, rows.Err()
}

func (r *InsurerRepository) GetByID(ctx context.Context, id uuid.UUID) (insurer.Insurer, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return insurer.Insurer{}, err
	}

	var m models.Insurer
	err = tx.QueryRow(ctx,
		`SELECT id, name, active, created_at FROM insurers WHERE id = $1`, pgUUID(id),
	).Scan(&m.ID, &m.Name, &m.Active, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return insurer.Insurer{}, insurer.ErrNotFound
		}
		return insurer.Insurer{}, gerrors.Wrap(err, "get insurer")
	}
	return toDomainInsurer(m), nil
}

func (r *InsurerRepository) Create(ctx context.Context, ins insurer.Insurer) (insurer.Insurer, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return insurer.Insurer{}, err
	}

	if ins.ID == uuid.Nil {
		ins.ID = uuid.New()
	}
	var m models.Insurer
	err = tx.QueryRow(ctx, `
		INSERT INTO insurers (id, name, active) VALUES ($1, $2, $3)
		RETURNING id, name, active, created_at`,
		pgUUID(ins.ID), ins.Name, ins.Active,
	).Scan(&m.ID, &m.Name, &m.Active, &m.CreatedAt)
	if err != nil {
		return insurer.Insurer{}, gerrors.Wrap(err, "create insurer")
	}
	return toDomainInsurer(m), nil
}

type ProductRepository struct{}

func NewProductRepository() product.Repository {
	return &ProductRepository{}
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]product.Product, error) {
	return r.list(ctx, `SELECT id, insurer_id, name, active, created_at FROM products ORDER BY name`)
}

func (r *ProductRepository) GetByInsurer(ctx context.Context, insurerID uuid.UUID) ([]product.Product, error) {
	return r.list(ctx,
		`SELECT id, insurer_id, name, active, created_at FROM products WHERE insurer_id = $1 ORDER BY name`,
		pgUUID(insurerID),
	)
}

func (r *ProductRepository) list(ctx context.Context, query string, args ...interface{}) ([]product.Product, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []product.Product
	for rows.Next() {
		var m models.Product
		if err := rows.Scan(&m.ID, &m.InsurerID, &m.Name, &m.Active, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, toDomainProduct(m))
	}
	return out, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (product.Product, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return product.Product{}, err
	}

	var m models.Product
	err = tx.QueryRow(ctx,
		`SELECT id, insurer_id, name, active, created_at FROM products WHERE id = $1`, pgUUID(id),
	).Scan(&m.ID, &m.InsurerID, &m.Name, &m.Active, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return product.Product{}, product.ErrNotFound
		}
		return product.Product{}, gerrors.Wrap(err, "get product")
	}
	return toDomainProduct(m), nil
}

func (r *ProductRepository) Create(ctx context.Context, p product.Product) (product.Product, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return product.Product{}, err
	}

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	var m models.Product
	err = tx.QueryRow(ctx, `
		INSERT INTO products (id, insurer_id, name, active) VALUES ($1, $2, $3, $4)
		RETURNING id, insurer_id, name, active, created_at`,
		pgUUID(p.ID), pgUUID(p.InsurerID), p.Name, p.Active,
	).Scan(&m.ID, &m.InsurerID, &m.Name, &m.Active, &m.CreatedAt)
	if err != nil {
		return product.Product{}, gerrors.Wrap(err, "create product")
	}
	return toDomainProduct(m), nil
}

type AdvisorRepository struct{}

func NewAdvisorRepository() advisor.Repository {
	return &AdvisorRepository{}
}

func (r *AdvisorRepository) GetAll(ctx context.Context) ([]advisor.Advisor, error) {
	return r.list(ctx, `SELECT id, name, active, created_at FROM advisors ORDER BY name`)
}

func (r *AdvisorRepository) GetActive(ctx context.Context) ([]advisor.Advisor, error) {
	return r.list(ctx, `SELECT id, name, active, created_at FROM advisors WHERE active ORDER BY name`)
}

func (r *AdvisorRepository) list(ctx context.Context, query string) ([]advisor.Advisor, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []advisor.Advisor
	for rows.Next() {
		var m models.Advisor
		if err := rows.Scan(&m.ID, &m.Name, &m.Active, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, toDomainAdvisor(m))
	}
	return out, rows.Err()
}

func (r *AdvisorRepository) GetByID(ctx context.Context, id uuid.UUID) (advisor.Advisor, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return advisor.Advisor{}, err
	}

	var m models.Advisor
	err = tx.QueryRow(ctx,
		`SELECT id, name, active, created_at FROM advisors WHERE id = $1`, pgUUID(id),
	).Scan(&m.ID, &m.Name, &m.Active, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return advisor.Advisor{}, advisor.ErrNotFound
		}
		return advisor.Advisor{}, gerrors.Wrap(err, "get advisor")
	}
	return toDomainAdvisor(m), nil
}

func (r *AdvisorRepository) Create(ctx context.Context, a advisor.Advisor) (advisor.Advisor, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return advisor.Advisor{}, err
	}

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	var m models.Advisor
	err = tx.QueryRow(ctx, `
		INSERT INTO advisors (id, name, active) VALUES ($1, $2, $3)
		RETURNING id, name, active, created_at`,
		pgUUID(a.ID), a.Name, a.Active,
	).Scan(&m.ID, &m.Name, &m.Active, &m.CreatedAt)
	if err != nil {
		return advisor.Advisor{}, gerrors.Wrap(err, "create advisor")
	}
	return toDomainAdvisor(m), nil
}

type BankRepository struct{}

func NewBankRepository() bank.Repository {
	return &BankRepository{}
}

func (r *BankRepository) GetAll(ctx context.Context) ([]bank.Bank, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `SELECT id, name, code, created_at FROM banks ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []bank.Bank
	for rows.Next() {
		var m models.Bank
		if err := rows.Scan(&m.ID, &m.Name, &m.Code, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, toDomainBank(m))
	}
	return out, rows.Err()
}

func (r *BankRepository) GetByID(ctx context.Context, id uuid.UUID) (bank.Bank, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return bank.Bank{}, err
	}

	var m models.Bank
	err = tx.QueryRow(ctx,
		`SELECT id, name, code, created_at FROM banks WHERE id = $1`, pgUUID(id),
	).Scan(&m.ID, &m.Name, &m.Code, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bank.Bank{}, bank.ErrNotFound
		}
		return bank.Bank{}, gerrors.Wrap(err, "get bank")
	}
	return toDomainBank(m), nil
}

func (r *BankRepository) Create(ctx context.Context, b bank.Bank) (bank.Bank, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return bank.Bank{}, err
	}

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	var m models.Bank
	err = tx.QueryRow(ctx, `
		INSERT INTO banks (id, name, code) VALUES ($1, $2, $3)
		RETURNING id, name, code, created_at`,
		pgUUID(b.ID), b.Name, b.Code,
	).Scan(&m.ID, &m.Name, &m.Code, &m.CreatedAt)
	if err != nil {
		return bank.Bank{}, gerrors.Wrap(err, "create bank")
	}
	return toDomainBank(m), nil
}
