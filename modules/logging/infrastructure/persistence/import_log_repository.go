package persistence

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/aseguralo/backoffice/modules/logging/domain/entities/importlog"
	"github.com/aseguralo/backoffice/modules/logging/infrastructure/persistence/models"
	"github.com/aseguralo/backoffice/pkg/composables"
	"github.com/aseguralo/backoffice/pkg/repo"
)

type ImportLogRepository struct{}

func NewImportLogRepository() importlog.Repository {
	return &ImportLogRepository{}
}

func (r *ImportLogRepository) List(ctx context.Context, params *importlog.FindParams) ([]*importlog.ImportLog, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	where, args := buildImportLogFilters(params)
	query := `
		SELECT id, actor, action, module, details, created_at
		FROM import_logs
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY created_at DESC
	`
	if params != nil {
		query += " " + repo.FormatLimitOffset(params.Limit, params.Offset)
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*importlog.ImportLog
	for rows.Next() {
		var row models.ImportLog
		if err := rows.Scan(
			&row.ID,
			&row.Actor,
			&row.Action,
			&row.Module,
			&row.Details,
			&row.CreatedAt,
		); err != nil {
			return nil, err
		}
		results = append(results, toDomainImportLog(&row))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *ImportLogRepository) Count(ctx context.Context, params *importlog.FindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	where, args := buildImportLogFilters(params)

	var count int64
	if err := tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM import_logs
		WHERE `+strings.Join(where, " AND "),
		args...,
	).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ImportLogRepository) Create(ctx context.Context, log *importlog.ImportLog) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	createdAt := log.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return tx.QueryRow(ctx, `
		INSERT INTO import_logs (actor, action, module, details, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		log.Actor,
		log.Action,
		log.Module,
		log.Details,
		createdAt,
	).Scan(&log.ID)
}

func buildImportLogFilters(params *importlog.FindParams) ([]string, []interface{}) {
	where := []string{"TRUE"}
	args := []interface{}{}
	if params == nil {
		return where, args
	}
	if params.Module != "" {
		args = append(args, params.Module)
		where = append(where, "module = $"+strconv.Itoa(len(args)))
	}
	if params.Actor != "" {
		args = append(args, params.Actor)
		where = append(where, "actor = $"+strconv.Itoa(len(args)))
	}
	if params.From != nil {
		args = append(args, *params.From)
		where = append(where, "created_at >= $"+strconv.Itoa(len(args)))
	}
	if params.To != nil {
		args = append(args, *params.To)
		where = append(where, "created_at <= $"+strconv.Itoa(len(args)))
	}
	return where, args
}

func toDomainImportLog(row *models.ImportLog) *importlog.ImportLog {
	return &importlog.ImportLog{
		ID:        row.ID,
		Actor:     row.Actor,
		Action:    row.Action,
		Module:    row.Module,
		Details:   row.Details,
		CreatedAt: row.CreatedAt,
	}
}
