package services

import (
	"context"

	"github.com/aseguralo/backoffice/modules/logging/domain/entities/importlog"
)

// ImportLogService records and lists import audit entries. It satisfies the
// executor's audit-write capability.
type ImportLogService struct {
	repo importlog.Repository
}

func NewImportLogService(repo importlog.Repository) *ImportLogService {
	return &ImportLogService{repo: repo}
}

func (s *ImportLogService) RecordImport(ctx context.Context, actor, module, details string) error {
	return s.repo.Create(ctx, &importlog.ImportLog{
		Actor:   actor,
		Action:  importlog.ActionImport,
		Module:  module,
		Details: details,
	})
}

func (s *ImportLogService) List(ctx context.Context, params *importlog.FindParams) ([]*importlog.ImportLog, int64, error) {
	logs, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
