package main

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/aseguralo/backoffice/modules/logging/domain/entities/importlog"
	loggingpersistence "github.com/aseguralo/backoffice/modules/logging/infrastructure/persistence"
	loggingservices "github.com/aseguralo/backoffice/modules/logging/services"
	"github.com/aseguralo/backoffice/pkg/composables"
	"github.com/aseguralo/backoffice/pkg/configuration"
)

func newLogsCmd() *cobra.Command {
	var module string
	var limit int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "List import audit entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			conf := configuration.Use()

			pool, err := pgxpool.New(ctx, conf.Database.Opts)
			if err != nil {
				return withCode(exitDB, fmt.Errorf("connect: %w", err))
			}
			defer pool.Close()
			ctx = composables.WithPool(ctx, pool)

			svc := loggingservices.NewImportLogService(loggingpersistence.NewImportLogRepository())
			logs, total, err := svc.List(ctx, &importlog.FindParams{Module: module, Limit: limit})
			if err != nil {
				return withCode(exitDB, err)
			}
			for _, entry := range logs {
				if err := writeJSONLine(entry); err != nil {
					return err
				}
			}
			return writeJSONLine(map[string]int64{"total": total})
		},
	}

	cmd.Flags().StringVar(&module, "module", "", "Filter by module")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum entries")

	return cmd
}
