package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	brokeragepersistence "github.com/aseguralo/backoffice/modules/brokerage/infrastructure/persistence"
	"github.com/aseguralo/backoffice/modules/importing"
	"github.com/aseguralo/backoffice/modules/importing/mapping"
	loggingpersistence "github.com/aseguralo/backoffice/modules/logging/infrastructure/persistence"
	loggingservices "github.com/aseguralo/backoffice/modules/logging/services"
	"github.com/aseguralo/backoffice/pkg/composables"
	"github.com/aseguralo/backoffice/pkg/configuration"
	"github.com/aseguralo/backoffice/pkg/eventbus"
)

type importOptions struct {
	file  string
	apply bool
	actor string
}

func newImportCmd() *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a portfolio workbook (dry-run by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "Workbook to import (required)")
	cmd.Flags().BoolVar(&opts.apply, "apply", false, "Write to the database (default is dry-run)")
	cmd.Flags().StringVar(&opts.actor, "actor", "cli", "Actor recorded on the audit entry")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

type previewLine struct {
	Row         int      `json:"row"`
	Key         string   `json:"key"`
	Client      string   `json:"client"`
	IsNewClient bool     `json:"isNewClient"`
	IsUpdate    bool     `json:"isUpdate"`
	Insurer     string   `json:"insurer,omitempty"`
	Valid       bool     `json:"valid"`
	Errors      []string `json:"errors,omitempty"`
}

type previewSummary struct {
	Sheet       string `json:"sheet"`
	Entities    int    `json:"entities"`
	Valid       int    `json:"valid"`
	DroppedRows int    `json:"droppedRows"`
}

func runImport(ctx context.Context, opts importOptions) error {
	conf := configuration.Use()
	log := conf.Logger()

	pool, err := pgxpool.New(ctx, conf.Database.Opts)
	if err != nil {
		return withCode(exitDB, fmt.Errorf("connect: %w", err))
	}
	defer pool.Close()
	ctx = composables.WithPool(ctx, pool)

	clients := brokeragepersistence.NewClientRepository()
	policies := brokeragepersistence.NewPolicyRepository()
	loader := brokeragepersistence.NewReferenceLoader(
		clients,
		policies,
		brokeragepersistence.NewInsurerRepository(),
		brokeragepersistence.NewProductRepository(),
		brokeragepersistence.NewAdvisorRepository(),
	)
	store := brokeragepersistence.NewImportStore(clients, policies)
	audit := loggingservices.NewImportLogService(loggingpersistence.NewImportLogRepository())
	svc := importing.NewImportService(loader, store, audit, eventbus.NewEventPublisher(log), log)

	f, err := os.Open(opts.file)
	if err != nil {
		return withCode(exitUsage, fmt.Errorf("open workbook: %w", err))
	}
	defer func() { _ = f.Close() }()

	if info, err := f.Stat(); err == nil && info.Size() > conf.Import.MaxUploadSize {
		return withCode(exitUsage, fmt.Errorf(
			"workbook is %d bytes, above the %d byte limit", info.Size(), conf.Import.MaxUploadSize))
	}

	p, err := svc.Preview(ctx, f)
	if err != nil {
		return withCode(exitValidation, err)
	}

	if missing := p.Mappings.MissingRequired(mapping.PolicyImportFields()); len(missing) > 0 {
		labels := make([]string, len(missing))
		for i, field := range missing {
			labels[i] = mapping.FieldLabel(mapping.PolicyImportFields(), field)
		}
		return withCode(exitValidation, fmt.Errorf("required columns not found: %s", strings.Join(labels, ", ")))
	}

	for i, e := range p.Entities {
		line := previewLine{
			Row:         e.FirstRow + 2, // header is row 1 in the workbook
			Key:         e.NaturalKey,
			Client:      strings.TrimSpace(e.Client.FirstName + " " + e.Client.LastName),
			IsNewClient: p.Resolutions[i].IsNewClient,
			IsUpdate:    p.Resolutions[i].IsUpdate,
			Insurer:     p.Resolutions[i].Insurer.RawLabel,
			Valid:       p.Verdicts[i].Valid(),
		}
		for _, fe := range p.Verdicts[i].Errors {
			line.Errors = append(line.Errors, fe.Message)
		}
		if err := writeJSONLine(line); err != nil {
			return err
		}
	}
	if err := writeJSONLine(previewSummary{
		Sheet:       p.SheetName,
		Entities:    len(p.Entities),
		Valid:       p.ValidCount(),
		DroppedRows: p.DroppedRows,
	}); err != nil {
		return err
	}

	if !opts.apply {
		return nil
	}

	result, err := svc.Execute(ctx, p, filepath.Base(opts.file), opts.actor)
	if err != nil {
		return withCode(exitDB, err)
	}
	return writeJSONLine(result)
}
