// Package importing wires the import pipeline end to end: decode, classify,
// map, group, resolve, validate, execute. Every stage up to the executor is
// pure; Preview may be recomputed freely while an operator adjusts mappings.
package importing

import (
	"context"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/aseguralo/backoffice/modules/importing/assemble"
	"github.com/aseguralo/backoffice/modules/importing/executor"
	"github.com/aseguralo/backoffice/modules/importing/mapping"
	"github.com/aseguralo/backoffice/modules/importing/resolve"
	"github.com/aseguralo/backoffice/modules/importing/sheet"
	"github.com/aseguralo/backoffice/modules/importing/validate"
	"github.com/aseguralo/backoffice/pkg/eventbus"
	"github.com/aseguralo/backoffice/pkg/serrors"
	"github.com/aseguralo/backoffice/pkg/spreadsheet"
)

// ReferenceLoader supplies the read-only reference lists the resolver matches
// against. Implemented by the brokerage persistence layer; mocked in tests.
type ReferenceLoader interface {
	LoadReferences(ctx context.Context) (resolve.References, error)
}

// Preview is the reviewable state of one workbook before execution. It stays
// valid until mappings change, at which point Refresh recomputes the derived
// slices.
type Preview struct {
	SheetName   string
	Mappings    *mapping.Mappings
	Entities    []assemble.Policy
	Resolutions []resolve.Resolution
	Verdicts    []validate.Verdict
	DroppedRows int

	source spreadsheet.Sheet
	refs   resolve.References
}

// ValidCount reports how many entities would be attempted on execution.
func (p *Preview) ValidCount() int {
	n := 0
	for _, v := range p.Verdicts {
		if v.Valid() {
			n++
		}
	}
	return n
}

// ImportService runs the pipeline. Stateless between calls; each Execute
// builds a fresh single-use executor.
type ImportService struct {
	refs  ReferenceLoader
	store executor.Store
	audit executor.AuditWriter
	bus   eventbus.EventBus
	log   *logrus.Logger
}

func NewImportService(
	refs ReferenceLoader,
	store executor.Store,
	audit executor.AuditWriter,
	bus eventbus.EventBus,
	log *logrus.Logger,
) *ImportService {
	if log == nil {
		log = logrus.New()
	}
	return &ImportService{refs: refs, store: store, audit: audit, bus: bus, log: log}
}

// Preview decodes the workbook, picks the policy-bearing sheet, maps its
// headers and derives entities, resolutions and verdicts. A decode failure
// aborts; an incomplete mapping is reported through the returned Preview so
// the operator can reassign columns and call Refresh.
func (s *ImportService) Preview(ctx context.Context, r io.Reader) (*Preview, error) {
	sheets, err := spreadsheet.Decode(r)
	if err != nil {
		return nil, serrors.NewError("decode_failed", "the file could not be read as a spreadsheet", err.Error())
	}
	if len(sheets) == 0 {
		return nil, serrors.NewError("decode_failed", "the workbook has no usable sheets", "")
	}

	wb := sheet.ClassifyWorkbook(sheets)
	src, ok := wb.Sheet(sheet.TypePolicy)
	if !ok {
		// Unified policy-centric workbooks often carry a single unnamed
		// sheet; fall back to the first decoded one.
		src = sheets[0]
	}

	refs, err := s.refs.LoadReferences(ctx)
	if err != nil {
		return nil, err
	}

	p := &Preview{
		SheetName: src.Name,
		Mappings:  mapping.MapHeaders(src.Header),
		source:    src,
		refs:      refs,
	}
	p.Refresh()
	return p, nil
}

// Refresh recomputes entities, resolutions and verdicts from the current
// mappings. Call after Mappings.Assign.
func (p *Preview) Refresh() {
	p.Entities, p.DroppedRows = assemble.Group(p.source, p.Mappings)
	p.Resolutions = resolve.Resolve(p.Entities, p.refs)
	p.Verdicts = validate.Entities(p.Entities, mapping.PolicyImportFields())
}

// Execute persists the previewed batch. It refuses to run while required
// fields are unmapped.
func (s *ImportService) Execute(ctx context.Context, p *Preview, fileName, actor string) (executor.Result, error) {
	if missing := p.Mappings.MissingRequired(mapping.PolicyImportFields()); len(missing) > 0 {
		labels := make([]string, len(missing))
		for i, f := range missing {
			labels[i] = mapping.FieldLabel(mapping.PolicyImportFields(), f)
		}
		return executor.Result{}, serrors.NewError(
			"mapping_incomplete",
			"required fields are not mapped to any column",
			strings.Join(labels, ", "),
		)
	}

	exec := executor.New(s.store, s.audit, s.bus, s.log)
	return exec.Run(ctx, executor.Batch{
		FileName:    fileName,
		Actor:       actor,
		Entities:    p.Entities,
		Resolutions: p.Resolutions,
		Verdicts:    p.Verdicts,
	})
}
