// Package executor persists a resolved, validated batch to the backing store
// in dependency order: clients first, then policies, then beneficiaries. It
// is the only component of the import pipeline with side effects.
package executor

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/aseguralo/backoffice/modules/importing/assemble"
	"github.com/aseguralo/backoffice/modules/importing/resolve"
	"github.com/aseguralo/backoffice/modules/importing/validate"
	"github.com/aseguralo/backoffice/pkg/eventbus"
	"github.com/aseguralo/backoffice/pkg/textfold"
)

type State string

const (
	StateIdle              State = "idle"
	StateImportingParents  State = "importing_parents"
	StateImportingPolicies State = "importing_policies"
	StateImportingChildren State = "importing_children"
	StateComplete          State = "complete"
)

// Outcome accumulates per-phase counters. Counters only ever increase.
type Outcome struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
}

// Result is the final per-entity-type outcome of one run.
type Result struct {
	FileName      string  `json:"fileName"`
	Clients       Outcome `json:"clients"`
	Policies      Outcome `json:"policies"`
	Beneficiaries Outcome `json:"beneficiaries"`
}

// ImportCompletedEvent is published on the event bus after the audit record
// is written.
type ImportCompletedEvent struct {
	Actor  string
	Result Result
}

// ClientRecord is the store-facing shape of a client insert.
type ClientRecord struct {
	FirstName string
	LastName  string
	IDType    string
	IDNumber  string
	Email     string
	Phone     string
	BirthDate string
	Address   string
}

// PolicyRecord is the store-facing shape of a policy insert. Name fields keep
// the raw label when the corresponding reference did not resolve.
type PolicyRecord struct {
	Number        string
	ClientID      string
	InsurerID     string
	InsurerName   string
	ProductID     string
	ProductName   string
	StartDate     string
	EndDate       string
	Premium       decimal.Decimal
	Frequency     string
	Coverage      decimal.Decimal
	Deductible    decimal.Decimal
	Status        string
	AdvisorID     string
	AdvisorName   string
	CoAdvisorID   string
	CoAdvisorName string
	Notes         string
}

// BeneficiaryRecord is the store-facing shape of a beneficiary insert.
type BeneficiaryRecord struct {
	PolicyID     string
	FirstName    string
	LastName     string
	IDNumber     string
	Relationship string
	BirthDate    string
	Percentage   float64
}

// Store is the record-creation capability the executor writes through. The
// lookup methods re-fetch identifiers persisted earlier in the same run,
// keyed by normalized identification number and normalized policy number.
type Store interface {
	CreateClient(ctx context.Context, rec ClientRecord) (string, error)
	CreatePolicy(ctx context.Context, rec PolicyRecord) (string, error)
	CreateBeneficiary(ctx context.Context, rec BeneficiaryRecord) (string, error)
	LookupClientIDs(ctx context.Context, idNumbers []string) (map[string]string, error)
	LookupPolicyIDs(ctx context.Context, numbers []string) (map[string]string, error)
}

// AuditWriter records the run summary after the last phase.
type AuditWriter interface {
	RecordImport(ctx context.Context, actor, module, details string) error
}

// Batch is one run's input: index-aligned entities, resolutions and verdicts.
type Batch struct {
	FileName    string
	Actor       string
	Entities    []assemble.Policy
	Resolutions []resolve.Resolution
	Verdicts    []validate.Verdict
}

// Executor runs a batch exactly once. Complete is terminal; a second Run on
// the same instance returns an error.
type Executor struct {
	store Store
	audit AuditWriter
	bus   eventbus.EventBus
	log   *logrus.Logger

	state State

	// OnRow, when set, is called after every attempted row so a caller can
	// render progress. done counts attempted rows in the current phase.
	OnRow func(state State, done, total int)
}

func New(store Store, audit AuditWriter, bus eventbus.EventBus, log *logrus.Logger) *Executor {
	if log == nil {
		log = logrus.New()
	}
	return &Executor{store: store, audit: audit, bus: bus, log: log, state: StateIdle}
}

func (e *Executor) State() State { return e.state }

// Run persists the batch's valid entities in three phases. Invalid entities
// are never attempted and count neither as success nor failure. Per-row
// failures are counted and logged; no failure aborts the batch.
func (e *Executor) Run(ctx context.Context, batch Batch) (Result, error) {
	if e.state != StateIdle {
		return Result{}, errors.Errorf("executor already ran (state %s)", e.state)
	}
	if len(batch.Resolutions) != len(batch.Entities) || len(batch.Verdicts) != len(batch.Entities) {
		return Result{}, errors.New("batch entities, resolutions and verdicts must be index-aligned")
	}

	result := Result{FileName: batch.FileName}

	valid := make([]int, 0, len(batch.Entities))
	for i := range batch.Entities {
		if batch.Verdicts[i].Valid() {
			valid = append(valid, i)
		}
	}

	clientIDs := e.importParents(ctx, batch, valid, &result)
	policyIDs := e.importPolicies(ctx, batch, valid, clientIDs, &result)
	e.importChildren(ctx, batch, valid, policyIDs, &result)

	e.finish(ctx, batch, result)
	e.state = StateComplete
	return result, nil
}

// importParents creates one client per distinct placeholder, in batch order.
// The returned map swaps placeholders for the identifiers the store now
// holds, re-fetched so rows created in this run become visible.
func (e *Executor) importParents(ctx context.Context, batch Batch, valid []int, result *Result) map[string]string {
	e.state = StateImportingParents

	type pending struct {
		placeholder string
		entity      int
	}
	seen := map[string]bool{}
	var rows []pending
	for _, i := range valid {
		res := batch.Resolutions[i]
		if !res.IsNewClient || seen[res.ClientID] {
			continue
		}
		seen[res.ClientID] = true
		rows = append(rows, pending{placeholder: res.ClientID, entity: i})
	}

	created := map[string]string{} // placeholder -> id number as keyed for re-fetch
	for n, row := range rows {
		c := batch.Entities[row.entity].Client
		_, err := e.store.CreateClient(ctx, ClientRecord{
			FirstName: c.FirstName,
			LastName:  c.LastName,
			IDType:    c.IDType,
			IDNumber:  c.IDNumber,
			Email:     c.Email,
			Phone:     c.Phone,
			BirthDate: c.BirthDate.ISO,
			Address:   c.Address,
		})
		if err != nil {
			result.Clients.Failure++
			e.log.WithError(err).WithFields(logrus.Fields{
				"phase": e.state,
				"row":   batch.Entities[row.entity].FirstRow,
			}).Error("client insert failed")
		} else {
			result.Clients.Success++
			created[row.placeholder] = textfold.Identification(c.IDNumber)
		}
		e.rowDone(n+1, len(rows))
	}

	ids := map[string]string{}
	if len(created) > 0 {
		keys := make([]string, 0, len(created))
		for _, idNumber := range created {
			keys = append(keys, idNumber)
		}
		byNumber, err := e.store.LookupClientIDs(ctx, keys)
		if err != nil {
			e.log.WithError(err).Error("client id re-fetch failed")
			byNumber = nil
		}
		for placeholder, idNumber := range created {
			if id, ok := byNumber[idNumber]; ok {
				ids[placeholder] = id
			}
		}
	}
	return ids
}

// importPolicies creates one policy per valid entity, swapping client
// placeholders for the identifiers minted in the parent phase. An entity
// matching an existing policy reuses that identity and is counted as a
// success without a write.
func (e *Executor) importPolicies(ctx context.Context, batch Batch, valid []int, clientIDs map[string]string, result *Result) map[int]string {
	e.state = StateImportingPolicies

	attempted := map[int]string{} // entity index -> natural key, for re-fetch
	byEntity := map[int]string{}
	for n, i := range valid {
		entity := batch.Entities[i]
		res := batch.Resolutions[i]

		if res.IsUpdate {
			result.Policies.Success++
			byEntity[i] = res.ExistingPolicyID
			e.rowDone(n+1, len(valid))
			continue
		}

		clientID := res.ClientID
		if res.IsNewClient {
			real, ok := clientIDs[res.ClientID]
			if !ok {
				result.Policies.Failure++
				e.log.WithFields(logrus.Fields{
					"phase": e.state,
					"row":   entity.FirstRow,
				}).Error("policy depends on a client that was not created")
				e.rowDone(n+1, len(valid))
				continue
			}
			clientID = real
		}

		p := entity.Policy
		_, err := e.store.CreatePolicy(ctx, PolicyRecord{
			Number:        p.Number,
			ClientID:      clientID,
			InsurerID:     res.Insurer.ResolvedID,
			InsurerName:   res.Insurer.RawLabel,
			ProductID:     res.Product.ResolvedID,
			ProductName:   res.Product.RawLabel,
			StartDate:     p.StartDate.ISO,
			EndDate:       p.EndDate.ISO,
			Premium:       p.Premium,
			Frequency:     p.Frequency,
			Coverage:      p.Coverage,
			Deductible:    p.Deductible,
			Status:        p.Status,
			AdvisorID:     res.Advisor.ResolvedID,
			AdvisorName:   res.Advisor.RawLabel,
			CoAdvisorID:   res.CoAdvisor.ResolvedID,
			CoAdvisorName: res.CoAdvisor.RawLabel,
			Notes:         p.Notes,
		})
		if err != nil {
			result.Policies.Failure++
			e.log.WithError(err).WithFields(logrus.Fields{
				"phase": e.state,
				"row":   entity.FirstRow,
			}).Error("policy insert failed")
		} else {
			result.Policies.Success++
			attempted[i] = entity.NaturalKey
		}
		e.rowDone(n+1, len(valid))
	}

	if len(attempted) > 0 {
		keys := make([]string, 0, len(attempted))
		for _, key := range attempted {
			keys = append(keys, key)
		}
		byNumber, err := e.store.LookupPolicyIDs(ctx, keys)
		if err != nil {
			e.log.WithError(err).Error("policy id re-fetch failed")
			byNumber = nil
		}
		for i, key := range attempted {
			if id, ok := byNumber[key]; ok {
				byEntity[i] = id
			}
		}
	}
	return byEntity
}

// importChildren creates the beneficiaries of every valid entity whose
// policy now has an identifier. Beneficiaries of a failed policy count as
// failures, never as silently dropped.
func (e *Executor) importChildren(ctx context.Context, batch Batch, valid []int, policyIDs map[int]string, result *Result) {
	e.state = StateImportingChildren

	total := 0
	for _, i := range valid {
		total += len(batch.Entities[i].Beneficiaries)
	}

	done := 0
	for _, i := range valid {
		entity := batch.Entities[i]
		policyID, ok := policyIDs[i]
		for _, b := range entity.Beneficiaries {
			if !ok {
				result.Beneficiaries.Failure++
				e.log.WithFields(logrus.Fields{
					"phase": e.state,
					"row":   entity.FirstRow,
				}).Error("beneficiary depends on a policy that was not created")
				done++
				e.rowDone(done, total)
				continue
			}
			_, err := e.store.CreateBeneficiary(ctx, BeneficiaryRecord{
				PolicyID:     policyID,
				FirstName:    b.FirstName,
				LastName:     b.LastName,
				IDNumber:     b.IDNumber,
				Relationship: b.Relationship,
				BirthDate:    b.BirthDate.ISO,
				Percentage:   b.Percentage,
			})
			if err != nil {
				result.Beneficiaries.Failure++
				e.log.WithError(err).WithFields(logrus.Fields{
					"phase": e.state,
					"row":   entity.FirstRow,
				}).Error("beneficiary insert failed")
			} else {
				result.Beneficiaries.Success++
			}
			done++
			e.rowDone(done, total)
		}
	}
}

func (e *Executor) finish(ctx context.Context, batch Batch, result Result) {
	if e.audit != nil {
		details := fmt.Sprintf(
			"file=%s clients=%d/%d policies=%d/%d beneficiaries=%d/%d",
			result.FileName,
			result.Clients.Success, result.Clients.Success+result.Clients.Failure,
			result.Policies.Success, result.Policies.Success+result.Policies.Failure,
			result.Beneficiaries.Success, result.Beneficiaries.Success+result.Beneficiaries.Failure,
		)
		if err := e.audit.RecordImport(ctx, batch.Actor, "importing", details); err != nil {
			e.log.WithError(err).Error("audit write failed")
		}
	}
	if e.bus != nil {
		e.bus.Publish(ImportCompletedEvent{Actor: batch.Actor, Result: result})
	}
}

func (e *Executor) rowDone(done, total int) {
	if e.OnRow != nil {
		e.OnRow(e.state, done, total)
	}
}
