package importing_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aseguralo/backoffice/modules/importing"
	"github.com/aseguralo/backoffice/modules/importing/executor"
	"github.com/aseguralo/backoffice/modules/importing/mapping"
	"github.com/aseguralo/backoffice/modules/importing/resolve"
	"github.com/aseguralo/backoffice/pkg/spreadsheet"
)

type staticRefs struct {
	refs resolve.References
}

func (s staticRefs) LoadReferences(context.Context) (resolve.References, error) {
	return s.refs, nil
}

type countingStore struct {
	clients, policies, beneficiaries int
	clientIDs                        map[string]string
	policyIDs                        map[string]string
}

func (s *countingStore) CreateClient(context.Context, executor.ClientRecord) (string, error) {
	s.clients++
	return fmt.Sprintf("client-%d", s.clients), nil
}

func (s *countingStore) CreatePolicy(context.Context, executor.PolicyRecord) (string, error) {
	s.policies++
	return fmt.Sprintf("policy-%d", s.policies), nil
}

func (s *countingStore) CreateBeneficiary(context.Context, executor.BeneficiaryRecord) (string, error) {
	s.beneficiaries++
	return fmt.Sprintf("beneficiary-%d", s.beneficiaries), nil
}

func (s *countingStore) LookupClientIDs(context.Context, []string) (map[string]string, error) {
	if s.clientIDs == nil {
		ids := map[string]string{}
		for i := 1; i <= s.clients; i++ {
			ids[fmt.Sprintf("v%d", i)] = fmt.Sprintf("client-%d", i)
		}
		return ids, nil
	}
	return s.clientIDs, nil
}

func (s *countingStore) LookupPolicyIDs(context.Context, []string) (map[string]string, error) {
	if s.policyIDs == nil {
		return map[string]string{"pol-001": "policy-1", "pol-002": "policy-2"}, nil
	}
	return s.policyIDs, nil
}

func workbook(t *testing.T) *bytes.Reader {
	t.Helper()
	data, err := spreadsheet.WriteTemplate("Pólizas", []string{
		"Nombre Tomador", "Cédula Tomador", "Número de Póliza",
		"Aseguradora", "Prima", "Nombre Ben. 1", "Parentesco Ben. 1",
	}, [][]string{
		{"María", "V-1", "POL-001", "Seguros Caracas", "1.200,50", "Luis", "hijo"},
		{"", "", "POL-001 ", "", "", "Rosa", "esposa"},
		{"Pedro", "V-2", "POL-002", "Mercantil", "800", "", ""},
	})
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestPreviewPipeline(t *testing.T) {
	svc := importing.NewImportService(staticRefs{refs: resolve.References{
		Insurers: []resolve.NamedRef{{ID: "ins-1", Name: "Seguros Caracas"}},
	}}, nil, nil, nil, nil)

	p, err := svc.Preview(context.Background(), workbook(t))
	require.NoError(t, err)
	require.Equal(t, "Pólizas", p.SheetName)

	// POL-001's two rows collapse; its beneficiaries come from both.
	require.Len(t, p.Entities, 2)
	require.Equal(t, "pol-001", p.Entities[0].NaturalKey)
	require.Len(t, p.Entities[0].Beneficiaries, 2)
	require.Equal(t, "conyuge", p.Entities[0].Beneficiaries[1].Relationship)

	require.True(t, p.Resolutions[0].Insurer.Resolved())
	require.True(t, p.Resolutions[0].IsNewClient)
	require.Equal(t, 2, p.ValidCount())
	require.Zero(t, p.DroppedRows)
}

func TestPreviewRefreshAfterReassign(t *testing.T) {
	svc := importing.NewImportService(staticRefs{}, nil, nil, nil, nil)
	p, err := svc.Preview(context.Background(), workbook(t))
	require.NoError(t, err)

	// Ignoring the key column drops every row on the next refresh.
	require.True(t, p.Mappings.Assign("Número de Póliza", mapping.FieldNone, 0))
	p.Refresh()
	require.Empty(t, p.Entities)
	require.Equal(t, 3, p.DroppedRows)
}

func TestExecuteBlocksIncompleteMapping(t *testing.T) {
	svc := importing.NewImportService(staticRefs{}, &countingStore{}, nil, nil, nil)
	p, err := svc.Preview(context.Background(), workbook(t))
	require.NoError(t, err)

	p.Mappings.Assign("Cédula Tomador", mapping.FieldNone, 0)
	p.Refresh()
	_, err = svc.Execute(context.Background(), p, "cartera.xlsx", "ops")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Cédula Tomador")
}

func TestExecuteEndToEnd(t *testing.T) {
	store := &countingStore{}
	svc := importing.NewImportService(staticRefs{}, store, nil, nil, nil)
	p, err := svc.Preview(context.Background(), workbook(t))
	require.NoError(t, err)

	result, err := svc.Execute(context.Background(), p, "cartera.xlsx", "ops")
	require.NoError(t, err)
	require.Equal(t, 2, store.clients)
	require.Equal(t, 2, store.policies)
	require.Equal(t, 2, store.beneficiaries)
	require.Equal(t, executor.Outcome{Success: 2}, result.Policies)
	require.Equal(t, executor.Outcome{Success: 2}, result.Beneficiaries)
	require.Equal(t, "cartera.xlsx", result.FileName)
}

func TestPreviewDecodeFailure(t *testing.T) {
	svc := importing.NewImportService(staticRefs{}, nil, nil, nil, nil)
	_, err := svc.Preview(context.Background(), bytes.NewReader([]byte("not a workbook")))
	require.Error(t, err)
}
