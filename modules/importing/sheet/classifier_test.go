package sheet_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aseguralo/backoffice/modules/importing/sheet"
	"github.com/aseguralo/backoffice/pkg/spreadsheet"
)

func TestClassify_ByName(t *testing.T) {
	require.Equal(t, sheet.TypeClient, sheet.Classify("Tomadores", nil))
	require.Equal(t, sheet.TypeClient, sheet.Classify("clientes 2024", nil))
	require.Equal(t, sheet.TypePolicy, sheet.Classify("Pólizas", nil))
	require.Equal(t, sheet.TypeBeneficiary, sheet.Classify("Beneficiarios", nil))
}

func TestClassify_ByHeaders(t *testing.T) {
	require.Equal(t, sheet.TypeBeneficiary,
		sheet.Classify("Hoja1", []string{"Nombre", "Parentesco", "Porcentaje"}))
	require.Equal(t, sheet.TypePolicy,
		sheet.Classify("Hoja1", []string{"Número", "Prima", "Aseguradora"}))
	require.Equal(t, sheet.TypeClient,
		sheet.Classify("Hoja1", []string{"Nombre", "Apellido", "Cédula"}))
	require.Equal(t, sheet.TypeUnknown,
		sheet.Classify("Hoja1", []string{"A", "B", "C"}))
}

func TestClassify_NameWinsOverHeaders(t *testing.T) {
	// a sheet named "Pólizas" stays a policy sheet even with beneficiary-ish headers
	require.Equal(t, sheet.TypePolicy,
		sheet.Classify("Pólizas", []string{"Parentesco"}))
}

func TestClassifyWorkbook_FirstSheetDefaultsToClient(t *testing.T) {
	wb := sheet.ClassifyWorkbook([]spreadsheet.Sheet{
		{Name: "Hoja1", Header: []string{"A", "B"}},
	})
	require.True(t, wb.Has(sheet.TypeClient))

	got, ok := wb.Sheet(sheet.TypeClient)
	require.True(t, ok)
	require.Equal(t, "Hoja1", got.Name)
}

func TestClassifyWorkbook_LaterUnknownSheetsDropped(t *testing.T) {
	wb := sheet.ClassifyWorkbook([]spreadsheet.Sheet{
		{Name: "Pólizas", Header: []string{"Póliza"}},
		{Name: "Hoja2", Header: []string{"A", "B"}},
	})
	require.True(t, wb.Has(sheet.TypePolicy))
	require.False(t, wb.Has(sheet.TypeClient))
	require.False(t, wb.Has(sheet.TypeBeneficiary))
}

func TestClassifyWorkbook_OneSheetPerType(t *testing.T) {
	wb := sheet.ClassifyWorkbook([]spreadsheet.Sheet{
		{Name: "Pólizas 2023", Header: []string{"Póliza"}},
		{Name: "Pólizas 2024", Header: []string{"Póliza"}},
		{Name: "Beneficiarios", Header: nil},
	})

	got, ok := wb.Sheet(sheet.TypePolicy)
	require.True(t, ok)
	require.Equal(t, "Pólizas 2023", got.Name)
	require.True(t, wb.Has(sheet.TypeBeneficiary))
}
