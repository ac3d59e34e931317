package spreadsheet_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aseguralo/backoffice/pkg/spreadsheet"
)

func TestDecode_RoundTripsTemplate(t *testing.T) {
	header := []string{"Poliza", "Tomador", "Prima"}
	examples := [][]string{
		{"POL-001", "Maria Perez", "120.50"},
		{"POL-002", "Jose Gomez", "89"},
	}

	data, err := spreadsheet.WriteTemplate("Polizas", header, examples)
	require.NoError(t, err)

	sheets, err := spreadsheet.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, sheets, 1)

	sheet := sheets[0]
	require.Equal(t, "Polizas", sheet.Name)
	require.Equal(t, header, sheet.Header)
	require.Len(t, sheet.Rows, 2)
	require.Equal(t, "POL-001", sheet.Cell(sheet.Rows[0], "Poliza"))
	require.Equal(t, "89", sheet.Cell(sheet.Rows[1], "Prima"))
}

func TestDecode_PadsShortRows(t *testing.T) {
	header := []string{"Poliza", "Tomador", "Notas"}
	examples := [][]string{
		{"POL-001"}, // trailing cells left empty
	}

	data, err := spreadsheet.WriteTemplate("Polizas", header, examples)
	require.NoError(t, err)

	sheets, err := spreadsheet.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, sheets[0].Rows, 1)
	require.Len(t, sheets[0].Rows[0], len(header))
	require.Equal(t, "", sheets[0].Cell(sheets[0].Rows[0], "Notas"))
}

func TestDecode_RejectsNonWorkbook(t *testing.T) {
	_, err := spreadsheet.Decode(bytes.NewReader([]byte("definitely not a workbook")))
	require.Error(t, err)
}

func TestCell_UnknownHeader(t *testing.T) {
	sheet := spreadsheet.Sheet{Header: []string{"Poliza"}}
	require.Equal(t, "", sheet.Cell([]string{"POL-001"}, "NoExiste"))
}
