package normalize_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/aseguralo/backoffice/modules/importing/normalize"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		iso  string
		want bool
	}{
		{"2024-05-17", "2024-05-17", true},
		{"17/05/2024", "2024-05-17", true},
		{"17-05-2024", "2024-05-17", true},
		{"5/1/2024", "2024-01-05", true},
		{"45429", "2024-05-17", true}, // spreadsheet serial
		{"not a date", "", false},
		{"", "", false},
		{"99/99/9999", "", false},
	}
	for _, tc := range cases {
		d := normalize.ParseDate(tc.in)
		require.Equal(t, tc.want, d.Parsed(), "input %q", tc.in)
		require.Equal(t, tc.iso, d.ISO, "input %q", tc.in)
	}
}

func TestParseDate_ProvidedVsParsed(t *testing.T) {
	require.False(t, normalize.ParseDate("").Provided())
	require.True(t, normalize.ParseDate("garbage").Provided())
	require.False(t, normalize.ParseDate("garbage").Parsed())
}

func TestMoney(t *testing.T) {
	cases := map[string]string{
		"120.50":      "120.5",
		"1.234,56":    "1234.56",
		"1,234.56":    "1234.56",
		"Bs. 1500":    "1500",
		"$ 89":        "89",
		"":            "0",
		"sin prima":   "0",
		"-45,10":      "-45.1",
		"1.000.000":   "1000000",
	}
	for in, want := range cases {
		got := normalize.Money(in)
		require.True(t, got.Equal(decimal.RequireFromString(want)), "input %q: got %s want %s", in, got, want)
	}
}

func TestNumber(t *testing.T) {
	v, ok := normalize.Number("50")
	require.True(t, ok)
	require.Equal(t, 50.0, v)

	v, ok = normalize.Number("33,5")
	require.True(t, ok)
	require.Equal(t, 33.5, v)

	_, ok = normalize.Number("n/a")
	require.False(t, ok)

	_, ok = normalize.Number("")
	require.False(t, ok)
}

func TestBool(t *testing.T) {
	for _, in := range []string{"si", "Sí", "YES", "true", "1", "x", "X"} {
		require.True(t, normalize.Bool(in), "input %q", in)
	}
	for _, in := range []string{"", "no", "0", "false", "quizas"} {
		require.False(t, normalize.Bool(in), "input %q", in)
	}
}

func TestIDType(t *testing.T) {
	require.Equal(t, normalize.IDTypeCedula, normalize.IDType("Cédula"))
	require.Equal(t, normalize.IDTypeCedula, normalize.IDType("CI"))
	require.Equal(t, normalize.IDTypePasaporte, normalize.IDType("Passport"))
	require.Equal(t, normalize.IDTypeRIF, normalize.IDType("rif"))
	require.Equal(t, normalize.IDTypeOtro, normalize.IDType("algo raro"))
	require.Equal(t, normalize.IDTypeOtro, normalize.IDType(""))
}

func TestPolicyStatus(t *testing.T) {
	require.Equal(t, normalize.StatusVigente, normalize.PolicyStatus("ACTIVA"))
	require.Equal(t, normalize.StatusVencida, normalize.PolicyStatus("vencido"))
	require.Equal(t, normalize.StatusCancelada, normalize.PolicyStatus("Anulada"))
	require.Equal(t, normalize.StatusEnTramite, normalize.PolicyStatus("???"))
}

func TestPaymentFrequency(t *testing.T) {
	require.Equal(t, normalize.FrequencyMensual, normalize.PaymentFrequency("Monthly"))
	require.Equal(t, normalize.FrequencyAnual, normalize.PaymentFrequency("ANUAL"))
	require.Equal(t, normalize.FrequencyUnico, normalize.PaymentFrequency("pago único"))
	require.Equal(t, normalize.FrequencyMensual, normalize.PaymentFrequency("cada luna llena"))
}

func TestRelationship(t *testing.T) {
	require.Equal(t, normalize.RelationshipConyuge, normalize.Relationship("Esposa"))
	require.Equal(t, normalize.RelationshipHijo, normalize.Relationship("hija"))
	require.Equal(t, normalize.RelationshipOtro, normalize.Relationship("vecino"))
}

// Normalizing an already-canonical code returns it unchanged.
func TestSynonymIdempotence(t *testing.T) {
	for _, code := range []string{
		normalize.IDTypeCedula, normalize.IDTypePasaporte, normalize.IDTypeRIF, normalize.IDTypeOtro,
	} {
		require.Equal(t, code, normalize.IDType(code))
	}
	for _, code := range []string{
		normalize.StatusVigente, normalize.StatusVencida, normalize.StatusCancelada, normalize.StatusEnTramite,
	} {
		require.Equal(t, code, normalize.PolicyStatus(code))
	}
	for _, code := range []string{
		normalize.FrequencyMensual, normalize.FrequencyTrimestral, normalize.FrequencySemestral,
		normalize.FrequencyAnual, normalize.FrequencyUnico,
	} {
		require.Equal(t, code, normalize.PaymentFrequency(code))
	}
	for _, code := range []string{
		normalize.RelationshipConyuge, normalize.RelationshipHijo, normalize.RelationshipPadre,
		normalize.RelationshipMadre, normalize.RelationshipHermano, normalize.RelationshipOtro,
	} {
		require.Equal(t, code, normalize.Relationship(code))
	}
}
