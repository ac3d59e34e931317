package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aseguralo/backoffice/modules/importing/mapping"
)

func requireMapped(t *testing.T, m *mapping.Mappings, header string, field mapping.Field, group int) {
	t.Helper()
	for _, c := range m.Columns() {
		if c.SourceHeader == header {
			require.Equal(t, field, c.CanonicalField, "header %q field", header)
			require.Equal(t, group, c.GroupIndex, "header %q group", header)
			return
		}
	}
	t.Fatalf("header %q not present in mappings", header)
}

func TestMapHeaders_ClientColumns(t *testing.T) {
	m := mapping.MapHeaders([]string{
		"Cédula Tomador",
		"Nombre Tomador",
		"Apellido del Cliente",
		"Tipo Documento Tomador",
		"Correo Cliente",
		"Teléfono Titular",
		"Fecha Nacimiento Tomador",
		"Dirección Tomador",
	})

	requireMapped(t, m, "Cédula Tomador", mapping.FieldClientIDNumber, 0)
	requireMapped(t, m, "Nombre Tomador", mapping.FieldClientFirstName, 0)
	requireMapped(t, m, "Apellido del Cliente", mapping.FieldClientLastName, 0)
	requireMapped(t, m, "Tipo Documento Tomador", mapping.FieldClientIDType, 0)
	requireMapped(t, m, "Correo Cliente", mapping.FieldClientEmail, 0)
	requireMapped(t, m, "Teléfono Titular", mapping.FieldClientPhone, 0)
	requireMapped(t, m, "Fecha Nacimiento Tomador", mapping.FieldClientBirthDate, 0)
	requireMapped(t, m, "Dirección Tomador", mapping.FieldClientAddress, 0)
}

func TestMapHeaders_BeneficiaryGroups(t *testing.T) {
	m := mapping.MapHeaders([]string{
		"Nombre Ben. 2",
		"Beneficiario 1",
		"Apellido Beneficiario 3",
		"Parentesco Ben 3",
		"Cédula Beneficiario",
		"Porcentaje Ben. 2",
		"Fecha Nac. Beneficiario 1",
	})

	requireMapped(t, m, "Nombre Ben. 2", mapping.FieldBeneficiaryFirstName, 2)
	requireMapped(t, m, "Beneficiario 1", mapping.FieldBeneficiaryFirstName, 1)
	requireMapped(t, m, "Apellido Beneficiario 3", mapping.FieldBeneficiaryLastName, 3)
	requireMapped(t, m, "Parentesco Ben 3", mapping.FieldBeneficiaryRelationship, 3)
	requireMapped(t, m, "Cédula Beneficiario", mapping.FieldBeneficiaryIDNumber, 1)
	requireMapped(t, m, "Porcentaje Ben. 2", mapping.FieldBeneficiaryPercentage, 2)
	requireMapped(t, m, "Fecha Nac. Beneficiario 1", mapping.FieldBeneficiaryBirthDate, 1)
}

func TestMapHeaders_GroupIndexClamped(t *testing.T) {
	m := mapping.MapHeaders([]string{"Nombre Beneficiario 12"})
	requireMapped(t, m, "Nombre Beneficiario 12", mapping.FieldBeneficiaryFirstName, mapping.MaxBeneficiaries)
}

func TestMapHeaders_PolicyColumns(t *testing.T) {
	m := mapping.MapHeaders([]string{
		"Número de Póliza",
		"Aseguradora",
		"Producto",
		"Inicio de Vigencia",
		"Vigencia Hasta",
		"Prima Anual",
		"Frecuencia de Pago",
		"Suma Asegurada",
		"Deducible",
		"Estatus Póliza",
		"Asesor",
		"Co-Asesor",
		"Observaciones",
	})

	requireMapped(t, m, "Número de Póliza", mapping.FieldPolicyNumber, 0)
	requireMapped(t, m, "Aseguradora", mapping.FieldInsurer, 0)
	requireMapped(t, m, "Producto", mapping.FieldProduct, 0)
	requireMapped(t, m, "Inicio de Vigencia", mapping.FieldStartDate, 0)
	requireMapped(t, m, "Vigencia Hasta", mapping.FieldEndDate, 0)
	requireMapped(t, m, "Prima Anual", mapping.FieldPremium, 0)
	requireMapped(t, m, "Frecuencia de Pago", mapping.FieldFrequency, 0)
	requireMapped(t, m, "Suma Asegurada", mapping.FieldCoverage, 0)
	requireMapped(t, m, "Deducible", mapping.FieldDeductible, 0)
	requireMapped(t, m, "Estatus Póliza", mapping.FieldStatus, 0)
	requireMapped(t, m, "Asesor", mapping.FieldAdvisor, 0)
	requireMapped(t, m, "Co-Asesor", mapping.FieldCoAdvisor, 0)
	requireMapped(t, m, "Observaciones", mapping.FieldNotes, 0)
}

func TestMapHeaders_UnmatchedIgnored(t *testing.T) {
	m := mapping.MapHeaders([]string{"Columna Cualquiera", ""})
	requireMapped(t, m, "Columna Cualquiera", mapping.FieldNone, 0)
	requireMapped(t, m, "", mapping.FieldNone, 0)
}

func TestAssign_OverridesAndClamps(t *testing.T) {
	m := mapping.MapHeaders([]string{"Columna Cualquiera"})

	require.True(t, m.Assign("Columna Cualquiera", mapping.FieldBeneficiaryFirstName, 99))
	requireMapped(t, m, "Columna Cualquiera", mapping.FieldBeneficiaryFirstName, mapping.MaxBeneficiaries)

	require.True(t, m.Assign("Columna Cualquiera", mapping.FieldNone, 0))
	requireMapped(t, m, "Columna Cualquiera", mapping.FieldNone, 0)

	require.False(t, m.Assign("No Existe", mapping.FieldNotes, 0))
}

func TestMissingRequired(t *testing.T) {
	defs := mapping.PolicyImportFields()

	m := mapping.MapHeaders([]string{"Número de Póliza", "Nombre Tomador"})
	missing := m.MissingRequired(defs)
	require.Equal(t, []mapping.Field{mapping.FieldClientIDNumber}, missing)

	require.True(t, m.Assign("Nombre Tomador", mapping.FieldClientIDNumber, 0))
	// first name mapping was consumed by the override
	missing = m.MissingRequired(defs)
	require.Equal(t, []mapping.Field{mapping.FieldClientFirstName}, missing)
}

func TestGroupIndexes(t *testing.T) {
	m := mapping.MapHeaders([]string{
		"Nombre Ben. 3",
		"Nombre Beneficiario 1",
		"Prima",
	})
	require.Equal(t, []int{1, 3}, m.GroupIndexes())
}
