package mapping

// Field is a canonical field identifier the mapper and validator are driven by.
type Field string

const (
	FieldNone Field = ""

	// Root-level client (tomador) fields.
	FieldClientFirstName Field = "client_first_name"
	FieldClientLastName  Field = "client_last_name"
	FieldClientIDType    Field = "client_id_type"
	FieldClientIDNumber  Field = "client_id_number"
	FieldClientEmail     Field = "client_email"
	FieldClientPhone     Field = "client_phone"
	FieldClientBirthDate Field = "client_birth_date"
	FieldClientAddress   Field = "client_address"

	// Root-level policy fields.
	FieldPolicyNumber Field = "policy_number"
	FieldInsurer      Field = "insurer"
	FieldProduct      Field = "product"
	FieldStartDate    Field = "start_date"
	FieldEndDate      Field = "end_date"
	FieldPremium      Field = "premium"
	FieldFrequency    Field = "payment_frequency"
	FieldCoverage     Field = "coverage"
	FieldDeductible   Field = "deductible"
	FieldStatus       Field = "status"
	FieldAdvisor      Field = "advisor"
	FieldCoAdvisor    Field = "co_advisor"
	FieldNotes        Field = "notes"

	// Grouped beneficiary fields, repeated per group index.
	FieldBeneficiaryFirstName    Field = "beneficiary_first_name"
	FieldBeneficiaryLastName     Field = "beneficiary_last_name"
	FieldBeneficiaryIDNumber     Field = "beneficiary_id_number"
	FieldBeneficiaryRelationship Field = "beneficiary_relationship"
	FieldBeneficiaryBirthDate    Field = "beneficiary_birth_date"
	FieldBeneficiaryPercentage   Field = "beneficiary_percentage"
)

type Group string

const (
	GroupRoot  Group = "root"
	GroupChild Group = "child"
)

// MaxBeneficiaries bounds how many repeated beneficiary slots a workbook may
// declare per policy row.
const MaxBeneficiaries = 7

// FieldDefinition is one entry of the canonical schema for an import target.
type FieldDefinition struct {
	Key      Field
	Label    string
	Required bool
	Group    Group
}

// PolicyImportFields is the canonical schema of the unified, policy-centric
// import target: one root record (client + policy) plus repeated beneficiary
// sub-entities.
func PolicyImportFields() []FieldDefinition {
	return []FieldDefinition{
		{Key: FieldClientFirstName, Label: "Nombre Tomador", Required: true, Group: GroupRoot},
		{Key: FieldClientLastName, Label: "Apellido Tomador", Group: GroupRoot},
		{Key: FieldClientIDType, Label: "Tipo Documento", Group: GroupRoot},
		{Key: FieldClientIDNumber, Label: "Cédula Tomador", Required: true, Group: GroupRoot},
		{Key: FieldClientEmail, Label: "Correo Tomador", Group: GroupRoot},
		{Key: FieldClientPhone, Label: "Teléfono Tomador", Group: GroupRoot},
		{Key: FieldClientBirthDate, Label: "Fecha Nacimiento Tomador", Group: GroupRoot},
		{Key: FieldClientAddress, Label: "Dirección Tomador", Group: GroupRoot},

		{Key: FieldPolicyNumber, Label: "Número de Póliza", Required: true, Group: GroupRoot},
		{Key: FieldInsurer, Label: "Aseguradora", Group: GroupRoot},
		{Key: FieldProduct, Label: "Producto", Group: GroupRoot},
		{Key: FieldStartDate, Label: "Inicio de Vigencia", Group: GroupRoot},
		{Key: FieldEndDate, Label: "Fin de Vigencia", Group: GroupRoot},
		{Key: FieldPremium, Label: "Prima", Group: GroupRoot},
		{Key: FieldFrequency, Label: "Frecuencia de Pago", Group: GroupRoot},
		{Key: FieldCoverage, Label: "Cobertura", Group: GroupRoot},
		{Key: FieldDeductible, Label: "Deducible", Group: GroupRoot},
		{Key: FieldStatus, Label: "Estatus", Group: GroupRoot},
		{Key: FieldAdvisor, Label: "Asesor", Group: GroupRoot},
		{Key: FieldCoAdvisor, Label: "Co-Asesor", Group: GroupRoot},
		{Key: FieldNotes, Label: "Observaciones", Group: GroupRoot},

		{Key: FieldBeneficiaryFirstName, Label: "Nombre Beneficiario", Group: GroupChild},
		{Key: FieldBeneficiaryLastName, Label: "Apellido Beneficiario", Group: GroupChild},
		{Key: FieldBeneficiaryIDNumber, Label: "Cédula Beneficiario", Group: GroupChild},
		{Key: FieldBeneficiaryRelationship, Label: "Parentesco", Group: GroupChild},
		{Key: FieldBeneficiaryBirthDate, Label: "Fecha Nacimiento Beneficiario", Group: GroupChild},
		{Key: FieldBeneficiaryPercentage, Label: "Porcentaje", Group: GroupChild},
	}
}

// RequiredFields returns the keys that must be mapped before validation may run.
func RequiredFields(defs []FieldDefinition) []Field {
	var out []Field
	for _, def := range defs {
		if def.Required {
			out = append(out, def.Key)
		}
	}
	return out
}

// FieldLabel returns the display label for a field key, or the key itself.
func FieldLabel(defs []FieldDefinition, key Field) string {
	for _, def := range defs {
		if def.Key == key {
			return def.Label
		}
	}
	return string(key)
}
