package mapping

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aseguralo/backoffice/pkg/textfold"
)

// ColumnMapping binds one spreadsheet header to zero-or-one canonical field.
// A zero CanonicalField means the column is ignored on import. GroupIndex is
// non-zero only for grouped beneficiary fields (1..MaxBeneficiaries).
type ColumnMapping struct {
	SourceHeader   string
	CanonicalField Field
	GroupIndex     int
}

// Mappings is the mutable mapping set for one sheet. It is created once from
// the header row and may be reassigned by the operator until validation runs.
type Mappings struct {
	cols []ColumnMapping
}

// MapHeaders guesses a canonical field for every header, in order. Unmatched
// headers are kept with an empty field so the operator can assign them later.
func MapHeaders(headers []string) *Mappings {
	cols := make([]ColumnMapping, 0, len(headers))
	for _, header := range headers {
		field, group := mapHeader(header)
		cols = append(cols, ColumnMapping{
			SourceHeader:   header,
			CanonicalField: field,
			GroupIndex:     group,
		})
	}
	return &Mappings{cols: cols}
}

// Columns returns the mapping set in header order.
func (m *Mappings) Columns() []ColumnMapping {
	out := make([]ColumnMapping, len(m.cols))
	copy(out, m.cols)
	return out
}

// Assign overrides the mapping for a header. Passing FieldNone ignores the
// column. Reports whether the header exists.
func (m *Mappings) Assign(header string, field Field, groupIndex int) bool {
	if groupIndex < 0 {
		groupIndex = 0
	}
	if groupIndex > MaxBeneficiaries {
		groupIndex = MaxBeneficiaries
	}
	for i := range m.cols {
		if m.cols[i].SourceHeader == header {
			m.cols[i].CanonicalField = field
			m.cols[i].GroupIndex = groupIndex
			return true
		}
	}
	return false
}

// RootHeader returns the first header mapped to a root-level field.
func (m *Mappings) RootHeader(field Field) (string, bool) {
	for _, c := range m.cols {
		if c.CanonicalField == field && c.GroupIndex == 0 {
			return c.SourceHeader, true
		}
	}
	return "", false
}

// ChildHeader returns the first header mapped to a grouped field at the given
// group index.
func (m *Mappings) ChildHeader(field Field, groupIndex int) (string, bool) {
	for _, c := range m.cols {
		if c.CanonicalField == field && c.GroupIndex == groupIndex {
			return c.SourceHeader, true
		}
	}
	return "", false
}

// GroupIndexes returns the occupied beneficiary group indexes, ascending.
func (m *Mappings) GroupIndexes() []int {
	seen := map[int]bool{}
	var out []int
	for i := 1; i <= MaxBeneficiaries; i++ {
		for _, c := range m.cols {
			if c.GroupIndex == i && c.CanonicalField != FieldNone && !seen[i] {
				seen[i] = true
				out = append(out, i)
			}
		}
	}
	return out
}

// MissingRequired lists required fields with no column mapped to them. An
// empty result is the precondition for running validation.
func (m *Mappings) MissingRequired(defs []FieldDefinition) []Field {
	var missing []Field
	for _, key := range RequiredFields(defs) {
		if _, ok := m.RootHeader(key); !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

var tokenPattern = regexp.MustCompile(`[a-z]+|\d+`)

var (
	beneficiaryTokens = map[string]bool{"beneficiario": true, "beneficiarios": true, "benef": true, "ben": true}
	clientTokens      = map[string]bool{"tomador": true, "cliente": true, "titular": true, "asegurado": true, "contratante": true}
)

// rule is one (predicate, canonicalField) pair; rules are evaluated in a
// fixed order and the first match wins.
type rule struct {
	match func(folded string) bool
	field Field
}

func containsAny(keywords ...string) func(string) bool {
	return func(folded string) bool {
		for _, kw := range keywords {
			if strings.Contains(folded, kw) {
				return true
			}
		}
		return false
	}
}

var beneficiaryRules = []rule{
	{containsAny("apellido"), FieldBeneficiaryLastName},
	{containsAny("nombre"), FieldBeneficiaryFirstName},
	{containsAny("cedula", "documento", "identificacion", "rif", "dni"), FieldBeneficiaryIDNumber},
	{containsAny("parentesco", "relacion"), FieldBeneficiaryRelationship},
	{containsAny("nacimiento", "nac"), FieldBeneficiaryBirthDate},
	{containsAny("porcentaje", "%"), FieldBeneficiaryPercentage},
}

var clientRules = []rule{
	{containsAny("apellido"), FieldClientLastName},
	{containsAny("tipo"), FieldClientIDType},
	{containsAny("cedula", "documento", "identificacion", "rif", "dni"), FieldClientIDNumber},
	{containsAny("correo", "email", "mail"), FieldClientEmail},
	{containsAny("telefono", "celular", "movil"), FieldClientPhone},
	{containsAny("nacimiento", "nac"), FieldClientBirthDate},
	{containsAny("direccion", "domicilio"), FieldClientAddress},
	{containsAny("nombre"), FieldClientFirstName},
}

var rootRules = []rule{
	{containsAny("aseguradora", "compania"), FieldInsurer},
	{containsAny("producto", "ramo", "plan"), FieldProduct},
	{containsAny("estatus", "estado", "status"), FieldStatus},
	{containsAny("poliza", "contrato"), FieldPolicyNumber},
	{containsAny("prima"), FieldPremium},
	{containsAny("frecuencia", "periodicidad", "forma de pago"), FieldFrequency},
	{containsAny("cobertura", "suma asegurada"), FieldCoverage},
	{containsAny("deducible"), FieldDeductible},
	{containsAny("coasesor", "co-asesor", "co asesor"), FieldCoAdvisor},
	{containsAny("asesor", "productor", "agente", "intermediario"), FieldAdvisor},
	{containsAny("nota", "observacion", "comentario"), FieldNotes},
	{containsAny("nacimiento"), FieldClientBirthDate},
	{containsAny("vencimiento", "hasta", "fin de"), FieldEndDate},
	{containsAny("inicio", "desde", "emision", "vigencia"), FieldStartDate},
	// Unqualified person columns belong to the client on a policy-centric sheet.
	{containsAny("apellido"), FieldClientLastName},
	{containsAny("nombre"), FieldClientFirstName},
	{containsAny("cedula", "identificacion", "rif", "dni"), FieldClientIDNumber},
	{containsAny("correo", "email", "mail"), FieldClientEmail},
	{containsAny("telefono", "celular", "movil"), FieldClientPhone},
	{containsAny("direccion", "domicilio"), FieldClientAddress},
}

func mapHeader(header string) (Field, int) {
	folded := textfold.Fold(header)
	if folded == "" {
		return FieldNone, 0
	}
	tokens := tokenPattern.FindAllString(folded, -1)

	if hasToken(tokens, beneficiaryTokens) {
		group := groupNumber(tokens)
		for _, r := range beneficiaryRules {
			if r.match(folded) {
				return r.field, group
			}
		}
		// Bare "Beneficiario N" columns carry the beneficiary's name.
		return FieldBeneficiaryFirstName, group
	}

	if hasToken(tokens, clientTokens) {
		for _, r := range clientRules {
			if r.match(folded) {
				return r.field, 0
			}
		}
		return FieldClientFirstName, 0
	}

	for _, r := range rootRules {
		if r.match(folded) {
			return r.field, 0
		}
	}
	return FieldNone, 0
}

func hasToken(tokens []string, set map[string]bool) bool {
	for _, tok := range tokens {
		if set[tok] {
			return true
		}
	}
	return false
}

// groupNumber picks the first standalone number in the header, clamped to
// 1..MaxBeneficiaries; headers without a number land in group 1.
func groupNumber(tokens []string) int {
	for _, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		if n < 1 {
			return 1
		}
		if n > MaxBeneficiaries {
			return MaxBeneficiaries
		}
		return n
	}
	return 1
}
