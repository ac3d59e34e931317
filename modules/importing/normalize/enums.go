package normalize

import (
	"github.com/aseguralo/backoffice/pkg/textfold"
)

// Canonical codes for the controlled vocabularies. Canonical codes always
// normalize to themselves so re-normalization is idempotent.
const (
	IDTypeCedula    = "cedula"
	IDTypePasaporte = "pasaporte"
	IDTypeRIF       = "rif"
	IDTypeOtro      = "otro"

	StatusVigente   = "vigente"
	StatusVencida   = "vencida"
	StatusCancelada = "cancelada"
	StatusEnTramite = "en_tramite"

	FrequencyMensual    = "mensual"
	FrequencyTrimestral = "trimestral"
	FrequencySemestral  = "semestral"
	FrequencyAnual      = "anual"
	FrequencyUnico      = "unico"

	RelationshipConyuge = "conyuge"
	RelationshipHijo    = "hijo"
	RelationshipPadre   = "padre"
	RelationshipMadre   = "madre"
	RelationshipHermano = "hermano"
	RelationshipOtro    = "otro"
)

// synonymTable maps folded free-text spellings to one canonical code, with a
// default for anything unmatched.
type synonymTable struct {
	synonyms map[string]string
	fallback string
}

func (t synonymTable) normalize(raw string) string {
	folded := textfold.Fold(raw)
	if folded == "" {
		return t.fallback
	}
	if code, ok := t.synonyms[folded]; ok {
		return code
	}
	return t.fallback
}

var idTypes = synonymTable{
	fallback: IDTypeOtro,
	synonyms: map[string]string{
		"cedula": IDTypeCedula, "ci": IDTypeCedula, "c.i.": IDTypeCedula,
		"cedula de identidad": IDTypeCedula, "id card": IDTypeCedula, "dni": IDTypeCedula,
		"v": IDTypeCedula, "e": IDTypeCedula,
		"pasaporte": IDTypePasaporte, "passport": IDTypePasaporte, "p": IDTypePasaporte,
		"rif": IDTypeRIF, "j": IDTypeRIF, "g": IDTypeRIF, "registro fiscal": IDTypeRIF,
		"otro": IDTypeOtro, "other": IDTypeOtro,
	},
}

var policyStatuses = synonymTable{
	fallback: StatusEnTramite,
	synonyms: map[string]string{
		"vigente": StatusVigente, "activa": StatusVigente, "activo": StatusVigente,
		"active": StatusVigente, "al dia": StatusVigente, "en vigor": StatusVigente,
		"vencida": StatusVencida, "vencido": StatusVencida, "expired": StatusVencida,
		"expirada": StatusVencida, "caducada": StatusVencida,
		"cancelada": StatusCancelada, "cancelado": StatusCancelada, "cancelled": StatusCancelada,
		"canceled": StatusCancelada, "anulada": StatusCancelada, "anulado": StatusCancelada,
		"en_tramite": StatusEnTramite, "en tramite": StatusEnTramite, "tramite": StatusEnTramite,
		"pendiente": StatusEnTramite, "pending": StatusEnTramite, "en proceso": StatusEnTramite,
	},
}

var paymentFrequencies = synonymTable{
	fallback: FrequencyMensual,
	synonyms: map[string]string{
		"mensual": FrequencyMensual, "monthly": FrequencyMensual, "mes": FrequencyMensual,
		"trimestral": FrequencyTrimestral, "quarterly": FrequencyTrimestral,
		"semestral": FrequencySemestral, "semiannual": FrequencySemestral, "semianual": FrequencySemestral,
		"anual": FrequencyAnual, "annual": FrequencyAnual, "yearly": FrequencyAnual, "ano": FrequencyAnual,
		"unico": FrequencyUnico, "contado": FrequencyUnico, "pago unico": FrequencyUnico,
		"single": FrequencyUnico, "una vez": FrequencyUnico,
	},
}

var relationships = synonymTable{
	fallback: RelationshipOtro,
	synonyms: map[string]string{
		"conyuge": RelationshipConyuge, "esposa": RelationshipConyuge, "esposo": RelationshipConyuge,
		"spouse": RelationshipConyuge, "pareja": RelationshipConyuge,
		"hijo": RelationshipHijo, "hija": RelationshipHijo, "son": RelationshipHijo,
		"daughter": RelationshipHijo, "child": RelationshipHijo,
		"padre": RelationshipPadre, "papa": RelationshipPadre, "father": RelationshipPadre,
		"madre": RelationshipMadre, "mama": RelationshipMadre, "mother": RelationshipMadre,
		"hermano": RelationshipHermano, "hermana": RelationshipHermano, "brother": RelationshipHermano,
		"sister": RelationshipHermano,
		"otro": RelationshipOtro, "other": RelationshipOtro, "familiar": RelationshipOtro,
	},
}

// IDType normalizes an identification-type label to its canonical code.
func IDType(raw string) string { return idTypes.normalize(raw) }

// PolicyStatus normalizes a policy status label to its canonical code.
func PolicyStatus(raw string) string { return policyStatuses.normalize(raw) }

// PaymentFrequency normalizes a payment frequency label to its canonical code.
func PaymentFrequency(raw string) string { return paymentFrequencies.normalize(raw) }

// Relationship normalizes a family relationship label to its canonical code.
func Relationship(raw string) string { return relationships.normalize(raw) }
