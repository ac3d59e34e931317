// Package sheet guesses which domain entity a worksheet holds from its name
// and header words.
package sheet

import (
	"strings"

	"github.com/aseguralo/backoffice/pkg/spreadsheet"
	"github.com/aseguralo/backoffice/pkg/textfold"
)

type EntityType string

const (
	TypeClient      EntityType = "client"
	TypePolicy      EntityType = "policy"
	TypeBeneficiary EntityType = "beneficiary"
	TypeUnknown     EntityType = "unknown"
)

var nameKeywords = []struct {
	entity   EntityType
	keywords []string
}{
	{TypeClient, []string{"tomador", "cliente", "titular", "asegurado"}},
	{TypePolicy, []string{"poliza", "contrato", "cartera"}},
	{TypeBeneficiary, []string{"beneficiario"}},
}

// Classify guesses the entity type of a single sheet: the declared name is
// tested first, then the headers. Total; unmatched sheets are TypeUnknown.
func Classify(name string, headers []string) EntityType {
	folded := textfold.Fold(name)
	for _, nk := range nameKeywords {
		for _, kw := range nk.keywords {
			if strings.Contains(folded, kw) {
				return nk.entity
			}
		}
	}
	return classifyHeaders(headers)
}

func classifyHeaders(headers []string) EntityType {
	var hasRelationship, hasPremiumOrInsurer, hasName, hasIdentification bool
	for _, h := range headers {
		folded := textfold.Fold(h)
		switch {
		case strings.Contains(folded, "parentesco"), strings.Contains(folded, "relacion"):
			hasRelationship = true
		case strings.Contains(folded, "prima"), strings.Contains(folded, "aseguradora"),
			strings.Contains(folded, "poliza"), strings.Contains(folded, "cobertura"):
			hasPremiumOrInsurer = true
		case strings.Contains(folded, "nombre"), strings.Contains(folded, "apellido"):
			hasName = true
		}
		if strings.Contains(folded, "cedula") || strings.Contains(folded, "identificacion") ||
			strings.Contains(folded, "rif") || strings.Contains(folded, "documento") {
			hasIdentification = true
		}
	}

	switch {
	case hasRelationship:
		return TypeBeneficiary
	case hasPremiumOrInsurer:
		return TypePolicy
	case hasName && hasIdentification:
		return TypeClient
	}
	return TypeUnknown
}

// Workbook holds the sheet claimed by each entity type after classification.
type Workbook struct {
	byType map[EntityType]int
	sheets []spreadsheet.Sheet
}

// ClassifyWorkbook assigns at most one sheet per entity type, in workbook
// order; later sheets of an already-claimed type are ignored, as are sheets
// that classify as unknown. When nothing matches for the first sheet, it
// defaults to client.
func ClassifyWorkbook(sheets []spreadsheet.Sheet) Workbook {
	wb := Workbook{byType: make(map[EntityType]int), sheets: sheets}
	for i, s := range sheets {
		entity := Classify(s.Name, s.Header)
		if entity == TypeUnknown {
			if i == 0 {
				entity = TypeClient
			} else {
				continue
			}
		}
		if _, claimed := wb.byType[entity]; claimed {
			continue
		}
		wb.byType[entity] = i
	}
	return wb
}

// Sheet returns the sheet claimed by the given entity type.
func (w Workbook) Sheet(entity EntityType) (spreadsheet.Sheet, bool) {
	i, ok := w.byType[entity]
	if !ok {
		return spreadsheet.Sheet{}, false
	}
	return w.sheets[i], true
}

// Has reports whether a sheet was claimed for the entity type.
func (w Workbook) Has(entity EntityType) bool {
	_, ok := w.byType[entity]
	return ok
}
