package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aseguralo/backoffice/modules/importing/mapping"
	"github.com/aseguralo/backoffice/pkg/spreadsheet"
)

func newTemplateCmd() *cobra.Command {
	var output string
	var beneficiarySlots int

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write a blank import workbook with the canonical headers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplate(output, beneficiarySlots)
		},
	}

	cmd.Flags().StringVar(&output, "output", "plantilla-polizas.xlsx", "Destination file")
	cmd.Flags().IntVar(&beneficiarySlots, "beneficiaries", 2, "Beneficiary column groups to include (max 7)")

	return cmd
}

func runTemplate(output string, beneficiarySlots int) error {
	if beneficiarySlots < 0 {
		beneficiarySlots = 0
	}
	if beneficiarySlots > mapping.MaxBeneficiaries {
		beneficiarySlots = mapping.MaxBeneficiaries
	}

	var header []string
	for _, def := range mapping.PolicyImportFields() {
		switch def.Group {
		case mapping.GroupRoot:
			header = append(header, def.Label)
		case mapping.GroupChild:
			// expanded below, once per slot
		}
	}
	for slot := 1; slot <= beneficiarySlots; slot++ {
		for _, def := range mapping.PolicyImportFields() {
			if def.Group == mapping.GroupChild {
				header = append(header, def.Label+" "+strconv.Itoa(slot))
			}
		}
	}

	examples := [][]string{
		{
			"María", "Pérez", "cedula", "V-12345678", "maria@example.com", "0414-1234567",
			"1985-04-12", "Av. Libertador, Caracas",
			"POL-2024-001", "Seguros Caracas", "Salud Global", "2024-01-01", "2025-01-01",
			"1200,50", "anual", "50000", "500", "vigente", "Juan Gómez", "", "Renovación",
		},
		{
			"Carlos", "Rodríguez", "cedula", "V-87654321", "", "",
			"", "",
			"POL-2024-002", "Mercantil Seguros", "Auto Total", "2024-03-15", "2025-03-15",
			"800", "mensual", "25000", "250", "vigente", "Juan Gómez", "Ana Martínez", "",
		},
	}
	if beneficiarySlots > 0 {
		examples[0] = append(examples[0], "Luis", "Pérez", "V-30111222", "hijo", "2010-08-01", "50")
		examples[1] = append(examples[1], "", "", "", "", "", "")
		for slot := 2; slot <= beneficiarySlots; slot++ {
			for i := range examples {
				examples[i] = append(examples[i], "", "", "", "", "", "")
			}
		}
	}

	data, err := spreadsheet.WriteTemplate("Pólizas", header, examples)
	if err != nil {
		return withCode(exitValidation, fmt.Errorf("build template: %w", err))
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return withCode(exitUsage, fmt.Errorf("write template: %w", err))
	}
	return writeJSONLine(map[string]any{"output": output, "columns": len(header)})
}
