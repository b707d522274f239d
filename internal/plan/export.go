package plan

import (
	"fmt"
	"strings"

	"variant-from-generator/rsyntax"
)

// Report summarizes a plan for humans.
type Report struct {
	Enums    []EnumReport
	Errors   int
	Warnings int
}

// EnumReport summarizes the impls of one enum.
type EnumReport struct {
	Name  string
	Impls []ImplReport
	// Notes are the info diagnostics of the enum, such as unit variants.
	Notes []string
}

// ImplReport describes a single generated impl.
type ImplReport struct {
	Variant string
	Source  string
	Into    bool
}

// GenerateReport creates a report from the plan.
func GenerateReport(plan *Plan) *Report {
	report := &Report{
		Errors:   len(plan.Diagnostics.Errors),
		Warnings: len(plan.Diagnostics.Warnings),
	}

	for _, ep := range plan.Enums {
		er := EnumReport{Name: ep.Name}

		for _, fi := range ep.Impls {
			er.Impls = append(er.Impls, ImplReport{
				Variant: string(fi.Variant),
				Source:  rsyntax.TypeString(fi.Type),
				Into:    fi.Into,
			})
		}

		for _, d := range plan.Diagnostics.Infos {
			if d.Enum == ep.Name {
				er.Notes = append(er.Notes, d.String())
			}
		}

		report.Enums = append(report.Enums, er)
	}

	return report
}

// FormatReport formats a report as human-readable text.
func FormatReport(report *Report) string {
	var sb strings.Builder

	for _, er := range report.Enums {
		fmt.Fprintf(&sb, "\n=== %s ===\n", er.Name)
		fmt.Fprintf(&sb, "Impls: %d\n", len(er.Impls))

		for _, ir := range er.Impls {
			if ir.Into {
				fmt.Fprintf(&sb, "  ✓ %s <- impl Into<%s>\n", ir.Variant, ir.Source)
			} else {
				fmt.Fprintf(&sb, "  ✓ %s <- %s\n", ir.Variant, ir.Source)
			}
		}

		if len(er.Notes) > 0 {
			sb.WriteString("Notes:\n")

			for _, n := range er.Notes {
				fmt.Fprintf(&sb, "  - %s\n", n)
			}
		}
	}

	fmt.Fprintf(&sb, "\nErrors: %d, Warnings: %d\n", report.Errors, report.Warnings)

	return sb.String()
}
