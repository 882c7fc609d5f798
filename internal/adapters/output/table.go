// internal/adapters/output/table.go
package output

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"safelink/internal/core/domain"
)

// WriteTable prints a terminal-readable summary of a classification.
func WriteTable(result *domain.ClassificationResult) error {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)

	fmt.Fprintf(w, "\n=== SafeLink Classification ===\n")

	if result.Failed() {
		fmt.Fprintf(w, "Input:\t%s\n", result.Input)
		fmt.Fprintf(w, "Status:\t%s\n", result.FailureKind)
		fmt.Fprintf(w, "Error:\t%s\n\n", result.Error)
		return w.Flush()
	}

	fmt.Fprintf(w, "URL:\t%s\n", result.URL)
	fmt.Fprintf(w, "Domain:\t%s\n", result.Domain)
	if result.RegistrableDomain != "" && result.RegistrableDomain != result.Domain {
		fmt.Fprintf(w, "Registrable:\t%s\n", result.RegistrableDomain)
	}
	fmt.Fprintf(w, "Prediction:\t%s\n", result.Prediction)
	fmt.Fprintf(w, "Risk Level:\t%s\n", result.RiskLevel)
	fmt.Fprintf(w, "Risk Score:\t%.2f%%\n", result.RiskScore)
	fmt.Fprintf(w, "Model Score:\t%.2f%%\n", result.OriginalRiskScore)
	fmt.Fprintf(w, "Adjustment:\t%+.2f\n", result.ReputationAdjustment)
	fmt.Fprintf(w, "Confidence:\t%.2f%%\n", result.Confidence)
	fmt.Fprintf(w, "Model:\t%s\n\n", result.ModelUsed)

	if len(result.Features) > 0 {
		fmt.Fprintln(w, "FEATURE\tVALUE")
		fmt.Fprintln(w, "-------\t-----")

		names := make([]string, 0, len(result.Features))
		for name := range result.Features {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			fmt.Fprintf(w, "%s\t%g\n", name, result.Features[name])
		}
	}

	fmt.Fprintln(w)
	return w.Flush()
}
