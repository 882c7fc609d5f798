// internal/platform/ui/presenter.go

// Package ui renders classification verdicts in the terminal using pterm.
package ui

import (
	"fmt"

	"github.com/pterm/pterm"

	"safelink/internal/core/domain"
	"safelink/internal/model"
)

// RenderHeader prints the application banner.
func RenderHeader(version string) {
	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Printfln("SafeLink - URL Security Scanner %s", version)
	pterm.Println()
}

// RenderResult prints a classification verdict panel.
func RenderResult(result *domain.ClassificationResult) {
	if result.Failed() {
		renderFailure(result)
		return
	}

	panel := pterm.DefaultBox.
		WithTitle("Verdict").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(levelStyle(result.RiskLevel))

	body := fmt.Sprintf("URL: %s\n", pterm.Cyan(result.URL))
	body += fmt.Sprintf("Domain: %s\n", result.Domain)
	body += fmt.Sprintf("Prediction: %s\n", levelColor(result.RiskLevel)(string(result.Prediction)))
	body += fmt.Sprintf("Risk Level: %s\n", levelColor(result.RiskLevel)(string(result.RiskLevel)))
	body += fmt.Sprintf("Risk Score: %s\n", levelColor(result.RiskLevel)(fmt.Sprintf("%.2f%%", result.RiskScore)))
	body += fmt.Sprintf("Model Score: %.2f%%  (adjustment %+.2f)\n", result.OriginalRiskScore, result.ReputationAdjustment)
	body += fmt.Sprintf("Confidence: %.2f%%\n", result.Confidence)
	body += fmt.Sprintf("Model: %s", result.ModelUsed)

	panel.Println(body)

	if result.IsSafe {
		pterm.Success.Println("This URL appears safe to visit based on our analysis.")
	} else {
		pterm.Warning.Println("Caution advised. This URL shows suspicious characteristics; verify it before visiting.")
	}
}

// RenderStatus prints artifact load state.
func RenderStatus(status model.Status) {
	pterm.DefaultSection.Println("Model Status")

	renderLoaded("Classifier", status.ModelLoaded)
	renderLoaded("Scaler", status.ScalerLoaded)
	renderLoaded("Label encoder", status.EncoderLoaded)

	if len(status.ModelFiles) > 0 {
		pterm.Println()
		for name, exists := range status.ModelFiles {
			if exists {
				pterm.Printfln("  %s %s", pterm.Green("present"), name)
			} else {
				pterm.Printfln("  %s %s", pterm.Gray("missing"), name)
			}
		}
	}
}

func renderFailure(result *domain.ClassificationResult) {
	pterm.Error.Printfln("Could not classify %q", result.Input)
	pterm.Printfln("  %s", result.Error)

	if result.FailureKind == domain.FailureInvalidURL {
		pterm.Info.Println("Enter a full address, for example: https://example.com/page")
	}
}

func renderLoaded(name string, loaded bool) {
	if loaded {
		pterm.Success.Printfln("%s loaded", name)
	} else {
		pterm.Error.Printfln("%s not loaded", name)
	}
}

func levelStyle(level domain.RiskLevel) *pterm.Style {
	switch level {
	case domain.RiskLevelLow:
		return pterm.NewStyle(pterm.FgGreen)
	case domain.RiskLevelMedium:
		return pterm.NewStyle(pterm.FgYellow)
	case domain.RiskLevelHigh:
		return pterm.NewStyle(pterm.FgRed)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

func levelColor(level domain.RiskLevel) func(...any) string {
	switch level {
	case domain.RiskLevelLow:
		return pterm.Green
	case domain.RiskLevelMedium:
		return pterm.Yellow
	case domain.RiskLevelHigh:
		return pterm.Red
	default:
		return pterm.Gray
	}
}
