// internal/core/domain/result.go
package domain

import "fmt"

// FeatureMap maps feature names to their extracted numeric values.
// Display/explainability form only; the ordered vector is what the
// model consumes.
type FeatureMap map[string]float64

// Clone returns a shallow copy of the feature map.
func (m FeatureMap) Clone() FeatureMap {
	if m == nil {
		return nil
	}
	out := make(FeatureMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// DomainReputation is the deterministic reputation probe attached to
// legacy (v2) classifications. The v3 overlay folds these signals into
// its rule set directly and leaves this nil.
type DomainReputation struct {
	// IsSuspiciousTLD domain ends in a disposable/abused TLD
	IsSuspiciousTLD bool `json:"is_suspicious_tld"`

	// IsURLShortener domain matches a known shortener service
	IsURLShortener bool `json:"is_url_shortener"`

	// IsShortDomain main label is shorter than 3 characters
	IsShortDomain bool `json:"is_short_domain"`

	// HasManyNumbers more than half of the main label is digits
	HasManyNumbers bool `json:"has_many_numbers"`

	// ReputationScore reserved for external reputation feeds
	ReputationScore float64 `json:"reputation_score"`
}

// ClassificationResult is the structured verdict for one URL.
//
// Invariants: RiskScore and Confidence are in [0,100]; RiskLevel is a
// monotonic function of RiskScore under the thresholds of the active
// feature-set version. Failed classifications carry Error, a FailureKind,
// VerdictUnknown and zeroed score fields.
type ClassificationResult struct {
	// URL canonicalized URL that was actually classified
	URL string `json:"url"`

	// Input original raw input, preserved for echo/audit
	Input string `json:"input,omitempty"`

	// Domain host portion of the canonical URL (may include port)
	Domain string `json:"domain,omitempty"`

	// RegistrableDomain eTLD+1 of the host, display/grouping only
	RegistrableDomain string `json:"registrable_domain,omitempty"`

	// Prediction human-facing label
	Prediction Prediction `json:"prediction"`

	// Verdict tri-state safety call
	Verdict Verdict `json:"verdict"`

	// IsSafe convenience projection of Verdict for API consumers
	IsSafe bool `json:"is_safe"`

	// Confidence maximum class probability, percent [0,100]
	Confidence float64 `json:"confidence"`

	// RiskScore reputation-adjusted risk, percent [0,100]
	RiskScore float64 `json:"risk_score"`

	// OriginalRiskScore raw model probability of malicious, percent
	OriginalRiskScore float64 `json:"original_risk_score"`

	// ReputationAdjustment delta applied by the overlay (signed)
	ReputationAdjustment float64 `json:"reputation_adjustment"`

	// RiskLevel thresholded bucket of RiskScore
	RiskLevel RiskLevel `json:"risk_level"`

	// Features labeled feature values for explainability
	Features FeatureMap `json:"features"`

	// DomainReputation legacy reputation probe (v2 classifications only)
	DomainReputation *DomainReputation `json:"domain_reputation,omitempty"`

	// ModelUsed label of the artifact generation that scored this URL
	ModelUsed string `json:"model_used,omitempty"`

	// Error non-empty when classification did not complete
	Error string `json:"error,omitempty"`

	// FailureKind set alongside Error
	FailureKind FailureKind `json:"failure_kind,omitempty"`
}

// NewFailedResult builds the neutral "unknown" result every failure path
// returns: score-like fields zeroed so callers can render a consistent
// state, original input preserved.
func NewFailedResult(kind FailureKind, reason, input string) *ClassificationResult {
	return &ClassificationResult{
		Input:       input,
		Prediction:  PredictionUnknown,
		Verdict:     VerdictUnknown,
		RiskLevel:   RiskLevelUnknown,
		Features:    FeatureMap{},
		Error:       reason,
		FailureKind: kind,
	}
}

// Failed reports whether the classification completed.
func (r *ClassificationResult) Failed() bool {
	return r.Error != ""
}

// Summary returns a compact human-readable line for logs.
func (r *ClassificationResult) Summary() string {
	if r.Failed() {
		return fmt.Sprintf("ClassificationResult{input=%s, failure=%s}", r.Input, r.FailureKind)
	}
	return fmt.Sprintf(
		"ClassificationResult{url=%s, prediction=%s, risk=%.2f, level=%s}",
		r.URL, r.Prediction, r.RiskScore, r.RiskLevel,
	)
}
