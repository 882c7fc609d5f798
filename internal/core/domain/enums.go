// internal/core/domain/enums.go
package domain

// RiskLevel is the thresholded bucket of the adjusted risk score.
type RiskLevel string

const (
	// RiskLevelLow indicates the URL is considered benign
	RiskLevelLow RiskLevel = "low"

	// RiskLevelMedium indicates the URL needs caution before visiting
	RiskLevelMedium RiskLevel = "medium"

	// RiskLevelHigh indicates the URL is considered malicious
	RiskLevelHigh RiskLevel = "high"

	// RiskLevelUnknown indicates classification did not complete
	RiskLevelUnknown RiskLevel = "unknown"
)

// IsValid verifies the risk level is one of the known buckets.
func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh, RiskLevelUnknown:
		return true
	default:
		return false
	}
}

// String returns the string representation of the level.
func (l RiskLevel) String() string {
	return string(l)
}

// Rank returns a comparable ordering (low < medium < high).
// Unknown ranks below low.
func (l RiskLevel) Rank() int {
	switch l {
	case RiskLevelLow:
		return 1
	case RiskLevelMedium:
		return 2
	case RiskLevelHigh:
		return 3
	default:
		return 0
	}
}

// Prediction is the human-facing label attached to a classification.
type Prediction string

const (
	// PredictionBenign marks URLs below the medium-risk boundary
	PredictionBenign Prediction = "benign"

	// PredictionMediumRisk marks URLs inside the medium-risk band
	PredictionMediumRisk Prediction = "medium risk"

	// PredictionMalicious marks URLs at or above the high-risk boundary
	PredictionMalicious Prediction = "malicious"

	// PredictionShortener marks known URL shorteners, which hide their
	// destination and warrant caution regardless of score
	PredictionShortener Prediction = "url_shortener"

	// PredictionUnknown marks results that failed before scoring
	PredictionUnknown Prediction = "unknown"
)

// String returns the string representation of the prediction.
func (p Prediction) String() string {
	return string(p)
}

// Verdict is the tri-state safety call. A failed classification is
// explicitly VerdictUnknown instead of a misleading boolean.
type Verdict string

const (
	// VerdictSafe the URL is considered safe to visit
	VerdictSafe Verdict = "safe"

	// VerdictUnsafe the URL should not be trusted
	VerdictUnsafe Verdict = "unsafe"

	// VerdictUnknown classification did not produce a usable score
	VerdictUnknown Verdict = "unknown"
)

// IsSafe reports whether the verdict is affirmatively safe.
func (v Verdict) IsSafe() bool {
	return v == VerdictSafe
}

// String returns the string representation of the verdict.
func (v Verdict) String() string {
	return string(v)
}

// FeatureSetVersion tags a fixed, ordered list of numeric features. The
// extractor and the trained artifacts must agree on this version; mixing
// them invalidates the scaler/model pairing.
type FeatureSetVersion string

const (
	// FeatureSetV2 legacy compact set (14 features, single keyword flag)
	FeatureSetV2 FeatureSetVersion = "v2"

	// FeatureSetV3 enhanced set (21 features, phishing/marketing split,
	// domain structure heuristics)
	FeatureSetV3 FeatureSetVersion = "v3"
)

// IsValid verifies the feature-set version is supported.
func (v FeatureSetVersion) IsValid() bool {
	switch v {
	case FeatureSetV2, FeatureSetV3:
		return true
	default:
		return false
	}
}

// String returns the string representation of the version.
func (v FeatureSetVersion) String() string {
	return string(v)
}

// FailureKind classifies why a classification did not complete.
type FailureKind string

const (
	// FailureInvalidURL malformed or unparseable input, user-correctable
	FailureInvalidURL FailureKind = "invalid_url"

	// FailureModelUnavailable required artifact missing at load time
	FailureModelUnavailable FailureKind = "model_unavailable"

	// FailureClassification unexpected error during scoring or overlay
	FailureClassification FailureKind = "classification_failed"
)

// String returns the string representation of the failure kind.
func (k FailureKind) String() string {
	return string(k)
}
