// internal/reputation/overlay.go

// Package reputation layers a deterministic rule set over the raw model
// probability to correct systematic miscalibration: known-good platforms
// score too high on the trained models, while disposable TLDs and
// shorteners score too low.
//
// Two rule-set generations exist, one per feature-set version. They use
// different medium-risk boundaries (v3: [35,65), v2: [35,70)) and
// different override orderings, and are intentionally kept separate:
// merging them would silently change verdicts for boundary URLs.
package reputation

import (
	"strings"

	"safelink/internal/core/domain"
)

// Adjustment is the overlay's decision for one URL.
type Adjustment struct {
	// Score adjusted risk score in [0,100]
	Score float64

	// Delta signed adjustment applied to the raw score
	Delta float64

	// Level thresholded bucket of Score
	Level domain.RiskLevel

	// Prediction human-facing label
	Prediction domain.Prediction

	// Verdict safety call
	Verdict domain.Verdict

	// Reputation the legacy probe, populated by the v2 rule set only
	Reputation *domain.DomainReputation
}

// Adjust applies the rule-set generation matching the feature-set version.
// rawScore is the model's malicious probability in [0,100]; host is the
// lowercased network location of the canonical URL. Pure function of its
// inputs, no I/O.
func Adjust(version domain.FeatureSetVersion, rawScore float64, rawURL, host string, fm domain.FeatureMap) Adjustment {
	if version == domain.FeatureSetV2 {
		return adjustLegacy(rawScore, host)
	}
	return adjustEnhanced(rawScore, rawURL, host, fm)
}

// adjustEnhanced is the hybrid rule set paired with the v3 models.
func adjustEnhanced(rawScore float64, rawURL, host string, fm domain.FeatureMap) Adjustment {
	isMajorLegitimate := containsAny(host, majorLegitimateDomains)
	isClearlySuspicious := hasAnySuffix(host, suspiciousTLDs) ||
		tooManyDigits(host) ||
		strings.Contains(rawURL, "@") ||
		strings.Contains(host, "bit.ly") ||
		strings.Contains(host, "tinyurl.com")

	var adj Adjustment

	switch {
	case isMajorLegitimate:
		// Hard override: major platforms are always safe. Cap well below
		// the medium band regardless of what the model thought.
		adj = Adjustment{
			Score:      minFloat(rawScore*0.3, 25),
			Delta:      -(rawScore * 0.7),
			Level:      domain.RiskLevelLow,
			Prediction: domain.PredictionBenign,
			Verdict:    domain.VerdictSafe,
		}

	case isClearlySuspicious:
		// Hard override: floor the score at 70. The sub-70 medium branch
		// is unreachable with a plain floor but the boundary handling is
		// part of the calibrated contract and must not be simplified away.
		score := maxFloat(rawScore, 70)
		adj = Adjustment{
			Score:   score,
			Delta:   maxFloat(0, 70-rawScore),
			Verdict: domain.VerdictUnsafe,
		}
		if score >= 70 {
			adj.Level = domain.RiskLevelHigh
			adj.Prediction = domain.PredictionMalicious
		} else {
			adj.Level = domain.RiskLevelMedium
			adj.Prediction = domain.PredictionMediumRisk
		}

	default:
		delta := 0.0
		if containsAny(host, institutionalPatterns) {
			delta -= 15
		}
		if wellFormedDomain(host) {
			delta -= 10
		}
		score := clamp(rawScore+delta, 0, 100)
		adj = Adjustment{Score: score, Delta: delta}

		switch {
		case score < 35:
			adj.Level = domain.RiskLevelLow
			adj.Prediction = domain.PredictionBenign
			adj.Verdict = domain.VerdictSafe
		case score < 65:
			adj.Level = domain.RiskLevelMedium
			adj.Prediction = domain.PredictionMediumRisk
			adj.Verdict = domain.VerdictUnsafe
		default:
			adj.Level = domain.RiskLevelHigh
			adj.Prediction = domain.PredictionMalicious
			adj.Verdict = domain.VerdictUnsafe
		}

		// Shortener relabel applies on the default path only; the two
		// hard overrides above take priority.
		if fm["is_url_shortener"] == 1 {
			adj.Prediction = domain.PredictionShortener
			adj.Level = domain.RiskLevelMedium
			adj.Verdict = domain.VerdictUnsafe
		}
	}

	return adj
}

// adjustLegacy is the more aggressive rule set paired with the v2 models,
// which need larger corrections.
func adjustLegacy(rawScore float64, host string) Adjustment {
	probe := probeDomainReputation(host)
	mainLabel := firstLabel(host)

	delta := 0.0
	if !probe.IsSuspiciousTLD && !probe.IsShortDomain && !probe.HasManyNumbers && len(mainLabel) >= 4 {
		delta -= 35
	}
	if containsAny(host, commonLegitPatterns) {
		delta -= 15
	}
	if containsAny(host, majorBrandKeywords) {
		delta -= 40
	}
	if probe.IsSuspiciousTLD {
		delta += 30
	}
	if probe.HasManyNumbers && probe.IsShortDomain {
		delta += 20
	}
	if probe.IsURLShortener {
		// Shorteners get a fixed nudge instead of the accumulated deltas.
		delta = 5
	}

	score := clamp(rawScore+delta, 0, 100)
	adj := Adjustment{Score: score, Delta: delta, Reputation: probe}

	isMajorBrand := containsAny(host, majorBrandKeywords)
	switch {
	case isMajorBrand && score < 80:
		adj.Score = minFloat(score, 30)
		adj.Level = domain.RiskLevelLow
		adj.Prediction = domain.PredictionBenign
		adj.Verdict = domain.VerdictSafe
	case score < 35:
		adj.Level = domain.RiskLevelLow
		adj.Prediction = domain.PredictionBenign
		adj.Verdict = domain.VerdictSafe
	case score < 70:
		adj.Level = domain.RiskLevelMedium
		adj.Prediction = domain.PredictionMediumRisk
		adj.Verdict = domain.VerdictUnsafe
	default:
		adj.Level = domain.RiskLevelHigh
		adj.Prediction = domain.PredictionMalicious
		adj.Verdict = domain.VerdictUnsafe
	}

	// The legacy generation relabels shorteners unconditionally, even on
	// top of the major-brand override.
	if probe.IsURLShortener {
		adj.Prediction = domain.PredictionShortener
		adj.Level = domain.RiskLevelMedium
		adj.Verdict = domain.VerdictUnsafe
	}

	return adj
}

// probeDomainReputation computes the legacy deterministic reputation
// signals for a domain.
func probeDomainReputation(host string) *domain.DomainReputation {
	mainLabel := firstLabel(host)

	// The short-domain check strips "www" out of the first label when the
	// host starts with www., which leaves an empty label for bare
	// www.example.com hosts. Calibrated behavior; do not fix.
	shortCandidate := mainLabel
	if strings.HasPrefix(host, "www.") {
		shortCandidate = strings.ReplaceAll(mainLabel, "www", "")
	}

	return &domain.DomainReputation{
		IsSuspiciousTLD: hasAnySuffix(host, suspiciousTLDs),
		IsURLShortener:  containsAny(host, urlShorteners),
		IsShortDomain:   len(shortCandidate) < 3,
		HasManyNumbers:  float64(countDigits(mainLabel)) > float64(len(mainLabel))*0.5,
	}
}

// tooManyDigits reports whether more than 40% of the domain's non-dot
// characters are digits.
func tooManyDigits(host string) bool {
	bare := strings.ReplaceAll(host, ".", "")
	return float64(countDigits(host)) > float64(len(bare))*0.4
}

// wellFormedDomain rewards multi-label domains whose main label is at
// least 4 characters and does not start with digits.
func wellFormedDomain(host string) bool {
	label := firstLabel(host)
	if len(label) < 4 || strings.Count(host, ".") < 1 {
		return false
	}
	prefix := label
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return countDigits(prefix) == 0
}

func firstLabel(host string) string {
	if i := strings.IndexByte(host, '.'); i >= 0 {
		return host[:i]
	}
	return host
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
