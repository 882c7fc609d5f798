// internal/core/usecases/engine.go
package usecases

import (
	"fmt"
	"math"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"safelink/internal/core/domain"
	"safelink/internal/features"
	"safelink/internal/model"
	"safelink/internal/platform/errors"
	"safelink/internal/platform/logx"
	"safelink/internal/platform/validator"
	"safelink/internal/reputation"
)

// Engine is the single public entry point of the classification core. It
// sequences validation, feature extraction, model scoring, the reputation
// overlay and result assembly, failing fast at the first error.
//
// An Engine holds one immutable model artifact loaded at startup. It keeps
// no per-call state and performs no I/O during classification, so one
// instance may serve any number of concurrent callers.
type Engine struct {
	artifact *model.Artifact
	logger   logx.Logger
}

// EngineOptions configures the engine.
type EngineOptions struct {
	Artifact *model.Artifact
	Logger   logx.Logger
}

// NewEngine creates a classification engine around a loaded artifact.
func NewEngine(opts EngineOptions) *Engine {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	return &Engine{
		artifact: opts.Artifact,
		logger:   opts.Logger.With("component", "engine"),
	}
}

// Classify validates, extracts, scores and adjusts a raw URL string.
//
// It never lets an internal fault escape: every failure path returns a
// structured result with Error set and neutral score fields, so callers
// can always render a consistent state.
func (e *Engine) Classify(raw string) (result *domain.ClassificationResult) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("classification panicked", "input", raw, "panic", fmt.Sprint(r))
			result = domain.NewFailedResult(
				domain.FailureClassification,
				fmt.Sprintf("classification failed: %v", r),
				raw,
			)
		}
	}()

	// validating
	canonical, err := validator.Validate(raw)
	if err != nil {
		e.logger.Debug("input rejected", "phase", "validation", "reason", err.Error())
		return domain.NewFailedResult(domain.FailureInvalidURL, err.Error(), raw)
	}

	// extracting requires a loaded artifact: its generation decides the
	// feature-set version.
	if e.artifact == nil || !e.artifact.Available() {
		res := domain.NewFailedResult(
			domain.FailureModelUnavailable,
			"model not loaded: classifier or scaler artifact is missing from the model directory",
			raw,
		)
		res.URL = canonical
		return res
	}

	version := e.artifact.Version()
	vector, featureMap, err := features.Extract(canonical, version)
	if err != nil {
		return e.failClassification(raw, canonical, err)
	}

	// scoring
	pMalicious, pConfidence, err := e.artifact.Score(vector)
	if err != nil {
		if errors.IsModelUnavailable(err) {
			res := domain.NewFailedResult(domain.FailureModelUnavailable, err.Error(), raw)
			res.URL = canonical
			return res
		}
		return e.failClassification(raw, canonical, err)
	}

	rawScore := pMalicious * 100
	confidence := pConfidence * 100
	host := hostOf(canonical)

	// overlaying
	adj := reputation.Adjust(version, rawScore, canonical, host, featureMap)

	// done
	res := &domain.ClassificationResult{
		URL:                  canonical,
		Input:                raw,
		Domain:               host,
		RegistrableDomain:    registrableDomain(host),
		Prediction:           adj.Prediction,
		Verdict:              adj.Verdict,
		IsSafe:               adj.Verdict.IsSafe(),
		Confidence:           round2(confidence),
		RiskScore:            round2(adj.Score),
		OriginalRiskScore:    round2(rawScore),
		ReputationAdjustment: adj.Delta,
		RiskLevel:            adj.Level,
		Features:             featureMap,
		DomainReputation:     adj.Reputation,
		ModelUsed:            e.artifact.Label(),
	}

	e.logger.Debug("classification complete",
		"url", canonical,
		"prediction", res.Prediction,
		"risk_score", res.RiskScore,
		"risk_level", res.RiskLevel,
		"model", res.ModelUsed,
	)
	return res
}

// Status reports artifact load state for health checks. Never errors.
func (e *Engine) Status() model.Status {
	if e.artifact == nil {
		return model.Status{ModelFiles: map[string]bool{}}
	}
	return e.artifact.Status()
}

// FeatureNames exposes the active artifact's feature-name list for the
// model info surface.
func (e *Engine) FeatureNames() []string {
	if e.artifact == nil {
		return nil
	}
	return e.artifact.FeatureNames()
}

// ModelLabel returns the label of the loaded model generation.
func (e *Engine) ModelLabel() string {
	if e.artifact == nil {
		return ""
	}
	return e.artifact.Label()
}

func (e *Engine) failClassification(raw, canonical string, err error) *domain.ClassificationResult {
	e.logger.Warn("classification failed", "url", canonical, "error", err.Error())
	res := domain.NewFailedResult(
		domain.FailureClassification,
		fmt.Sprintf("classification failed: %v", err),
		raw,
	)
	res.URL = canonical
	return res
}

// hostOf returns the lowercased network location (host, possibly with
// port) of an already validated URL.
func hostOf(canonical string) string {
	parsed, err := url.Parse(canonical)
	if err != nil || parsed == nil {
		return ""
	}
	return strings.ToLower(parsed.Host)
}

// registrableDomain derives the eTLD+1 for display and grouping. Falls
// back to the bare hostname for hosts the public suffix list cannot
// resolve (localhost, IP literals). IP literals are detected up front:
// EffectiveTLDPlusOne does not error on them and would return the last
// two octets instead.
func registrableDomain(host string) string {
	hostname := host
	if i := strings.IndexByte(hostname, ':'); i >= 0 {
		hostname = hostname[:i]
	}
	if hostname == "" {
		return ""
	}
	if net.ParseIP(hostname) != nil {
		return hostname
	}
	etld, err := publicsuffix.EffectiveTLDPlusOne(hostname)
	if err != nil {
		return hostname
	}
	return etld
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
