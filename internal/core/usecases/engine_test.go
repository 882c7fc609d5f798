// internal/core/usecases/engine_test.go
package usecases

import (
	"reflect"
	"testing"

	"safelink/internal/core/domain"
	"safelink/internal/model"
	"safelink/internal/platform/logx"
	"safelink/internal/testutil"
)

// newTestEngine builds an engine over a fixture artifact whose zeroed
// coefficients make the raw model score sigmoid(-1) = 26.89 for every URL,
// so all assertions below reduce to the reputation overlay.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteModelDir(t, dir, domain.FeatureSetV3, -1.0)
	return NewEngine(EngineOptions{
		Artifact: model.Load(dir, logx.NewSilent()),
		Logger:   logx.NewSilent(),
	})
}

func TestClassifyKnownGoodURL(t *testing.T) {
	engine := newTestEngine(t)

	res := engine.Classify("https://www.google.com")

	testutil.AssertFalse(t, res.Failed(), "classification completed")
	testutil.AssertTrue(t, res.IsSafe, "is safe")
	testutil.AssertEqual(t, res.Verdict, domain.VerdictSafe, "verdict")
	testutil.AssertEqual(t, res.RiskLevel, domain.RiskLevelLow, "risk level")
	testutil.AssertEqual(t, res.Prediction, domain.PredictionBenign, "prediction")
	testutil.AssertInRange(t, res.RiskScore, 0, 25, "allowlist cap")

	testutil.AssertEqual(t, res.URL, "https://www.google.com", "canonical url")
	testutil.AssertEqual(t, res.Domain, "www.google.com", "domain")
	testutil.AssertEqual(t, res.RegistrableDomain, "google.com", "registrable domain")
	testutil.AssertEqual(t, res.ModelUsed, "logistic_regression_v3", "model label")

	// sigmoid(-1) = 0.2689... so the raw score is 26.89 and the allowlist
	// override scales it by 0.3.
	testutil.AssertEqual(t, res.OriginalRiskScore, 26.89, "raw score")
	testutil.AssertEqual(t, res.RiskScore, 8.07, "adjusted score")
	testutil.AssertEqual(t, res.Confidence, 73.11, "confidence")

	testutil.AssertEqual(t, len(res.Features), 21, "feature map")
	if res.DomainReputation != nil {
		t.Error("v3 classifications must not attach the legacy probe")
	}
}

func TestClassifyCanonicalizesBareDomain(t *testing.T) {
	engine := newTestEngine(t)

	res := engine.Classify("github.com")

	testutil.AssertFalse(t, res.Failed(), "classification completed")
	testutil.AssertEqual(t, res.URL, "https://github.com", "https prefix added")
	testutil.AssertEqual(t, res.Input, "github.com", "original input echoed")
	testutil.AssertTrue(t, res.IsSafe, "is safe")
}

func TestClassifySuspiciousURL(t *testing.T) {
	engine := newTestEngine(t)

	res := engine.Classify("http://login-update.tk/verify")

	testutil.AssertFalse(t, res.Failed(), "classification completed")
	testutil.AssertFalse(t, res.IsSafe, "not safe")
	testutil.AssertEqual(t, res.RiskLevel, domain.RiskLevelHigh, "risk level")
	testutil.AssertEqual(t, res.Prediction, domain.PredictionMalicious, "prediction")
	testutil.AssertEqual(t, res.RiskScore, 70.0, "floored score")
}

func TestClassifyInvalidInput(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", "ab"},
		{"repeated run", "https://aaaaaa.com"},
		{"no scheme no dot", "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := engine.Classify(tt.input)

			testutil.AssertTrue(t, res.Failed(), "failed result")
			testutil.AssertEqual(t, res.FailureKind, domain.FailureInvalidURL, "failure kind")
			testutil.AssertEqual(t, res.Input, tt.input, "input echoed")
			testutil.AssertEqual(t, res.Verdict, domain.VerdictUnknown, "verdict")
			testutil.AssertEqual(t, res.RiskLevel, domain.RiskLevelUnknown, "risk level")
			testutil.AssertFalse(t, res.IsSafe, "never safe on failure")
			testutil.AssertEqual(t, res.RiskScore, 0.0, "neutral score")
		})
	}
}

func TestClassifyModelUnavailable(t *testing.T) {
	engine := NewEngine(EngineOptions{
		Artifact: model.Load(t.TempDir(), logx.NewSilent()),
		Logger:   logx.NewSilent(),
	})

	res := engine.Classify("https://example.com")

	testutil.AssertTrue(t, res.Failed(), "failed result")
	testutil.AssertEqual(t, res.FailureKind, domain.FailureModelUnavailable, "failure kind")
	testutil.AssertEqual(t, res.URL, "https://example.com", "canonical url still set")
	testutil.AssertEqual(t, res.Verdict, domain.VerdictUnknown, "verdict")
	testutil.AssertContains(t, res.Error, "model not loaded", "reason")
}

func TestClassifyNilArtifact(t *testing.T) {
	engine := NewEngine(EngineOptions{Logger: logx.NewSilent()})

	res := engine.Classify("https://example.com")

	testutil.AssertTrue(t, res.Failed(), "failed result")
	testutil.AssertEqual(t, res.FailureKind, domain.FailureModelUnavailable, "failure kind")
}

func TestClassifyLegacyArtifact(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteLegacyModelDir(t, dir, -1.0)
	engine := NewEngine(EngineOptions{
		Artifact: model.Load(dir, logx.NewSilent()),
		Logger:   logx.NewSilent(),
	})

	res := engine.Classify("https://example.net")

	testutil.AssertFalse(t, res.Failed(), "classification completed")
	testutil.AssertEqual(t, res.ModelUsed, "logistic_regression", "legacy label")
	testutil.AssertEqual(t, len(res.Features), 14, "compact feature set")

	// The legacy overlay attaches the reputation probe and its clean-domain
	// deltas drop the 26.89 raw score to zero.
	if res.DomainReputation == nil {
		t.Fatal("legacy classifications must attach the reputation probe")
	}
	testutil.AssertEqual(t, res.RiskScore, 0.0, "clamped score")
	testutil.AssertEqual(t, res.RiskLevel, domain.RiskLevelLow, "risk level")
	testutil.AssertTrue(t, res.IsSafe, "is safe")
}

// Same input, same artifacts, same result. Classification holds no state.
func TestClassifyIdempotent(t *testing.T) {
	engine := newTestEngine(t)

	for _, url := range []string{
		"https://www.google.com",
		"http://login-update.tk/verify",
		"http://goo.gl/abc",
		"https://university.edu/courses",
	} {
		a := engine.Classify(url)
		b := engine.Classify(url)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%s: results differ between runs", url)
		}
	}
}

func TestClassifyScoreInvariants(t *testing.T) {
	engine := newTestEngine(t)

	urls := []string{
		"https://www.google.com",
		"https://example.xyz/login",
		"http://malware.tk",
		"http://goo.gl/abc",
		"http://192.168.1.1/admin",
		"https://a.b.example.com/deep/path?q=1",
	}

	for _, url := range urls {
		res := engine.Classify(url)
		testutil.AssertFalse(t, res.Failed(), url)
		testutil.AssertInRange(t, res.RiskScore, 0, 100, "risk score "+url)
		testutil.AssertInRange(t, res.OriginalRiskScore, 0, 100, "raw score "+url)
		testutil.AssertInRange(t, res.Confidence, 0, 100, "confidence "+url)
		testutil.AssertTrue(t, res.RiskLevel.IsValid(), "level "+url)

		// Outside the shortener relabel, the level is a monotonic function
		// of the adjusted score under the v3 thresholds.
		if res.Prediction != domain.PredictionShortener {
			want := domain.RiskLevelHigh
			switch {
			case res.RiskScore < 35:
				want = domain.RiskLevelLow
			case res.RiskScore < 65:
				want = domain.RiskLevelMedium
			}
			testutil.AssertEqual(t, res.RiskLevel, want, "threshold bucket "+url)
		}
	}
}

func TestRegistrableDomainFallback(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{"www.google.com", "google.com"},
		{"a.b.example.com", "example.com"},
		{"localhost", "localhost"},
		{"192.168.1.1", "192.168.1.1"},
		{"example.com:8080", "example.com"},
		{"", ""},
	}

	for _, tt := range tests {
		testutil.AssertEqual(t, registrableDomain(tt.host), tt.want, tt.host)
	}
}

func TestEngineStatus(t *testing.T) {
	engine := newTestEngine(t)
	st := engine.Status()
	testutil.AssertTrue(t, st.ModelLoaded, "model loaded")
	testutil.AssertTrue(t, st.ScalerLoaded, "scaler loaded")

	empty := NewEngine(EngineOptions{Logger: logx.NewSilent()})
	st = empty.Status()
	testutil.AssertFalse(t, st.ModelLoaded, "nil artifact")
	if st.ModelFiles == nil {
		t.Error("status must always carry a file map")
	}

	testutil.AssertEqual(t, engine.ModelLabel(), "logistic_regression_v3", "label")
	testutil.AssertEqual(t, len(engine.FeatureNames()), 21, "feature names")
	testutil.AssertEqual(t, empty.ModelLabel(), "", "nil artifact label")
}
