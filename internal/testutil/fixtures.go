// internal/testutil/fixtures.go
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"safelink/internal/core/domain"
	"safelink/internal/features"
)

// Artifact fixtures: minimal JSON exports of a fitted scaler and logistic
// classifier. Zero coefficients with a fixed intercept make the raw model
// score a known constant (sigmoid(intercept)), which keeps overlay
// assertions exact.

// WriteModelDir writes a complete artifact generation for the given
// feature-set version into dir. The resulting model scores every URL at
// sigmoid(intercept).
func WriteModelDir(t *testing.T, dir string, version domain.FeatureSetVersion, intercept float64) {
	t.Helper()

	suffix := "_" + version.String()
	writeArtifacts(t, dir, version, intercept, suffix, version == domain.FeatureSetV3)
}

// WriteLegacyModelDir writes the unsuffixed pre-versioning artifact
// files, which use the compact (v2) feature set.
func WriteLegacyModelDir(t *testing.T, dir string, intercept float64) {
	t.Helper()
	writeArtifacts(t, dir, domain.FeatureSetV2, intercept, "", false)
}

func writeArtifacts(t *testing.T, dir string, version domain.FeatureSetVersion, intercept float64, suffix string, withNames bool) {
	t.Helper()

	count, err := features.Count(version)
	if err != nil {
		t.Fatalf("fixture: unknown feature set %s", version)
	}

	coef := make([]float64, count)
	mean := make([]float64, count)
	scale := make([]float64, count)
	for i := range scale {
		scale[i] = 1
	}

	writeJSONFile(t, filepath.Join(dir, "logistic_model"+suffix+".json"), map[string]any{
		"coef":      coef,
		"intercept": intercept,
		"classes":   []string{"benign", "malicious"},
	})
	writeJSONFile(t, filepath.Join(dir, "scaler"+suffix+".json"), map[string]any{
		"mean":  mean,
		"scale": scale,
	})
	writeJSONFile(t, filepath.Join(dir, "label_encoder"+suffix+".json"), map[string]any{
		"classes": []string{"benign", "malicious"},
	})

	if withNames {
		names, _ := features.Names(version)
		writeJSONFile(t, filepath.Join(dir, "feature_names"+suffix+".json"), names)
	}
}

func writeJSONFile(t *testing.T, path string, v any) {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("fixture: marshal %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("fixture: write %s: %v", path, err)
	}
}
