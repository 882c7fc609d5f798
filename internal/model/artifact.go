// internal/model/artifact.go

// Package model owns the pre-trained linear classifier and its companion
// artifacts. Artifacts are loaded once at startup from a configured
// directory and treated as immutable for the process lifetime, so a single
// Artifact may be shared by any number of concurrent classification calls.
package model

import (
	"encoding/json"
	"os"
	"path/filepath"

	"safelink/internal/core/domain"
	"safelink/internal/features"
	"safelink/internal/platform/logx"
)

// Classifier is a fitted binary logistic regression: one coefficient per
// feature plus an intercept. Classes carries the label order used at
// training time; index 1 is the malicious class.
type Classifier struct {
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
	Classes   []string  `json:"classes,omitempty"`
}

// Scaler holds the standardization statistics fitted on the training set.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// LabelEncoder maps class indices back to label strings.
type LabelEncoder struct {
	Classes []string `json:"classes"`
}

// Artifact bundles one generation of trained files. Every sub-artifact is
// independently optional; classification requires at least the classifier
// and the scaler, everything else degrades gracefully.
type Artifact struct {
	dir     string
	version domain.FeatureSetVersion
	label   string

	classifier   *Classifier
	scaler       *Scaler
	encoder      *LabelEncoder
	featureNames []string
}

// generation describes the file naming of one trained-model generation,
// newest first in the lookup order.
type generation struct {
	version      domain.FeatureSetVersion
	label        string
	modelFile    string
	scalerFile   string
	encoderFile  string
	featuresFile string
}

var generations = []generation{
	{
		version:      domain.FeatureSetV3,
		label:        "logistic_regression_v3",
		modelFile:    "logistic_model_v3.json",
		scalerFile:   "scaler_v3.json",
		encoderFile:  "label_encoder_v3.json",
		featuresFile: "feature_names_v3.json",
	},
	{
		version:     domain.FeatureSetV2,
		label:       "logistic_regression_v2",
		modelFile:   "logistic_model_v2.json",
		scalerFile:  "scaler_v2.json",
		encoderFile: "label_encoder_v2.json",
	},
	{
		// Unsuffixed files from before versioned naming; trained on the
		// compact feature set.
		version:     domain.FeatureSetV2,
		label:       "logistic_regression",
		modelFile:   "logistic_model.json",
		scalerFile:  "scaler.json",
		encoderFile: "label_encoder.json",
	},
}

// Load reads the newest artifact generation present in dir, silently
// falling back to older generations when files are missing. Load never
// fails hard: missing or undecodable sub-artifacts are logged and left
// nil, and scoring later reports the artifact as unavailable.
func Load(dir string, logger logx.Logger) *Artifact {
	if logger == nil {
		logger = logx.New()
	}
	log := logger.With("component", "model")

	gen := pickGeneration(dir)
	a := &Artifact{
		dir:     dir,
		version: gen.version,
		label:   gen.label,
	}

	expected, _ := features.Count(gen.version)

	var clf Classifier
	if loadJSON(filepath.Join(dir, gen.modelFile), &clf, log) {
		if len(clf.Coef) != expected {
			log.Warn("classifier dimension does not match feature set, discarding",
				"file", gen.modelFile,
				"coefficients", len(clf.Coef),
				"expected", expected,
			)
		} else {
			a.classifier = &clf
			log.Info("classifier loaded", "generation", gen.label)
		}
	}

	var sc Scaler
	if loadJSON(filepath.Join(dir, gen.scalerFile), &sc, log) {
		if len(sc.Mean) != expected || len(sc.Scale) != expected {
			log.Warn("scaler dimension does not match feature set, discarding",
				"file", gen.scalerFile,
				"mean", len(sc.Mean),
				"scale", len(sc.Scale),
				"expected", expected,
			)
		} else {
			a.scaler = &sc
			log.Info("scaler loaded", "generation", gen.label)
		}
	}

	var enc LabelEncoder
	if loadJSON(filepath.Join(dir, gen.encoderFile), &enc, log) {
		a.encoder = &enc
		log.Info("label encoder loaded", "generation", gen.label)
	}

	if gen.featuresFile != "" {
		var names []string
		if loadJSON(filepath.Join(dir, gen.featuresFile), &names, log) {
			a.featureNames = names
			log.Info("feature names loaded", "count", len(names))
		}
	}

	return a
}

// pickGeneration returns the newest generation whose classifier file
// exists on disk. When nothing exists the newest generation is returned
// anyway so the artifact reports a consistent (empty) status.
func pickGeneration(dir string) generation {
	for _, gen := range generations {
		if fileExists(filepath.Join(dir, gen.modelFile)) {
			return gen
		}
	}
	return generations[0]
}

// loadJSON decodes path into v. Missing files are expected and silent;
// decode failures are warned about.
func loadJSON(path string, v any, log logx.Logger) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Warn("artifact file could not be decoded",
			"file", filepath.Base(path),
			"error", err.Error(),
		)
		return false
	}
	return true
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Available reports whether scoring is possible: both the classifier and
// the scaler must have loaded.
func (a *Artifact) Available() bool {
	return a != nil && a.classifier != nil && a.scaler != nil
}

// Version returns the feature-set version this artifact was trained on.
func (a *Artifact) Version() domain.FeatureSetVersion {
	return a.version
}

// Label returns the model identifier reported in results, e.g.
// "logistic_regression_v3".
func (a *Artifact) Label() string {
	return a.label
}

// FeatureNames returns the declared feature-name list when the artifact
// shipped one, otherwise the canonical names of its feature-set version.
func (a *Artifact) FeatureNames() []string {
	if len(a.featureNames) > 0 {
		return a.featureNames
	}
	names, _ := features.Names(a.version)
	return names
}

// Dir returns the artifact directory.
func (a *Artifact) Dir() string {
	return a.dir
}
