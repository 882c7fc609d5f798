// internal/model/score.go
package model

import (
	"math"

	"safelink/internal/core/domain"
	"safelink/internal/platform/errors"
)

// Score standardizes the feature vector with the fitted scaler and
// evaluates the logistic classifier.
//
// It returns the probability mass assigned to the malicious class and the
// maximum class probability as confidence, both in [0,1]. Score performs
// read-only evaluation and is safe for concurrent use.
func (a *Artifact) Score(vector []float64) (pMalicious, confidence float64, err error) {
	if !a.Available() {
		return 0, 0, errors.ErrModelUnavailable
	}
	if len(vector) != len(a.scaler.Mean) {
		return 0, 0, errors.Wrapf(domain.ErrFeatureDimension,
			"got %d features, scaler was fit on %d", len(vector), len(a.scaler.Mean))
	}

	z := a.classifier.Intercept
	for i, v := range vector {
		scale := a.scaler.Scale[i]
		if scale == 0 {
			// Fitted scalers store 1.0 for zero-variance features; a
			// literal 0 in the artifact gets the same treatment.
			scale = 1
		}
		z += a.classifier.Coef[i] * ((v - a.scaler.Mean[i]) / scale)
	}

	pMalicious = sigmoid(z)
	confidence = math.Max(pMalicious, 1-pMalicious)
	return pMalicious, confidence, nil
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
