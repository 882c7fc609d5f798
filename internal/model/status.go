// internal/model/status.go
package model

import "path/filepath"

// Status reports what loaded and which artifact files exist on disk.
// Used by health checks and the model info endpoint; it never errors,
// only reports booleans.
type Status struct {
	ModelLoaded   bool            `json:"model_loaded"`
	ScalerLoaded  bool            `json:"scaler_loaded"`
	EncoderLoaded bool            `json:"encoder_loaded"`
	ModelFiles    map[string]bool `json:"model_files"`
}

// Status probes the artifact directory. File existence is checked live so
// the probe reflects files added or removed after startup, while the
// *_loaded booleans reflect what this process actually loaded.
func (a *Artifact) Status() Status {
	files := make(map[string]bool)
	for _, gen := range generations {
		names := []string{gen.modelFile, gen.scalerFile, gen.encoderFile}
		if gen.featuresFile != "" {
			names = append(names, gen.featuresFile)
		}
		for _, name := range names {
			files[name] = fileExists(filepath.Join(a.dir, name))
		}
	}

	return Status{
		ModelLoaded:   a.classifier != nil,
		ScalerLoaded:  a.scaler != nil,
		EncoderLoaded: a.encoder != nil,
		ModelFiles:    files,
	}
}
