// internal/features/extractor.go

// Package features maps a canonical URL string to the fixed-order numeric
// feature vector a trained model generation was fit against. Extraction is
// pure and deterministic: same URL and version, same vector, always.
//
// Two mutually incompatible feature sets exist side by side. The order and
// cardinality of each set is frozen; changing either invalidates the
// scaler/model pairing of every artifact trained on it.
package features

import (
	"net/url"
	"regexp"
	"strings"

	"safelink/internal/core/domain"
)

// Keyword and host tables frozen with the feature sets. These mirror the
// tables the training pipeline used; editing them shifts feature values
// under deployed models.
var (
	// v2: one combined keyword flag
	legacyKeywords = []string{"login", "secure", "update", "free", "verify", "bank", "account", "paypal"}

	// v3: phishing bait and marketing bait split into separate flags
	phishingKeywords  = []string{"login", "secure", "verify", "account", "bank", "paypal", "update"}
	marketingKeywords = []string{"free", "win", "prize", "offer", "deal"}

	suspiciousTLDs = []string{".tk", ".ml", ".ga", ".cf", ".pw"}
	legitimateTLDs = []string{".com", ".org", ".net", ".edu", ".gov", ".mil"}

	urlShorteners = []string{"bit.ly", "tinyurl.com", "ow.ly", "t.co", "goo.gl"}

	// Characters counted by the num_special feature
	specialChars = ";_?=&"
)

var ipv4HostRegex = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+`)

var featureNamesV2 = []string{
	"url_length", "num_dots", "num_hyphens", "num_at", "num_digits",
	"num_params", "num_slashes", "num_question", "num_percent", "num_special",
	"domain_length", "path_length", "has_http", "has_suspicious_kw",
}

var featureNamesV3 = []string{
	"url_length", "num_dots", "num_hyphens", "num_at", "num_digits",
	"num_params", "num_slashes", "num_question", "num_percent", "num_special",
	"domain_length", "path_length", "has_http",
	"has_phishing_kw", "has_marketing_kw",
	"has_suspicious_tld", "has_legitimate_tld", "domain_looks_established",
	"is_url_shortener", "num_subdomains", "is_ip_address",
}

// Names returns the ordered feature names of a feature-set version.
func Names(version domain.FeatureSetVersion) ([]string, error) {
	switch version {
	case domain.FeatureSetV2:
		return featureNamesV2, nil
	case domain.FeatureSetV3:
		return featureNamesV3, nil
	default:
		return nil, domain.ErrUnknownFeatureSet
	}
}

// Count returns the vector dimensionality of a feature-set version.
func Count(version domain.FeatureSetVersion) (int, error) {
	names, err := Names(version)
	if err != nil {
		return 0, err
	}
	return len(names), nil
}

// Extract computes the ordered feature vector and the labeled feature map
// for the given canonical URL under the given feature-set version.
func Extract(rawURL string, version domain.FeatureSetVersion) ([]float64, domain.FeatureMap, error) {
	if !version.IsValid() {
		return nil, nil, domain.ErrUnknownFeatureSet
	}

	hostname, path := splitURL(rawURL)
	lower := strings.ToLower(rawURL)

	// Lexical counts common to both versions
	base := []float64{
		float64(len(rawURL)),
		float64(strings.Count(rawURL, ".")),
		float64(strings.Count(rawURL, "-")),
		float64(strings.Count(rawURL, "@")),
		float64(countDigits(rawURL)),
		float64(strings.Count(rawURL, "=")),
		float64(strings.Count(rawURL, "/")),
		float64(strings.Count(rawURL, "?")),
		float64(strings.Count(rawURL, "%")),
		float64(countAny(rawURL, specialChars)),
		float64(len(hostname)),
		float64(len(path)),
		boolFeature(strings.HasPrefix(lower, "http://")),
	}

	if version == domain.FeatureSetV2 {
		vector := append(base, boolFeature(containsAny(lower, legacyKeywords)))
		return vector, labelFeatures(featureNamesV2, vector), nil
	}

	// Enhanced v3 features
	parts := strings.Split(hostname, ".")
	mainLabel := ""
	if len(parts) > 0 {
		mainLabel = parts[0]
	}

	looksEstablished := len(mainLabel) >= 4 && !allDigits(mainLabel) && len(parts) >= 2

	numSubdomains := 0
	if len(parts) > 2 {
		numSubdomains = len(parts) - 2
	}

	vector := append(base,
		boolFeature(containsAny(lower, phishingKeywords)),
		boolFeature(containsAny(lower, marketingKeywords)),
		boolFeature(hasAnySuffix(hostname, suspiciousTLDs)),
		boolFeature(hasAnySuffix(hostname, legitimateTLDs)),
		boolFeature(looksEstablished),
		boolFeature(containsAny(hostname, urlShorteners)),
		float64(numSubdomains),
		boolFeature(ipv4HostRegex.MatchString(hostname)),
	)
	return vector, labelFeatures(featureNamesV3, vector), nil
}

// splitURL extracts the lowercase hostname and the path. A URL that fails
// to parse contributes empty host and path, matching what the training
// extraction produced for such inputs.
func splitURL(rawURL string) (hostname, path string) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed == nil {
		return "", ""
	}
	return strings.ToLower(parsed.Hostname()), parsed.Path
}

func labelFeatures(names []string, vector []float64) domain.FeatureMap {
	fm := make(domain.FeatureMap, len(names))
	for i, name := range names {
		fm[name] = vector[i]
	}
	return fm
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
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

func countAny(s, chars string) int {
	n := 0
	for _, r := range s {
		if strings.ContainsRune(chars, r) {
			n++
		}
	}
	return n
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

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
