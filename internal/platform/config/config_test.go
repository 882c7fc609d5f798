// internal/platform/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"safelink/internal/testutil"
)

// isolate points SAFELINK_CONFIG away from any safelink.yaml in the
// working directory and clears the overlay environment.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("SAFELINK_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	for _, k := range []string{
		"SAFELINK_MODEL_DIR", "SAFELINK_SERVE", "SAFELINK_LISTEN",
		"SAFELINK_OUTPUT_DIR", "SAFELINK_JSON", "SAFELINK_QUIET",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil)
	testutil.AssertNoError(t, err, "load")

	testutil.AssertEqual(t, cfg.ModelDir, "models", "model dir")
	testutil.AssertEqual(t, cfg.Listen, ":5000", "listen")
	testutil.AssertFalse(t, cfg.Serve, "serve")
	testutil.AssertFalse(t, cfg.JSONOut, "json")
	testutil.AssertEqual(t, cfg.URL, "", "url")
}

func TestFlags(t *testing.T) {
	isolate(t)

	cfg, err := Load([]string{
		"-u", "https://example.com",
		"-m", "/opt/models",
		"-l", ":8080",
		"-j", "-t", "-q", "--serve",
	})
	testutil.AssertNoError(t, err, "load")

	testutil.AssertEqual(t, cfg.URL, "https://example.com", "url")
	testutil.AssertEqual(t, cfg.ModelDir, "/opt/models", "model dir")
	testutil.AssertEqual(t, cfg.Listen, ":8080", "listen")
	testutil.AssertTrue(t, cfg.JSONOut, "json")
	testutil.AssertTrue(t, cfg.Table, "table")
	testutil.AssertTrue(t, cfg.Quiet, "quiet")
	testutil.AssertTrue(t, cfg.Serve, "serve")
}

func TestBarePositionalURL(t *testing.T) {
	isolate(t)

	cfg, err := Load([]string{"github.com"})
	testutil.AssertNoError(t, err, "load")
	testutil.AssertEqual(t, cfg.URL, "github.com", "positional url")

	// An explicit -u wins over the positional argument.
	cfg, err = Load([]string{"-u", "https://a.com", "b.com"})
	testutil.AssertNoError(t, err, "load")
	testutil.AssertEqual(t, cfg.URL, "https://a.com", "flag wins")
}

func TestEnvironmentOverlay(t *testing.T) {
	isolate(t)
	t.Setenv("SAFELINK_MODEL_DIR", "/env/models")
	t.Setenv("SAFELINK_SERVE", "yes")
	t.Setenv("SAFELINK_QUIET", "0")

	cfg, err := Load(nil)
	testutil.AssertNoError(t, err, "load")

	testutil.AssertEqual(t, cfg.ModelDir, "/env/models", "model dir from env")
	testutil.AssertTrue(t, cfg.Serve, "serve from env")
	testutil.AssertFalse(t, cfg.Quiet, "quiet off")
}

func TestFlagsBeatEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("SAFELINK_MODEL_DIR", "/env/models")

	cfg, err := Load([]string{"-m", "/flag/models"})
	testutil.AssertNoError(t, err, "load")
	testutil.AssertEqual(t, cfg.ModelDir, "/flag/models", "flag wins over env")
}

func TestYAMLFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "safelink.yaml")
	yaml := "model_dir: /yaml/models\nlisten: \":9000\"\nquiet: true\n"
	err := os.WriteFile(path, []byte(yaml), 0o644)
	testutil.AssertNoError(t, err, "write config file")
	t.Setenv("SAFELINK_CONFIG", path)

	cfg, err := Load(nil)
	testutil.AssertNoError(t, err, "load")

	testutil.AssertEqual(t, cfg.ModelDir, "/yaml/models", "model dir from file")
	testutil.AssertEqual(t, cfg.Listen, ":9000", "listen from file")
	testutil.AssertTrue(t, cfg.Quiet, "quiet from file")

	// Env overlays the file, flags overlay both.
	t.Setenv("SAFELINK_LISTEN", ":9001")
	cfg, err = Load([]string{"-m", "/flag/models"})
	testutil.AssertNoError(t, err, "load")
	testutil.AssertEqual(t, cfg.Listen, ":9001", "env beats file")
	testutil.AssertEqual(t, cfg.ModelDir, "/flag/models", "flag beats file")
}

func TestBrokenYAMLFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "safelink.yaml")
	err := os.WriteFile(path, []byte(":\nnot yaml ["), 0o644)
	testutil.AssertNoError(t, err, "write config file")
	t.Setenv("SAFELINK_CONFIG", path)

	_, err = Load(nil)
	testutil.AssertError(t, err, "unparseable config file")
}

func TestUnknownFlag(t *testing.T) {
	isolate(t)

	_, err := Load([]string{"--definitely-not-a-flag"})
	testutil.AssertError(t, err, "unknown flag")
}

func TestNormalize(t *testing.T) {
	isolate(t)

	cfg, err := Load([]string{"-u", "  https://example.com  "})
	testutil.AssertNoError(t, err, "load")
	testutil.AssertEqual(t, cfg.URL, "https://example.com", "url trimmed")
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1", true}, {"true", true}, {"YES", true}, {"on", true}, {" t ", true},
		{"0", false}, {"false", false}, {"no", false}, {"", false}, {"junk", false},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, parseBool(tt.in), tt.want, tt.in)
	}
}
