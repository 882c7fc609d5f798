// internal/platform/config/help.go
package config

const helpText = `
SafeLink - URL Security Scanner

USAGE:
  safelink -u <url> [options]
  safelink <url>
  safelink --serve [options]

CORE OPTIONS:
  -u, --url string         URL to classify (or pass it as the first argument)
  -m, --model-dir string   Directory with trained model artifacts (default: "models")

SERVER OPTIONS:
  -s, --serve              Run the HTTP API server instead of a one-shot scan
  -l, --listen string      HTTP API listen address (default: ":5000")

OUTPUT OPTIONS:
  -j, --json               Print the result as JSON on stdout
  -t, --table              Print the result as a plain-text table
  -o, --out string         Also export the result as a JSON file into this directory
  -q, --quiet              Suppress the terminal panel and info logging

INFO:
      --status             Print model artifact status and exit
  -v, --version            Print version information and exit
  -h, --help               Show this help message

EXAMPLES:
  Classify a URL:
    safelink -u https://example.com/login

  Bare domains are accepted and canonicalized:
    safelink github.com

  JSON output for pipelines:
    safelink -u https://example.com -j -q

  Run the REST API:
    safelink --serve -l :8080 -m /var/lib/safelink/models

ENVIRONMENT VARIABLES:
  SAFELINK_MODEL_DIR, SAFELINK_SERVE, SAFELINK_LISTEN, SAFELINK_OUTPUT_DIR,
  SAFELINK_JSON, SAFELINK_TABLE, SAFELINK_QUIET, SAFELINK_LOG_LEVEL
  SAFELINK_CONFIG points to a YAML config file (default: ./safelink.yaml)
`
