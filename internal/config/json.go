package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dkrasnovs/launchboard/internal/flagx"
	"github.com/dkrasnovs/launchboard/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "30s" or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	QueryLimit     int            `json:"query_limit"`
	DatabasePath   string         `json:"database_path"`
	TokenSecret    string         `json:"token_secret"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flag. When no file is given, cfg is left as-is. Only fields
// present in the JSON override the current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.QueryLimit > 0 {
		cfg.QueryLimit = jc.QueryLimit
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.TokenSecret != "" {
		cfg.TokenSecret = jc.TokenSecret
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
