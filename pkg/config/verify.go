package config

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema checks the loaded config against the committed
// schema: every top-level section must be declared there. A miss means the
// schema was not regenerated after a struct change.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema struct {
		Defs map[string]struct {
			Properties map[string]json.RawMessage `json:"properties"`
		} `json:"$defs"`
	}
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}
	root, ok := schema.Defs["Config"]
	if !ok {
		return fmt.Errorf("embedded schema has no Config definition")
	}

	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]interface{}
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	for key := range configMap {
		if _, declared := root.Properties[key]; !declared {
			return fmt.Errorf("config section %q missing from embedded schema, rerun cmd/schema", key)
		}
	}

	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	if cfg.Scrape.URL == "" {
		return fmt.Errorf("scrape.url is required")
	}
	if cfg.Scrape.Timeout == 0 {
		return fmt.Errorf("scrape.timeout is required")
	}
	if cfg.Schedule.Interval == 0 {
		return fmt.Errorf("schedule.interval is required")
	}

	// check enrichment config if enabled
	if cfg.Enrich.Enabled {
		if cfg.Enrich.Timeout == 0 {
			return fmt.Errorf("enrich.timeout is required when enrichment is enabled")
		}
		if cfg.Enrich.MaxConcurrent == 0 {
			return fmt.Errorf("enrich.max_concurrent is required when enrichment is enabled")
		}
	}

	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
