package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Scrape ScrapeConfig `yaml:"scrape" json:"scrape" jsonschema:"description=Front page scraping configuration"`

	Enrich EnrichConfig `yaml:"enrich" json:"enrich" jsonschema:"description=Optional article text enrichment"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for story classification"`

	SMS SMSConfig `yaml:"sms" json:"sms" jsonschema:"description=Twilio SMS delivery configuration"`

	Schedule struct {
		Interval time.Duration `yaml:"interval" json:"interval" jsonschema:"default=3h,description=Time between runs"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Run scheduling"`
}

// ScrapeConfig holds front page scraping settings
type ScrapeConfig struct {
	URL       string        `yaml:"url" json:"url" jsonschema:"default=https://news.ycombinator.com,description=Front page URL to scrape"`
	Mode      string        `yaml:"mode" json:"mode" jsonschema:"default=browser,enum=browser,enum=feed,description=browser renders the page in headless Chrome; feed pulls the RSS mirror"`
	FeedURL   string        `yaml:"feed_url" json:"feed_url" jsonschema:"default=https://hnrss.org/frontpage,description=RSS mirror used in feed mode"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=90s,description=Per-run scraping deadline"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"description=User agent for outbound requests"`
}

// EnrichConfig holds article text enrichment settings
type EnrichConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Attach extracted article text to top stories before classification"`
	Top           int           `yaml:"top" json:"top" jsonschema:"default=5,description=Number of leading stories to enrich"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Per-article fetch deadline"`
	MaxConcurrent int           `yaml:"max_concurrent" json:"max_concurrent" jsonschema:"default=3,description=Maximum concurrent article fetches"`
}

// LLMConfig holds model settings and the registry of known providers. Exactly
// one provider is active for the lifetime of the process, selected by Active.
type LLMConfig struct {
	Active      string        `yaml:"active" json:"active" jsonschema:"default=openai,enum=openai,enum=groq,enum=deepseek,description=Name of the active provider"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.2,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=500,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Completion request deadline"`

	OpenAI   Provider `yaml:"openai" json:"openai" jsonschema:"description=OpenAI credentials"`
	Groq     Provider `yaml:"groq" json:"groq" jsonschema:"description=Groq credentials"`
	DeepSeek Provider `yaml:"deepseek" json:"deepseek" jsonschema:"description=DeepSeek credentials"`
}

// Provider is a single model-provider configuration, immutable once loaded
type Provider struct {
	Name     string `yaml:"-" json:"-"`
	APIKey   string `yaml:"api_key" json:"api_key" jsonschema:"description=API key (use environment variable expansion)"`
	Endpoint string `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	Model    string `yaml:"model" json:"model" jsonschema:"description=Model identifier"`
}

// SMSConfig holds Twilio delivery settings
type SMSConfig struct {
	AccountSID string `yaml:"account_sid" json:"account_sid" jsonschema:"required,description=Twilio account SID"`
	AuthToken  string `yaml:"auth_token" json:"auth_token" jsonschema:"required,description=Twilio auth token"`
	From       string `yaml:"from" json:"from" jsonschema:"required,description=Sender phone number"`
	To         string `yaml:"to" json:"to" jsonschema:"required,description=Recipient phone number"`
}

// ErrUnknownProvider is returned when llm.active names a provider outside the
// known set. Fatal at startup, every run depends on a valid provider.
var ErrUnknownProvider = errors.New("unknown llm provider")

// ActiveProvider resolves the provider selected by llm.active, falling back to
// openai when unset. The provider set is closed; anything else fails.
func (c *LLMConfig) ActiveProvider() (Provider, error) {
	name := c.Active
	if name == "" {
		name = "openai"
	}

	var p Provider
	switch name {
	case "openai":
		p = c.OpenAI.withDefaults("https://api.openai.com/v1", "gpt-4o-mini")
	case "groq":
		p = c.Groq.withDefaults("https://api.groq.com/openai/v1", "llama-3.3-70b-versatile")
	case "deepseek":
		p = c.DeepSeek.withDefaults("https://api.deepseek.com/v1", "deepseek-chat")
	default:
		return Provider{}, fmt.Errorf("llm provider %q: %w", name, ErrUnknownProvider)
	}

	p.Name = name
	return p, nil
}

// withDefaults fills endpoint and model when the config left them empty
func (p Provider) withDefaults(endpoint, model string) Provider {
	if p.Endpoint == "" {
		p.Endpoint = endpoint
	}
	if p.Model == "" {
		p.Model = model
	}
	return p
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables so secrets never live in the file
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for scraping
	if cfg.Scrape.URL == "" {
		cfg.Scrape.URL = "https://news.ycombinator.com"
	}
	if cfg.Scrape.Mode == "" {
		cfg.Scrape.Mode = "browser"
	}
	if cfg.Scrape.FeedURL == "" {
		cfg.Scrape.FeedURL = "https://hnrss.org/frontpage"
	}
	if cfg.Scrape.Timeout == 0 {
		cfg.Scrape.Timeout = 90 * time.Second
	}
	if cfg.Scrape.UserAgent == "" {
		cfg.Scrape.UserAgent = "Mozilla/5.0 (compatible; Newspager/1.0)"
	}

	// set defaults for enrichment
	if cfg.Enrich.Top == 0 {
		cfg.Enrich.Top = 5
	}
	if cfg.Enrich.Timeout == 0 {
		cfg.Enrich.Timeout = 15 * time.Second
	}
	if cfg.Enrich.MaxConcurrent == 0 {
		cfg.Enrich.MaxConcurrent = 3
	}

	// set defaults for LLM
	if cfg.LLM.Active == "" {
		cfg.LLM.Active = "openai"
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.2
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 500
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 60 * time.Second
	}

	// set defaults for schedule
	if cfg.Schedule.Interval == 0 {
		cfg.Schedule.Interval = 3 * time.Hour
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate scraping config
	if cfg.Scrape.Mode != "browser" && cfg.Scrape.Mode != "feed" {
		return fmt.Errorf("scrape.mode must be browser or feed, got %q", cfg.Scrape.Mode)
	}
	if cfg.Scrape.Timeout < time.Second {
		return fmt.Errorf("scrape.timeout must be at least 1 second")
	}

	// validate enrichment config
	if cfg.Enrich.Enabled {
		if cfg.Enrich.Top < 1 {
			return fmt.Errorf("enrich.top must be at least 1")
		}
		if cfg.Enrich.Timeout < time.Second {
			return fmt.Errorf("enrich.timeout must be at least 1 second")
		}
		if cfg.Enrich.MaxConcurrent < 1 {
			return fmt.Errorf("enrich.max_concurrent must be at least 1")
		}
	}

	// validate LLM config
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.LLM.MaxTokens < 1 {
		return fmt.Errorf("llm.max_tokens must be at least 1")
	}

	// validate SMS config
	if cfg.SMS.AccountSID == "" {
		return fmt.Errorf("sms.account_sid is required")
	}
	if cfg.SMS.AuthToken == "" {
		return fmt.Errorf("sms.auth_token is required")
	}
	if cfg.SMS.From == "" {
		return fmt.Errorf("sms.from is required")
	}
	if cfg.SMS.To == "" {
		return fmt.Errorf("sms.to is required")
	}

	// validate schedule config
	if cfg.Schedule.Interval < time.Minute {
		return fmt.Errorf("schedule.interval must be at least 1 minute")
	}

	return nil
}
