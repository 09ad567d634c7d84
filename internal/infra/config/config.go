package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	LLM      LLMConfig      `yaml:"llm"`
	Sheets   SheetsConfig   `yaml:"sheets"`
	Personas PersonasConfig `yaml:"personas"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string          `yaml:"address"`
	ReadTimeout  time.Duration   `yaml:"readTimeout"`
	WriteTimeout time.Duration   `yaml:"writeTimeout"`
	CORSOrigins  []string        `yaml:"corsOrigins"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool   `yaml:"enabled"`
	RequestsPerMinute int    `yaml:"requestsPerMinute"`
	Burst             int    `yaml:"burst"`
	Backend           string `yaml:"backend"`
	ValkeyAddr        string `yaml:"valkeyAddr"`
}

// LLMConfig selects and parameterizes the completion provider.
type LLMConfig struct {
	Provider        string  `yaml:"provider"`
	APIKey          string  `yaml:"apiKey"`
	BaseURL         string  `yaml:"baseUrl"`
	Model           string  `yaml:"model"`
	Temperature     float32 `yaml:"temperature"`
	MaxOutputTokens int     `yaml:"maxOutputTokens"`
}

// SheetsConfig controls the spreadsheet export download.
type SheetsConfig struct {
	Timeout  time.Duration `yaml:"timeout"`
	MaxBytes int64         `yaml:"maxBytes"`
}

// PersonasConfig controls how persona images are exposed.
type PersonasConfig struct {
	AssetBaseURL string        `yaml:"assetBaseUrl"`
	Storage      StorageConfig `yaml:"storage"`
}

// StorageConfig describes an S3-compatible bucket holding persona images.
type StorageConfig struct {
	Enabled    bool          `yaml:"enabled"`
	Endpoint   string        `yaml:"endpoint"`
	AccessKey  string        `yaml:"accessKey"`
	SecretKey  string        `yaml:"secretKey"`
	Bucket     string        `yaml:"bucket"`
	Region     string        `yaml:"region"`
	PresignTTL time.Duration `yaml:"presignTtl"`
}

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	DefaultOpenAIModel = "gpt-4o"
	DefaultGeminiModel = "gemini-2.5-flash"

	RateLimitBackendMemory = "memory"
	RateLimitBackendValkey = "valkey"
)

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)
	applyProviderDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_CORS_ORIGINS"); v != "" {
		cfg.HTTP.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BACKEND"); v != "" {
		cfg.HTTP.RateLimit.Backend = strings.ToLower(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_VALKEY_ADDR"); v != "" {
		cfg.HTTP.RateLimit.ValkeyAddr = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = strings.ToLower(v)
	}
	// Provider specific key names are accepted as fallbacks for the generic one.
	for _, name := range []string{"LLM_API_KEY", providerKeyEnv(cfg.LLM.Provider)} {
		if v := os.Getenv(name); v != "" {
			cfg.LLM.APIKey = v
			break
		}
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("LLM_MAX_OUTPUT_TOKENS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.LLM.MaxOutputTokens = parsed
		}
	}
	if v := os.Getenv("SHEETS_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Sheets.Timeout = parsed
		}
	}
	if v := os.Getenv("SHEETS_MAX_BYTES"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Sheets.MaxBytes = parsed
		}
	}
	if v := os.Getenv("PERSONA_ASSET_BASE_URL"); v != "" {
		cfg.Personas.AssetBaseURL = v
	}
	if v := os.Getenv("PERSONA_STORAGE_ENABLED"); v != "" {
		cfg.Personas.Storage.Enabled = parseBool(v)
	}
	if v := os.Getenv("PERSONA_STORAGE_ENDPOINT"); v != "" {
		cfg.Personas.Storage.Endpoint = v
	}
	if v := os.Getenv("PERSONA_STORAGE_ACCESS_KEY"); v != "" {
		cfg.Personas.Storage.AccessKey = v
	}
	if v := os.Getenv("PERSONA_STORAGE_SECRET_KEY"); v != "" {
		cfg.Personas.Storage.SecretKey = v
	}
	if v := os.Getenv("PERSONA_STORAGE_BUCKET"); v != "" {
		cfg.Personas.Storage.Bucket = v
	}
	if v := os.Getenv("PERSONA_STORAGE_REGION"); v != "" {
		cfg.Personas.Storage.Region = v
	}
	if v := os.Getenv("PERSONA_STORAGE_PRESIGN_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Personas.Storage.PresignTTL = parsed
		}
	}
}

// applyProviderDefaults fills settings whose default depends on the chosen
// provider once file and env values are known.
func applyProviderDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.LLM.Model) == "" {
		cfg.LLM.Model = DefaultModelFor(cfg.LLM.Provider)
	}
}

// DefaultModelFor returns the model used when none is configured.
func DefaultModelFor(provider string) string {
	if provider == ProviderGemini {
		return DefaultGeminiModel
	}
	return DefaultOpenAIModel
}

func providerKeyEnv(provider string) string {
	if provider == ProviderGemini {
		return "GEMINI_API_KEY"
	}
	return "OPENAI_API_KEY"
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 90 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 20,
				Burst:             5,
				Backend:           RateLimitBackendMemory,
			},
		},
		LLM: LLMConfig{
			Provider:        ProviderOpenAI,
			Temperature:     0.78,
			MaxOutputTokens: 2000,
		},
		Sheets: SheetsConfig{
			Timeout:  15 * time.Second,
			MaxBytes: 2 << 20,
		},
		Personas: PersonasConfig{
			AssetBaseURL: "/static",
			Storage: StorageConfig{
				PresignTTL: time.Hour,
			},
		},
	}
}

// Validate ensures the configuration is safe to use. The LLM API key is
// deliberately not required here; requests report its absence individually.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("llm.provider %q must be one of openai, gemini", c.LLM.Provider)
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("llm.model cannot be empty")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return errors.New("llm.temperature must be within [0, 2]")
	}
	if c.LLM.MaxOutputTokens <= 0 {
		return errors.New("llm.maxOutputTokens must be positive")
	}
	if c.Sheets.Timeout <= 0 {
		return errors.New("sheets.timeout must be positive")
	}
	if c.Sheets.MaxBytes <= 0 {
		return errors.New("sheets.maxBytes must be positive")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
		switch c.HTTP.RateLimit.Backend {
		case RateLimitBackendMemory:
		case RateLimitBackendValkey:
			if strings.TrimSpace(c.HTTP.RateLimit.ValkeyAddr) == "" {
				return errors.New("http.rateLimit.valkeyAddr cannot be empty when backend is valkey")
			}
		default:
			return fmt.Errorf("http.rateLimit.backend %q must be one of memory, valkey", c.HTTP.RateLimit.Backend)
		}
	}
	if s := c.Personas.Storage; s.Enabled {
		if strings.TrimSpace(s.Endpoint) == "" || strings.TrimSpace(s.Bucket) == "" {
			return errors.New("personas.storage.endpoint and bucket are required when storage is enabled")
		}
		if s.PresignTTL <= 0 {
			return errors.New("personas.storage.presignTtl must be positive")
		}
	}
	return nil
}
