package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read by Load.
const DefaultPath = "config.yaml"

const (
	defaultProvider        = "gemini"
	defaultGeminiBackend   = "gemini"
	defaultGeminiText      = "gemini-3-pro-preview"
	defaultGeminiImage     = "gemini-3-pro-image-preview"
	defaultGeminiLocation  = "global"
	defaultGroqModel       = "llama-3.3-70b-versatile"
	defaultOpenAITextModel = "gpt-4o"
	defaultOpenAIImage     = "dall-e-3"
	defaultLanguage        = "Traditional Chinese (zh-TW)"
	defaultTimeout         = 2 * time.Minute
	defaultOutputDir       = "./output"
	defaultGCSPrefix       = "seoforge"
	defaultServerAddr      = ":8080"
)

type Config struct {
	GeminiAPIKey string
	GroqAPIKey   string
	OpenAIAPIKey string
	GCPProject   string
	GCSBucket    string

	Provider string        `yaml:"provider"` // "gemini", "groq" or "openai"
	Gemini   GeminiConfig  `yaml:"gemini"`
	Groq     GroqConfig    `yaml:"groq"`
	OpenAI   OpenAIConfig  `yaml:"openai"`
	Content  ContentConfig `yaml:"content"`
	Output   OutputConfig  `yaml:"output"`
	GCS      GCSConfig     `yaml:"gcs"`
	Server   ServerConfig  `yaml:"server"`
}

type GeminiConfig struct {
	Backend    string `yaml:"backend"` // "gemini" or "vertex"
	TextModel  string `yaml:"text_model"`
	ImageModel string `yaml:"image_model"`
	Location   string `yaml:"location"`
	SecretName string `yaml:"secret_name"`
}

type GroqConfig struct {
	Model string `yaml:"model"`
}

type OpenAIConfig struct {
	TextModel  string `yaml:"text_model"`
	ImageModel string `yaml:"image_model"`
	BaseURL    string `yaml:"base_url"`
}

type ContentConfig struct {
	Language string        `yaml:"language"`
	Timeout  time.Duration `yaml:"timeout"`
}

type OutputConfig struct {
	Dir string `yaml:"dir"`
}

type GCSConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Prefix   string `yaml:"prefix"`
	Endpoint string `yaml:"endpoint"` // e.g. a local fake-gcs-server; disables auth
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, DefaultPath)
}

func LoadFrom(ctx context.Context, path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GroqAPIKey:   os.Getenv("GROQ_API_KEY"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		GCPProject:   os.Getenv("GOOGLE_CLOUD_PROJECT"),
		GCSBucket:    os.Getenv("GCS_BUCKET"),
	}

	if err := loadYAMLConfig(cfg, path); err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	if err := resolveSecrets(ctx, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadYAMLConfig(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("No config file found, using defaults", "path", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Provider {
	case "gemini", "groq", "openai":
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	switch c.Gemini.Backend {
	case "gemini", "vertex":
	default:
		return fmt.Errorf("unknown gemini backend %q", c.Gemini.Backend)
	}
	if c.GCS.Enabled && c.GCSBucket == "" {
		return fmt.Errorf("gcs enabled but GCS_BUCKET is not set")
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Provider == "" {
		cfg.Provider = defaultProvider
	}
	applyGeminiDefaults(cfg)
	applyGroqDefaults(cfg)
	applyOpenAIDefaults(cfg)
	applyContentDefaults(cfg)
	applyOutputDefaults(cfg)
	applyGCSDefaults(cfg)
	applyServerDefaults(cfg)
}

func applyGeminiDefaults(cfg *Config) {
	if cfg.Gemini.Backend == "" {
		cfg.Gemini.Backend = defaultGeminiBackend
	}
	if cfg.Gemini.TextModel == "" {
		cfg.Gemini.TextModel = defaultGeminiText
	}
	if cfg.Gemini.ImageModel == "" {
		cfg.Gemini.ImageModel = defaultGeminiImage
	}
	if cfg.Gemini.Location == "" {
		cfg.Gemini.Location = defaultGeminiLocation
	}
}

func applyGroqDefaults(cfg *Config) {
	if cfg.Groq.Model == "" {
		cfg.Groq.Model = defaultGroqModel
	}
}

func applyOpenAIDefaults(cfg *Config) {
	if cfg.OpenAI.TextModel == "" {
		cfg.OpenAI.TextModel = defaultOpenAITextModel
	}
	if cfg.OpenAI.ImageModel == "" {
		cfg.OpenAI.ImageModel = defaultOpenAIImage
	}
}

func applyContentDefaults(cfg *Config) {
	if cfg.Content.Language == "" {
		cfg.Content.Language = defaultLanguage
	}
	if cfg.Content.Timeout <= 0 {
		cfg.Content.Timeout = defaultTimeout
	}
}

func applyOutputDefaults(cfg *Config) {
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = defaultOutputDir
	}
}

func applyGCSDefaults(cfg *Config) {
	if cfg.GCS.Prefix == "" {
		cfg.GCS.Prefix = defaultGCSPrefix
	}
}

func applyServerDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaultServerAddr
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}
}
