package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Batch  BatchConfig  `yaml:"batch" mapstructure:"batch"`
	Input  InputConfig  `yaml:"input" mapstructure:"input"`
	PDF    PDFConfig    `yaml:"pdf" mapstructure:"pdf"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// ServerConfig configures the HTTP intake API.
type ServerConfig struct {
	Port         int      `yaml:"port" mapstructure:"port"`
	CORSOrigins  []string `yaml:"cors_origins" mapstructure:"cors_origins"`
	RateRPS      float64  `yaml:"rate_rps" mapstructure:"rate_rps"`
	RateBurst    int      `yaml:"rate_burst" mapstructure:"rate_burst"`
	MaxBodyBytes int64    `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
}

// BatchConfig configures batch processing of document directories.
type BatchConfig struct {
	MaxConcurrentDocs int `yaml:"max_concurrent_docs" mapstructure:"max_concurrent_docs"`
}

// InputConfig configures how raw document text is read.
type InputConfig struct {
	Charset string `yaml:"charset" mapstructure:"charset"`
}

// PDFConfig configures the external pdftotext collaborator.
type PDFConfig struct {
	PdfToTextPath string `yaml:"pdftotext_path" mapstructure:"pdftotext_path"`
	TimeoutSecs   int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("CLAIMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.rate_rps", 20.0)
	v.SetDefault("server.rate_burst", 40)
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("batch.max_concurrent_docs", 4)
	v.SetDefault("input.charset", "utf-8")
	v.SetDefault("pdf.pdftotext_path", "pdftotext")
	v.SetDefault("pdf.timeout_secs", 60)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings the given command actually uses. Mode is the
// command name: process, batch, or serve.
func (c *Config) Validate(mode string) error {
	var problems []string

	switch mode {
	case "process", "batch":
		if c.Input.Charset == "" {
			problems = append(problems, "input.charset is required")
		}
		if c.PDF.PdfToTextPath == "" {
			problems = append(problems, "pdf.pdftotext_path is required")
		}
		if c.PDF.TimeoutSecs < 1 {
			problems = append(problems, "pdf.timeout_secs must be >= 1")
		}
		if mode == "batch" && (c.Batch.MaxConcurrentDocs < 1 || c.Batch.MaxConcurrentDocs > 64) {
			problems = append(problems, "batch.max_concurrent_docs must be between 1 and 64")
		}
	case "serve":
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			problems = append(problems, "server.port must be > 0 and <= 65535")
		}
		if c.Server.RateRPS <= 0 {
			problems = append(problems, "server.rate_rps must be > 0")
		}
		if c.Server.RateBurst < 1 {
			problems = append(problems, "server.rate_burst must be >= 1")
		}
		if c.Server.MaxBodyBytes < 1 {
			problems = append(problems, "server.max_body_bytes must be >= 1")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
