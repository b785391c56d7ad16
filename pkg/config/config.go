package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Sentiment  SentimentConfig
	Categories CategoriesConfig
	Trend      TrendConfig
	Pipeline   PipelineConfig
	Ingest     IngestConfig
	Export     ExportConfig
	AI         AIConfig
	Metrics    MetricsConfig
	Logging    LoggingConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  int
	WriteTimeout int
	BodyLimit    int
}

// SentimentConfig fixes the label cutoffs. Scores above PositiveThreshold
// map to Positive, below NegativeThreshold to Negative, and the closed band
// between them to Neutral.
type SentimentConfig struct {
	PositiveThreshold float64
	NegativeThreshold float64
}

// CategoriesConfig points at the ordered rule table. An empty RulesPath
// means the built-in default table is used.
type CategoriesConfig struct {
	RulesPath string
}

type TrendConfig struct {
	Granularity string
}

type PipelineConfig struct {
	Workers int
}

type IngestConfig struct {
	Input         string
	MinTextLength int
	SampleSize    int
}

type ExportConfig struct {
	Dir string
}

type AIConfig struct {
	Enabled   bool
	APIKey    string
	Model     string
	MaxTokens int
}

type MetricsConfig struct {
	Enabled bool
}

type LoggingConfig struct {
	Level      string
	Format     string
	OutputPath string
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/reviewlens")

	viper.SetEnvPrefix("REVIEWLENS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configurations that would invalidate every downstream
// result, before any review is processed.
func (c *Config) Validate() error {
	if c.Sentiment.PositiveThreshold <= c.Sentiment.NegativeThreshold {
		return fmt.Errorf("invalid sentiment thresholds: positive cutoff %.3f must exceed negative cutoff %.3f",
			c.Sentiment.PositiveThreshold, c.Sentiment.NegativeThreshold)
	}
	switch c.Trend.Granularity {
	case "month", "week", "day":
	default:
		return fmt.Errorf("invalid trend granularity %q: must be month, week, or day", c.Trend.Granularity)
	}
	if c.Pipeline.Workers < 1 {
		return fmt.Errorf("invalid pipeline workers %d: must be at least 1", c.Pipeline.Workers)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.readTimeout", 30)
	viper.SetDefault("server.writeTimeout", 60)
	viper.SetDefault("server.bodyLimit", 52428800)

	viper.SetDefault("sentiment.positiveThreshold", 0.05)
	viper.SetDefault("sentiment.negativeThreshold", -0.05)

	viper.SetDefault("categories.rulesPath", "")

	viper.SetDefault("trend.granularity", "month")

	viper.SetDefault("pipeline.workers", 4)

	viper.SetDefault("ingest.input", "./data/reviews.csv")
	viper.SetDefault("ingest.minTextLength", 20)
	viper.SetDefault("ingest.sampleSize", 0)

	viper.SetDefault("export.dir", "./outputs")

	viper.SetDefault("ai.enabled", false)
	viper.SetDefault("ai.model", "gpt-4o-mini")
	viper.SetDefault("ai.maxTokens", 1024)

	viper.SetDefault("metrics.enabled", true)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.outputPath", "stdout")
}
