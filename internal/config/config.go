package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultUserAgent is the default User-Agent string sent with all HTTP requests.
const DefaultUserAgent = "ShowBrowser/1.0 (+https://github.com/Belphemur/ShowBrowser)"

// DefaultImageURL is the placeholder used for shows that have no image.
const DefaultImageURL = "https://tinyurl.com/tv-missing"

// DefaultTVMazeDomain is the public TVMaze API base URL.
const DefaultTVMazeDomain = "https://api.tvmaze.com"

type Config struct {
	ProxyConnectionString string `mapstructure:"proxy_connection_string"`
	TVMazeDomain          string `mapstructure:"tvmaze_domain"`
	DefaultImageURL       string `mapstructure:"default_image_url"`
	ClientTimeout         string `mapstructure:"client_timeout"` // Go duration string like "30s", "1h", etc.
	UserAgent             string `mapstructure:"user_agent"`
	Server                struct {
		Port    int    `mapstructure:"port"`
		Address string `mapstructure:"address"`
	} `mapstructure:"server"`
	LogLevel string `mapstructure:"log_level"`
	Log      struct {
		File       string `mapstructure:"file"`        // Optional path of a rotated JSON log file
		MaxSize    int    `mapstructure:"max_size"`    // Megabytes before rotation
		MaxBackups int    `mapstructure:"max_backups"` // Rotated files to keep
		MaxAge     int    `mapstructure:"max_age"`     // Days to keep rotated files
		Compress   bool   `mapstructure:"compress"`
	} `mapstructure:"log"`
	Cache struct {
		Type  string `mapstructure:"type"` // "memory" or "redis"
		Size  int    `mapstructure:"size"` // Maximum number of entries in the LRU cache
		TTL   string `mapstructure:"ttl"`  // Go duration string like "1h", "24h", etc.
		Redis struct {
			Address  string `mapstructure:"address"`
			Password string `mapstructure:"password"`
			DB       int    `mapstructure:"db"`
		} `mapstructure:"redis"`
	} `mapstructure:"cache"`
	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"metrics"`
	Sentry struct {
		DSN         string `mapstructure:"dsn"`
		Environment string `mapstructure:"environment"`
	} `mapstructure:"sentry"`
}

var (
	globalConfig *Config
	logger       zerolog.Logger
)

func init() {
	// Initialize zerolog with console writer for human-readable output
	logger = zerolog.New(consoleWriter()).With().Timestamp().Logger()

	config, err := LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	if config.Log.File != "" {
		fileLogger, err := newFileLogger(config)
		if err != nil {
			logger.Warn().Err(err).Str("file", config.Log.File).Msg("Failed to open log file, logging to console only")
		} else {
			logger = fileLogger
			logger.Info().Str("file", config.Log.File).Msg("Logging to file")
		}
	}

	level := zerolog.InfoLevel
	if config.LogLevel != "" {
		if parsedLevel, err := zerolog.ParseLevel(config.LogLevel); err == nil {
			level = parsedLevel
		} else {
			logger.Warn().Str("invalid_level", config.LogLevel).Msg("Invalid log level, using default 'info'")
		}
	}

	zerolog.SetGlobalLevel(level)
	logger = logger.Level(level)

	logger.Info().Str("level", level.String()).Msg("Logging configured")
	globalConfig = config
	logger.Info().Msg("Configuration loaded successfully")
}

func consoleWriter() io.Writer {
	return zerolog.ConsoleWriter{
		Out:     os.Stdout,
		NoColor: false,
	}
}

// newFileLogger writes human-readable lines to stdout and JSON lines to a rotated file
func newFileLogger(config *Config) (zerolog.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(config.Log.File), 0o755); err != nil {
		return zerolog.Logger{}, err
	}
	fileWriter := &lumberjack.Logger{
		Filename:   config.Log.File,
		MaxSize:    config.Log.MaxSize,
		MaxBackups: config.Log.MaxBackups,
		MaxAge:     config.Log.MaxAge,
		Compress:   config.Log.Compress,
	}
	return zerolog.New(zerolog.MultiLevelWriter(consoleWriter(), fileWriter)).With().Timestamp().Logger(), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tvmaze_domain", DefaultTVMazeDomain)
	v.SetDefault("default_image_url", DefaultImageURL)
	v.SetDefault("client_timeout", "30s")
	v.SetDefault("proxy_connection_string", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.address", "localhost")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 50)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.compress", true)
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.size", 500)
	v.SetDefault("cache.ttl", "1h")
	v.SetDefault("cache.redis.address", "")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.db", 0)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "production")
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variable support
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("log_level", "LOG_LEVEL")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	if config.DefaultImageURL == "" {
		config.DefaultImageURL = DefaultImageURL
	}

	return &config, nil
}

func GetConfig() *Config {
	return globalConfig
}

func GetUserAgent() string {
	if globalConfig != nil && globalConfig.UserAgent != "" {
		return globalConfig.UserAgent
	}

	return DefaultUserAgent
}

func GetLogger() zerolog.Logger {
	return logger
}
