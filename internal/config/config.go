package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	CORS     CORSConfig
	Upload   UploadConfig
	Document DocumentConfig
	Noise    NoiseConfig
	Legacy   LegacyConfig
	S3       S3Config
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig holds limits applied to uploaded quote documents.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxBytes returns the upload limit in bytes.
func (u UploadConfig) MaxBytes() int64 {
	return u.MaxFileSizeMB << 20
}

// DocumentConfig selects the PDF loading backends.
type DocumentConfig struct {
	Backend  string `mapstructure:"backend"`
	Fallback string `mapstructure:"fallback"`
	TempDir  string `mapstructure:"temp_dir"`
}

// Backends returns the configured backends in the order they should be
// tried, without blanks or repeats.
func (d DocumentConfig) Backends() []string {
	var out []string
	for _, name := range []string{d.Backend, d.Fallback} {
		name = strings.TrimSpace(name)
		if name == "" || (len(out) > 0 && out[0] == name) {
			continue
		}
		out = append(out, name)
	}
	return out
}

// NoiseConfig holds extra letterhead phrases stripped from descriptions.
type NoiseConfig struct {
	Phrases []string `mapstructure:"phrases"`
}

// LegacyConfig drives the whole-page dump endpoint.
type LegacyConfig struct {
	SplitPage     int      `mapstructure:"split_page"`
	IgnorePhrases []string `mapstructure:"ignore_phrases"`
}

// S3Config holds AWS S3 settings for the upload archive.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Prefix    string `mapstructure:"prefix"`
}

// ArchiveEnabled reports whether uploads should be archived.
func (s S3Config) ArchiveEnabled() bool {
	return s.Bucket != ""
}

// LoadDotEnv copies KEY=VALUE pairs from the given files (".env" when none
// are named) into the process environment. Variables that are already set
// win and missing files are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// Load reads configuration from environment variables with the QUOTEPARSE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("QUOTEPARSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 25)

	// Document defaults
	v.SetDefault("document.backend", "tabula")
	v.SetDefault("document.fallback", "plain")
	v.SetDefault("document.temp_dir", "")

	// Noise and legacy dump defaults
	v.SetDefault("noise.phrases", "Accurate Industries,6/23 Ashtan Pl")
	v.SetDefault("legacy.split_page", 3)
	v.SetDefault("legacy.ignore_phrases",
		"ABN 99 657 158 524,6/23 Ashtan Pl,admin@accurateindustries.com.au,www.accurateindustries.com.au,1300 101 666,Accurate Industries,Page")

	// S3 defaults (archive disabled until a bucket is set)
	v.SetDefault("s3.region", "ap-southeast-2")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.prefix", "quotes")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "QUOTEPARSE_SERVER_PORT",
		"server.read_timeout":     "QUOTEPARSE_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "QUOTEPARSE_SERVER_WRITE_TIMEOUT",
		"server.environment":      "QUOTEPARSE_SERVER_ENVIRONMENT",
		"log.level":               "QUOTEPARSE_LOG_LEVEL",
		"log.format":              "QUOTEPARSE_LOG_FORMAT",
		"cors.allowed_origins":    "QUOTEPARSE_CORS_ALLOWED_ORIGINS",
		"upload.max_file_size_mb": "QUOTEPARSE_UPLOAD_MAX_FILE_SIZE_MB",
		"document.backend":        "QUOTEPARSE_DOCUMENT_BACKEND",
		"document.fallback":       "QUOTEPARSE_DOCUMENT_FALLBACK",
		"document.temp_dir":       "QUOTEPARSE_DOCUMENT_TEMP_DIR",
		"noise.phrases":           "QUOTEPARSE_NOISE_PHRASES",
		"legacy.split_page":       "QUOTEPARSE_LEGACY_SPLIT_PAGE",
		"legacy.ignore_phrases":   "QUOTEPARSE_LEGACY_IGNORE_PHRASES",
		"s3.region":               "QUOTEPARSE_S3_REGION",
		"s3.bucket":               "QUOTEPARSE_S3_BUCKET",
		"s3.endpoint":             "QUOTEPARSE_S3_ENDPOINT",
		"s3.access_key":           "QUOTEPARSE_S3_ACCESS_KEY",
		"s3.secret_key":           "QUOTEPARSE_S3_SECRET_KEY",
		"s3.prefix":               "QUOTEPARSE_S3_PREFIX",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if QUOTEPARSE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("QUOTEPARSE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.Document = DocumentConfig{
		Backend:  v.GetString("document.backend"),
		Fallback: v.GetString("document.fallback"),
		TempDir:  v.GetString("document.temp_dir"),
	}
	cfg.Noise = NoiseConfig{
		Phrases: splitList(v.GetString("noise.phrases")),
	}
	cfg.Legacy = LegacyConfig{
		SplitPage:     v.GetInt("legacy.split_page"),
		IgnorePhrases: splitList(v.GetString("legacy.ignore_phrases")),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
		Prefix:    strings.Trim(v.GetString("s3.prefix"), "/"),
	}

	return cfg, nil
}

// splitList parses a comma-separated setting, dropping blank entries.
func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
