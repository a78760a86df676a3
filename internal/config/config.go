package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port            string        `json:"port" validate:"required,numeric"`
	Env             string        `json:"env" validate:"oneof=development production test"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" validate:"gt=0"`
	HTTPTimeout     time.Duration `json:"http_timeout" validate:"gt=0"`

	// WordPress configuration
	WordPressAPIURL    string         `json:"wordpress_api_url" validate:"required,url"`
	WordPressUserAgent string         `json:"wordpress_user_agent" validate:"required"`
	CategoryIDs        map[string]int `json:"category_ids" validate:"required,min=1,dive,gt=0"`
	HomePerPage        int            `json:"home_per_page" validate:"min=1,max=100"`
	CategoryPerPage    int            `json:"category_per_page" validate:"min=1,max=100"`
	RelatedPerPage     int            `json:"related_per_page" validate:"min=1,max=100"`
	Timezone           string         `json:"timezone" validate:"required,timezone"`

	// Redis configuration
	RedisURL    string        `json:"redis_url"`
	RedisPrefix string        `json:"redis_prefix"`
	CacheTTL    time.Duration `json:"cache_ttl" validate:"gte=0"`

	// Archive
	ArchivePath string `json:"archive_path"`

	// CloudFlare R2 Configuration
	R2Endpoint  string `json:"r2_endpoint" validate:"omitempty,url"`
	R2AccessKey string `json:"r2_access_key"`
	R2SecretKey string `json:"r2_secret_key"`
	R2Bucket    string `json:"r2_bucket"`
	R2AccountID string `json:"r2_account_id"`

	// Logging
	LogLevel  string `json:"log_level"`
	LogPretty bool   `json:"log_pretty"`

	// Security
	AdminAPIKey string `json:"admin_api_key"`
}

// DefaultCategoryIDs maps category keys to WordPress category ids
var DefaultCategoryIDs = map[string]int{
	"nacionales":      170094,
	"sanjuan":         67720,
	"sindicales":      3865306,
	"opinion":         352,
	"internacionales": 17119,
}

// Load loads configuration from environment variables and validates it
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := &Config{
		// Server configuration
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("APP_ENV", "development"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		HTTPTimeout:     getEnvAsDuration("HTTP_TIMEOUT", 30*time.Second),

		// WordPress configuration
		WordPressAPIURL:    getEnv("WORDPRESS_API_URL", "https://public-api.wordpress.com/wp/v2/sites/xtianaguilar79-hbsty.wordpress.com"),
		WordPressUserAgent: getEnv("WORDPRESS_USER_AGENT", "Mozilla/5.0 (compatible; UGNoticiasMineras/1.0; +https://ug-noticias-mineras.vercel.app)"),
		CategoryIDs:        getEnvAsCategoryIDs("WORDPRESS_CATEGORY_IDS", DefaultCategoryIDs),
		HomePerPage:        getEnvAsInt("HOME_PER_PAGE", 20),
		CategoryPerPage:    getEnvAsInt("CATEGORY_PER_PAGE", 50),
		RelatedPerPage:     getEnvAsInt("RELATED_PER_PAGE", 10),
		Timezone:           getEnv("TIMEZONE", "UTC"),

		// Redis configuration
		RedisURL:    getEnv("REDIS_URL", ""),
		RedisPrefix: getEnv("REDIS_PREFIX", "noticias:"),
		CacheTTL:    getEnvAsDuration("CACHE_TTL", 5*time.Minute),

		ArchivePath: getEnv("ARCHIVE_PATH", "./data"),

		// CloudFlare R2 Configuration
		R2Endpoint:  getEnv("R2_ENDPOINT", ""),
		R2AccessKey: getEnv("R2_ACCESS_KEY", ""),
		R2SecretKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2Bucket:    getEnv("R2_BUCKET", "noticias"),
		R2AccountID: getEnv("CLOUDFLARE_ACCOUNT_ID", ""),

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogPretty: getEnvAsBool("LOG_PRETTY", true),

		// Security
		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	return cfg
}

// Validate checks the struct tags and the cross-field rules
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if c.Env == "production" && c.AdminAPIKey == "" {
		return fmt.Errorf("ADMIN_API_KEY is required in production")
	}
	return nil
}

// Location resolves the configured time zone, falling back to UTC
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Invalid timezone %q: %v, using UTC", c.Timezone, err)
		return time.UTC
	}
	return loc
}

// UseR2 reports whether every R2 credential is present
func (c *Config) UseR2() bool {
	return c.R2Endpoint != "" && c.R2AccessKey != "" && c.R2SecretKey != "" && c.R2Bucket != ""
}

// Helper functions for environment variable handling
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultVal int) int {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %d", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %t", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}

// getEnvAsCategoryIDs parses "key=id,key=id"
func getEnvAsCategoryIDs(name string, defaultVal map[string]int) map[string]int {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return copyIDs(defaultVal)
	}

	ids, err := parseCategoryIDs(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using defaults", name, err)
		return copyIDs(defaultVal)
	}
	return ids
}

func parseCategoryIDs(value string) (map[string]int, error) {
	ids := make(map[string]int)
	for _, pair := range strings.Split(value, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, rawID, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("missing '=' in %q", pair)
		}
		id, err := strconv.Atoi(strings.TrimSpace(rawID))
		if err != nil {
			return nil, fmt.Errorf("invalid id for %q: %w", key, err)
		}
		ids[strings.TrimSpace(key)] = id
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no categories defined")
	}
	return ids, nil
}

func copyIDs(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
