package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"seungpyo.lee/PeakTrack/pkg/config"
)

const (
	DenylistPostgres = "postgres"
	DenylistRedis    = "redis"
)

type AppConfig struct {
	config.GlobalConfig
	PostgresDSN        string
	JWTSecretKey       string
	JWTIssuer          string
	DenylistBackend    string // postgres or redis
	RedisDBURL         string
	RedisDBPort        string
	RedisDBPassword    string
	TokenSweepInterval time.Duration
	Location           *time.Location // used to read from/to query bounds
	AuthRateLimitRPS   int
	AuthRateLimitBurst int
	Password           PasswordConfig
}

type PasswordConfig struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigit     bool
	RequireSpecial   bool
}

func LoadAppConfig() *AppConfig {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment variables")
	}
	return &AppConfig{
		GlobalConfig:       *config.LoadGlobalConfig(),
		PostgresDSN:        config.GetEnv("POSTGRES_DSN"),
		JWTSecretKey:       config.GetEnv("JWT_SECRET_KEY"),
		JWTIssuer:          config.GetEnvOrDefault("JWT_ISSUER", "peaktrack"),
		DenylistBackend:    config.GetEnvOrDefault("DENYLIST_BACKEND", DenylistPostgres),
		RedisDBURL:         config.GetEnvOrDefault("REDIS_DB_URL", "localhost"),
		RedisDBPort:        config.GetEnvOrDefault("REDIS_DB_PORT", "6379"),
		RedisDBPassword:    config.GetEnvOrDefault("REDIS_DB_PASSWORD", ""),
		TokenSweepInterval: getDurationEnvOrDefault("TOKEN_SWEEP_INTERVAL", time.Hour),
		Location:           getLocationEnvOrDefault("APP_TIMEZONE", time.UTC),
		AuthRateLimitRPS:   config.GetIntEnvOrDefault("AUTH_RATE_LIMIT_RPS", 5),
		AuthRateLimitBurst: config.GetIntEnvOrDefault("AUTH_RATE_LIMIT_BURST", 10),
		Password: PasswordConfig{
			MinLength:        config.GetIntEnvOrDefault("PASSWORD_MIN_LENGTH", 6),
			MaxLength:        config.GetIntEnvOrDefault("PASSWORD_MAX_LENGTH", 20),
			RequireUppercase: config.GetBoolEnvOrDefault("PASSWORD_REQUIRE_UPPERCASE", true),
			RequireLowercase: config.GetBoolEnvOrDefault("PASSWORD_REQUIRE_LOWERCASE", true),
			RequireDigit:     config.GetBoolEnvOrDefault("PASSWORD_REQUIRE_DIGIT", true),
			RequireSpecial:   config.GetBoolEnvOrDefault("PASSWORD_REQUIRE_SPECIAL", true),
		},
	}
}

// AccessTokenDuration converts the configured TTL minutes.
func (c *AppConfig) AccessTokenDuration() time.Duration {
	return time.Duration(c.AccessTokenTTL) * time.Minute
}

func getDurationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := config.GetEnvOrDefault(key, "")
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("invalid %s %q, using %s", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

func getLocationEnvOrDefault(key string, defaultValue *time.Location) *time.Location {
	raw := config.GetEnvOrDefault(key, "")
	if raw == "" {
		return defaultValue
	}
	loc, err := time.LoadLocation(raw)
	if err != nil {
		log.Printf("invalid %s %q, using %s", key, raw, defaultValue)
		return defaultValue
	}
	return loc
}
