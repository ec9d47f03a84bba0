package config

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"starmap-server/internal/shared/random"
	"starmap-server/internal/shared/utils"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Auth       AuthConfig
	Frontend   FrontendConfig
	Logging    LoggingConfig
	RateLimit  RateLimitConfig
	Generation GenerationConfig
	Saves      SavesConfig
}

type RedisConfig struct {
	Enabled  bool
	URL      string
	Host     string
	Port     string
	Password string
	DB       int
}

type ServerConfig struct {
	Port         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MigrationsPath  string
}

type AuthConfig struct {
	JWTSecret       string
	TokenExpiration time.Duration
	CookieSecure    bool
	CookieSameSite  string
}

type FrontendConfig struct {
	URL       string
	CORSDebug bool
}

type LoggingConfig struct {
	Level      string
	JSONFormat bool
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	BurstSize         int
	TrustProxy        bool
}

// GenerationConfig holds the per-level child count ranges and the
// constellation connection radius used when no request overrides them
type GenerationConfig struct {
	Constellations   random.Range
	Systems          random.Range
	Planets          random.Range
	ConnectionRadius float64
}

type SavesConfig struct {
	Dir      string
	CacheTTL time.Duration
}

var GlobalConfig *Config

func Init() error {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	config, err := load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := config.validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	GlobalConfig = config
	return nil
}

func load() (*Config, error) {
	config := &Config{
		Server:     loadServerConfig(),
		Database:   loadDatabaseConfig(),
		Redis:      loadRedisConfig(),
		Auth:       loadAuthConfig(),
		Frontend:   loadFrontendConfig(),
		Logging:    loadLoggingConfig(),
		RateLimit:  loadRateLimitConfig(),
		Generation: loadGenerationConfig(),
		Saves:      loadSavesConfig(),
	}

	return config, nil
}

func loadRedisConfig() RedisConfig {
	enabled := utils.GetEnv("REDIS_ENABLED", "true") == "true"
	db, _ := strconv.Atoi(utils.GetEnv("REDIS_DB", "0"))

	return RedisConfig{
		Enabled:  enabled,
		URL:      utils.GetEnv("REDIS_URL", ""),
		Host:     utils.GetEnv("REDIS_HOST", "localhost"),
		Port:     utils.GetEnv("REDIS_PORT", "6379"),
		Password: utils.GetEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func loadServerConfig() ServerConfig {
	readTimeout := utils.GetEnvInt("SERVER_READ_TIMEOUT_SECONDS", 15)
	writeTimeout := utils.GetEnvInt("SERVER_WRITE_TIMEOUT_SECONDS", 15)
	idleTimeout := utils.GetEnvInt("SERVER_IDLE_TIMEOUT_SECONDS", 60)

	return ServerConfig{
		Port:         utils.GetEnv("SERVER_PORT", "8080"),
		Environment:  utils.GetEnv("ENVIRONMENT", "development"),
		ReadTimeout:  time.Duration(readTimeout) * time.Second,
		WriteTimeout: time.Duration(writeTimeout) * time.Second,
		IdleTimeout:  time.Duration(idleTimeout) * time.Second,
	}
}

func loadDatabaseConfig() DatabaseConfig {
	maxOpenConns := utils.GetEnvInt("DB_MAX_OPEN_CONNS", 25)
	maxIdleConns := utils.GetEnvInt("DB_MAX_IDLE_CONNS", 5)
	connMaxLifetime := utils.GetEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 5)

	return DatabaseConfig{
		Host:            utils.GetEnv("DB_HOST", "localhost"),
		Port:            utils.GetEnv("DB_PORT", "5432"),
		User:            utils.GetEnv("DB_USER", "postgres"),
		Password:        utils.GetEnv("DB_PASSWORD", "postgres"),
		Name:            utils.GetEnv("DB_NAME", "starmap"),
		SSLMode:         utils.GetEnv("DB_SSLMODE", "disable"),
		MaxOpenConns:    maxOpenConns,
		MaxIdleConns:    maxIdleConns,
		ConnMaxLifetime: time.Duration(connMaxLifetime) * time.Minute,
		MigrationsPath:  utils.GetEnv("DB_MIGRATIONS_PATH", "migrations"),
	}
}

func loadAuthConfig() AuthConfig {
	tokenExpiration := utils.GetEnvInt("JWT_EXPIRATION_HOURS", 24)

	return AuthConfig{
		JWTSecret:       utils.GetEnv("JWT_SECRET", ""),
		TokenExpiration: time.Duration(tokenExpiration) * time.Hour,
		CookieSecure:    utils.GetEnv("COOKIE_SECURE", "false") == "true",
		CookieSameSite:  utils.GetEnv("COOKIE_SAMESITE", "lax"),
	}
}

func loadFrontendConfig() FrontendConfig {
	return FrontendConfig{
		URL:       utils.GetEnv("FRONTEND_URL", "http://localhost:3000"),
		CORSDebug: utils.GetEnv("CORS_DEBUG", "") == "true",
	}
}

func loadLoggingConfig() LoggingConfig {
	environment := utils.GetEnv("ENVIRONMENT", "development")

	return LoggingConfig{
		Level:      utils.GetEnv("LOG_LEVEL", "debug"),
		JSONFormat: environment == "production" || utils.GetEnv("LOG_FORMAT", "text") == "json",
	}
}

func loadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled:           utils.GetEnv("RATE_LIMIT_ENABLED", "true") == "true",
		RequestsPerSecond: utils.GetEnvFloat("RATE_LIMIT_REQUESTS_PER_SECOND", 10),
		BurstSize:         utils.GetEnvInt("RATE_LIMIT_BURST_SIZE", 20),
		TrustProxy:        utils.GetEnv("RATE_LIMIT_TRUST_PROXY", "false") == "true",
	}
}

func loadGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Constellations: random.Range{
			Min: utils.GetEnvInt("GEN_CONSTELLATIONS_MIN", 4),
			Max: utils.GetEnvInt("GEN_CONSTELLATIONS_MAX", 7),
		},
		Systems: random.Range{
			Min: utils.GetEnvInt("GEN_SYSTEMS_MIN", 4),
			Max: utils.GetEnvInt("GEN_SYSTEMS_MAX", 7),
		},
		Planets: random.Range{
			Min: utils.GetEnvInt("GEN_PLANETS_MIN", 4),
			Max: utils.GetEnvInt("GEN_PLANETS_MAX", 11),
		},
		ConnectionRadius: utils.GetEnvFloat("GEN_CONNECTION_RADIUS", 128),
	}
}

func loadSavesConfig() SavesConfig {
	cacheTTL := utils.GetEnvInt("SAVE_CACHE_TTL_MINUTES", 60)

	return SavesConfig{
		Dir:      utils.GetEnv("SAVE_DIR", ""),
		CacheTTL: time.Duration(cacheTTL) * time.Minute,
	}
}

func (c *Config) validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}

	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}

	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}

	return c.Generation.validate()
}

func (g GenerationConfig) validate() error {
	if err := g.Constellations.Validate("GEN_CONSTELLATIONS", 0); err != nil {
		return err
	}
	if err := g.Systems.Validate("GEN_SYSTEMS", 0); err != nil {
		return err
	}
	if err := g.Planets.Validate("GEN_PLANETS", 0); err != nil {
		return err
	}
	if r := g.ConnectionRadius; math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
		return fmt.Errorf("GEN_CONNECTION_RADIUS must be a finite, non-negative number (got %v)", r)
	}
	return nil
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
