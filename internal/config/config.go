package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Data     DataConfig
	Log      LogConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

type AppConfig struct {
	AppName          string
	Environment      string
	HTTPPort         string
	CORSAllowOrigins string
}

type DataConfig struct {
	UsersPath      string
	JobsPath       string
	MaxUploadBytes int
}

type LogConfig struct {
	Level  string
	Format string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
}

// Enabled reports whether an audit database was configured.
func (d DatabaseConfig) Enabled() bool {
	return d.DBHost != "" && d.DBName != ""
}

type AuthConfig struct {
	AdminPasswordHash string
	JWTSecret         string
	JWTExpiresIn      time.Duration
}

// Enabled reports whether upload and refresh routes require an admin token.
func (a AuthConfig) Enabled() bool {
	return a.AdminPasswordHash != "" && a.JWTSecret != ""
}

const (
	defaultUsersPath      = "Data/users.json"
	defaultJobsPath       = "Data/jobs.json"
	defaultMaxUploadBytes = 16 << 20
)

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}
	optInt := func(key string, def int) int {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optSeconds := func(key string, def time.Duration) time.Duration {
		return time.Duration(optInt(key, int(def/time.Second))) * time.Second
	}
	optBool := func(key string, def bool) bool {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return def
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:          opt("APP_NAME", "skill-gap"),
		Environment:      opt("APP_ENV", "development"),
		HTTPPort:         req("HTTP_PORT"),
		CORSAllowOrigins: opt("CORS_ALLOW_ORIGINS", "*"),
	}

	cfg.Data = DataConfig{
		UsersPath:      opt("USERS_JSON_PATH", defaultUsersPath),
		JobsPath:       opt("JOBS_JSON_PATH", defaultJobsPath),
		MaxUploadBytes: optInt("MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
	}

	cfg.Log = LogConfig{
		Level:  opt("LOG_LEVEL", "info"),
		Format: opt("LOG_FORMAT", "json"),
	}

	cfg.Redis = RedisConfig{
		Enabled:  optBool("REDIS_ENABLED", false),
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD", ""),
		TTL:      optSeconds("REDIS_TTL", 600*time.Second),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST", ""),
		DBPort:         opt("DB_PORT", "5432"),
		DBName:         opt("DB_NAME", ""),
		DBUser:         opt("DB_USER", ""),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE", "disable"),
		ConnectTimeout: optSeconds("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:   int32(optInt("DB_POOL_MAX_CONNS", 4)),
	}

	cfg.Auth = AuthConfig{
		AdminPasswordHash: opt("ADMIN_PASSWORD_HASH", ""),
		JWTSecret:         opt("JWT_SECRET", ""),
		JWTExpiresIn:      optSeconds("JWT_EXPIRES_IN", time.Hour),
	}
	if (cfg.Auth.AdminPasswordHash == "") != (cfg.Auth.JWTSecret == "") {
		invalid = append(invalid, "ADMIN_PASSWORD_HASH/JWT_SECRET")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// LoadData reads only the data file settings, for offline tools that do not
// serve HTTP.
func LoadData() DataConfig {
	_ = godotenv.Load()

	get := func(key, def string) string {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
		return def
	}
	return DataConfig{
		UsersPath:      get("USERS_JSON_PATH", defaultUsersPath),
		JobsPath:       get("JOBS_JSON_PATH", defaultJobsPath),
		MaxUploadBytes: defaultMaxUploadBytes,
	}
}
