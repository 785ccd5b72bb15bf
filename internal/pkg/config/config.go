package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeouts, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Migration MigrationConfig
	Seed      SeedConfig
}

type ServerConfig struct {
	Port      string `envconfig:"PORT" required:"true"`
	StaticDir string `envconfig:"STATIC_DIR" default:""`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	// milliseconds
	Expiration int64 `envconfig:"JWT_EXPIRATION" default:"86400000"`
}

type MigrationConfig struct {
	Dir       string `envconfig:"MIGRATIONS_DIR" default:"file://migrations"`
	AtlasPath string `envconfig:"ATLAS_BIN" default:"atlas"`
}

// SeedConfig names the first privileged accounts. An account whose email is
// empty is not seeded.
type SeedConfig struct {
	AdminName     string `envconfig:"SEED_ADMIN_NAME" default:"Administrador"`
	AdminEmail    string `envconfig:"SEED_ADMIN_EMAIL" default:""`
	AdminPassword string `envconfig:"SEED_ADMIN_PASSWORD" default:""`
	AdminCPF      string `envconfig:"SEED_ADMIN_CPF" default:""`
	StaffName     string `envconfig:"SEED_STAFF_NAME" default:"Funcionario"`
	StaffEmail    string `envconfig:"SEED_STAFF_EMAIL" default:""`
	StaffPassword string `envconfig:"SEED_STAFF_PASSWORD" default:""`
	StaffCPF      string `envconfig:"SEED_STAFF_CPF" default:""`
}

func (c *JWTConfig) Lifetime() time.Duration {
	return time.Duration(c.Expiration) * time.Millisecond
}

// wildcard origin cannot be combined with credentials in gin-contrib/cors
func (c *CORSConfig) AllowAll() bool {
	return len(c.AllowOrigins) == 1 && c.AllowOrigins[0] == "*"
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:      "error",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:     "test-secret-key-for-signing-tokens",
			Expiration: 86400000,
		},
		Migration: MigrationConfig{
			Dir:       "file://migrations",
			AtlasPath: "atlas",
		},
	}
}
