package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), game rules
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Wheel   WheelConfig
	Reactor ReactorConfig
	PokeAPI PokeAPIConfig
	Group   GroupConfig
}

type ServerConfig struct {
	Port              string        `envconfig:"PORT" required:"true"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Madrid"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Madrid"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"`
}

// Tokens are minted by the external auth provider; only the shared secret lives here.
type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"1h"`
}

type WheelConfig struct {
	Cooldown     time.Duration `envconfig:"WHEEL_COOLDOWN" default:"24h"`
	SpinDuration time.Duration `envconfig:"WHEEL_SPIN_DURATION" default:"4500ms"`
	TickInterval time.Duration `envconfig:"WHEEL_TICK_INTERVAL" default:"1s"`
	CatalogPath  string        `envconfig:"WHEEL_CATALOG_PATH"`
	IdleEviction time.Duration `envconfig:"WHEEL_IDLE_EVICTION" default:"1h"`
}

type ReactorConfig struct {
	ScopeByGroup   bool          `envconfig:"REACTOR_SCOPE_BY_GROUP" default:"true"`
	MaxInFlight    int           `envconfig:"REACTOR_MAX_IN_FLIGHT" default:"16"`
	DedupeSize     int           `envconfig:"REACTOR_DEDUPE_SIZE" default:"4096"`
	ReconnectDelay time.Duration `envconfig:"REACTOR_RECONNECT_DELAY" default:"2s"`
}

type PokeAPIConfig struct {
	BaseURL   string        `envconfig:"POKEAPI_BASE_URL" default:"https://pokeapi.co/api/v2"`
	Timeout   time.Duration `envconfig:"POKEAPI_TIMEOUT" default:"5s"`
	CacheSize int           `envconfig:"POKEAPI_CACHE_SIZE" default:"2048"`
	NameLimit int           `envconfig:"POKEAPI_NAME_LIMIT" default:"1300"`
}

type GroupConfig struct {
	InitialLives   int   `envconfig:"GROUP_INITIAL_LIVES" default:"20"`
	InitialBalance int64 `envconfig:"GROUP_INITIAL_BALANCE" default:"1000"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables always win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

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
			Port:              "8889", // Test port
			ReadHeaderTimeout: 5 * time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Wheel: WheelConfig{
			Cooldown:     24 * time.Hour,
			SpinDuration: 4500 * time.Millisecond,
			TickInterval: time.Second,
			IdleEviction: time.Hour,
		},
		Reactor: ReactorConfig{
			ScopeByGroup:   true,
			MaxInFlight:    4,
			DedupeSize:     128,
			ReconnectDelay: 100 * time.Millisecond,
		},
		PokeAPI: PokeAPIConfig{
			BaseURL:   "http://localhost:0",
			Timeout:   time.Second,
			CacheSize: 64,
			NameLimit: 50,
		},
		Group: GroupConfig{
			InitialLives:   20,
			InitialBalance: 1000,
		},
	}
}
