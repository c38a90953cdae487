package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, principals), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Registry RegistryConfig
	Ledger   LedgerConfig
	Metrics  MetricsConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"memory"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	Migrate  bool   `envconfig:"DB_MIGRATE" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
	Issuer   string `envconfig:"JWT_ISSUER" default:"booking-registry"`
}

// RegistryConfig carries the one-shot deployment parameters of the registry.
// Prices are decimal strings in the token's smallest unit.
type RegistryConfig struct {
	Owner         string `envconfig:"REGISTRY_OWNER" required:"true"`
	EscrowAccount string `envconfig:"REGISTRY_ESCROW_ACCOUNT" required:"true"`
	TaxPercentage int    `envconfig:"REGISTRY_TAX_PERCENTAGE" default:"5"`
	PriceStandard string `envconfig:"REGISTRY_PRICE_STANDARD" default:"100000000000000000"`
	PriceDeluxe   string `envconfig:"REGISTRY_PRICE_DELUXE" default:"200000000000000000"`
	PriceSuite    string `envconfig:"REGISTRY_PRICE_SUITE" default:"300000000000000000"`
}

const (
	LedgerDriverMemory = "memory"
	LedgerDriverRPC    = "rpc"
)

type LedgerConfig struct {
	Driver  string        `envconfig:"LEDGER_DRIVER" default:"memory"`
	RPCURL  string        `envconfig:"LEDGER_RPC_URL"`
	Token   string        `envconfig:"LEDGER_RPC_TOKEN"`
	Timeout time.Duration `envconfig:"LEDGER_RPC_TIMEOUT" default:"10s"`
	// account:amount pairs credited to the in-memory ledger at start-up
	SeedBalances map[string]string `envconfig:"LEDGER_SEED_BALANCES"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"METRICS_PATH" default:"/metrics"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *JWTConfig) TokenDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Duration)
	if err != nil {
		return 0, fmt.Errorf("invalid JWT_DURATION: %w", err)
	}
	return d, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store.Driver {
	case StoreDriverMemory:
	case StoreDriverPostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("STORE_DRIVER=postgres requires DB_USER and DB_NAME")
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}

	switch c.Ledger.Driver {
	case LedgerDriverMemory:
	case LedgerDriverRPC:
		if c.Ledger.RPCURL == "" {
			return fmt.Errorf("LEDGER_DRIVER=rpc requires LEDGER_RPC_URL")
		}
	default:
		return fmt.Errorf("unsupported LEDGER_DRIVER %q", c.Ledger.Driver)
	}
	return nil
}

const (
	TestOwnerAccount  = "0x1000000000000000000000000000000000000001"
	TestEscrowAccount = "0x2000000000000000000000000000000000000002"
)

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: time.Second,
		},
		Store: StoreConfig{Driver: StoreDriverMemory},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
			Issuer:   "booking-registry-test",
		},
		Registry: RegistryConfig{
			Owner:         TestOwnerAccount,
			EscrowAccount: TestEscrowAccount,
			TaxPercentage: 10,
			PriceStandard: "500000000000000000",
			PriceDeluxe:   "600000000000000000",
			PriceSuite:    "700000000000000000",
		},
		Ledger: LedgerConfig{
			Driver:  LedgerDriverMemory,
			Timeout: time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key"},
			ExposeHeaders: []string{"Location"},
			MaxAge:        time.Hour,
		},
		Metrics: MetricsConfig{Enabled: false, Path: "/metrics"},
	}
}
