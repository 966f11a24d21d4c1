package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

const (
	StoreDriverPostgres = "postgres"
	StoreDriverDynamo   = "dynamodb"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Server     ServerConfig
	Store      StoreConfig
	DB         DBConfig
	AWS        AWSConfig
	Dynamo     DynamoConfig
	Archive    ArchiveConfig
	CORS       CORSConfig
	Log        LogConfig
	Auth       AuthConfig
	Funnel     FunnelConfig
	Dispatcher DispatcherConfig
	Gateway    GatewayConfig
	Sweeper    SweeperConfig
	Secrets    SecretsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type StoreConfig struct {
	Driver    string `envconfig:"STORE_DRIVER" default:"postgres"`
	QueueSize int    `envconfig:"MIRROR_QUEUE_SIZE" default:"1024"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Sao_Paulo"`
}

type AWSConfig struct {
	Region string `envconfig:"AWS_REGION" default:"sa-east-1"`
}

type DynamoConfig struct {
	Table    string `envconfig:"DYNAMO_TABLE" default:"pix-funnel"`
	Endpoint string `envconfig:"DYNAMO_ENDPOINT"`
}

// ArchiveConfig enables POST /api/contacts/archive when Bucket is set.
type ArchiveConfig struct {
	Bucket   string `envconfig:"ARCHIVE_BUCKET"`
	Prefix   string `envconfig:"ARCHIVE_PREFIX" default:"contacts/"`
	Endpoint string `envconfig:"ARCHIVE_ENDPOINT"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type AuthConfig struct {
	AdminJWTSecret string `envconfig:"ADMIN_JWT_SECRET"`
}

type FunnelConfig struct {
	InstancePool     []string          `envconfig:"INSTANCE_POOL" default:"instance-1,instance-2,instance-3"`
	DefaultInstance  string            `envconfig:"DEFAULT_INSTANCE" default:"instance-1"`
	PixTimeout       time.Duration     `envconfig:"PIX_TIMEOUT" default:"15m"`
	ProductCodes     map[string]string `envconfig:"PRODUCT_CODES"`
	BusinessTimeZone string            `envconfig:"BUSINESS_TIMEZONE" default:"America/Sao_Paulo"`
}

type DispatcherConfig struct {
	WebhookURL  string        `envconfig:"AUTOMATION_WEBHOOK_URL"`
	Token       string        `envconfig:"AUTOMATION_TOKEN"`
	MaxAttempts int           `envconfig:"DISPATCH_MAX_ATTEMPTS" default:"3"`
	BaseDelay   time.Duration `envconfig:"DISPATCH_BASE_DELAY" default:"2s"`
	Timeout     time.Duration `envconfig:"DISPATCH_TIMEOUT" default:"10s"`
}

// GatewayConfig points at the payment gateway's order status endpoint. The URL
// may hold an {order} placeholder; otherwise the order reference is appended.
type GatewayConfig struct {
	StatusURL     string        `envconfig:"PAYMENT_STATUS_URL"`
	StatusToken   string        `envconfig:"PAYMENT_STATUS_TOKEN"`
	StatusTimeout time.Duration `envconfig:"PAYMENT_STATUS_TIMEOUT" default:"5s"`
}

type SweeperConfig struct {
	Interval        time.Duration `envconfig:"SWEEP_INTERVAL" default:"5m"`
	RetentionWindow time.Duration `envconfig:"RETENTION_WINDOW" default:"24h"`
	TerminalGrace   time.Duration `envconfig:"TERMINAL_GRACE" default:"2h"`
}

// SecretsConfig enables reading AUTOMATION_TOKEN and ADMIN_JWT_SECRET from SSM
// Parameter Store under the given prefix.
type SecretsConfig struct {
	SSMPrefix string `envconfig:"SSM_PARAM_PREFIX"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location resolves the business time zone, falling back to a fixed UTC-3 zone
// when the tz database is unavailable in the container.
func (c FunnelConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.BusinessTimeZone)
	if err != nil {
		return time.FixedZone("BRT", -3*60*60)
	}
	return loc
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
	case StoreDriverPostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("DB_USER and DB_NAME are required for store driver %q", c.Store.Driver)
		}
	case StoreDriverDynamo, StoreDriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if len(c.Funnel.InstancePool) == 0 {
		return fmt.Errorf("INSTANCE_POOL must not be empty")
	}
	if c.Dispatcher.MaxAttempts < 1 {
		return fmt.Errorf("DISPATCH_MAX_ATTEMPTS must be at least 1")
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Driver:    StoreDriverMemory,
			QueueSize: 64,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/Sao_Paulo",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Sao_Paulo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		Auth: AuthConfig{
			AdminJWTSecret: "test-admin-secret",
		},
		Funnel: FunnelConfig{
			InstancePool:     []string{"instance-1", "instance-2"},
			DefaultInstance:  "instance-1",
			PixTimeout:       15 * time.Minute,
			ProductCodes:     map[string]string{"prod_fab": "FAB"},
			BusinessTimeZone: "America/Sao_Paulo",
		},
		Dispatcher: DispatcherConfig{
			MaxAttempts: 3,
			BaseDelay:   time.Millisecond,
			Timeout:     time.Second,
		},
		Sweeper: SweeperConfig{
			Interval:        time.Minute,
			RetentionWindow: 24 * time.Hour,
			TerminalGrace:   2 * time.Hour,
		},
	}
}
