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
// - default: Values common across all environments (timezone, timeout, engine defaults, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Redis  RedisConfig
	Engine EngineConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
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
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// Tokens are issued by the identity service; this service only validates them.
type JWTConfig struct {
	Secret string        `envconfig:"JWT_SECRET" required:"true"`
	Issuer string        `envconfig:"JWT_ISSUER"`
	Leeway time.Duration `envconfig:"JWT_LEEWAY" default:"30s"`
}

// Empty Addr disables redis; notification de-duplication then relies on the outbox alone.
type RedisConfig struct {
	Addr      string        `envconfig:"REDIS_ADDR"`
	Password  string        `envconfig:"REDIS_PASSWORD"`
	DB        int           `envconfig:"REDIS_DB" default:"0"`
	DedupeTTL time.Duration `envconfig:"REDIS_DEDUPE_TTL" default:"72h"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type EngineConfig struct {
	// Auto-resolution
	AutoResolveEpsilon float64  `envconfig:"ENGINE_AUTO_RESOLVE_EPSILON" default:"0.01"`
	AutoResolveRules   []string `envconfig:"ENGINE_AUTO_RESOLVE_RULES" default:"ownership_weight,usage_fairness,priority_level,first_come_first_served"`

	// PriorityWeight = OwnershipWeight*fraction + UsageWeight*(1-normalizedUsage)
	OwnershipWeight float64 `envconfig:"ENGINE_PRIORITY_OWNERSHIP_WEIGHT" default:"0.6"`
	UsageWeight     float64 `envconfig:"ENGINE_PRIORITY_USAGE_WEIGHT" default:"0.4"`

	// Weighted approval
	ApprovalWeighting          string        `envconfig:"ENGINE_APPROVAL_WEIGHTING" default:"ownership"`
	SimpleApprovalThreshold    float64       `envconfig:"ENGINE_SIMPLE_APPROVAL_THRESHOLD" default:"0.5"`
	ConsensusThreshold         float64       `envconfig:"ENGINE_CONSENSUS_THRESHOLD" default:"1.0"`
	SimpleBlockingThreshold    float64       `envconfig:"ENGINE_SIMPLE_BLOCKING_THRESHOLD" default:"0.5"`
	ConsensusBlockingThreshold float64       `envconfig:"ENGINE_CONSENSUS_BLOCKING_THRESHOLD" default:"0"`
	CancelChallengerOnReject   bool          `envconfig:"ENGINE_CANCEL_CHALLENGER_ON_REJECT" default:"true"`
	CounterOfferTTL            time.Duration `envconfig:"ENGINE_COUNTER_OFFER_TTL" default:"24h"`

	// Windows
	MinDuration time.Duration `envconfig:"ENGINE_MIN_DURATION" default:"1h"`
	MaxDuration time.Duration `envconfig:"ENGINE_MAX_DURATION" default:"720h"`
	LeadTime    time.Duration `envconfig:"ENGINE_LEAD_TIME" default:"0s"`

	// Modification and cancellation
	ModificationGrace      time.Duration `envconfig:"ENGINE_MODIFICATION_GRACE" default:"2h"`
	AnalysisTTL            time.Duration `envconfig:"ENGINE_ANALYSIS_TTL" default:"15m"`
	FreeCancellationWindow time.Duration `envconfig:"ENGINE_FREE_CANCELLATION_WINDOW" default:"48h"`
	PartialFeeWindow       time.Duration `envconfig:"ENGINE_PARTIAL_FEE_WINDOW" default:"12h"`
	PartialFeeRate         float64       `envconfig:"ENGINE_PARTIAL_FEE_RATE" default:"0.5"`
	CancellationPolicyFile string        `envconfig:"ENGINE_CANCELLATION_POLICY_FILE"`
	MinCancelReasonLength  int           `envconfig:"ENGINE_MIN_CANCEL_REASON_LENGTH" default:"10"`
	HourlyRateCents        int64         `envconfig:"ENGINE_HOURLY_RATE_CENTS" default:"1500"`

	IdempotencyTTL time.Duration `envconfig:"ENGINE_IDEMPOTENCY_TTL" default:"24h"`

	// Loaded from CancellationPolicyFile, or derived from the window settings above.
	CancellationTiers []CancellationTier `ignored:"true"`
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
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}

	tiers, err := resolveCancellationTiers(cfg.Engine)
	if err != nil {
		return Config{}, err
	}
	cfg.Engine.CancellationTiers = tiers

	return cfg, nil
}

func DefaultEngineConfig() EngineConfig {
	cfg := EngineConfig{
		AutoResolveEpsilon:         0.01,
		AutoResolveRules:           []string{"ownership_weight", "usage_fairness", "priority_level", "first_come_first_served"},
		OwnershipWeight:            0.6,
		UsageWeight:                0.4,
		ApprovalWeighting:          "ownership",
		SimpleApprovalThreshold:    0.5,
		ConsensusThreshold:         1.0,
		SimpleBlockingThreshold:    0.5,
		ConsensusBlockingThreshold: 0,
		CancelChallengerOnReject:   true,
		CounterOfferTTL:            24 * time.Hour,
		MinDuration:                time.Hour,
		MaxDuration:                720 * time.Hour,
		ModificationGrace:          2 * time.Hour,
		AnalysisTTL:                15 * time.Minute,
		FreeCancellationWindow:     48 * time.Hour,
		PartialFeeWindow:           12 * time.Hour,
		PartialFeeRate:             0.5,
		MinCancelReasonLength:      10,
		HourlyRateCents:            1500,
		IdempotencyTTL:             24 * time.Hour,
	}
	cfg.CancellationTiers = DefaultCancellationTiers(cfg)
	return cfg
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
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
			Secret: "test-secret",
		},
		Engine: DefaultEngineConfig(),
	}
}
