package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, window sizes, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	PMS        PMSConfig
	Sync       SyncConfig
	Webhook    WebhookConfig
	Secrets    SecretsConfig
	Resilience ResilienceConfig
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
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// PMSConfig holds connection defaults for the external property-management APIs.
type PMSConfig struct {
	MewsBaseURL    string        `envconfig:"MEWS_BASE_URL" default:"https://api.mews.com/api/connector/v1"`
	MewsClientName string        `envconfig:"MEWS_CLIENT_NAME" default:"Tree Order Integration 1.0.0"`
	CallTimeout    time.Duration `envconfig:"PMS_CALL_TIMEOUT" default:"30s"`
	MaxRetries     int           `envconfig:"PMS_MAX_RETRIES" default:"3"`
	RetryBaseDelay time.Duration `envconfig:"PMS_RETRY_BASE_DELAY" default:"1s"`
}

// SyncConfig drives the time-windowed fetcher and the reconciler.
// WindowDays doubles as the reconciliation window: absence from the
// snapshot is only treated as cancellation inside that span.
type SyncConfig struct {
	WindowDays       int      `envconfig:"SYNC_WINDOW_DAYS" default:"30"`
	LookaheadHours   int      `envconfig:"SYNC_LOOKAHEAD_HOURS" default:"24"`
	SubWindowHours   int      `envconfig:"SYNC_SUB_WINDOW_HOURS" default:"96"`
	MaxPages         int      `envconfig:"SYNC_MAX_PAGES" default:"100"`
	PageSize         int      `envconfig:"SYNC_PAGE_SIZE" default:"1000"`
	FallbackCurrency string   `envconfig:"SYNC_FALLBACK_CURRENCY" default:"EUR"`
	TargetProductID  string   `envconfig:"TREE_PRODUCT_ID" default:""`
	SearchTerms      []string `envconfig:"TREE_SEARCH_TERMS" default:"click a tree,click-a-tree,clickatree,baum pflanzen,plant a tree,tree planting"`
	DiscoveryDays    int      `envconfig:"DISCOVERY_LOOKBACK_DAYS" default:"90"`
	DiscoveryPages   int      `envconfig:"DISCOVERY_MAX_PAGES" default:"5"`
}

type WebhookConfig struct {
	MaxRetries     int           `envconfig:"WEBHOOK_MAX_RETRIES" default:"3"`
	BatchSize      int           `envconfig:"WEBHOOK_RETRY_BATCH_SIZE" default:"50"`
	BackoffSeconds []int         `envconfig:"WEBHOOK_RETRY_BACKOFF_SECONDS" default:"60,300,900"`
	AlertWindow    time.Duration `envconfig:"WEBHOOK_ALERT_WINDOW" default:"1h"`
	AlertThreshold int           `envconfig:"WEBHOOK_ALERT_THRESHOLD" default:"5"`
}

type SecretsConfig struct {
	// 64 hex characters (32 bytes); shorter values are stretched via PBKDF2
	EncryptionKey string `envconfig:"ENCRYPTION_KEY" required:"true"`
	WebhookSecret string `envconfig:"WEBHOOK_SECRET" required:"true"`
}

// ResilienceConfig scopes the shared token bucket and circuit breaker.
// The quota is a property of the upstream API, not of any one account,
// so these values apply process-wide.
type ResilienceConfig struct {
	RatePerMinute    int           `envconfig:"RATE_LIMIT_PER_MIN" default:"90"`
	PollInterval     time.Duration `envconfig:"RATE_LIMIT_POLL_INTERVAL" default:"100ms"`
	FailureThreshold int           `envconfig:"BREAKER_FAILURE_THRESHOLD" default:"5"`
	SuccessThreshold int           `envconfig:"BREAKER_SUCCESS_THRESHOLD" default:"2"`
	CoolDown         time.Duration `envconfig:"BREAKER_COOL_DOWN" default:"60s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// BackoffDurations converts the retry schedule into durations; counts
// past the end of the schedule reuse the last entry.
func (c *WebhookConfig) BackoffDurations() []time.Duration {
	out := make([]time.Duration, 0, len(c.BackoffSeconds))
	for _, s := range c.BackoffSeconds {
		out = append(out, time.Duration(s)*time.Second)
	}
	return out
}

func (c *SyncConfig) SearchTermsLower() []string {
	terms := make([]string, 0, len(c.SearchTerms))
	for _, t := range c.SearchTerms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			terms = append(terms, t)
		}
	}
	return terms
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
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		PMS: PMSConfig{
			MewsBaseURL:    "http://localhost:9300",
			MewsClientName: "Tree Order Integration test",
			CallTimeout:    5 * time.Second,
			MaxRetries:     1,
			RetryBaseDelay: 10 * time.Millisecond,
		},
		Sync: SyncConfig{
			WindowDays:       30,
			LookaheadHours:   24,
			SubWindowHours:   96,
			MaxPages:         100,
			PageSize:         1000,
			FallbackCurrency: "EUR",
			SearchTerms:      []string{"click a tree", "tree"},
			DiscoveryDays:    90,
			DiscoveryPages:   5,
		},
		Webhook: WebhookConfig{
			MaxRetries:     3,
			BatchSize:      50,
			BackoffSeconds: []int{60, 300, 900},
			AlertWindow:    time.Hour,
			AlertThreshold: 5,
		},
		Secrets: SecretsConfig{
			EncryptionKey: "0000000000000000000000000000000000000000000000000000000000000001",
			WebhookSecret: "test-webhook-secret",
		},
		Resilience: ResilienceConfig{
			RatePerMinute:    90,
			PollInterval:     time.Millisecond,
			FailureThreshold: 5,
			SuccessThreshold: 2,
			CoolDown:         60 * time.Second,
		},
	}
}
