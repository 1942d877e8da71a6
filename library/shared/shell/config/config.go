package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/schoollibrary/lendingengine/library/shared/core"
	"github.com/schoollibrary/lendingengine/library/shared/shell"
)

// EnvPrefix is the prefix of every environment variable the engine reads.
const EnvPrefix = "LIBRARY_"

const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"

	AdapterPGX  = "pgx"
	AdapterSQL  = "sql"
	AdapterSQLX = "sqlx"
)

var (
	ErrLoadingEnvFileFailed = errors.New("loading env file failed")
	ErrParsingEnvFailed     = errors.New("parsing environment failed")
	ErrInvalidConfig        = errors.New("invalid configuration")
)

// Config is the complete runtime configuration.
type Config struct {
	Store           string `env:"STORE" envDefault:"sqlite"`
	SQLitePath      string `env:"SQLITE_PATH" envDefault:"library.db"`
	PostgresDSN     string `env:"POSTGRES_DSN"`
	PostgresAdapter string `env:"POSTGRES_ADAPTER" envDefault:"pgx"`
	EventsTableName string `env:"EVENTS_TABLE" envDefault:"events"`

	HTTPAddr  string `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// Observability wraps every handler with OpenTelemetry metrics and tracing.
	Observability bool `env:"OBSERVABILITY" envDefault:"false"`

	// RedisAddr selects the Redis member directory. Without it DirectoryFile seeds an in-memory directory.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	DirectoryFile string `env:"DIRECTORY_FILE"`

	FinePerDayUnits               int `env:"FINE_PER_DAY_UNITS" envDefault:"5"`
	StudentLoanDays               int `env:"STUDENT_LOAN_DAYS" envDefault:"14"`
	TeacherLoanDays               int `env:"TEACHER_LOAN_DAYS" envDefault:"28"`
	ReservationFollowupWindowDays int `env:"RESERVATION_FOLLOWUP_WINDOW_DAYS" envDefault:"14"`
	FeeDueDays                    int `env:"FEE_DUE_DAYS" envDefault:"14"`

	RetryMaxAttempts int           `env:"RETRY_MAX_ATTEMPTS" envDefault:"6"`
	RetryBaseDelay   time.Duration `env:"RETRY_BASE_DELAY" envDefault:"10ms"`
}

// Load reads the configuration from the environment.
//
// Variables from envFile are added first without overriding the environment. An empty envFile means
// an optional ".env" in the working directory, a named envFile must exist.
func Load(envFile string) (Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, errors.Join(ErrParsingEnvFailed, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadEnvFile(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return errors.Join(ErrLoadingEnvFileFailed, err)
		}

		return nil
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Join(ErrLoadingEnvFileFailed, err)
	}

	return nil
}

// Validate checks the values env cannot check by itself.
func (c Config) Validate() error {
	switch c.Store {
	case StoreSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("%w: %sSQLITE_PATH must not be empty", ErrInvalidConfig, EnvPrefix)
		}

	case StorePostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("%w: %sPOSTGRES_DSN is required for the postgres store", ErrInvalidConfig, EnvPrefix)
		}

		switch c.PostgresAdapter {
		case AdapterPGX, AdapterSQL, AdapterSQLX:
		default:
			return fmt.Errorf("%w: unknown postgres adapter %q", ErrInvalidConfig, c.PostgresAdapter)
		}

	default:
		return fmt.Errorf("%w: unknown store %q", ErrInvalidConfig, c.Store)
	}

	policy := c.LoanPolicy()
	for name, value := range map[string]int{
		"FINE_PER_DAY_UNITS":               policy.FinePerDayUnits,
		"STUDENT_LOAN_DAYS":                policy.StudentLoanDays,
		"TEACHER_LOAN_DAYS":                policy.TeacherLoanDays,
		"RESERVATION_FOLLOWUP_WINDOW_DAYS": policy.ReservationFollowupWindowDays,
		"FEE_DUE_DAYS":                     policy.FeeDueDays,
		"RETRY_MAX_ATTEMPTS":               c.RetryMaxAttempts,
	} {
		if value < 1 {
			return fmt.Errorf("%w: %s%s must be positive, got %d", ErrInvalidConfig, EnvPrefix, name, value)
		}
	}

	return nil
}

// LoanPolicy returns the lending rules of the configuration.
func (c Config) LoanPolicy() core.LoanPolicy {
	return core.LoanPolicy{
		FinePerDayUnits:               c.FinePerDayUnits,
		StudentLoanDays:               c.StudentLoanDays,
		TeacherLoanDays:               c.TeacherLoanDays,
		ReservationFollowupWindowDays: c.ReservationFollowupWindowDays,
		FeeDueDays:                    c.FeeDueDays,
	}
}

// RetryOptions returns the retry tuning of the command handlers.
func (c Config) RetryOptions() []shell.RetryOption {
	return []shell.RetryOption{
		shell.WithMaxAttempts(c.RetryMaxAttempts),
		shell.WithBaseDelay(c.RetryBaseDelay),
	}
}
