package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Meta        Meta        `mapstructure:",squash"`
	EntitySync  EntitySync  `mapstructure:",squash"`
	InsightSync InsightSync `mapstructure:",squash"`
	BudgetRules BudgetRules `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Meta concentra a configuração do cliente da Graph API: credencial, conta,
// timeouts e política de retry/throttle.
type Meta struct {
	BaseURL          string        `mapstructure:"meta_base_url"`
	URL              string        `mapstructure:"-"`
	Version          string        `mapstructure:"meta_version"`
	AccessToken      string        `mapstructure:"meta_access_token"`
	AccountID        string        `mapstructure:"meta_account_id"`
	RequestTimeout   time.Duration `mapstructure:"meta_request_timeout"`
	RetryAttempts    int           `mapstructure:"meta_retry_attempts"`
	RetryBaseDelay   time.Duration `mapstructure:"meta_retry_base_delay"`
	RateLimitCalls   int           `mapstructure:"meta_rate_limit_max_calls"`
	RateLimitPercent float64       `mapstructure:"meta_rate_limit_max_percent"`
	ThrottlePause    time.Duration `mapstructure:"meta_throttle_pause"`
	PageSize         int           `mapstructure:"meta_page_size"`
}

type EntitySync struct {
	CronSchedule string `mapstructure:"entity_sync_cron"`
	Enabled      bool   `mapstructure:"entity_sync_enabled"`
}

type InsightSync struct {
	CronSchedule  string `mapstructure:"insight_sync_cron"`
	LookbackDays  int    `mapstructure:"insight_sync_lookback_days"`
	RetentionDays int    `mapstructure:"insight_sync_retention_days"`
	Enabled       bool   `mapstructure:"insight_sync_enabled"`
}

// BudgetRules são os limites de negócio da engine de ajuste de orçamento,
// independentes dos limites da própria plataforma. Valores absolutos em
// unidades da moeda.
type BudgetRules struct {
	MaxIncreasePercent float64 `mapstructure:"budget_max_increase_percent"`
	MaxDecreasePercent float64 `mapstructure:"budget_max_decrease_percent"`
	MinBudget          float64 `mapstructure:"budget_min"`
	MaxBudget          float64 `mapstructure:"budget_max"`
	MaxPerHour         int     `mapstructure:"budget_max_adjustments_per_hour"`
	CooldownMinutes    int     `mapstructure:"budget_cooldown_minutes"`
	LowBudgetWarning   float64 `mapstructure:"budget_low_warning"`
	PendingGraceAge    int     `mapstructure:"budget_pending_grace_minutes"`
}

type Auth struct {
	Secret               string `mapstructure:"auth_secret"`
	OperatorEmail        string `mapstructure:"operator_email"`
	OperatorPasswordHash string `mapstructure:"operator_password_hash"`
	OperatorRole         string `mapstructure:"operator_role"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_manager")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("META_ACCOUNT_ID", "")
	viper.SetDefault("META_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("META_RETRY_ATTEMPTS", 3)
	viper.SetDefault("META_RETRY_BASE_DELAY", "1s")
	viper.SetDefault("META_RATE_LIMIT_MAX_CALLS", 180)
	viper.SetDefault("META_RATE_LIMIT_MAX_PERCENT", 90.0)
	viper.SetDefault("META_THROTTLE_PAUSE", "30s")
	viper.SetDefault("META_PAGE_SIZE", 100)

	viper.SetDefault("ENTITY_SYNC_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("ENTITY_SYNC_ENABLED", false)

	viper.SetDefault("INSIGHT_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h
	viper.SetDefault("INSIGHT_SYNC_LOOKBACK_DAYS", 7)
	viper.SetDefault("INSIGHT_SYNC_RETENTION_DAYS", 90)
	viper.SetDefault("INSIGHT_SYNC_ENABLED", false)

	viper.SetDefault("BUDGET_MAX_INCREASE_PERCENT", 20.0)
	viper.SetDefault("BUDGET_MAX_DECREASE_PERCENT", 50.0)
	viper.SetDefault("BUDGET_MIN", 1.0)
	viper.SetDefault("BUDGET_MAX", 1000000.0)
	viper.SetDefault("BUDGET_MAX_ADJUSTMENTS_PER_HOUR", 4)
	viper.SetDefault("BUDGET_COOLDOWN_MINUTES", 15)
	viper.SetDefault("BUDGET_LOW_WARNING", 10.0)
	viper.SetDefault("BUDGET_PENDING_GRACE_MINUTES", 10)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("OPERATOR_EMAIL", "admin@localhost")
	viper.SetDefault("OPERATOR_PASSWORD_HASH", "")
	viper.SetDefault("OPERATOR_ROLE", "admin")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}
}
