package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Stripe            Stripe            `mapstructure:",squash"`
	HighLevel         HighLevel         `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	Webhook           Webhook           `mapstructure:",squash"`
	Report            Report            `mapstructure:",squash"`
	PipelineReconcile PipelineReconcile `mapstructure:",squash"`
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

type Stripe struct {
	BaseURL   string `mapstructure:"stripe_base_url"`
	SecretKey string `mapstructure:"stripe_secret_key"`
	PageSize  int    `mapstructure:"stripe_page_size"`
}

type HighLevel struct {
	BaseURL             string `mapstructure:"highlevel_base_url"`
	LocationToken       string `mapstructure:"highlevel_location_token"`
	APIVersion          string `mapstructure:"highlevel_api_version"`
	MainLocationID      string `mapstructure:"highlevel_main_location_id"`
	ConversationLimit   int    `mapstructure:"highlevel_conversation_limit"`
	MessageHistoryLimit int    `mapstructure:"highlevel_message_history_limit"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Webhook struct {
	// Secret enables the shared-secret header check when non-empty.
	// Empty in current deployments.
	Secret string `mapstructure:"webhook_secret"`
}

type Report struct {
	CanceledLookbackDays int `mapstructure:"report_canceled_lookback_days"`
}

type PipelineReconcile struct {
	CronSchedule string `mapstructure:"pipeline_reconcile_cron"`
	Enabled      bool   `mapstructure:"pipeline_reconcile_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/portal")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("STRIPE_BASE_URL", "https://api.stripe.com/v1")
	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("STRIPE_PAGE_SIZE", 100)

	viper.SetDefault("HIGHLEVEL_BASE_URL", "https://services.leadconnectorhq.com")
	viper.SetDefault("HIGHLEVEL_LOCATION_TOKEN", "")
	viper.SetDefault("HIGHLEVEL_API_VERSION", "2021-07-28")
	viper.SetDefault("HIGHLEVEL_MAIN_LOCATION_ID", "")
	viper.SetDefault("HIGHLEVEL_CONVERSATION_LIMIT", 50)
	viper.SetDefault("HIGHLEVEL_MESSAGE_HISTORY_LIMIT", 20)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("WEBHOOK_SECRET", "")

	viper.SetDefault("REPORT_CANCELED_LOOKBACK_DAYS", 30)

	viper.SetDefault("PIPELINE_RECONCILE_CRON", "30 2 * * *")
	viper.SetDefault("PIPELINE_RECONCILE_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env):", err)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile loads .env via godotenv, trying the usual locations so
// the binary also works when launched from inside cmd/api.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not determine working directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Loaded .env from:", location)
			return
		}
	}

	logrus.Info("No .env file found, relying on process environment")
}
