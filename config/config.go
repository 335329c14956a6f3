package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

const dateLayout = "2006-01-02"

type Config struct {
	App       AppConfig
	Generator GeneratorConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Identity  IdentityConfig
	Seeder    SeederConfig
}

type AppConfig struct {
	Env       string
	LogLevel  string
	LogFormat string `validate:"oneof=json text"`
}

type GeneratorConfig struct {
	OutputDir       string `validate:"required"`
	Today           time.Time
	ScheduleEndDate time.Time
	HistoryDays     int `validate:"gte=0"`
	NumPatients     int `validate:"gte=1"`
	NumAppointments int `validate:"gte=0"`
	AttemptFactor   int `validate:"gte=1"`
	Seed            uint64
}

type DBConfig struct {
	Host     string `validate:"required"`
	Port     string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`
	Name     string `validate:"required"`
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled reports whether a Redis host has been configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type JWTConfig struct {
	Secret string        `validate:"required"`
	Issuer string        `validate:"required"`
	Expiry time.Duration `validate:"gt=0"`
}

type IdentityConfig struct {
	BaseURL      string        `validate:"required,url"`
	ServiceKey   string        `validate:"required"`
	AnonKey      string
	MockPassword string        `validate:"required"`
	Timeout      time.Duration `validate:"gt=0"`
}

type SeederConfig struct {
	DataDir       string        `validate:"required"`
	MaxRetries    int           `validate:"gte=1"`
	RetryInterval time.Duration `validate:"gt=0"`
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("GENERATOR_OUTPUT_DIR", "db/sample-data")
	v.SetDefault("GENERATOR_HISTORY_DAYS", 7)
	v.SetDefault("GENERATOR_NUM_PATIENTS", 800)
	v.SetDefault("GENERATOR_NUM_APPOINTMENTS", 5000)
	v.SetDefault("GENERATOR_ATTEMPT_FACTOR", 3)
	v.SetDefault("GENERATOR_SEED", 0)

	v.SetDefault("DB_HOST", "supabase-db")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "postgres")

	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_ISSUER", "supabase")

	v.SetDefault("IDENTITY_TIMEOUT", "30s")

	v.SetDefault("SEED_DATA_DIR", "./sample-data")
	v.SetDefault("SEED_MAX_RETRIES", 60)
	v.SetDefault("SEED_RETRY_INTERVAL", "1s")

	if err := v.ReadInConfig(); err != nil {
		// The scripts are often run with plain environment variables only.
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("read .env: %w", err)
		}
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if raw := v.GetString("GENERATOR_TODAY"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid GENERATOR_TODAY %q, use YYYY-MM-DD: %w", raw, err)
		}
		today = parsed
	}

	scheduleEnd := today.AddDate(0, 0, 17)
	if raw := v.GetString("GENERATOR_SCHEDULE_END_DATE"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid GENERATOR_SCHEDULE_END_DATE %q, use YYYY-MM-DD: %w", raw, err)
		}
		scheduleEnd = parsed
	}

	jwtExpiry, err := time.ParseDuration(v.GetString("JWT_EXPIRY"))
	if err != nil {
		jwtExpiry = 365 * 24 * time.Hour
	}

	identityTimeout, err := time.ParseDuration(v.GetString("IDENTITY_TIMEOUT"))
	if err != nil {
		identityTimeout = 30 * time.Second
	}

	retryInterval, err := time.ParseDuration(v.GetString("SEED_RETRY_INTERVAL"))
	if err != nil {
		retryInterval = time.Second
	}

	config := &Config{
		App: AppConfig{
			Env:       v.GetString("APP_ENV"),
			LogLevel:  v.GetString("LOG_LEVEL"),
			LogFormat: v.GetString("LOG_FORMAT"),
		},
		Generator: GeneratorConfig{
			OutputDir:       v.GetString("GENERATOR_OUTPUT_DIR"),
			Today:           today,
			ScheduleEndDate: scheduleEnd,
			HistoryDays:     v.GetInt("GENERATOR_HISTORY_DAYS"),
			NumPatients:     v.GetInt("GENERATOR_NUM_PATIENTS"),
			NumAppointments: v.GetInt("GENERATOR_NUM_APPOINTMENTS"),
			AttemptFactor:   v.GetInt("GENERATOR_ATTEMPT_FACTOR"),
			Seed:            v.GetUint64("GENERATOR_SEED"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
			Issuer: v.GetString("JWT_ISSUER"),
			Expiry: jwtExpiry,
		},
		Identity: IdentityConfig{
			BaseURL:      v.GetString("API_EXTERNAL_URL"),
			ServiceKey:   v.GetString("SERVICE_ROLE_KEY"),
			AnonKey:      v.GetString("ANON_KEY"),
			MockPassword: v.GetString("MOCK_USER_PASSWORD"),
			Timeout:      identityTimeout,
		},
		Seeder: SeederConfig{
			DataDir:       v.GetString("SEED_DATA_DIR"),
			MaxRetries:    v.GetInt("SEED_MAX_RETRIES"),
			RetryInterval: retryInterval,
		},
	}

	return config, nil
}
