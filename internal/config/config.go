package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Дефолты лимитов учета. Суммы в минорных единицах валюты.
const (
	defaultDailyDepositLimit   int64 = 10000
	defaultMaxDepositedBalance int64 = 50000
	defaultMultiplierFactor    int64 = 3
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	JWTSecret     string `env:"JWT_SECRET"`
	// AdminKey ключ админских роутов (начисление промо). Пустое значение закрывает их.
	AdminKey      string `env:"ADMIN_KEY"`
	PayoutAddress string `env:"PAYOUT_ADDRESS"`

	DailyDepositLimit   int64 `env:"DAILY_DEPOSIT_LIMIT"`
	MaxDepositedBalance int64 `env:"MAX_DEPOSITED_BALANCE"`
	MultiplierFactor    int64 `env:"MULTIPLIER_FACTOR"`
}

func LoadConfig() (*Config, error) {
	// .env файл опционален, в продакшене переменные приходят из окружения.
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTSecret == "" {
		return nil, errors.New("JWT secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.JWTSecret, "j", "", "JWT signing secret")
	flag.StringVar(&flagConfig.AdminKey, "k", "", "Admin API key")
	flag.StringVar(&flagConfig.PayoutAddress, "p", "", "Payout provider base URL")
	flag.Int64Var(&flagConfig.DailyDepositLimit, "deposit-daily", defaultDailyDepositLimit,
		"Daily deposit limit per account")
	flag.Int64Var(&flagConfig.MaxDepositedBalance, "deposit-max", defaultMaxDepositedBalance,
		"Max deposited balance per account")
	flag.Int64Var(&flagConfig.MultiplierFactor, "multiplier", defaultMultiplierFactor,
		"Deposited balance spending multiplier")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:          defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:         defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:       defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTSecret:           defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret),
		AdminKey:            defaultIfBlank(envConfig.AdminKey, flagsConfig.AdminKey),
		PayoutAddress:       defaultIfBlank(envConfig.PayoutAddress, flagsConfig.PayoutAddress),
		DailyDepositLimit:   defaultIfZero(envConfig.DailyDepositLimit, flagsConfig.DailyDepositLimit),
		MaxDepositedBalance: defaultIfZero(envConfig.MaxDepositedBalance, flagsConfig.MaxDepositedBalance),
		MultiplierFactor:    defaultIfZero(envConfig.MultiplierFactor, flagsConfig.MultiplierFactor),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func defaultIfZero(value int64, defaultValue int64) int64 {
	if value == 0 {
		return defaultValue
	}
	return value
}
