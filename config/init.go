package config

import (
	"log"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var (
	instance *Config
	once     sync.Once
)

const (
	defaultPort      = "8080"
	defaultPrefix    = "api"
	defaultJWTExpire = 7 * 24 * 60 * 60
)

// Init loads config.yaml (if present) and then applies AJCC_* environment
// overrides on top. Safe to call more than once.
func Init() {
	once.Do(func() {
		cfg := &Config{}

		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err != nil {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				log.Fatalf("read config file: %v", err)
			}
		} else if err := v.Unmarshal(cfg); err != nil {
			log.Fatalf("unmarshal config file: %v", err)
		}

		if err := envconfig.Process("AJCC", cfg); err != nil {
			log.Fatalf("process env config: %v", err)
		}

		applyDefaults(cfg)
		instance = cfg
	})
}

func applyDefaults(cfg *Config) {
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.Prefix == "" {
		cfg.Prefix = defaultPrefix
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeDebug
	}
	if cfg.Mode != ModeDebug && cfg.Mode != ModeRelease {
		log.Fatalf("invalid mode %q", cfg.Mode)
	}
	if cfg.JWT.Secret == "" {
		if cfg.Mode == ModeRelease {
			log.Fatal("AJCC_JWT_SECRET must be set in release mode")
		}
		cfg.JWT.Secret = "dev-only-secret"
	}
	if cfg.JWT.Expire <= 0 {
		cfg.JWT.Expire = defaultJWTExpire
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// Get returns the loaded config. Init must have been called first; tests may
// call Set to inject a config of their own.
func Get() *Config {
	if instance == nil {
		Init()
	}
	return instance
}

// Set replaces the config instance. Intended for tests.
func Set(cfg *Config) {
	applyDefaults(cfg)
	instance = cfg
}
