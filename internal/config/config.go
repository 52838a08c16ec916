package config

import (
	"flag"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Address    string `env:"RUN_ADDRESS"  envDefault:"localhost:8080"`
	StorageDir string `env:"STORAGE_DIR"  envDefault:"data"`
	AdminEmail string `env:"ADMIN_EMAIL"  envDefault:"admin@example.com"`
	LogLvl     string `env:"LOG_LVL"      envDefault:"info"`
}

func New() *Config {
	// optional local overrides
	godotenv.Load()

	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.StorageDir, "s", cfg.StorageDir, "directory for persisted state blobs")
	flag.StringVar(&cfg.AdminEmail, "m", cfg.AdminEmail, "email of the admin account")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Parse()

	return cfg
}
