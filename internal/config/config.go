package config

import (
	"os"
	"strings"
)

// Config collects the environment-backed settings so they can be injected
// alongside the store instead of read ad hoc.
type Config struct {
	Port        string
	DatabaseURL string
	AdminEmail  string // registrations with this email get the ADMIN role
	Domain      string // cookie domain
}

func Load() Config {
	cfg := Config{
		Port:        os.Getenv("PORT"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		AdminEmail:  strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))),
		Domain:      os.Getenv("DOMAIN"),
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
	}

	return cfg
}
