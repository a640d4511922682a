package config

import (
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Configuration struct {
	ApiPort string `json:"api_port"`

	Database string `json:"database"` // "sqlite3" or "postgres"
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	Security struct {
		JwtSecret       string `json:"jwt_secret"`
		TokenHoursValid int    `json:"token_hours_valid"`
	} `json:"security"`
}

// Get loads the configuration file, then lets environment variables
// (optionally from a .env file) override the database settings.
func Get(path string) Configuration {
	// Missing .env is fine; env vars may come from the shell.
	_ = godotenv.Load()

	var c Configuration
	if b, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(b, &c); err != nil {
			log.Fatal(err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		c.ApiPort = v
	}
	if v := os.Getenv("DATABASE"); v != "" {
		c.Database = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.DbHost = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		c.DbPort = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.DbUser = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.DbName = v
	}
	if v := os.Getenv("DB_PASS"); v != "" {
		c.DbPass = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Security.JwtSecret = v
	}

	// defaults
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.Security.TokenHoursValid <= 0 {
		c.Security.TokenHoursValid = 24
	}
	if c.Security.JwtSecret == "" {
		c.Security.JwtSecret = "CHANGE_ME"
	}

	return c
}
