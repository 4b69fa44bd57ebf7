// Package config holds process-wide runtime configuration, sourced from the
// environment with defaults.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is loaded once at startup and passed down by value.
type Config struct {
	EmailAddress   string
	EmailPassword  string
	SMTPHost       string
	SMTPPort       int
	AdminEmails    []string
	Passphrase     string
	OutputRoot     string
	RetentionDays  int
	HazardWorkbook string
	WardGeoJSON    string
	WardIDProperty string
}

// DefaultConfig returns the defaults used when the environment is silent.
func DefaultConfig() Config {
	return Config{
		SMTPHost:       "smtp.gmail.com",
		SMTPPort:       587,
		AdminEmails:    []string{"drm.surveys@gmail.com"},
		OutputRoot:     "/tmp/wardrisk",
		RetentionDays:  30,
		HazardWorkbook: "RiskAssessmentTool.xlsm",
		WardGeoJSON:    "wards.geojson",
	}
}

// Load reads configuration from the environment, falling back to defaults
// for unset values. A .env file in the working directory is honored when
// present and silently skipped when not.
func Load() Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if v := os.Getenv("WARDRISK_EMAIL_ADDRESS"); v != "" {
		cfg.EmailAddress = v
	}
	if v := os.Getenv("WARDRISK_EMAIL_PASSWORD"); v != "" {
		cfg.EmailPassword = v
	}
	if v := os.Getenv("WARDRISK_SMTP_HOST"); v != "" {
		cfg.SMTPHost = v
	}
	if v := os.Getenv("WARDRISK_SMTP_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SMTPPort = n
		}
	}
	if v := os.Getenv("WARDRISK_ADMIN_EMAILS"); v != "" {
		cfg.AdminEmails = splitAddresses(v)
	}
	if v := os.Getenv("WARDRISK_PASSPHRASE"); v != "" {
		cfg.Passphrase = v
	}
	if v := os.Getenv("WARDRISK_OUTPUT_ROOT"); v != "" {
		cfg.OutputRoot = v
	}
	if v := os.Getenv("WARDRISK_RETENTION_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RetentionDays = n
		}
	}
	if v := os.Getenv("WARDRISK_HAZARD_WORKBOOK"); v != "" {
		cfg.HazardWorkbook = v
	}
	if v := os.Getenv("WARDRISK_WARD_GEOJSON"); v != "" {
		cfg.WardGeoJSON = v
	}
	if v := os.Getenv("WARDRISK_WARD_ID_PROPERTY"); v != "" {
		cfg.WardIDProperty = v
	}

	return cfg
}

func splitAddresses(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if addr := strings.TrimSpace(part); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}
