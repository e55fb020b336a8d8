package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// SMTPConfig is the mail relay used when no form endpoint is configured.
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// Configured reports whether credentials are present.
func (s SMTPConfig) Configured() bool {
	return s.User != "" && s.Pass != ""
}

// Config is the server's runtime configuration, read from the environment (and
// .env, loaded by godotenv/autoload in main.go).
type Config struct {
	Port string

	// FormspreeID selects the hosted form endpoint for contact submissions.
	FormspreeID       string
	FormspreeEndpoint string
	ContactEmail      string
	SMTP              SMTPConfig

	AdminUsername string
	AdminPassword string

	// StatsDSN is the sqlite DSN for visitor and contact counters. The default keeps
	// them in memory only.
	StatsDSN           string
	VisitorRetention   time.Duration
	TemplatesGlob      string
	LoopContainerWidth float64
}

// LoadConfig reads the environment, applying development defaults.
func LoadConfig() Config {
	cfg := Config{
		Port:              getenv("PORT", "8080"),
		FormspreeID:       os.Getenv("FORMSPREE_ID"),
		FormspreeEndpoint: getenv("FORMSPREE_ENDPOINT", "https://formspree.io/f/"),
		ContactEmail:      getenv("CONTACT_EMAIL", SITE.Contact.Email),
		SMTP: SMTPConfig{
			Host: getenv("SMTP_HOST", "smtp.gmail.com"),
			Port: getenv("SMTP_PORT", "587"),
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
			To:   getenv("TO_EMAIL", SITE.Contact.Email),
		},
		AdminUsername:      os.Getenv("ADMIN_USERNAME"),
		AdminPassword:      os.Getenv("ADMIN_PASSWORD"),
		StatsDSN:           getenv("STATS_DSN", ":memory:"),
		VisitorRetention:   365 * 24 * time.Hour,
		TemplatesGlob:      getenv("TEMPLATES_GLOB", "templates/*"),
		LoopContainerWidth: 1280,
	}

	if v := os.Getenv("VISITOR_RETENTION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.VisitorRetention = d
		} else {
			log.Printf("Ignoring VISITOR_RETENTION=%q: %v", v, err)
		}
	}
	if v := os.Getenv("LOOP_CONTAINER_WIDTH"); v != "" {
		if w, err := strconv.ParseFloat(v, 64); err == nil && w > 0 {
			cfg.LoopContainerWidth = w
		} else {
			log.Printf("Ignoring LOOP_CONTAINER_WIDTH=%q", v)
		}
	}

	// Default credentials for development only
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = "admin"
		if gin.Mode() == gin.DebugMode {
			log.Println("WARNING: Using default admin username. Set ADMIN_USERNAME environment variable.")
		}
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123"
		if gin.Mode() == gin.DebugMode {
			log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
		}
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
