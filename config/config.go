package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var loadEnvOnce sync.Once

// Config returns the trimmed value of an env variable, loading .env on first use.
func Config(key string) string {
	loadEnvOnce.Do(func() {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("config: cannot load .env: %v", err)
		}
	})
	return strings.TrimSpace(os.Getenv(key))
}

type Settings struct {
	HTTPAddr string

	DBDriver   string
	DBHost     string
	DBPort     uint64
	DBUser     string
	DBPassword string
	DBName     string
	SQLitePath string

	JWTSecret []byte

	LockBackend   string
	LockTimeout   time.Duration
	LockTTL       time.Duration
	RedisAddr     string
	RedisPassword string
	NotifyTimeout time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	SeedDemo bool
	Location *time.Location
}

func Load() (*Settings, error) {
	s := &Settings{
		HTTPAddr:      getOrDefault("HTTP_ADDR", ":8002"),
		DBDriver:      getOrDefault("DB_DRIVER", "postgres"),
		DBHost:        getOrDefault("DB_HOST", "localhost"),
		DBUser:        Config("DB_USER"),
		DBPassword:    Config("DB_PASSWORD"),
		DBName:        getOrDefault("DB_NAME", "dinebook"),
		SQLitePath:    getOrDefault("SQLITE_PATH", "dinebook.db"),
		LockBackend:   getOrDefault("LOCK_BACKEND", "memory"),
		RedisAddr:     getOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: Config("REDIS_PASSWORD"),
		SMTPHost:      Config("SMTP_HOST"),
		SMTPUsername:  Config("SMTP_USERNAME"),
		SMTPPassword:  Config("SMTP_PASSWORD"),
		SMTPFrom:      getOrDefault("SMTP_FROM", "bookings@dinebook.com"),
		SeedDemo:      Config("SEED_DEMO") == "true",
	}

	secret := Config("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	s.JWTSecret = []byte(secret)

	var err error
	if s.DBPort, err = strconv.ParseUint(getOrDefault("DB_PORT", "5432"), 10, 32); err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	if s.SMTPPort, err = strconv.Atoi(getOrDefault("SMTP_PORT", "587")); err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	if s.LockTimeout, err = durationOrDefault("BOOKING_LOCK_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if s.LockTTL, err = durationOrDefault("BOOKING_LOCK_TTL", 15*time.Second); err != nil {
		return nil, err
	}
	if s.NotifyTimeout, err = durationOrDefault("NOTIFY_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	switch s.DBDriver {
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", s.DBDriver)
	}
	switch s.LockBackend {
	case "memory", "redis":
	default:
		return nil, fmt.Errorf("unsupported LOCK_BACKEND %q", s.LockBackend)
	}

	s.Location = time.Local
	if tz := Config("APP_TIMEZONE"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid APP_TIMEZONE: %w", err)
		}
		s.Location = loc
	}

	return s, nil
}

// MailerConfigured reports whether SMTP settings are complete enough to send mail.
func (s *Settings) MailerConfigured() bool {
	return s.SMTPHost != "" && s.SMTPUsername != ""
}

func getOrDefault(key, def string) string {
	if v := Config(key); v != "" {
		return v
	}
	return def
}

func durationOrDefault(key string, def time.Duration) (time.Duration, error) {
	v := Config(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return d, nil
}
