package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

type Config struct {
	APIBaseURL   string // базовый адрес школьного бэкенда
	MediaBaseURL string // хост, с которого отдаются загруженные файлы
	SessionFile  string // путь к сохранённой сессии
	Location     *time.Location
	HTTPAddr     string
	LogLevel     string
	Env          string // dev|prod
	SentryDSN    string
}

func Load() (*Config, error) {
	tz := getenv("TZ", "Europe/Moscow")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.Local
	}

	base := strings.TrimRight(mustEnv("API_BASE_URL"), "/")
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("API_BASE_URL: %w", err)
	}

	cfg := &Config{
		APIBaseURL:   base,
		MediaBaseURL: strings.TrimRight(getenv("MEDIA_BASE_URL", base), "/"),
		SessionFile:  getenv("SESSION_FILE", defaultSessionFile()),
		Location:     loc,
		HTTPAddr:     getenv("HTTP_ADDR", ":8080"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		Env:          getenv("ENV", "dev"),
		SentryDSN:    os.Getenv("SENTRY_DSN"),
	}
	return cfg, nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".schooladmin-session.json"
	}
	return home + "/.schooladmin-session.json"
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("required env " + k + " is empty")
	}
	return v
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
