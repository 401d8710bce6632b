package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	Server  Server  `toml:"server"`
	Logs    Logs    `toml:"logs"`
	Metrics Metrics `toml:"metrics"`
	Storage Storage `toml:"storage"`
	Gemini  Gemini  `toml:"gemini"`
	App     App     `toml:"app"`
}

type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout_seconds"`
	WriteTimeout    int `toml:"write_timeout_seconds"`
	IdleTimeout     int `toml:"idle_timeout_seconds"`
	ShutdownTimeout int `toml:"shutdown_timeout_seconds"`
}

type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// Storage выбор key-value backend: file, redis или postgres
type Storage struct {
	Backend  string   `toml:"backend"`
	File     File     `toml:"file"`
	Redis    Redis    `toml:"redis"`
	Postgres Postgres `toml:"postgres"`
}

type File struct {
	Dir string `toml:"dir"`
}

type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type Postgres struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	DBName   string `toml:"dbname"`
	SSLMode  string `toml:"sslmode"`
}

// DSN собирает строку подключения для lib/pq
func (p Postgres) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}

type Gemini struct {
	APIKey         string `toml:"api_key"`
	Model          string `toml:"model"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

func (g Gemini) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

type App struct {
	// PublicURL базовый адрес, на котором доступна клиентская страница записи
	PublicURL string `toml:"public_url"`
}

// Load читает конфигурацию из TOML-файла
// API-ключ Gemini может быть переопределен переменной окружения GEMINI_API_KEY
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: Server{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: Logs{
			File:  "logs/app.log",
			Level: "info",
		},
		Metrics: Metrics{
			Enabled:     true,
			ServiceName: "barber-booking-service",
			Path:        "/metrics",
		},
		Storage: Storage{
			Backend: BackendFile,
			File:    File{Dir: "data"},
		},
		Gemini: Gemini{
			Model:          "gemini-2.0-flash",
			TimeoutSeconds: 10,
		},
		App: App{
			PublicURL: "http://localhost:8080",
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.Gemini.APIKey = key
	}

	switch cfg.Storage.Backend {
	case BackendFile, BackendRedis, BackendPostgres:
	default:
		return nil, fmt.Errorf("config: unknown storage backend %q", cfg.Storage.Backend)
	}

	return cfg, nil
}
