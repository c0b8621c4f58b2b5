package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is used when no -config flag is given.
const DefaultConfigPath = "config.yaml"

// DefaultResourcesFeedURL is the fallback provider for resource bulk import.
const DefaultResourcesFeedURL = "https://example.com/api/mental-health-resources"

// AppConfig holds runtime startup configuration loaded from YAML, with
// environment variables (optionally via .env) taking precedence.
type AppConfig struct {
	Port             int            `yaml:"port"`
	Env              string         `yaml:"env"` // "development" | "production"
	DSN              string         `yaml:"dsn"` // full MySQL DSN, overrides Database
	Database         DatabaseConfig `yaml:"database"`
	RedisURL         string         `yaml:"redis_url"`
	JWTSecret        string         `yaml:"jwt_secret"`
	AllowedOrigins   []string       `yaml:"allowed_origins"`
	ResourcesFeedURL string         `yaml:"resources_feed_url"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// Load reads the YAML file at path (missing file is fine, defaults apply)
// and applies environment overrides.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{
		Port:             5000,
		Env:              "development",
		ResourcesFeedURL: DefaultResourcesFeedURL,
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	// .env is a developer convenience; absence is not an error.
	_ = godotenv.Load()
	applyEnv(cfg)

	if cfg.DSN == "" {
		cfg.DSN = cfg.Database.dsn()
	}
	return cfg, nil
}

func (c *AppConfig) IsDev() bool { return c.Env != "production" }

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("DSN"); v != "" {
		cfg.DSN = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("RESOURCES_FEED_URL"); v != "" {
		cfg.ResourcesFeedURL = v
	}
}

func (d DatabaseConfig) dsn() string {
	host := d.Host
	if host == "" {
		host = "127.0.0.1"
	}
	port := d.Port
	if port == 0 {
		port = 3306
	}
	user := d.User
	if user == "" {
		user = "root"
	}
	name := d.Name
	if name == "" {
		name = "mindhaven"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, d.Password, host, port, name)
}
