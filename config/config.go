package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Minio    MinioConfig    `yaml:"minio"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	Store    StoreConfig    `yaml:"store"`
	Document DocumentConfig `yaml:"document"`
	Users    []User         `yaml:"users"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
	// RateLimit is the number of requests allowed per client IP per minute, 0 disables it
	RateLimit int `yaml:"rate_limit"`
}

type MinioConfig struct {
	Endpoint   string `yaml:"endpoint"`
	AccessKey  string `yaml:"access_key"`
	SecretKey  string `yaml:"secret_key"`
	Bucket     string `yaml:"bucket"`
	UseSSL     bool   `yaml:"use_ssl"`
	ExpireDays int    `yaml:"expire_days"`
}

// Enabled reports whether published documents can be uploaded
func (m MinioConfig) Enabled() bool {
	return m.Endpoint != "" && m.Bucket != ""
}

type AuthConfig struct {
	JWTSecret        string `yaml:"jwt_secret"`
	TokenExpireHours int    `yaml:"token_expire_hours"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Store drivers
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// coreFontFamilies are the PDF core fonts the renderer can draw without
// embedding a font file
var coreFontFamilies = []interface{}{"times", "helvetica", "arial", "courier"}

type StoreConfig struct {
	Driver       string `yaml:"driver"`
	Path         string `yaml:"path"`
	MaxContracts int    `yaml:"max_contracts"`
}

// DocumentConfig sets page geometry in millimetres and the defaults printed
// in contracts when the record does not provide them.
type DocumentConfig struct {
	PageWidth     float64 `yaml:"page_width"`
	PageHeight    float64 `yaml:"page_height"`
	Margin        float64 `yaml:"margin"`
	LineHeight    float64 `yaml:"line_height"`
	FontFamily    string  `yaml:"font_family"`
	FontSize      float64 `yaml:"font_size"`
	TitleFontSize float64 `yaml:"title_font_size"`

	DefaultCity   string `yaml:"default_city"`
	AgencyName    string `yaml:"agency_name"`
	AgencyAddress string `yaml:"agency_address"`
	Jurisdiction  string `yaml:"jurisdiction"`
	Timezone      string `yaml:"timezone"`
}

type User struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

var GlobalConfig *Config

// Load reads the YAML file at path, applies defaults and then environment
// overrides. A .env file in the working directory is loaded first if present.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	_ = godotenv.Load()
	cfg.applyEnv()

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Minio.ExpireDays == 0 {
		cfg.Minio.ExpireDays = 7
	}
	if cfg.Auth.TokenExpireHours == 0 {
		cfg.Auth.TokenExpireHours = 24
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = DriverMemory
	}
	if cfg.Store.Driver == DriverSQLite && cfg.Store.Path == "" {
		cfg.Store.Path = "contratos.db"
	}
	if cfg.Store.MaxContracts == 0 {
		cfg.Store.MaxContracts = 100
	}
	if cfg.Document.DefaultCity == "" {
		cfg.Document.DefaultCity = "Buenos Aires"
	}
	if cfg.Document.Timezone == "" {
		cfg.Document.Timezone = "America/Argentina/Buenos_Aires"
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	GlobalConfig = &cfg
	return &cfg, nil
}

func (c *Config) validate() error {
	return validation.Errors{
		"store.driver": validation.Validate(c.Store.Driver, validation.In(DriverMemory, DriverSQLite)),
		"document.font_family": validation.Validate(strings.ToLower(c.Document.FontFamily),
			validation.In(coreFontFamilies...).Error("must be one of Times, Helvetica, Arial or Courier")),
	}.Filter()
}

// applyEnv lets secrets and deployment settings come from CONTRATOS_* variables
func (c *Config) applyEnv() {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	setString("CONTRATOS_JWT_SECRET", &c.Auth.JWTSecret)
	setString("CONTRATOS_MINIO_ENDPOINT", &c.Minio.Endpoint)
	setString("CONTRATOS_MINIO_ACCESS_KEY", &c.Minio.AccessKey)
	setString("CONTRATOS_MINIO_SECRET_KEY", &c.Minio.SecretKey)
	setString("CONTRATOS_MINIO_BUCKET", &c.Minio.Bucket)
	setString("CONTRATOS_STORE_DRIVER", &c.Store.Driver)
	setString("CONTRATOS_STORE_PATH", &c.Store.Path)
	setString("CONTRATOS_LOG_LEVEL", &c.Log.Level)

	if v, ok := os.LookupEnv("CONTRATOS_PORT"); ok {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			c.Server.Port = port
		}
	}
}

// FindUser finds a user by username
func (c *Config) FindUser(username string) *User {
	for i := range c.Users {
		if c.Users[i].Username == username {
			return &c.Users[i]
		}
	}
	return nil
}
