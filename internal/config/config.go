package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv      string `mapstructure:"APP_ENV"`
	AppPort     string `mapstructure:"APP_PORT"`
	DataFile    string `mapstructure:"DATA_FILE"`
	CORSOrigins string `mapstructure:"CORS_ORIGINS"`

	// --- лог-файл (пусто — только stdout) ---
	LogFile       string `mapstructure:"LOG_FILE"`
	LogMaxSizeMB  int    `mapstructure:"LOG_MAX_SIZE_MB"`
	LogMaxBackups int    `mapstructure:"LOG_MAX_BACKUPS"`
	LogMaxAgeDays int    `mapstructure:"LOG_MAX_AGE_DAYS"`

	// --- S3: зеркало документа (необязательно) ---
	S3Endpoint    string `mapstructure:"S3_ENDPOINT"`
	S3Region      string `mapstructure:"S3_REGION"`
	S3Bucket      string `mapstructure:"S3_BUCKET"`
	S3AccessKey   string `mapstructure:"S3_ACCESS_KEY"`
	S3SecretKey   string `mapstructure:"S3_SECRET_KEY"`
	S3UseSSL      bool   `mapstructure:"S3_USE_SSL"`
	S3PathStyle   bool   `mapstructure:"S3_PATH_STYLE"`
	S3SnapshotKey string `mapstructure:"S3_SNAPSHOT_KEY"`
}

// String реализует интерфейс Stringer
func (c *Config) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  AppEnv: %s\n", c.AppEnv))
	sb.WriteString(fmt.Sprintf("  AppPort: %s\n", c.AppPort))
	sb.WriteString(fmt.Sprintf("  DataFile: %s\n", c.DataFile))
	sb.WriteString(fmt.Sprintf("  CORSOrigins: %s\n", c.CORSOrigins))

	if c.LogFile != "" {
		sb.WriteString(fmt.Sprintf("  LogFile: %s (max %dMB, backups %d, age %dd)\n",
			c.LogFile, c.LogMaxSizeMB, c.LogMaxBackups, c.LogMaxAgeDays))
	} else {
		sb.WriteString("  LogFile: (stdout only)\n")
	}

	// S3
	if !c.MirrorEnabled() {
		sb.WriteString("  S3: (disabled)\n")
		return sb.String()
	}
	sb.WriteString(fmt.Sprintf("  S3Endpoint: %s\n", c.S3Endpoint))
	sb.WriteString(fmt.Sprintf("  S3Region: %s\n", c.S3Region))
	sb.WriteString(fmt.Sprintf("  S3Bucket: %s\n", c.S3Bucket))
	sb.WriteString(fmt.Sprintf("  S3SnapshotKey: %s\n", c.S3SnapshotKey))
	// ключи маскируем
	if c.S3AccessKey != "" {
		sb.WriteString("  S3AccessKey: ********\n")
	} else {
		sb.WriteString("  S3AccessKey: (empty)\n")
	}
	if c.S3SecretKey != "" {
		sb.WriteString("  S3SecretKey: ********\n")
	} else {
		sb.WriteString("  S3SecretKey: (empty)\n")
	}
	sb.WriteString(fmt.Sprintf("  S3UseSSL: %v\n", c.S3UseSSL))
	sb.WriteString(fmt.Sprintf("  S3PathStyle: %v\n", c.S3PathStyle))

	return sb.String()
}

// LoadFromEnv загружает конфигурацию из переменных окружения
func LoadFromEnv() (*Config, error) {
	// Загружаем .env только для локальной разработки
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, errors.New("failed to load .env")
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", ":5000")
	v.SetDefault("DATA_FILE", "videos-data.json")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("LOG_MAX_SIZE_MB", 50)
	v.SetDefault("LOG_MAX_BACKUPS", 5)
	v.SetDefault("LOG_MAX_AGE_DAYS", 28)
	v.SetDefault("S3_SNAPSHOT_KEY", "snapshots/videos-data.json")

	// Регистрируем интересующие ключи окружения
	keys := []string{
		"APP_ENV", "APP_PORT", "PORT", "DATA_FILE", "CORS_ORIGINS",
		"LOG_FILE", "LOG_MAX_SIZE_MB", "LOG_MAX_BACKUPS", "LOG_MAX_AGE_DAYS",
		"S3_ENDPOINT", "S3_REGION", "S3_BUCKET", "S3_ACCESS_KEY", "S3_SECRET_KEY",
		"S3_USE_SSL", "S3_PATH_STYLE", "S3_SNAPSHOT_KEY",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// PORT (голый номер порта, как у PaaS) используется, только если APP_PORT не задан явно
	if _, ok := os.LookupEnv("APP_PORT"); !ok {
		if p := v.GetString("PORT"); p != "" {
			cfg.AppPort = p
		}
	}
	cfg.AppPort = normalizePort(cfg.AppPort)

	return &cfg, nil
}

func normalizePort(p string) string {
	p = strings.TrimSpace(p)
	if p != "" && !strings.Contains(p, ":") {
		return ":" + p
	}
	return p
}

// CORSOriginsList разбирает CORS_ORIGINS через запятую.
func (c *Config) CORSOriginsList() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// MirrorEnabled — зеркало включается, только если заданы endpoint и бакет.
func (c *Config) MirrorEnabled() bool {
	return c.S3Endpoint != "" && c.S3Bucket != ""
}
