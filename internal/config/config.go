package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ServiceConfig holds all configuration for the booking service.
type ServiceConfig struct {
	Port       string         `mapstructure:"port"`
	AppEnv     string         `mapstructure:"app_env"`
	JWTSecret  string         `mapstructure:"jwt_secret"`
	S3ImageURL string         `mapstructure:"s3_image_url"`
	DB         DatabaseConfig `mapstructure:"database"`
	Notify     NotifyConfig   `mapstructure:"notify"`
	Kafka      KafkaConfig    `mapstructure:"kafka"`
	SMTP       SMTPConfig     `mapstructure:"smtp"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// NotifyConfig selects the notification dispatch strategy.
// Mode is "direct" (synchronous SMTP) or "queued" (Kafka handoff).
type NotifyConfig struct {
	Mode string `mapstructure:"mode"`
}

// KafkaConfig holds broker addresses and topic/group names.
type KafkaConfig struct {
	Brokers            []string `mapstructure:"brokers"`
	NotificationsTopic string   `mapstructure:"notifications_topic"`
	GroupID            string   `mapstructure:"group_id"`
}

// SMTPConfig holds mail transport credentials for the direct strategy
// and the delivery worker.
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// Load reads configuration from config.yaml and FASTEX_* environment
// variables, with environment taking precedence.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvPrefix("FASTEX")
	v.AutomaticEnv()

	v.SetDefault("port", ":8080")
	v.SetDefault("app_env", "development")
	v.SetDefault("s3_image_url", "https://fastex-images.s3.eu-central-1.amazonaws.com/")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "fastex")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "fastex_booking")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("notify.mode", "direct")
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.notifications_topic", "booking.notifications")
	v.SetDefault("kafka.group_id", "notification-worker")
	v.SetDefault("smtp.host", "localhost")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.from", "no-reply@fastex.ie")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg ServiceConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
