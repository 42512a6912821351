// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Email     EmailConfig     `mapstructure:"email"`
	Dispatch  DispatchConfig  `mapstructure:"dispatch"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// EmailConfig selects and configures the transactional email provider.
type EmailConfig struct {
	Provider string `mapstructure:"provider"` // "resend" or "ses"
	From     string `mapstructure:"from"`

	Resend struct {
		APIKey   string `mapstructure:"api_key"`
		Endpoint string `mapstructure:"endpoint"`
		Timeout  int    `mapstructure:"timeout"` // milliseconds
	} `mapstructure:"resend"`

	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`
}

// DispatchConfig holds the batch processing knobs.
type DispatchConfig struct {
	BatchLimit int `mapstructure:"batch_limit"`
}

// SchedulerConfig holds the cron specs for the three dispatch jobs.
type SchedulerConfig struct {
	Enabled          bool   `mapstructure:"enabled"`
	SignupSpec       string `mapstructure:"signup_spec"`
	CancellationSpec string `mapstructure:"cancellation_spec"`
	ReminderSpec     string `mapstructure:"reminder_spec"`
	LockTTL          int    `mapstructure:"lock_ttl"` // seconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
