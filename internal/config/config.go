package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Program  ProgramConfig  `mapstructure:"program"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// JWTConfig defines admin authentication configuration. The service has a
// single admin principal; end-user accounts live in a separate system.
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	Expiration        time.Duration `mapstructure:"expiration"`
	AdminEmail        string        `mapstructure:"admin_email"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash"` // bcrypt
}

// TemplateEntry is one slot of the daily playlist template: which
// category fills the slot and how many clips it takes.
type TemplateEntry struct {
	Slot  string `mapstructure:"slot"`
	Count int    `mapstructure:"count"`
}

// ProgramConfig describes the guided program itself: its length in days,
// the trainer personas on offer, the preferred recording variant, and the
// ordered playlist template applied to every day.
type ProgramConfig struct {
	CycleLengthDays  int             `mapstructure:"cycle_length_days"`
	PreferredVariant string          `mapstructure:"preferred_variant"`
	Personas         []string        `mapstructure:"personas"`
	Template         []TemplateEntry `mapstructure:"template"`
}

// Validate catches configuration mistakes that would otherwise only
// surface mid-request (a zero-length program, an empty template, a slot
// with a non-positive count).
func (p ProgramConfig) Validate() error {
	if p.CycleLengthDays <= 0 {
		return fmt.Errorf("program.cycle_length_days must be positive, got %d", p.CycleLengthDays)
	}
	if len(p.Personas) == 0 {
		return fmt.Errorf("program.personas must name at least one persona")
	}
	if len(p.Template) == 0 {
		return fmt.Errorf("program.template must contain at least one slot")
	}
	for i, entry := range p.Template {
		if entry.Slot == "" {
			return fmt.Errorf("program.template[%d] is missing a slot type", i)
		}
		if entry.Count <= 0 {
			return fmt.Errorf("program.template[%d] (%s) has non-positive count %d", i, entry.Slot, entry.Count)
		}
	}
	return nil
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variable handling: nested keys map to underscored
	// variables, e.g. program.cycle_length_days -> PROGRAM_CYCLE_LENGTH_DAYS.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// Defaults. The template default mirrors the standard 16-clip day;
	// deployments override it from config.yaml.
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "fitness_program")
	viper.SetDefault("s3.use_ssl", true)
	viper.SetDefault("jwt.expiration", "1h")
	viper.SetDefault("program.cycle_length_days", 21)
	viper.SetDefault("program.preferred_variant", "alpha")
	viper.SetDefault("program.personas", []string{"athlete", "mentor", "drill_sergeant"})
	viper.SetDefault("program.template", []map[string]any{
		{"slot": "intro", "count": 1},
		{"slot": "warmup", "count": 2},
		{"slot": "after_warmup", "count": 1},
		{"slot": "main", "count": 5},
		{"slot": "after_main", "count": 1},
		{"slot": "endurance", "count": 2},
		{"slot": "speech", "count": 1},
		{"slot": "cooldown", "count": 2},
		{"slot": "farewell", "count": 1},
	})

	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// Config file not found; defaults and env vars still apply.
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	if err = config.Program.Validate(); err != nil {
		return
	}

	return config, nil
}
