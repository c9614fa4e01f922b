package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the layout of the YAML configuration file.
type File struct {
	Listen    string     `yaml:"listen"`
	ExportDir string     `yaml:"export_dir"`
	Database  DataSource `yaml:"database"`
	Log       struct {
		Format string `yaml:"format"`
		Level  string `yaml:"level"`
	} `yaml:"log"`
	RateLimit struct {
		RPS   *float64 `yaml:"rps"`
		Burst *int     `yaml:"burst"`
	} `yaml:"rate_limit"`
}

// ApplyYAML overlays the non-empty values of the file at path onto cfg.
func ApplyYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	setIf(&cfg.ListenAddr, f.Listen)
	setIf(&cfg.ExportDir, f.ExportDir)
	setIf(&cfg.LogFormat, f.Log.Format)
	setIf(&cfg.LogLevel, f.Log.Level)

	setIf(&cfg.DB.Driver, f.Database.Driver)
	setIf(&cfg.DB.Server, f.Database.Server)
	setIf(&cfg.DB.Database, f.Database.Database)
	setIf(&cfg.DB.User, f.Database.User)
	setIf(&cfg.DB.Password, f.Database.Password)
	setIf(&cfg.DB.DSN, f.Database.DSN)

	if f.RateLimit.RPS != nil {
		cfg.RateLimitRPS = *f.RateLimit.RPS
	}
	if f.RateLimit.Burst != nil {
		cfg.RateLimitBurst = *f.RateLimit.Burst
	}

	return nil
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
