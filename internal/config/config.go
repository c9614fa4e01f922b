package config

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Supported data source drivers.
const (
	DriverSQLServer = "sqlserver"
	DriverSQLite    = "sqlite3"
	DriverPostgres  = "pgx"
)

// DataSource describes where the log table lives.
type DataSource struct {
	Driver   string `yaml:"driver"`
	Server   string `yaml:"server"`
	Database string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	// DSN, when set, is used as-is and the fields above are ignored.
	DSN string `yaml:"dsn"`
}

// Config is built once at startup and passed by value afterwards.
type Config struct {
	DB             DataSource
	ListenAddr     string
	ExportDir      string
	LogFormat      string
	LogLevel       string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Default returns the development defaults.
func Default() Config {
	return Config{
		DB: DataSource{
			Driver:   DriverSQLServer,
			Server:   `RAGAVENDRA\SQLEXPRESS`,
			Database: "IIT300",
		},
		ListenAddr:     ":5000",
		ExportDir:      filepath.Join(os.TempDir(), "barani-reports"),
		LogFormat:      "text",
		LogLevel:       "info",
		RateLimitRPS:   10,
		RateLimitBurst: 20,
	}
}

// Load builds a config from defaults, an optional YAML file and the environment.
func Load(path string, getenv func(string) string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := ApplyYAML(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	if err := ApplyEnv(&cfg, getenv); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ApplyEnv overrides cfg with the REPORT_* and LOG_* environment variables.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}

	strs := map[string]*string{
		"REPORT_DB_DRIVER":   &cfg.DB.Driver,
		"REPORT_DB_SERVER":   &cfg.DB.Server,
		"REPORT_DB_NAME":     &cfg.DB.Database,
		"REPORT_DB_USER":     &cfg.DB.User,
		"REPORT_DB_PASSWORD": &cfg.DB.Password,
		"REPORT_DB_DSN":      &cfg.DB.DSN,
		"REPORT_LISTEN_ADDR": &cfg.ListenAddr,
		"REPORT_EXPORT_DIR":  &cfg.ExportDir,
		"LOG_FORMAT":         &cfg.LogFormat,
		"LOG_LEVEL":          &cfg.LogLevel,
	}
	for key, dst := range strs {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	if v := getenv("RATE_LIMIT_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parse RATE_LIMIT_RPS: %w", err)
		}
		cfg.RateLimitRPS = f
	}
	if v := getenv("RATE_LIMIT_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse RATE_LIMIT_BURST: %w", err)
		}
		cfg.RateLimitBurst = n
	}

	return nil
}

// Parse reads the server command line. Flags that were set explicitly win
// over the YAML file and the environment.
func Parse(args []string, getenv func(string) string) (Config, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	var (
		configPath string
		flagCfg    Config
	)
	def := Default()

	fs.StringVar(&configPath, "config", "", "YAML config file")
	fs.StringVar(&flagCfg.ListenAddr, "listen", def.ListenAddr, "HTTP listen address")
	fs.StringVar(&flagCfg.ExportDir, "export-dir", def.ExportDir, "Directory for temporary spreadsheet exports")
	fs.StringVar(&flagCfg.DB.Driver, "db-driver", def.DB.Driver, "Database driver: sqlserver, sqlite3 or pgx")
	fs.StringVar(&flagCfg.DB.Server, "db-server", def.DB.Server, "Database host (HOST or HOST\\INSTANCE)")
	fs.StringVar(&flagCfg.DB.Database, "db-name", def.DB.Database, "Database name (file path for sqlite3)")
	fs.StringVar(&flagCfg.DB.DSN, "db-dsn", "", "Full DSN, overrides the other db-* flags")
	fs.StringVar(&flagCfg.LogFormat, "log-format", def.LogFormat, "Log format: text or json")
	fs.StringVar(&flagCfg.LogLevel, "log-level", def.LogLevel, "Log level: debug, info, warn, error")
	fs.Float64Var(&flagCfg.RateLimitRPS, "rate-limit-rps", def.RateLimitRPS, "Report requests per second per client, 0 disables")
	fs.IntVar(&flagCfg.RateLimitBurst, "rate-limit-burst", def.RateLimitBurst, "Report request burst per client")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg, err := Load(configPath, getenv)
	if err != nil {
		return Config{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "listen":
			cfg.ListenAddr = flagCfg.ListenAddr
		case "export-dir":
			cfg.ExportDir = flagCfg.ExportDir
		case "db-driver":
			cfg.DB.Driver = flagCfg.DB.Driver
		case "db-server":
			cfg.DB.Server = flagCfg.DB.Server
		case "db-name":
			cfg.DB.Database = flagCfg.DB.Database
		case "db-dsn":
			cfg.DB.DSN = flagCfg.DB.DSN
		case "log-format":
			cfg.LogFormat = flagCfg.LogFormat
		case "log-level":
			cfg.LogLevel = flagCfg.LogLevel
		case "rate-limit-rps":
			cfg.RateLimitRPS = flagCfg.RateLimitRPS
		case "rate-limit-burst":
			cfg.RateLimitBurst = flagCfg.RateLimitBurst
		}
	})

	return cfg, cfg.Validate()
}

// Validate checks the fields the gateway and server depend on.
func (c Config) Validate() error {
	switch c.DB.Driver {
	case DriverSQLServer, DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported database driver %q", c.DB.Driver)
	}
	if c.DB.DSN == "" && c.DB.Database == "" {
		return fmt.Errorf("database name is required")
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listen address is required")
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		return fmt.Errorf("rate limit burst must be positive, got %d", c.RateLimitBurst)
	}
	return nil
}

// SlogLevel maps LogLevel to an slog.Level.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
