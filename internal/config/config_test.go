package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DriverSQLServer, cfg.DB.Driver)
	assert.Equal(t, `RAGAVENDRA\SQLEXPRESS`, cfg.DB.Server)
	assert.Equal(t, "IIT300", cfg.DB.Database)
	assert.NoError(t, cfg.Validate())
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := ApplyEnv(&cfg, envMap(map[string]string{
		"REPORT_DB_SERVER":  "PLANT02",
		"REPORT_DB_NAME":    "IIT400",
		"REPORT_EXPORT_DIR": "/srv/exports",
		"RATE_LIMIT_RPS":    "0",
		"RATE_LIMIT_BURST":  "3",
	}))
	require.NoError(t, err)

	assert.Equal(t, "PLANT02", cfg.DB.Server)
	assert.Equal(t, "IIT400", cfg.DB.Database)
	assert.Equal(t, "/srv/exports", cfg.ExportDir)
	assert.Zero(t, cfg.RateLimitRPS)
	assert.Equal(t, 3, cfg.RateLimitBurst)
	// untouched
	assert.Equal(t, DriverSQLServer, cfg.DB.Driver)
}

func TestApplyEnv_InvalidNumber(t *testing.T) {
	cfg := Default()
	err := ApplyEnv(&cfg, envMap(map[string]string{"RATE_LIMIT_BURST": "many"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RATE_LIMIT_BURST")
}

func TestParse_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`listen: ":7000"
database:
  driver: sqlite3
  name: from-yaml.db
`), 0644))

	env := envMap(map[string]string{
		"REPORT_DB_NAME":     "from-env.db",
		"REPORT_LISTEN_ADDR": ":7001",
	})

	cfg, err := Parse([]string{"-config", path, "-listen", ":7002"}, env)
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DB.Driver, "yaml over default")
	assert.Equal(t, "from-env.db", cfg.DB.Database, "env over yaml")
	assert.Equal(t, ":7002", cfg.ListenAddr, "flag over env")
}

func TestParse_UnsetFlagsDoNotOverride(t *testing.T) {
	env := envMap(map[string]string{"REPORT_DB_SERVER": "PLANT09"})

	cfg, err := Parse(nil, env)
	require.NoError(t, err)
	assert.Equal(t, "PLANT09", cfg.DB.Server)
}

func TestParse_InvalidDriver(t *testing.T) {
	_, err := Parse([]string{"-db-driver", "oracle"}, envMap(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "dsn without name", mutate: func(c *Config) { c.DB.Database = ""; c.DB.DSN = "sqlserver://x" }},
		{name: "missing name", mutate: func(c *Config) { c.DB.Database = "" }, wantErr: true},
		{name: "missing listen", mutate: func(c *Config) { c.ListenAddr = "" }, wantErr: true},
		{name: "zero burst", mutate: func(c *Config) { c.RateLimitBurst = 0 }, wantErr: true},
		{name: "zero burst rate limit off", mutate: func(c *Config) { c.RateLimitBurst = 0; c.RateLimitRPS = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, Config{LogLevel: in}.SlogLevel(), in)
	}
}
