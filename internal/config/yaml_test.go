package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyYAML(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "all fields",
			content: `listen: ":8080"
export_dir: /var/tmp/reports
database:
  driver: sqlite3
  name: /data/plant.db
log:
  format: json
  level: debug
rate_limit:
  rps: 2.5
  burst: 4
`,
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, ":8080", cfg.ListenAddr)
				assert.Equal(t, "/var/tmp/reports", cfg.ExportDir)
				assert.Equal(t, DriverSQLite, cfg.DB.Driver)
				assert.Equal(t, "/data/plant.db", cfg.DB.Database)
				assert.Equal(t, "json", cfg.LogFormat)
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, 2.5, cfg.RateLimitRPS)
				assert.Equal(t, 4, cfg.RateLimitBurst)
			},
		},
		{
			name: "partial file keeps defaults",
			content: `database:
  server: 'PLANT01\SQLEXPRESS'
`,
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, `PLANT01\SQLEXPRESS`, cfg.DB.Server)
				assert.Equal(t, "IIT300", cfg.DB.Database)
				assert.Equal(t, DriverSQLServer, cfg.DB.Driver)
				assert.Equal(t, ":5000", cfg.ListenAddr)
			},
		},
		{
			name: "explicit zero rate limit",
			content: `rate_limit:
  rps: 0
`,
			check: func(t *testing.T, cfg Config) {
				assert.Zero(t, cfg.RateLimitRPS)
			},
		},
		{
			name:    "invalid yaml",
			content: `database: [invalid`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(tmpFile, []byte(tt.content), 0644))

			cfg := Default()
			err := ApplyYAML(&cfg, tmpFile)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestApplyYAML_FileNotFound(t *testing.T) {
	cfg := Default()
	err := ApplyYAML(&cfg, "/nonexistent/path/config.yaml")
	require.Error(t, err)
}
