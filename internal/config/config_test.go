package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        Config
		errContains string
		wantErr     bool
	}{
		{
			name:  "empty",
			input: "",
			want:  Default(),
		},
		{
			name: "partial",
			input: `
version = "1.2.0"
[display]
precision = 4
`,
			want: Config{
				Version: "1.2.0",
				Display: Display{Precision: 4, Theme: "dark"},
				Server:  Server{Host: "localhost", Port: "2727"},
			},
		},
		{
			name: "full",
			input: `
version = "1.0.0"
[display]
precision = -1
theme = "light"
[server]
host = "0.0.0.0"
port = "8080"
`,
			want: Config{
				Version: "1.0.0",
				Display: Display{Precision: -1, Theme: "light"},
				Server:  Server{Host: "0.0.0.0", Port: "8080"},
			},
		},
		{
			name:        "bad version",
			input:       `version = "one"`,
			errContains: "not a valid semantic version",
		},
		{
			name:        "unsupported version",
			input:       `version = "2.0.0"`,
			errContains: "not supported",
		},
		{
			name:        "bad theme",
			input:       "[display]\ntheme = \"neon\"",
			errContains: "unknown theme",
		},
		{
			name:        "precision too large",
			input:       "[display]\nprecision = 20",
			errContains: "precision",
		},
		{
			name:    "invalid toml",
			input:   "[display",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig(strings.NewReader(tt.input))
			if tt.wantErr || tt.errContains != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, cfg)
		})
	}
}

func TestConfig_RenderRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Display.Precision = 3
	cfg.Server.Port = "9000"
	var buf bytes.Buffer
	cfg.Render(&buf)

	got, err := ParseConfig(&buf)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
	require.Equal(t, "localhost:9000", got.Addr())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	location := filepath.Join(dir, "calc.toml")
	require.NoError(t, os.WriteFile(location, []byte("[display]\ntheme = \"light\"\n"), 0644))

	cfg, err := Load(location)
	require.NoError(t, err)
	require.Equal(t, "light", cfg.Display.Theme)

	os.Setenv(EnvVar, location)
	cfg, err = Load("")
	os.Unsetenv(EnvVar)
	require.NoError(t, err)
	require.Equal(t, "light", cfg.Display.Theme)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "error loading")
}
