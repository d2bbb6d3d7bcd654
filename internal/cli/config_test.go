package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	dof "github.com/reoring/godof"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dof.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv(configEnv, "")
	cfg, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
lang = "ja"
fail_fast = true
unknown = "strip"
max_bytes = 4096
workers = 2
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, Config{Lang: "ja", FailFast: true, Unknown: "strip", MaxBytes: 4096, Workers: 2}, cfg)

	opt := cfg.parseOpt()
	require.True(t, opt.FailFast)
	require.Equal(t, dof.UnknownStrip, opt.Unknown)
	require.Equal(t, int64(4096), opt.MaxBytes)
	require.Equal(t, dof.Error, opt.Strictness.OnDuplicateKey)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv(configEnv, writeConfig(t, `lang = "ja"`))
	cfg, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, "ja", cfg.Lang)
	require.Equal(t, "reject", cfg.Unknown)
}

func TestLoadConfig_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown key":    `colour = "blue"`,
		"bad policy":     `unknown = "maybe"`,
		"no workers":     `workers = 0`,
		"negative bytes": `max_bytes = -1`,
		"syntax":         `lang = `,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, body))
			require.Error(t, err)
		})
	}

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
