package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigDir(t *testing.T, files map[string]string) string {
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name        string
		files       map[string]string
		expectError bool
		wantLevel   string
	}{
		{
			name: "loads listed files",
			files: map[string]string{
				"meta.yaml": "files:\n  - base.yaml\n",
				"base.yaml": "logging:\n  level: info\n",
			},
			wantLevel: "info",
		},
		{
			name: "later files override earlier ones and missing files are skipped",
			files: map[string]string{
				"meta.yaml":  "files:\n  - base.yaml\n  - local.yaml\n  - missing.yaml\n",
				"base.yaml":  "logging:\n  level: info\n",
				"local.yaml": "logging:\n  level: warn\n",
			},
			wantLevel: "warn",
		},
		{
			name: "no listed file exists",
			files: map[string]string{
				"meta.yaml": "files:\n  - missing.yaml\n",
			},
			expectError: true,
		},
		{
			name:        "no meta file",
			files:       map[string]string{},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(_envConfigDir, writeConfigDir(t, tt.files))

			provider, err := NewConfig()
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, provider)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "config", provider.Name())
			assert.Equal(t, tt.wantLevel, provider.Get("logging.level").String())
		})
	}
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	t.Setenv(_envConfigDir, writeConfigDir(t, map[string]string{
		"meta.yaml": "files:\n  - base.yaml\n",
		"base.yaml": "jsonrpc:\n  address: ${DBGBROKER_TEST_ADDRESS:127.0.0.1:0}\n",
	}))

	t.Run("default", func(t *testing.T) {
		provider, err := NewConfig()
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:0", provider.Get("jsonrpc.address").String())
	})

	t.Run("override", func(t *testing.T) {
		t.Setenv("DBGBROKER_TEST_ADDRESS", "127.0.0.1:4711")
		provider, err := NewConfig()
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:4711", provider.Get("jsonrpc.address").String())
	})
}

func TestGetConfigDir(t *testing.T) {
	t.Run("returns environment variable when set", func(t *testing.T) {
		t.Setenv(_envConfigDir, "/custom/config/path")
		assert.Equal(t, "/custom/config/path", getConfigDir())
	})

	t.Run("returns default path when environment variable not set", func(t *testing.T) {
		t.Setenv(_envConfigDir, "")
		assert.Equal(t, "src/dbgbroker/config", getConfigDir())
	})
}
