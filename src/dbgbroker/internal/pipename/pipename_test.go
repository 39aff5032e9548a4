package pipename

import (
	"errors"
	"strings"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/config"
)

var _fixedID = uuid.Must(uuid.FromString("4d8c6b36-4e9b-4469-8a05-2c60b9671590"))

func fixedID() (uuid.UUID, error) { return _fixedID, nil }

func TestNew(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg, err := config.NewStaticProvider(map[string]interface{}{
			"debugger": map[string]interface{}{
				"pipeDirectory": "/var/run/dbg",
				"pipePrefix":    "custom",
			},
		})
		require.NoError(t, err)

		r, err := New(Params{Config: cfg})
		require.NoError(t, err)
		name, err := r.Derive()
		require.NoError(t, err)
		if !strings.HasPrefix(name, `\\.\pipe\`) {
			assert.True(t, strings.HasPrefix(name, "/var/run/dbg/custom-"), name)
		}
	})

	t.Run("missing block uses defaults", func(t *testing.T) {
		cfg, err := config.NewStaticProvider(map[string]interface{}{})
		require.NoError(t, err)

		_, err = New(Params{Config: cfg})
		assert.NoError(t, err)
	})

	t.Run("malformed block", func(t *testing.T) {
		cfg, err := config.NewStaticProvider(map[string]interface{}{
			"debugger": "not a map",
		})
		require.NoError(t, err)

		_, err = New(Params{Config: cfg})
		assert.Error(t, err)
	})
}

func TestResolve(t *testing.T) {
	r := newResolver(settings{}, "linux", fixedID)

	t.Run("explicit address wins", func(t *testing.T) {
		name, err := r.Resolve("foo-pipe")
		require.NoError(t, err)
		assert.Equal(t, "foo-pipe", name)
	})

	t.Run("derived when absent", func(t *testing.T) {
		name, err := r.Resolve("")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/cmake-debugger-pipe-4d8c6b36-4e9b-4469-8a05-2c60b9671590", name)
	})
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name     string
		settings settings
		goos     string
		want     string
	}{
		{
			name: "unix defaults",
			goos: "darwin",
			want: "/tmp/cmake-debugger-pipe-4d8c6b36-4e9b-4469-8a05-2c60b9671590",
		},
		{
			name:     "unix custom directory and prefix",
			settings: settings{PipeDirectory: "/run/user/1000", PipePrefix: "dbg"},
			goos:     "linux",
			want:     "/run/user/1000/dbg-4d8c6b36-4e9b-4469-8a05-2c60b9671590",
		},
		{
			name: "windows",
			goos: "windows",
			want: `\\.\pipe\cmake-debugger-pipe\4d8c6b36-4e9b-4469-8a05-2c60b9671590`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newResolver(tt.settings, tt.goos, fixedID)
			got, err := r.Derive()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unique per call", func(t *testing.T) {
		r := newResolver(settings{}, "linux", uuid.NewV4)
		seen := map[string]bool{}
		for i := 0; i < 100; i++ {
			name, err := r.Derive()
			require.NoError(t, err)
			assert.False(t, seen[name], "duplicate pipe name %q", name)
			seen[name] = true
		}
	})

	t.Run("uuid failure propagates", func(t *testing.T) {
		r := newResolver(settings{}, "linux", func() (uuid.UUID, error) {
			return uuid.Nil, errors.New("entropy exhausted")
		})
		_, err := r.Derive()
		assert.ErrorContains(t, err, "entropy exhausted")
	})
}
