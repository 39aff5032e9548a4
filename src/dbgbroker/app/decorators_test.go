package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/dbgbroker/src/dbgbroker/internal/fs"
	fsmock "github.com/uber/dbgbroker/src/dbgbroker/internal/fs/fsmock"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
)

func TestEnv(t *testing.T) {
	tests := []struct {
		name      string
		envValue  string
		expectVal string
	}{
		{
			name:      "local",
			expectVal: EnvLocal,
		},
		{
			name:      "development",
			envValue:  "development",
			expectVal: EnvDevelopment,
		},
		{
			name:      "unknown falls back to local",
			envValue:  "production",
			expectVal: EnvLocal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(_envBrokerEnvironment, tt.envValue)

			fxtest.New(
				t,
				fx.Provide(func() Context {
					return Context{
						Environment:        "local",
						RuntimeEnvironment: "local",
					}
				}),
				fx.Decorate(decorateEnvContext),
				fx.Invoke(func(ctx Context) {
					require.Equal(t, tt.expectVal, ctx.Environment, "unexpected environment")
					require.Equal(t, tt.expectVal, ctx.RuntimeEnvironment, "unexpected runtime environment")
				}),
			).RequireStart().RequireStop()
		})
	}
}

func TestDecorateConfigProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsMock := fsmock.NewMockBrokerFS(ctrl)
	fsMock.EXPECT().MkdirAll("/tmp/dbgbroker").Return(nil)

	fxtest.New(
		t,
		fx.Provide(func() fs.BrokerFS {
			return fsMock
		}),
		fx.Provide(func() config.Provider {
			p, _ := config.NewStaticProvider(map[string]interface{}{
				"logging": map[string]interface{}{
					"outputPaths": []string{
						"/tmp/dbgbroker/dbgbroker.log",
						"stderr",
					},
				},
			})
			return p
		}),
		fx.Provide(func() Context {
			return Context{
				RuntimeEnvironment: EnvDevelopment,
			}
		}),
		fx.Decorate(decorateConfigProvider),
		fx.Invoke(func(cfg config.Provider) {}),
	).RequireStart().RequireStop()
}

func TestEnsureLogFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Run("no errors", func(t *testing.T) {
		fsMock := fsmock.NewMockBrokerFS(ctrl)

		fsMock.EXPECT().MkdirAll("/tmp/foo").Return(nil)
		fsMock.EXPECT().MkdirAll("/tmp/bar").Return(nil)

		p, err := config.NewStaticProvider(map[string]interface{}{
			"logging": map[string]interface{}{
				"outputPaths": []string{
					"/tmp/foo/myfile1.log",
					"stdout",
					"/tmp/bar/myfile2.log",
				},
			},
		})
		require.NoError(t, err)

		got, err := ensureLogFolder(p, fsMock)
		assert.NoError(t, err)
		assert.Equal(t, p, got)
	})

	t.Run("error creating directory", func(t *testing.T) {
		fsMock := fsmock.NewMockBrokerFS(ctrl)
		fsMock.EXPECT().MkdirAll("/tmp/foo").Return(errors.New("error creating directory"))
		p, _ := config.NewStaticProvider(map[string]interface{}{
			"logging": map[string]interface{}{
				"outputPaths": []string{
					"/tmp/foo/myfile1.log",
					"/tmp/bar/myfile2.log",
				},
			},
		})
		_, err := ensureLogFolder(p, fsMock)
		assert.EqualError(t, err, "creating logging directory: error creating directory")
	})
}
