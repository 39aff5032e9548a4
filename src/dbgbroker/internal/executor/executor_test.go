package executor

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func fxExecutor(t *testing.T, opts ...Option) (Executor, *observer.ObservedLogs) {
	var e Executor
	core, recorded := observer.New(zap.InfoLevel)
	logger := zap.New(core).Sugar()

	fxtest.New(t,
		fx.Supply(logger),
		fx.Provide(func(logger *zap.SugaredLogger) Executor {
			return NewExecutor(append([]Option{WithLogger(logger)}, opts...)...)
		}),
		fx.Populate(&e),
	).RequireStart().RequireStop()

	return e, recorded
}

func lookPath(t *testing.T, name string) string {
	binPath, err := exec.LookPath(name)
	if errors.Is(err, exec.ErrNotFound) {
		t.Skipf("no %s available", name)
	}
	require.NoError(t, err)
	return binPath
}

func TestModule(t *testing.T) {
	var e Executor
	fxtest.New(t,
		fx.Supply(zap.NewNop().Sugar()),
		Module,
		fx.Populate(&e),
	).RequireStart().RequireStop()
	assert.NotNil(t, e)
}

func TestRunCommand(t *testing.T) {
	e, recorded := fxExecutor(t)

	t.Run("without stdin", func(t *testing.T) {
		binPath := lookPath(t, "true")

		cmd := exec.Command("true", "-S", "src")
		cmd.Dir = "/"
		err := e.RunCommand(cmd, []string{"KEY1=VAL1"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"KEY1=VAL1"}, cmd.Env)

		logs := recorded.TakeAll()
		require.Len(t, logs, 1)
		assert.Equal(t, "Exec", logs[0].Message)
		assert.Equal(t, map[string]interface{}{
			"Path": binPath,
			"Dir":  "/",
			"Args": []interface{}{"-S", "src"},
		}, logs[0].ContextMap())
	})

	t.Run("with stdin", func(t *testing.T) {
		binPath := lookPath(t, "true")

		cmd := exec.Command("true", "-P")
		cmd.Dir = "/"
		cmd.Stdin = strings.NewReader("SomeInput")
		err := e.RunCommand(cmd, nil)
		assert.NoError(t, err)

		logs := recorded.TakeAll()
		require.Len(t, logs, 1)
		assert.Equal(t, map[string]interface{}{
			"Path":  binPath,
			"Dir":   "/",
			"Args":  []interface{}{"-P"},
			"Stdin": "SomeInput",
		}, logs[0].ContextMap())
	})

	t.Run("failing command", func(t *testing.T) {
		lookPath(t, "false")
		err := e.RunCommand(exec.Command("false"), nil)
		assert.EqualError(t, err, "exit status 1")
	})
}

func TestRun(t *testing.T) {
	e, _ := fxExecutor(t)

	t.Run("captures output", func(t *testing.T) {
		lookPath(t, "echo")
		stdout, stderr, exitCode, err := e.Run(exec.Command("echo", "cmake version 3.28.1"))
		require.NoError(t, err)
		assert.Equal(t, "cmake version 3.28.1\n", stdout)
		assert.Empty(t, stderr)
		assert.Equal(t, 0, exitCode)
	})

	t.Run("exit code", func(t *testing.T) {
		lookPath(t, "false")
		_, _, exitCode, err := e.Run(exec.Command("false"))
		assert.EqualError(t, err, "exit status 1")
		assert.Equal(t, 1, exitCode)
	})

	t.Run("unknown command", func(t *testing.T) {
		_, _, _, err := e.Run(exec.Command("no_valid_command_"))
		assert.EqualError(t, err, `exec: "no_valid_command_": executable file not found in $PATH`)
	})
}

func TestRunStreaming(t *testing.T) {
	t.Run("delivers every line in order", func(t *testing.T) {
		e, _ := fxExecutor(t, WithExecFunc(func(cmd *exec.Cmd) error {
			fmt.Fprint(cmd.Stdout, "-- Configuring\nWaiting for debugger client to connect...\n-- Done")
			return nil
		}))

		var lines []string
		cmd := exec.Command("cmake", "--debugger")
		err := e.RunStreaming(cmd, []string{"A=B"}, func(line string) {
			lines = append(lines, line)
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"-- Configuring", "Waiting for debugger client to connect...", "-- Done"}, lines)
		assert.Equal(t, []string{"A=B"}, cmd.Env)
	})

	t.Run("keeps caller stdout", func(t *testing.T) {
		e, _ := fxExecutor(t, WithExecFunc(func(cmd *exec.Cmd) error {
			fmt.Fprintln(cmd.Stdout, "line")
			return nil
		}))

		var out strings.Builder
		cmd := exec.Command("cmake")
		cmd.Stdout = &out
		count := 0
		require.NoError(t, e.RunStreaming(cmd, nil, func(string) { count++ }))
		assert.Equal(t, "line\n", out.String())
		assert.Equal(t, 1, count)
	})

	t.Run("returns exec error after lines", func(t *testing.T) {
		e, _ := fxExecutor(t, WithExecFunc(func(cmd *exec.Cmd) error {
			fmt.Fprintln(cmd.Stdout, "CMake Error: bad")
			return errors.New("exit status 1")
		}))

		var lines []string
		err := e.RunStreaming(exec.Command("cmake"), nil, func(line string) {
			lines = append(lines, line)
		})
		assert.EqualError(t, err, "exit status 1")
		assert.Equal(t, []string{"CMake Error: bad"}, lines)
	})

	t.Run("nil callback", func(t *testing.T) {
		e, _ := fxExecutor(t, WithExecFunc(func(cmd *exec.Cmd) error {
			fmt.Fprintln(cmd.Stdout, "ignored")
			return nil
		}))
		assert.NoError(t, e.RunStreaming(exec.Command("cmake"), nil, nil))
	})

	t.Run("real process", func(t *testing.T) {
		lookPath(t, "printf")
		e, _ := fxExecutor(t)
		var lines []string
		err := e.RunStreaming(exec.Command("printf", "a\\nb\\n"), nil, func(line string) {
			lines = append(lines, line)
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, lines)
	})
}

func TestMissingExecFunc(t *testing.T) {
	e, recorded := fxExecutor(t, WithExecFunc(nil))

	assert.NoError(t, e.RunCommand(exec.Command("cmake"), nil))
	_, _, exitCode, err := e.Run(exec.Command("cmake"))
	assert.NoError(t, err)
	assert.Equal(t, 0, exitCode)
	assert.NoError(t, e.RunStreaming(exec.Command("cmake"), nil, nil))

	assert.Equal(t, 3, recorded.FilterMessage("missing ExecFunc - skipped execution").Len())
}
