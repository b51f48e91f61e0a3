package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"

	"github.com/ridewindx/flybee/config"
)

func newTestConfig(t *testing.T, opts ...config.Option) (*config.Config, *bytes.Buffer) {
	t.Helper()
	out := new(bytes.Buffer)
	opts = append([]config.Option{
		config.OptionProg("flybee"),
		config.OptionNoExit(),
		config.OptionOutput(out),
	}, opts...)
	c, err := config.New(opts...)
	require.NoError(t, err)
	return c, out
}

func TestNewDefaults(t *testing.T) {
	c, _ := newTestConfig(t)
	require.Equal(t, "flybee", c.Prog)
	require.Equal(t, 1, c.GetInt("workers"))
	require.Equal(t, config.HostPort{Host: "127.0.0.1", Port: 8000}, c.Get("bind"))
	require.False(t, c.GetBool("daemon"))
	require.Equal(t, []string{}, c.GetStringList("raw_env"))
	require.Nil(t, c.Get("no_such_setting"))
}

func TestNewIgnore(t *testing.T) {
	c, _ := newTestConfig(t, config.OptionIgnore("daemon"))
	require.NotContains(t, c.Settings, "daemon")
	require.Contains(t, c.Settings, "workers")
}

func TestLoadFlags(t *testing.T) {
	c, _ := newTestConfig(t)
	err := c.Load([]string{
		"-w", "4",
		"--bind", "0.0.0.0:9000",
		"-D",
		"--env", "A=1", "--env", "B=2",
		"--timeout", "60",
		"extra", "args",
	})
	require.NoError(t, err)

	require.Equal(t, 4, c.GetInt("workers"))
	require.Equal(t, config.HostPort{Host: "0.0.0.0", Port: 9000}, c.Get("bind"))
	require.True(t, c.GetBool("daemon"))
	require.Equal(t, []string{"A=1", "B=2"}, c.GetStringList("raw_env"))
	require.Equal(t, 60, c.GetInt("timeout"))
	require.Equal(t, []string{"extra", "args"}, c.Args())

	// Untouched settings keep their defaults.
	require.Equal(t, 2048, c.GetInt("backlog"))
}

func TestLoadFlagInvalid(t *testing.T) {
	c, _ := newTestConfig(t)
	err := c.Load([]string{"-w", "-3"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "workers")
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("FLYBEE_WORKERS", "7")
	t.Setenv("FLYBEE_LOGLEVEL", "debug")

	c, _ := newTestConfig(t)
	require.NoError(t, c.Load(nil))
	require.Equal(t, 7, c.GetInt("workers"))
	require.Equal(t, "debug", c.GetString("loglevel"))
}

func TestLoadEnvPrefix(t *testing.T) {
	t.Setenv("BEE_WORKERS", "5")

	c, _ := newTestConfig(t, config.OptionEnvPrefix("BEE_"))
	require.NoError(t, c.Load(nil))
	require.Equal(t, 5, c.GetInt("workers"))
}

func TestLoadEnvInvalid(t *testing.T) {
	t.Setenv("FLYBEE_WORKERS", "minus one")

	c, _ := newTestConfig(t)
	err := c.Load(nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "FLYBEE_WORKERS")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flybee.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
workers = 5
bind = "1.2.3.4:81"
daemon = true
raw_env = ["A=1", "B=2"]
loglevel = "warn"
`), 0o600))

	c, _ := newTestConfig(t)
	require.NoError(t, c.Load([]string{"-c", path}))

	require.Equal(t, path, c.GetString("config"))
	require.Equal(t, 5, c.GetInt("workers"))
	require.Equal(t, config.HostPort{Host: "1.2.3.4", Port: 81}, c.Get("bind"))
	require.True(t, c.GetBool("daemon"))
	require.Equal(t, []string{"A=1", "B=2"}, c.GetStringList("raw_env"))
	require.Equal(t, "warn", c.GetString("loglevel"))
}

func TestLoadFileFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flybee.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 3\n"), 0o600))
	t.Setenv("FLYBEE_CONFIG", path)

	c, _ := newTestConfig(t)
	require.NoError(t, c.Load(nil))
	require.Equal(t, 3, c.GetInt("workers"))
}

func TestLoadPriority(t *testing.T) {
	// Flags beat the environment, the environment beats the file.
	path := filepath.Join(t.TempDir(), "flybee.toml")
	require.NoError(t, os.WriteFile(path, []byte("workers = 5\ntimeout = 90\n"), 0o600))
	t.Setenv("FLYBEE_WORKERS", "7")

	c, _ := newTestConfig(t)
	require.NoError(t, c.Load([]string{"-c", path, "-w", "2"}))

	require.Equal(t, 2, c.GetInt("workers"))
	require.Equal(t, 90, c.GetInt("timeout"))
}

func TestLoadMissingFile(t *testing.T) {
	c, _ := newTestConfig(t)
	err := c.Load([]string{"-c", "/no/such/flybee.toml"})
	require.Error(t, err)
}

func TestLoadVersion(t *testing.T) {
	c, out := newTestConfig(t)
	err := c.Load([]string{"--version"})
	require.ErrorIs(t, err, config.ErrExitRequested)
	require.Equal(t, "flybee (version 0.4.0)\n", out.String())
}

func TestParser(t *testing.T) {
	c, _ := newTestConfig(t, config.OptionUsage("flybee [OPTIONS] [APP_MODULE]"))
	fs := c.Parser()

	// The bare parser knows only the version flag; settings are
	// attached by collaborators through AddOption.
	require.NotNil(t, fs.Lookup("version"))
	require.Nil(t, fs.Lookup("workers"))
}

func TestSetUnknown(t *testing.T) {
	c, _ := newTestConfig(t)
	err := c.Set("no_such_setting", 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown setting")
}

func TestFingerprint(t *testing.T) {
	c, _ := newTestConfig(t)
	before := c.Fingerprint()
	require.Equal(t, before, c.Fingerprint())

	require.NoError(t, c.Set("workers", 8))
	after := c.Fingerprint()
	require.NotEqual(t, before, after)

	require.NoError(t, c.Set("workers", 1))
	require.Equal(t, before, c.Fingerprint())
}

func TestDumpRoundTrip(t *testing.T) {
	for _, ext := range []string{".toml", ".yaml", ".json"} {
		path := filepath.Join(t.TempDir(), "flybee"+ext)

		c, _ := newTestConfig(t)
		require.NoError(t, c.Set("workers", 6))
		require.NoError(t, c.Set("bind", "0.0.0.0:9999"))
		require.NoError(t, c.Dump(path))

		loaded, _ := newTestConfig(t)
		require.NoError(t, loaded.Load([]string{"-c", path}), ext)

		require.Equal(t, 6, loaded.GetInt("workers"), ext)
		require.Equal(t, config.HostPort{Host: "0.0.0.0", Port: 9999}, loaded.Get("bind"), ext)
		require.Equal(t, c.Get("log_max_size"), loaded.Get("log_max_size"), ext)

		// Decoders hand mappings back string-keyed but untyped.
		headers := c.Get("secure_scheme_headers").(map[string]string)
		decoded, ok := loaded.Get("secure_scheme_headers").(map[string]any)
		require.True(t, ok, ext)
		require.Len(t, decoded, len(headers), ext)
		for k, v := range headers {
			require.Equal(t, v, decoded[k], "%s: header %s", ext, k)
		}

		for _, diff := range pretty.Diff(c.GetStringList("raw_env"), loaded.GetStringList("raw_env")) {
			t.Errorf("%s: raw_env: %s", ext, diff)
		}
	}
}

func TestWriteUsage(t *testing.T) {
	c, _ := newTestConfig(t, config.OptionUsage("flybee [OPTIONS] [APP_MODULE]"))
	buf := new(bytes.Buffer)
	require.NoError(t, c.WriteUsage(buf))

	usage := buf.String()
	require.Contains(t, usage, "flybee [OPTIONS] [APP_MODULE]")
	require.Contains(t, usage, "Server Socket:")
	require.Contains(t, usage, "Worker Processes:")
	require.Contains(t, usage, "-w, --workers INT")
	require.Contains(t, usage, "The number of worker processes")

	// Sections appear in registration order.
	require.Less(t,
		strings.Index(usage, "Server Socket:"),
		strings.Index(usage, "Logging:"))
}

func TestApplyLogging(t *testing.T) {
	file := filepath.Join(t.TempDir(), "flybee.log")

	c, _ := newTestConfig(t)
	require.NoError(t, c.Set("loglevel", "debug"))
	require.NoError(t, c.Set("logfile", file))

	logger, err := c.ApplyLogging()
	require.NoError(t, err)
	logger.Info("hello")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Contains(t, string(data), "hello")
}
