package stores_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ridewindx/flybee/config/stores"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestOpenTOML(t *testing.T) {
	path := writeTemp(t, "c.toml", `
workers = 5
bind = "1.2.3.4:81"
daemon = true
raw_env = ["A=1", "B=2"]
`)
	store, err := stores.Open(path)
	require.NoError(t, err)

	require.Equal(t, []string{"bind", "daemon", "raw_env", "workers"}, store.Names())
	require.True(t, store.Has("workers"))
	require.False(t, store.Has("timeout"))

	v, err := store.Get("workers")
	require.NoError(t, err)
	require.EqualValues(t, 5, v)

	v, err = store.Get("bind")
	require.NoError(t, err)
	require.Equal(t, "1.2.3.4:81", v)

	v, err = store.Get("daemon")
	require.NoError(t, err)
	require.Equal(t, true, v)
}

func TestOpenINI(t *testing.T) {
	path := writeTemp(t, "c.ini", "workers = 5\nbind = 1.2.3.4:81\n")
	store, err := stores.Open(path)
	require.NoError(t, err)

	require.Equal(t, []string{"bind", "workers"}, store.Names())

	// INI carries strings only; coercion is the validators' concern.
	v, err := store.Get("workers")
	require.NoError(t, err)
	require.Equal(t, "5", v)

	v, err = store.Get("bind")
	require.NoError(t, err)
	require.Equal(t, "1.2.3.4:81", v)
}

func TestOpenYAML(t *testing.T) {
	path := writeTemp(t, "c.yaml", `
workers: 5
daemon: true
raw_env:
  - A=1
  - B=2
secure_scheme_headers:
  X-FORWARDED-SSL: "on"
`)
	store, err := stores.Open(path)
	require.NoError(t, err)

	v, err := store.Get("workers")
	require.NoError(t, err)
	require.Equal(t, 5, v)

	v, err = store.Get("raw_env")
	require.NoError(t, err)
	require.Equal(t, []any{"A=1", "B=2"}, v)

	// Nested mappings come back string-keyed.
	v, err = store.Get("secure_scheme_headers")
	require.NoError(t, err)
	require.Equal(t, map[string]any{"X-FORWARDED-SSL": "on"}, v)
}

func TestOpenJSON(t *testing.T) {
	path := writeTemp(t, "c.json", `{"workers": 5, "daemon": true}`)
	store, err := stores.Open(path)
	require.NoError(t, err)

	v, err := store.Get("workers")
	require.NoError(t, err)
	require.Equal(t, float64(5), v)

	v, err = store.Get("daemon")
	require.NoError(t, err)
	require.Equal(t, true, v)
}

func TestOpenUnsupported(t *testing.T) {
	_, err := stores.Open("flybee.properties")
	require.Error(t, err)
	_, err = stores.Create("flybee")
	require.Error(t, err)
}

func TestOpenMissing(t *testing.T) {
	_, err := stores.Open(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestCreateWrite(t *testing.T) {
	for _, name := range []string{"c.toml", "c.ini", "c.yaml", "c.json"} {
		store, err := stores.Create(name)
		require.NoError(t, err, name)

		require.NoError(t, store.Set("workers", 5), name)
		require.NoError(t, store.Set("proc_name", "bee"), name)
		// Values with no serialized form are silently left out.
		require.NoError(t, store.Set("post_request", func() {}), name)
		require.NoError(t, store.Set("pidfile", nil), name)

		buf := new(bytes.Buffer)
		_, err = store.WriteTo(buf)
		require.NoError(t, err, name)

		fresh, err := stores.Create(name)
		require.NoError(t, err, name)
		_, err = fresh.ReadFrom(buf)
		require.NoError(t, err, name)

		require.True(t, fresh.Has("workers"), name)
		require.True(t, fresh.Has("proc_name"), name)
		require.False(t, fresh.Has("post_request"), name)
		require.False(t, fresh.Has("pidfile"), name)
	}
}
