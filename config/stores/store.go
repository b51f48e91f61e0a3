// Package stores implements the config file formats settings can be
// loaded from. Every store presents the same flat view: setting names
// mapped to raw values, with coercion left to the setting validators.
package stores

import (
	"encoding"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
)

// Store gives access to raw setting values in one data format.
type Store interface {
	// Names returns the setting names present in the store.
	Names() []string

	// Has checks the existence of the name.
	Has(name string) bool

	// Get retrieves the raw value for the name.
	Get(name string) (any, error)

	// Set changes the value for the name.
	Set(name string, v any) error

	// Used when deserializing settings.
	io.ReaderFrom

	// Used when serializing settings.
	io.WriterTo
}

// Create returns an empty store for the format matching the file
// extension of path: .toml, .ini/.cfg/.conf, .yaml/.yml or .json.
func Create(path string) (Store, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return newTOMLStore(), nil
	case ".ini", ".cfg", ".conf":
		return newINIStore(), nil
	case ".yaml", ".yml":
		return newYAMLStore(), nil
	case ".json":
		return newJSONStore(), nil
	}
	return nil, fmt.Errorf("unsupported config file format: %s", path)
}

// Open reads the file at path into a store of the matching format.
func Open(path string) (Store, error) {
	store, err := Create(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if _, err := store.ReadFrom(f); err != nil {
		return nil, err
	}
	return store, nil
}

// marshalValue converts a canonical setting value into a form every
// store can serialize. The second result is false for values that do not
// serialize, such as hook functions or unset settings.
func marshalValue(v any) (any, bool) {
	switch w := v.(type) {
	case nil:
		return nil, false
	case string, bool, int, int64, uint, uint64, float64, []string,
		map[string]string, map[string]any:
		return w, true
	case encoding.TextMarshaler:
		text, err := w.MarshalText()
		if err != nil {
			return nil, false
		}
		return string(text), true
	case fmt.Stringer:
		return w.String(), true
	}
	if t := reflect.TypeOf(v); t != nil && t.Kind() == reflect.Func {
		return nil, false
	}
	return fmt.Sprint(v), true
}

// sortNames keeps Names output deterministic across formats.
func sortNames(names []string) {
	sort.Strings(names)
}

// reader counts the bytes read from the wrapped Reader.
type reader struct {
	io.Reader
	n int64
}

func (r *reader) Read(buf []byte) (int, error) {
	n, err := r.Reader.Read(buf)
	r.n += int64(n)
	return n, err
}

// writer counts the bytes written to the wrapped Writer.
type writer struct {
	io.Writer
	n int64
}

func (w *writer) Write(buf []byte) (int, error) {
	n, err := w.Writer.Write(buf)
	w.n += int64(n)
	return n, err
}
