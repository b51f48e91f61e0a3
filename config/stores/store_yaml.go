package stores

import (
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v2"
)

var _ Store = (*yamlStore)(nil)

// yamlStore keeps settings as a single YAML mapping.
type yamlStore struct {
	data map[string]any
}

func newYAMLStore() *yamlStore {
	return &yamlStore{make(map[string]any)}
}

func (store *yamlStore) Names() []string {
	names := make([]string, 0, len(store.data))
	for name := range store.data {
		names = append(names, name)
	}
	sortNames(names)
	return names
}

func (store *yamlStore) Has(name string) bool {
	_, ok := store.data[name]
	return ok
}

func (store *yamlStore) Get(name string) (any, error) {
	return store.data[name], nil
}

func (store *yamlStore) Set(name string, v any) error {
	w, ok := marshalValue(v)
	if !ok {
		return nil
	}
	store.data[name] = w
	return nil
}

func (store *yamlStore) ReadFrom(r io.Reader) (int64, error) {
	nr := &reader{Reader: r}
	data, err := io.ReadAll(nr)
	if err != nil {
		return nr.n, err
	}
	raw := make(map[string]any)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nr.n, err
	}
	for name, v := range raw {
		raw[name] = cleanYAML(v)
	}
	store.data = raw
	return nr.n, nil
}

func (store *yamlStore) WriteTo(w io.Writer) (int64, error) {
	data, err := yaml.Marshal(store.data)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// cleanYAML rewrites the interface-keyed maps produced by the decoder
// into string-keyed ones, recursively.
func cleanYAML(v any) any {
	switch w := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(w))
		for k, el := range w {
			m[fmt.Sprint(k)] = cleanYAML(el)
		}
		return m
	case []any:
		for i, el := range w {
			w[i] = cleanYAML(el)
		}
	}
	return v
}
