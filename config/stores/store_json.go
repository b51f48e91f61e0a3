package stores

import (
	"encoding/json"
	"io"
)

var _ Store = (*jsonStore)(nil)

// jsonStore keeps settings as a single JSON object.
type jsonStore struct {
	data map[string]any
}

func newJSONStore() *jsonStore {
	return &jsonStore{make(map[string]any)}
}

func (store *jsonStore) Names() []string {
	names := make([]string, 0, len(store.data))
	for name := range store.data {
		names = append(names, name)
	}
	sortNames(names)
	return names
}

func (store *jsonStore) Has(name string) bool {
	_, ok := store.data[name]
	return ok
}

func (store *jsonStore) Get(name string) (any, error) {
	return store.data[name], nil
}

func (store *jsonStore) Set(name string, v any) error {
	w, ok := marshalValue(v)
	if !ok {
		return nil
	}
	store.data[name] = w
	return nil
}

func (store *jsonStore) ReadFrom(r io.Reader) (int64, error) {
	nr := &reader{Reader: r}
	dec := json.NewDecoder(nr)
	err := dec.Decode(&store.data)
	return nr.n, err
}

func (store *jsonStore) WriteTo(w io.Writer) (int64, error) {
	nw := &writer{Writer: w}
	enc := json.NewEncoder(nw)
	enc.SetIndent("", "  ")
	err := enc.Encode(store.data)
	return nw.n, err
}
