package stores

import (
	"io"

	toml "github.com/pelletier/go-toml"
)

var _ Store = (*tomlStore)(nil)

// tomlStore wraps a toml.Tree to implement the Store interface.
type tomlStore struct {
	tree *toml.Tree
}

func newTOMLStore() *tomlStore {
	tree, _ := toml.Load("")
	return &tomlStore{tree}
}

func (store *tomlStore) Names() []string {
	names := store.tree.Keys()
	sortNames(names)
	return names
}

func (store *tomlStore) Has(name string) bool {
	return store.tree.Has(name)
}

func (store *tomlStore) Get(name string) (any, error) {
	v := store.tree.Get(name)
	if tree, ok := v.(*toml.Tree); ok {
		return tree.ToMap(), nil
	}
	return v, nil
}

func (store *tomlStore) Set(name string, v any) error {
	w, ok := marshalValue(v)
	if !ok {
		return nil
	}
	// The tree encoder only understands interface slices and subtrees.
	switch x := w.(type) {
	case []string:
		items := make([]any, len(x))
		for i, s := range x {
			items[i] = s
		}
		w = items
	case map[string]string:
		m := make(map[string]any, len(x))
		for k, s := range x {
			m[k] = s
		}
		tree, err := toml.TreeFromMap(m)
		if err != nil {
			return err
		}
		w = tree
	case map[string]any:
		tree, err := toml.TreeFromMap(x)
		if err != nil {
			return err
		}
		w = tree
	}
	store.tree.Set(name, w)
	return nil
}

func (store *tomlStore) ReadFrom(r io.Reader) (int64, error) {
	nr := &reader{Reader: r}
	tree, err := toml.LoadReader(nr)
	if err != nil {
		return nr.n, err
	}
	store.tree = tree
	return nr.n, nil
}

func (store *tomlStore) WriteTo(w io.Writer) (int64, error) {
	return store.tree.WriteTo(w)
}
