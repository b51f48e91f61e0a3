package stores

import (
	"fmt"
	"io"
	"strings"

	ini "gopkg.in/ini.v1"
)

var _ Store = (*iniStore)(nil)

// iniStore keeps settings as keys of the unnamed default section.
// INI carries strings only, so every value round-trips through its
// textual form and the setting validators coerce on the way in.
type iniStore struct {
	file *ini.File
}

func newINIStore() *iniStore {
	return &iniStore{ini.Empty()}
}

func (store *iniStore) section() *ini.Section {
	return store.file.Section(ini.DefaultSection)
}

func (store *iniStore) Names() []string {
	names := store.section().KeyStrings()
	sortNames(names)
	return names
}

func (store *iniStore) Has(name string) bool {
	return store.section().HasKey(name)
}

func (store *iniStore) Get(name string) (any, error) {
	if !store.Has(name) {
		return nil, nil
	}
	return store.section().Key(name).String(), nil
}

func (store *iniStore) Set(name string, v any) error {
	w, ok := marshalValue(v)
	if !ok {
		return nil
	}
	var s string
	switch x := w.(type) {
	case string:
		s = x
	case []string:
		s = strings.Join(x, ",")
	case map[string]string, map[string]any:
		// No canonical INI form for nested mappings.
		return nil
	default:
		s = fmt.Sprint(x)
	}
	_, err := store.section().NewKey(name, s)
	return err
}

func (store *iniStore) ReadFrom(r io.Reader) (int64, error) {
	nr := &reader{Reader: r}
	file, err := ini.Load(io.NopCloser(nr))
	if err != nil {
		return nr.n, err
	}
	store.file = file
	return nr.n, nil
}

func (store *iniStore) WriteTo(w io.Writer) (int64, error) {
	return store.file.WriteTo(w)
}
