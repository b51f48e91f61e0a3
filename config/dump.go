package config

import (
	"os"

	"github.com/ridewindx/flybee/config/stores"
)

// Dump writes the current canonical values to a config file, with the
// format selected by the file extension. Unset settings and values with
// no serialized form (hook functions) are left out. The result is
// loadable with the config setting.
func (c *Config) Dump(path string) error {
	store, err := stores.Create(path)
	if err != nil {
		return err
	}
	for _, def := range Registered() {
		s, ok := c.Settings[def.Name]
		if !ok || def.Name == "config" {
			continue
		}
		if err := store.Set(def.Name, s.Get()); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := store.WriteTo(f); err != nil {
		return err
	}
	return f.Close()
}
