package config

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint digests the current canonical values in registration
// order. Two fingerprints taken within the same process are equal only
// if no setting changed in between, which makes reload handling cheap:
// compare fingerprints instead of values.
func (c *Config) Fingerprint() uint64 {
	d := xxhash.New()
	for _, def := range Registered() {
		s, ok := c.Settings[def.Name]
		if !ok {
			continue
		}
		fmt.Fprintf(d, "%s=%v\n", def.Name, s.Get())
	}
	return d.Sum64()
}
