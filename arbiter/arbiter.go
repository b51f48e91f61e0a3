// Package arbiter will maintain the worker processes alive, launching,
// reloading or killing them as needed. Only the configuration wiring
// exists so far.
package arbiter

import "github.com/ridewindx/flybee/config"

// Arbiter supervises the worker processes of an application.
type Arbiter struct {
	App  any
	Conf *config.Config
}

// New returns an arbiter for the given application. A nil conf gets a
// fresh default configuration.
func New(app any, conf *config.Config) (*Arbiter, error) {
	if conf == nil {
		var err error
		conf, err = config.New()
		if err != nil {
			return nil, err
		}
	}
	return &Arbiter{App: app, Conf: conf}, nil
}
