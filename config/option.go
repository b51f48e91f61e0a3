package config

import "io"

// Option is used to customize a Config.
type Option func(*Config) error

// OptionUsage sets the one-line usage string shown before the flag help.
func OptionUsage(usage string) Option {
	return func(c *Config) error {
		c.Usage = usage
		return nil
	}
}

// OptionProg sets the program display name.
//
// If not set, it defaults to the base name of the invoking program.
func OptionProg(prog string) Option {
	return func(c *Config) error {
		c.Prog = prog
		return nil
	}
}

// OptionIgnore excludes the named settings from materialization.
func OptionIgnore(names ...string) Option {
	return func(c *Config) error {
		c.ignore = append(c.ignore, names...)
		return nil
	}
}

// OptionEnvPrefix sets the prefix for environment variable lookups.
//
// If not set, it defaults to "FLYBEE_".
func OptionEnvPrefix(prefix string) Option {
	return func(c *Config) error {
		c.envPrefix = prefix
		return nil
	}
}

// OptionOutput sets the Writer for version and usage output.
//
// If nil, it defaults to os.Stdout.
func OptionOutput(w io.Writer) Option {
	return func(c *Config) error {
		c.out = w
		return nil
	}
}

// OptionNoExit keeps Load from terminating the process when the version
// or the help is requested; Load returns ErrExitRequested instead.
func OptionNoExit() Option {
	return func(c *Config) error {
		c.noExit = true
		return nil
	}
}
