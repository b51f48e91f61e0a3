package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/ridewindx/flybee"
	"github.com/ridewindx/flybee/config/stores"
)

// DefaultEnvPrefix is prepended to upper-cased setting names when looking
// up environment variables.
const DefaultEnvPrefix = "FLYBEE_"

// ErrExitRequested is returned by Load instead of terminating the process
// when the version or the help was requested and OptionNoExit is set.
var ErrExitRequested = errors.New("exit requested")

// Config owns one materialized set of settings and drives loading them
// from the command line, the environment and an optional config file.
type Config struct {
	// Settings maps setting names to their live value holders.
	Settings map[string]*Setting

	// Usage and Prog are the display strings for help output.
	Usage string
	Prog  string

	ignore    []string
	envPrefix string
	out       io.Writer
	noExit    bool

	fs     *pflag.FlagSet
	byFlag map[string]*Setting
	args   []string
}

// New materializes all registered settings into a fresh Config.
func New(opts ...Option) (*Config, error) {
	c := &Config{
		Prog:      filepath.Base(os.Args[0]),
		envPrefix: DefaultEnvPrefix,
		out:       os.Stdout,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	c.Settings = MakeSettings(c.ignore...)
	return c, nil
}

// Parser returns the command line parser for the config: a flag set
// pre-populated with the version flag, parsing leftover positional
// arguments loosely. Individual settings are attached to it with
// Definition.AddOption; Load does so for every materialized setting.
func (c *Config) Parser() *pflag.FlagSet {
	fs := pflag.NewFlagSet(c.Prog, pflag.ContinueOnError)
	fs.SetOutput(c.out)
	fs.BoolP("version", "v", false, "show the "+c.Prog+" version and exit")
	if c.Usage != "" {
		fs.Usage = func() {
			fmt.Fprintf(c.out, "%s\n\nOptions:\n%s", c.Usage, fs.FlagUsages())
		}
	}
	return fs
}

// Load populates the settings from all sources in order of priority:
// command line flags, then environment variables, then the config file,
// over the registered defaults. Nothing lands in a setting without going
// through its validator.
func (c *Config) Load(args []string) error {
	fs := c.Parser()
	c.fs = fs
	c.byFlag = make(map[string]*Setting)
	for _, def := range Registered() {
		s, ok := c.Settings[def.Name]
		if !ok || len(def.CLI) == 0 {
			continue
		}
		def.AddOption(fs)
		long, _ := def.FlagNames()
		c.byFlag[long] = s
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return c.exit()
		}
		return err
	}
	if v, _ := fs.GetBool("version"); v {
		fmt.Fprintf(c.out, "%s (version %s)\n", c.Prog, flybee.Version)
		return c.exit()
	}
	c.args = fs.Args()

	if err := c.loadFile(fs); err != nil {
		return err
	}
	if err := c.loadEnv(); err != nil {
		return err
	}
	return c.applyFlags(fs)
}

func (c *Config) exit() error {
	if c.noExit {
		return ErrExitRequested
	}
	os.Exit(0)
	return nil
}

// Args returns the positional arguments left over by Load.
func (c *Config) Args() []string { return c.args }

// loadFile locates the config file from the -c flag or the environment
// and applies its values. Missing file selection is not an error.
func (c *Config) loadFile(fs *pflag.FlagSet) error {
	s, ok := c.Settings["config"]
	if !ok {
		return nil
	}
	var raw any
	if f := fs.Lookup("config"); f != nil && f.Changed {
		raw = f.Value.String()
	} else if v, ok := os.LookupEnv(c.envName("config")); ok {
		raw = v
	} else {
		return nil
	}
	if err := s.Set(raw); err != nil {
		return err
	}

	path := s.Get().(string)
	store, err := stores.Open(path)
	if err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	log.Debug("loading config file", "path", path)
	for _, name := range store.Names() {
		if name == "config" {
			continue
		}
		setting, ok := c.Settings[name]
		if !ok {
			log.Warn("unknown setting in config file", "path", path, "setting", name)
			continue
		}
		v, err := store.Get(name)
		if err != nil {
			return fmt.Errorf("config file %s: %s: %w", path, name, err)
		}
		if err := setting.Set(v); err != nil {
			return fmt.Errorf("config file %s: %w", path, err)
		}
	}
	return nil
}

// loadEnv applies environment variables named after each setting. A .env
// file in the working directory is honored first, without overriding the
// process environment.
func (c *Config) loadEnv() error {
	_ = godotenv.Load()
	for _, def := range Registered() {
		if def.Name == "config" {
			continue
		}
		s, ok := c.Settings[def.Name]
		if !ok {
			continue
		}
		v, ok := os.LookupEnv(c.envName(def.Name))
		if !ok {
			continue
		}
		if err := s.Set(v); err != nil {
			return fmt.Errorf("env %s: %w", c.envName(def.Name), err)
		}
	}
	return nil
}

func (c *Config) envName(name string) string {
	return c.envPrefix + strings.ToUpper(name)
}

// Get returns the current value of the named setting, or nil when the
// setting is unknown or unset.
func (c *Config) Get(name string) any {
	if s, ok := c.Settings[name]; ok {
		return s.Get()
	}
	return nil
}

// Set validates and stores a raw value for the named setting.
func (c *Config) Set(name string, v any) error {
	s, ok := c.Settings[name]
	if !ok {
		return fmt.Errorf("unknown setting: %s", name)
	}
	return s.Set(v)
}

// GetString returns the named setting as a string, or "" when unset.
func (c *Config) GetString(name string) string {
	if v, ok := c.Get(name).(string); ok {
		return v
	}
	return ""
}

// GetInt returns the named setting as an int, or 0 when unset.
func (c *Config) GetInt(name string) int {
	if v, ok := c.Get(name).(int); ok {
		return v
	}
	return 0
}

// GetBool returns the named setting as a bool, or false when unset.
func (c *Config) GetBool(name string) bool {
	if v, ok := c.Get(name).(bool); ok {
		return v
	}
	return false
}

// GetStringList returns the named setting as a string list.
func (c *Config) GetStringList(name string) []string {
	if v, ok := c.Get(name).([]string); ok {
		return v
	}
	return nil
}
