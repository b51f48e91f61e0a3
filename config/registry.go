package config

import (
	"fmt"
	"strings"
)

// Definition describes one configurable knob: its identity, how it shows
// up on the command line, how raw input is validated, and its
// documentation.
type Definition struct {
	// Name is the unique, stable key of the setting.
	Name string
	// Section groups related settings in generated documentation.
	Section string
	// CLI lists the command line spellings ("-w", "--workers").
	// A setting without spellings has no command line binding.
	CLI []string
	// Validator coerces raw input into the canonical value.
	Validator Validator
	// Metavar names the flag argument in usage output.
	Metavar string
	// Action selects the flag behaviour: "store" (default),
	// "store_true" or "append".
	Action string
	// Nargs and Const are extra command line parsing hints: Nargs "?"
	// with a non-nil Const lets the flag appear without an argument,
	// in which case Const is used as its value.
	Nargs string
	Const any
	// Default is the raw default value, validated at registration time.
	Default any
	// Desc is the full documentation text; Short is its first line.
	// Register derives both from the raw text given in Desc.
	Desc  string
	Short string
	// Order is the registration sequence number. It is assigned by
	// Register and gives deterministic ordering in help output.
	Order int
}

// registry is the process-wide ordered list of setting definitions.
// It is populated during init and read-only afterwards.
var registry []*Definition

// Register appends a definition to the setting registry, assigning its
// order and deriving its documentation strings. A non-nil default is run
// through the validator immediately; an invalid default is a programmer
// error and panics. Register returns its argument for one-line setting
// declarations.
func Register(def *Definition) *Definition {
	def.Order = len(registry)
	def.Desc = dedent(def.Desc)
	if def.Short == "" {
		if i := strings.IndexByte(def.Desc, '\n'); i >= 0 {
			def.Short = def.Desc[:i]
		} else {
			def.Short = def.Desc
		}
	}
	if def.Default != nil && def.Validator != nil {
		if _, err := def.Validator(def.Default); err != nil {
			panic(fmt.Sprintf("config: invalid default for setting %s: %v", def.Name, err))
		}
	}
	registry = append(registry, def)
	return def
}

// Registered returns the definitions in registration order.
func Registered() []*Definition {
	defs := make([]*Definition, len(registry))
	copy(defs, registry)
	return defs
}

// Setting is the live value holder for one definition. Its stored value
// is always either unset (nil) or the canonical result of the
// definition's validator. Setting is not safe for concurrent mutation.
type Setting struct {
	def   *Definition
	value any
}

func newSetting(def *Definition) *Setting {
	s := &Setting{def: def}
	if def.Default != nil {
		// Defaults were checked at registration time.
		if def.Validator != nil {
			s.value, _ = def.Validator(def.Default)
		} else {
			s.value = def.Default
		}
	}
	return s
}

// Definition returns the setting's definition.
func (s *Setting) Definition() *Definition { return s.def }

// Name returns the setting name.
func (s *Setting) Name() string { return s.def.Name }

// Get returns the current canonical value, or nil when unset.
func (s *Setting) Get() any { return s.value }

// Set validates the raw value and stores its canonical form. On failure
// the current value is left untouched.
func (s *Setting) Set(v any) error {
	if s.def.Validator == nil {
		s.value = v
		return nil
	}
	w, err := s.def.Validator(v)
	if err != nil {
		return fmt.Errorf("setting %s: %w", s.def.Name, err)
	}
	s.value = w
	return nil
}

// MakeSettings materializes a fresh value holder for every registered
// definition whose name is not in ignore. Holders are never shared
// between calls.
func MakeSettings(ignore ...string) map[string]*Setting {
	skip := make(map[string]bool, len(ignore))
	for _, name := range ignore {
		skip[name] = true
	}
	settings := make(map[string]*Setting, len(registry))
	for _, def := range registry {
		if !skip[def.Name] {
			settings[def.Name] = newSetting(def)
		}
	}
	return settings
}

// dedent strips the leading whitespace common to all non-blank lines,
// then trims surrounding blank lines. It mirrors how indented raw string
// literals are written in setting declarations.
func dedent(s string) string {
	lines := strings.Split(s, "\n")
	prefix := ""
	first := true
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			prefix, first = indent, false
			continue
		}
		for !strings.HasPrefix(indent, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	if prefix != "" {
		for i, line := range lines {
			lines[i] = strings.TrimPrefix(line, prefix)
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
