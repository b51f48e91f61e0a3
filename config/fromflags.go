package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// AddOption contributes the definition's command line flag to the given
// flag set. Definitions without CLI spellings are skipped.
//
// The flag-level default is always the zero value, never the
// definition's own default: a parser must not silently override an
// explicitly configured value, so defaulting is left to materialization
// and only changed flags are applied.
func (d *Definition) AddOption(fs *pflag.FlagSet) {
	if len(d.CLI) == 0 {
		return
	}
	long, short := d.FlagNames()
	switch d.Action {
	case "store_true":
		fs.BoolP(long, short, false, d.Short)
	case "append":
		fs.StringArrayP(long, short, nil, d.Short)
	default:
		fs.StringP(long, short, "", d.Short)
	}
	if d.Nargs == "?" && d.Const != nil {
		fs.Lookup(long).NoOptDefVal = fmt.Sprint(d.Const)
	}
}

// FlagNames derives the long and shorthand flag names from the CLI
// spellings. A missing long spelling falls back to the setting name with
// underscores dashed.
func (d *Definition) FlagNames() (long, short string) {
	for _, spelling := range d.CLI {
		name := strings.TrimLeft(spelling, "-")
		if len(name) == 1 && !strings.HasPrefix(spelling, "--") {
			short = name
		} else {
			long = name
		}
	}
	if long == "" {
		long = strings.ReplaceAll(d.Name, "_", "-")
	}
	return long, short
}

// applyFlags runs every changed flag value through its setting.
// Flags parse as strings; the setting validator owns the coercion.
func (c *Config) applyFlags(fs *pflag.FlagSet) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		s, ok := c.byFlag[f.Name]
		if !ok {
			return
		}
		var raw any
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			raw = sv.GetSlice()
		} else {
			raw = f.Value.String()
		}
		if e := s.Set(raw); e != nil {
			err = fmt.Errorf("flag --%s: %w", f.Name, e)
		}
	})
	return err
}
