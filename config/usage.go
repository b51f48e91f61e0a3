package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// WriteUsage writes the full settings documentation to the given Writer,
// grouped by section in registration order: flag spellings, defaults and
// the one-line description of every materialized setting.
func (c *Config) WriteUsage(out io.Writer) error {
	if out == nil {
		out = os.Stderr
	}
	if c.Usage != "" {
		if _, err := fmt.Fprintf(out, "%s\n", c.Usage); err != nil {
			return err
		}
	}

	tabw := tabwriter.NewWriter(out, 8, 0, 2, ' ', 0)
	section := ""
	for _, def := range Registered() {
		if _, ok := c.Settings[def.Name]; !ok {
			continue
		}
		if def.Section != section {
			// Flush the previous section before switching writers.
			if err := tabw.Flush(); err != nil {
				return err
			}
			section = def.Section
			if _, err := fmt.Fprintf(out, "\n%s:\n", section); err != nil {
				return err
			}
		}

		flags := strings.Join(def.CLI, ", ")
		if flags != "" && def.Metavar != "" && def.Action != "store_true" {
			flags += " " + def.Metavar
		}
		if flags == "" {
			flags = "(no flag)"
		}
		line := fmt.Sprintf("  %s\t%s\t%s", def.Name, flags, def.Short)
		if def.Default != nil {
			line += fmt.Sprintf(" [%v]", def.Default)
		}
		if _, err := fmt.Fprintln(tabw, line); err != nil {
			return err
		}
	}
	return tabw.Flush()
}
