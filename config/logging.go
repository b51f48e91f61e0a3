package config

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// ValidateLogLevel accepts one of the level names understood by the
// logging facility.
func ValidateLogLevel(v any) (any, error) {
	w, err := ValidateString(v)
	if err != nil {
		return nil, err
	}
	s, _ := w.(string)
	if _, err := log.ParseLevel(s); err != nil {
		return nil, &ValueError{v, "not a log level (debug, info, warn, error, fatal)"}
	}
	return s, nil
}

// ApplyLogging builds a logger from the loglevel, logfile, log_max_size
// and log_max_backups settings and installs it as the default logger.
// With no logfile configured, output goes to stderr; otherwise the file
// is size-rotated.
func (c *Config) ApplyLogging() (*log.Logger, error) {
	level, err := log.ParseLevel(c.GetString("loglevel"))
	if err != nil {
		return nil, err
	}

	var out io.Writer = os.Stderr
	if file := c.GetString("logfile"); file != "" && file != "-" {
		maxSize := 1
		if sz, ok := c.Get("log_max_size").(BytesSize); ok && sz>>20 > 0 {
			maxSize = int(sz >> 20)
		}
		out = &lumberjack.Logger{
			Filename:   file,
			MaxSize:    maxSize,
			MaxBackups: c.GetInt("log_max_backups"),
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		Prefix:          c.Prog,
		Level:           level,
		ReportTimestamp: true,
	})
	log.SetDefault(logger)
	return logger, nil
}
