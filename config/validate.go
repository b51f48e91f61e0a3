package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/ridewindx/flybee/plugin"
)

// A Validator coerces a raw setting value into its canonical form.
//
// Raw values come from the command line, the environment, a config file
// or straight Go code, so each validator accepts several input shapes and
// produces a single canonical output type. A validator never recovers
// from its own failure: it either returns the canonical value or an error
// identifying the offending input (*TypeError for a wrong shape,
// *ValueError for wrong content).
type Validator func(v any) (any, error)

// ValidateBool accepts a native bool, the integers 0 and 1, and the
// case-insensitive strings "true" and "false".
func ValidateBool(v any) (any, error) {
	switch w := v.(type) {
	case bool:
		return w, nil
	case int:
		if w == 0 || w == 1 {
			return w == 1, nil
		}
	case int64:
		if w == 0 || w == 1 {
			return w == 1, nil
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(w)) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, &ValueError{v, "not a boolean"}
	}
	return nil, &TypeError{v, "boolean"}
}

// ValidateDict accepts a string-keyed mapping and returns it unchanged.
func ValidateDict(v any) (any, error) {
	switch w := v.(type) {
	case map[string]string:
		return w, nil
	case map[string]any:
		return w, nil
	}
	return nil, &TypeError{v, "mapping"}
}

// ValidatePositiveInt accepts an integer or a string parseable as one.
// Strings are parsed with automatic base detection, so "0x1f", "0o644"
// and "0b101" all work. The canonical form is int.
func ValidatePositiveInt(v any) (any, error) {
	var n int
	switch w := v.(type) {
	case int:
		n = w
	case int64:
		n = int(w)
	case uint:
		n = int(w)
	case uint64:
		n = int(w)
	case float64:
		// JSON decodes every number as float64.
		n = int(w)
		if float64(n) != w {
			return nil, &ValueError{v, "not an integer"}
		}
	case string:
		m, err := strconv.ParseInt(strings.TrimSpace(w), 0, 64)
		if err != nil {
			return nil, &ValueError{v, "not an integer"}
		}
		n = int(m)
	default:
		return nil, &TypeError{v, "integer"}
	}
	if n < 0 {
		return nil, &ValueError{v, "not a positive integer"}
	}
	return n, nil
}

// ValidateString passes nil through and trims surrounding whitespace from
// strings. Any other input fails.
func ValidateString(v any) (any, error) {
	switch w := v.(type) {
	case nil:
		return nil, nil
	case string:
		return strings.TrimSpace(w), nil
	}
	return nil, &TypeError{v, "string"}
}

// ValidateStringList turns its input into a list of trimmed strings.
// A single string is split on commas with empty pieces dropped; slices
// have each element validated as a string. Empty input yields an empty
// list.
func ValidateStringList(v any) (any, error) {
	switch w := v.(type) {
	case nil:
		return []string{}, nil
	case string:
		var items []string
		for _, s := range strings.Split(w, ",") {
			if s = strings.TrimSpace(s); s != "" {
				items = append(items, s)
			}
		}
		if items == nil {
			items = []string{}
		}
		return items, nil
	case []string:
		items := make([]string, 0, len(w))
		for _, s := range w {
			items = append(items, strings.TrimSpace(s))
		}
		return items, nil
	case []any:
		items := make([]string, 0, len(w))
		for _, el := range w {
			s, err := ValidateString(el)
			if err != nil {
				return nil, err
			}
			if s != nil {
				items = append(items, s.(string))
			}
		}
		return items, nil
	}
	return nil, &TypeError{v, "string list"}
}

// ValidateClass resolves a worker class reference. A zero-argument
// factory is invoked and its result used; a reflect.Type passes through;
// anything else is kept as a string key resolved by the consumer.
func ValidateClass(v any) (any, error) {
	if fn, ok := v.(func() any); ok {
		v = fn()
	}
	if _, ok := v.(reflect.Type); ok {
		return v, nil
	}
	return ValidateString(v)
}

// ValidateCallable returns a validator resolving its input to a function.
//
// A string input is treated as a dotted object path ("module.object") and
// looked up in the plugin registry. The result must be a function; when
// arity is not negative its number of parameters must match exactly.
func ValidateCallable(arity int) Validator {
	return func(v any) (any, error) {
		if s, ok := v.(string); ok {
			i := strings.LastIndex(s, ".")
			if i <= 0 || i == len(s)-1 {
				return nil, &ValueError{s, "not an object path (format: module[.submodules...].object)"}
			}
			obj, ok := plugin.Lookup(s)
			if !ok {
				return nil, &ValueError{s, fmt.Sprintf("cannot load %q from %q", s[i+1:], s[:i])}
			}
			v = obj
		}
		t := reflect.TypeOf(v)
		if t == nil || t.Kind() != reflect.Func {
			return nil, &TypeError{v, "callable"}
		}
		if arity >= 0 && t.NumIn() != arity {
			return nil, &TypeError{v, fmt.Sprintf("callable with %d parameters", arity)}
		}
		return v, nil
	}
}

// ValidateUser resolves a system user to its numeric id. nil maps to the
// current effective user; integers and digit strings pass through as ids;
// any other string is looked up in the user database.
func ValidateUser(v any) (any, error) {
	return validateIdentity(v, "user", os.Geteuid, func(name string) (string, error) {
		u, err := user.Lookup(name)
		if err != nil {
			return "", err
		}
		return u.Uid, nil
	})
}

// ValidateGroup resolves a system group to its numeric id, like
// ValidateUser does for users.
func ValidateGroup(v any) (any, error) {
	return validateIdentity(v, "group", os.Getegid, func(name string) (string, error) {
		g, err := user.LookupGroup(name)
		if err != nil {
			return "", err
		}
		return g.Gid, nil
	})
}

func validateIdentity(v any, kind string, current func() int, lookup func(string) (string, error)) (any, error) {
	switch w := v.(type) {
	case nil:
		return current(), nil
	case int:
		return w, nil
	case int64:
		return int(w), nil
	case string:
		w = strings.TrimSpace(w)
		if id, err := strconv.Atoi(w); err == nil {
			return id, nil
		}
		id, err := lookup(w)
		if err != nil {
			return nil, &ValueError{w, "no such " + kind}
		}
		n, err := strconv.Atoi(id)
		if err != nil {
			return nil, &ValueError{w, "no such " + kind}
		}
		return n, nil
	}
	return nil, &TypeError{v, kind + " name or id"}
}

// ValidatePath validates a string as a filesystem path, resolves it to an
// absolute cleaned path relative to the working directory, and requires
// it to exist.
func ValidatePath(v any) (any, error) {
	return validatePath(v, "%q not found")
}

// ValidateChdir is ValidatePath with a chdir-specific failure message.
func ValidateChdir(v any) (any, error) {
	return validatePath(v, "cannot chdir to %q")
}

// ValidateFile is ValidatePath, with nil passing through unchanged.
func ValidateFile(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return validatePath(v, "%q not found")
}

func validatePath(v any, format string) (any, error) {
	w, err := ValidateString(v)
	if err != nil {
		return nil, err
	}
	s, ok := w.(string)
	if !ok {
		return nil, &TypeError{v, "path string"}
	}
	if !filepath.IsAbs(s) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		s = filepath.Join(wd, s)
	}
	s = filepath.Clean(s)
	if _, err := os.Stat(s); err != nil {
		return nil, &ValueError{v, fmt.Sprintf(format, v)}
	}
	return s, nil
}

// ValidateHostPort validates a "host:port" string and returns the pair as
// a HostPort with the port parsed as an integer. nil passes through.
func ValidateHostPort(v any) (any, error) {
	w, err := ValidateString(v)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, nil
	}
	parts := strings.Split(w.(string), ":")
	if len(parts) != 2 {
		return nil, &ValueError{v, "must be of the form hostname:port"}
	}
	port, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, &ValueError{v, "port is not an integer"}
	}
	return HostPort{Host: parts[0], Port: port}, nil
}

// ValidateBytesSize accepts a BytesSize, a non-negative integer byte
// count, or a human-readable size string such as "10MB".
func ValidateBytesSize(v any) (any, error) {
	switch w := v.(type) {
	case BytesSize:
		return w, nil
	case int:
		if w < 0 {
			return nil, &ValueError{v, "negative size"}
		}
		return BytesSize(w), nil
	case int64:
		if w < 0 {
			return nil, &ValueError{v, "negative size"}
		}
		return BytesSize(w), nil
	case uint64:
		return BytesSize(w), nil
	case string:
		var sz BytesSize
		if err := sz.UnmarshalText([]byte(strings.TrimSpace(w))); err != nil {
			return nil, &ValueError{v, "not a size"}
		}
		return sz, nil
	}
	return nil, &TypeError{v, "byte size"}
}
