package config

import "fmt"

// TypeError reports a raw setting value whose fundamental type is wrong
// for the setting (not a string, not a mapping, not callable...).
type TypeError struct {
	Value any
	Want  string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("invalid type %T (%v): want %s", e.Value, e.Value, e.Want)
}

// ValueError reports a raw setting value of the right shape but with
// invalid content (negative count, malformed address, missing path...).
type ValueError struct {
	Value  any
	Reason string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value %v: %s", e.Value, e.Reason)
}
