// Package flybee identifies the flybee server: a pre-fork arbiter that
// keeps worker processes alive. The configuration machinery lives in the
// config package and the process supervision in the arbiter package.
package flybee

const (
	// SoftwareName is the display name of the server.
	SoftwareName = "flybee"

	// Version is the released version string.
	Version = "0.4.0"
)
