// Package config implements the flybee settings machinery.
//
// Every configurable knob of the server is declared once as a Definition
// and registered into a process-wide ordered registry during init. A
// Config materializes the registry into live, mutable value holders and
// loads them from the command line, the environment and an optional
// config file, in that order of priority, over the declared defaults.
//
// Raw input never reaches a setting directly: each definition carries a
// validator that coerces the raw value into its canonical form or fails
// with an error describing the offending input. The validators are plain
// functions and can be reused for settings declared outside this
// package:
//
//	config.Register(&config.Definition{
//		Name:      "max_requests",
//		Section:   "Worker Processes",
//		CLI:       []string{"--max-requests"},
//		Validator: config.ValidatePositiveInt,
//		Default:   0,
//		Desc:      "The number of requests a worker handles before restarting.",
//	})
//
// Settings referencing code by dotted path ("myapp.hooks.post_request")
// resolve through the plugin package, where the referenced objects must
// have registered themselves.
package config
