package config

func init() {
	registerSettings()
}

// registerSettings declares every built-in setting. Declaration order is
// the order settings appear in generated help.
func registerSettings() {
	Register(&Definition{
		Name:      "config",
		Section:   "Config File",
		CLI:       []string{"-c", "--config"},
		Validator: ValidateFile,
		Metavar:   "FILE",
		Desc: `
	The path to a flybee config file.

	Supported formats are TOML, INI, YAML and JSON, selected by the
	file extension. Values from the file are overridden by environment
	variables and command line flags.`,
	})

	Register(&Definition{
		Name:      "bind",
		Section:   "Server Socket",
		CLI:       []string{"-b", "--bind"},
		Validator: ValidateHostPort,
		Metavar:   "HOST:PORT",
		Default:   "127.0.0.1:8000",
		Desc: `
	The socket to bind.

	A string of the form HOST:PORT. An IP is a valid HOST.`,
	})

	Register(&Definition{
		Name:      "backlog",
		Section:   "Server Socket",
		CLI:       []string{"--backlog"},
		Validator: ValidatePositiveInt,
		Metavar:   "INT",
		Default:   2048,
		Desc: `
	The maximum number of pending connections.

	This refers to the number of clients that can be waiting to be
	served. Exceeding this number results in the client getting an
	error when attempting to connect. It should only affect servers
	under significant load. Must be a positive integer. Generally set
	in the 64-2048 range.`,
	})

	Register(&Definition{
		Name:      "workers",
		Section:   "Worker Processes",
		CLI:       []string{"-w", "--workers"},
		Validator: ValidatePositiveInt,
		Metavar:   "INT",
		Default:   1,
		Desc: `
	The number of worker processes that the arbiter should keep alive
	for handling requests.

	A positive integer generally in the 2-4 x $(NUM_CORES) range.`,
	})

	Register(&Definition{
		Name:      "worker_class",
		Section:   "Worker Processes",
		CLI:       []string{"-k", "--worker-class"},
		Validator: ValidateClass,
		Metavar:   "STRING",
		Default:   "flybee.workers.SyncWorker",
		Desc: `
	The type of workers to use.

	Either the dotted path of a registered worker class, a zero
	argument factory returning one, or the class itself.`,
	})

	Register(&Definition{
		Name:      "timeout",
		Section:   "Worker Processes",
		CLI:       []string{"-t", "--timeout"},
		Validator: ValidatePositiveInt,
		Metavar:   "INT",
		Default:   30,
		Desc: `
	Workers silent for more than this many seconds are killed and
	restarted.`,
	})

	Register(&Definition{
		Name:      "graceful_timeout",
		Section:   "Worker Processes",
		CLI:       []string{"--graceful-timeout"},
		Validator: ValidatePositiveInt,
		Metavar:   "INT",
		Default:   30,
		Desc: `
	Timeout for graceful workers restart.

	After receiving a restart signal, workers have this much time to
	finish serving requests. Workers still alive after the timeout
	(starting from the receipt of the restart signal) are force
	killed.`,
	})

	Register(&Definition{
		Name:      "daemon",
		Section:   "Server Mechanics",
		CLI:       []string{"-D", "--daemon"},
		Validator: ValidateBool,
		Action:    "store_true",
		Default:   false,
		Desc: `
	Daemonize the flybee process.

	Detaches the server from the controlling terminal and enters the
	background.`,
	})

	Register(&Definition{
		Name:      "raw_env",
		Section:   "Server Mechanics",
		CLI:       []string{"-e", "--env"},
		Validator: ValidateStringList,
		Action:    "append",
		Metavar:   "ENV",
		Default:   []string{},
		Desc: `
	Set environment variables in the execution environment.

	Should be a list of strings in the KEY=value form.`,
	})

	Register(&Definition{
		Name:      "pidfile",
		Section:   "Server Mechanics",
		CLI:       []string{"-p", "--pid"},
		Validator: ValidateString,
		Metavar:   "FILE",
		Desc: `
	A filename to use for the PID file.

	If not set, no PID file is written.`,
	})

	Register(&Definition{
		Name:      "umask",
		Section:   "Server Mechanics",
		CLI:       []string{"-m", "--umask"},
		Validator: ValidatePositiveInt,
		Metavar:   "INT",
		Default:   0,
		Desc: `
	A bit mask for the file mode on files written by flybee.

	Note that this affects unix socket permissions. A value of 0 means
	no restriction on first use. Octal string values such as "0o022"
	are accepted.`,
	})

	Register(&Definition{
		Name:      "user",
		Section:   "Server Mechanics",
		CLI:       []string{"-u", "--user"},
		Validator: ValidateUser,
		Metavar:   "USER",
		Desc: `
	Switch worker processes to run as this user.

	A valid user id (as an integer) or the name of a user that can be
	retrieved from the system user database. When unset the worker
	keeps the current effective user.`,
	})

	Register(&Definition{
		Name:      "group",
		Section:   "Server Mechanics",
		CLI:       []string{"-g", "--group"},
		Validator: ValidateGroup,
		Metavar:   "GROUP",
		Desc: `
	Switch worker processes to run as this group.

	A valid group id (as an integer) or the name of a group that can
	be retrieved from the system group database. When unset the worker
	keeps the current effective group.`,
	})

	Register(&Definition{
		Name:      "chdir",
		Section:   "Server Mechanics",
		CLI:       []string{"--chdir"},
		Validator: ValidateChdir,
		Metavar:   "DIR",
		Desc: `
	Change the working directory to the specified path before loading
	the application. The directory must exist.`,
	})

	Register(&Definition{
		Name:      "secure_scheme_headers",
		Section:   "Security",
		Validator: ValidateDict,
		Default: map[string]string{
			"X-FORWARDED-PROTOCOL": "ssl",
			"X-FORWARDED-PROTO":    "https",
			"X-FORWARDED-SSL":      "on",
		},
		Desc: `
	A mapping of headers and values that indicate a request is already
	handled through SSL by a front-end proxy.`,
	})

	Register(&Definition{
		Name:      "proc_name",
		Section:   "Process Naming",
		CLI:       []string{"-n", "--name"},
		Validator: ValidateString,
		Metavar:   "STRING",
		Desc: `
	A base to use with setproctitle for process naming.

	If not set, the default process naming applies.`,
	})

	Register(&Definition{
		Name:      "loglevel",
		Section:   "Logging",
		CLI:       []string{"--log-level"},
		Validator: ValidateLogLevel,
		Metavar:   "LEVEL",
		Default:   "info",
		Desc: `
	The granularity of log output.

	Valid level names are: debug, info, warn, error, fatal.`,
	})

	Register(&Definition{
		Name:      "logfile",
		Section:   "Logging",
		CLI:       []string{"--log-file"},
		Validator: ValidateString,
		Metavar:   "FILE",
		Desc: `
	The file to write log output to.

	If not set, logs go to stderr. The file is rotated once it grows
	beyond log_max_size.`,
	})

	Register(&Definition{
		Name:      "log_max_size",
		Section:   "Logging",
		CLI:       []string{"--log-max-size"},
		Validator: ValidateBytesSize,
		Metavar:   "SIZE",
		Default:   "100MB",
		Desc: `
	The size at which the log file is rotated.

	Accepts human-readable sizes such as "10MB" or "1GiB". Only
	meaningful together with logfile.`,
	})

	Register(&Definition{
		Name:      "log_max_backups",
		Section:   "Logging",
		CLI:       []string{"--log-max-backups"},
		Validator: ValidatePositiveInt,
		Metavar:   "INT",
		Default:   3,
		Desc: `
	The number of rotated log files to retain.`,
	})

	Register(&Definition{
		Name:      "post_request",
		Section:   "Server Hooks",
		Validator: ValidatePostRequest,
		Default:   DefaultPostRequest,
		Desc: `
	Called after a worker processes a request.

	The callable receives the worker, the request, the request
	environment and the response. Hooks taking only the first three or
	the first two arguments are accepted for backwards compatibility.`,
	})
}
