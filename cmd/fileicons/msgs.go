package main

// Command descriptions
const (
	MsgRootShort = "Resolve file and directory icon classes"
	MsgRootLong  = `fileicons maps file and directory names to icon CSS classes using an
ordered rule database. The first rule whose pattern matches wins.

Names no rule matches get a generic file or directory icon unless
--no-fallback is given.`

	MsgClassShort      = "Print the icon class for each name"
	MsgMatchShort      = "Show the rule matching a key along one dimension"
	MsgMatchLong       = "Dimension is one of: name, path, interpreter, language, scope, signature."
	MsgRulesShort      = "List the rules of the file or directory table"
	MsgSpecialShort    = "Show the binary and executable icons"
	MsgConfigShort     = "Print the effective configuration as TOML"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
)

// Flag descriptions
const (
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Config file (default $XDG_CONFIG_HOME/fileicons/config.toml)"
	MsgFlagFormat     = "Output format: auto, term, text, json or table"
	MsgFlagDatabase   = "Icon database to use instead of the built-in one"
	MsgFlagColorMode  = "Color variant: light, dark or mono"
	MsgFlagDir        = "Classify names as directories"
	MsgFlagNoFallback = "Print nothing for names no rule matches"
	MsgFlagList       = "Print each class on its own line"
	MsgFlagTemplate   = "Print a commented config file template instead"
)

// Errors and output
const (
	MsgErrNoCommand   = "no command specified"
	MsgErrNoMatch     = "no %s rule matches %q"
	MsgErrLoadStyles  = "failed to load styles from %s"
	MsgVersionFormat  = "fileicons version %s\n  commit: %s\n  built:  %s\n"
	MsgCommandStarted = "Command started"
)
