// Package config loads fileicons settings from layered sources: embedded
// defaults, a user config file, FILEICONS_ environment variables and
// command line flags, each overriding the one before.
package config
