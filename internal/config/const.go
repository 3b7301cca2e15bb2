// Package config implements the functions, types, and interfaces for the module.
package config

// Global constants for the application.
const (
	Application = "oxbmi"
	Description = "Body Mass Index (Oxford 2013) calculator"
	WebSite     = "https://github.com/origadmin/oxbmi"
	UI          = "oxbmi"

	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "OXBMI"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)
