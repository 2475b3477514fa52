// Package cli provides command-line interface setup and configuration
// for the kannadacards application. It handles flag parsing, command
// creation and turning flags and config files into provider settings.
package cli
