// Package export writes lessons to disk and renders them as text for the
// command line and the Telegram bot.
package export
