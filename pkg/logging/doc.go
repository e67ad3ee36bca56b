// Package logging provides slog logger construction with configurable
// level and output format (text or JSON).
package logging
