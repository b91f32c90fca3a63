// Package settings loads the process configuration.
//
// Two required values — the service URL and the service API key — are
// resolved from environment variables, with a local `.env` file as
// fallback for variables absent from the live environment (see
// `settings.go` for the variable names). Construction either yields a
// fully populated, immutable Settings value or fails naming every
// unresolved variable.
package settings
