// Package logging provides structured diagnostic logging for the hub
// client and the isyctl CLI.
//
// It wraps log/slog: a text handler for interactive use, a JSON handler
// for scripting, level filtering, and default service/version fields on
// every entry. Logs go to stderr by default so that isyctl's stdout stays
// clean for piped node and program listings.
//
// The library packages (isy, entity) log through their own small Logger
// interfaces; a *logging.Logger satisfies them directly:
//
//	log := logging.New(cfg.Logging, version)
//	ctrl := isy.New(host, user, pass, isy.WithLogger(log))
//
// Never log the hub password or basic-auth credentials.
package logging
