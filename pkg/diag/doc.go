// Package diag provides structured generator diagnostics.
//
// Every recoverable condition met while building bindings (an ungrouped
// member, conflicting storage hints, an unknown primitive type, a dropped
// duplicate) is reported as an Event to a Logger. Fatal conditions are
// returned as errors instead and never pass through this package.
//
// # Basic Usage
//
//	// Console output through slog
//	logger := diag.NewSlogAdapter(slog.Default())
//
//	// Machine-readable CBOR log, read back with glad-diag
//	fl, _ := diag.NewFileLogger("gl.dlog")
//
//	// Both, stamped with a run ID
//	logger = diag.WithRunID(diag.NewMultiLogger(logger, fl), uuid.NewString())
//
// Tests use Recorder to assert which diagnostics a run produced.
//
// # File Format
//
// Diagnostic files are a stream of CBOR-encoded events using integer keys.
// The glad-diag CLI provides viewing, filtering, statistics and export.
package diag
