// Package pkg provides shared utilities for the softuac audio function.
//
// This package contains common functionality used across the device contract
// and the audio class implementation, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error types for transport and stream conditions
//   - Component identifiers for log filtering
//
// The package is designed to have zero external dependencies, relying
// only on the Go standard library.
//
// # Logging
//
// The logging subsystem wraps [log/slog] with USB-specific context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentClass, "audio function built", "interfaces", 3)
//
// # Errors
//
// Errors are defined as sentinel values:
//
//	if errors.Is(err, pkg.ErrStreamNotInitialized) {
//	    // Direction was never configured
//	}
package pkg
