// Package errors provides structured error handling for the vfs module.
//
// This package extends Go's standard error handling with error codes,
// retry classification and context metadata. It maintains full
// compatibility with the standard library errors package (errors.Is,
// errors.As, errors.Unwrap).
//
// Backends use it to describe failures precisely before the vfs package
// absorbs them at the resolution boundary. Conditions the vfs package does
// surface, such as a corrupt vendored bundle or an invalid option, are
// returned as PlatformError values.
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.New(errors.CodeInvalidConfig, "shard count must be a power of two")
//
// Wrapping errors:
//
//	info, err := bfs.Stat(name)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeNotFound, "stat failed")
//	}
//
// Adding context:
//
//	err = errors.WithContext(err, "path", name)
//
// # Error Codes
//
//   - Resource errors: CodeNotFound, CodeConflict
//   - Permission errors: CodeForbidden
//   - Validation errors: CodeInvalidInput, CodeInvalidConfig
//   - System errors: CodeInternal, CodeUnavailable
//   - Generic: CodeUnknown
//
// Each error code has a default classification (retryable or permanent).
// The classification is preserved when wrapping errors.
package errors
