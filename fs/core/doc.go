// Package core provides the foundational interfaces and types for the
// file system backends consumed by the vfs package.
//
// This package defines the contract a backend must satisfy so that the
// file identity layer can resolve paths without knowing whether they live
// on a local disk or in memory.
//
// # Design Philosophy
//
// The core package follows these principles:
//
//   - Zero dependencies: Only uses Go standard library
//   - Small contract: a backend only answers metadata and content reads
//   - Optional capabilities: Use type assertions for provider-specific features
//
// # Interface Hierarchy
//
// The FileSystem interface is the only required contract:
//
//   - Metadata: file type, permission bits and revision of a path
//   - Read: whole-file content as a string
//
// Optional interfaces for provider-specific capabilities:
//
//   - WriteFS: Write operations (WriteFile, MkdirAll, Remove), used to seed
//     and mutate test backends
//
// # Revisions
//
// A Revision is an opaque change marker. Two metadata reads describe the
// same content iff their revisions compare equal. ZeroRevision marks a file
// that was never read or does not exist.
//
//	md, err := filesystem.Metadata("pkg/mod.py")
//	if err == nil && md.Revision() != previous {
//	    // content changed
//	}
//
// # Provider Implementations
//
// Concrete implementations live in separate packages:
//
//   - github.com/jmgilman/vfs/fs/billy - go-billy-backed providers (local and memory)
package core
