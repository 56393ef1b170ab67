// Package vfs tracks the identity and revisions of files read by an
// incremental analysis engine.
//
// A Vfs maps paths from two sources, the file system and a read-only
// vendored bundle shipped with the program, to stable File handles. Each
// distinct path resolves to exactly one handle for the lifetime of a cache
// lineage, no matter how many goroutines resolve it concurrently. Handles
// are small integer ids; their fields live in the Vfs and are read through
// a Db so the engine can record which computations depend on which files.
//
// # Resolution
//
// File never fails. A path that does not exist, cannot be read or is not a
// regular file resolves to a handle with status Deleted, zero revision and
// no permissions. When the file later appears the engine applies the change
// to the same handle (see Touch), so dependent computations observe a
// revision and status change instead of a new identity.
//
// Vendored returns false for paths missing from the bundle; the bundle is
// immutable so absence never needs a handle.
//
//	file := db.Vfs().File(db, vfs.NewFileSystemPath("src/main.py"))
//	if file.Status(db) == vfs.Exists {
//	    source := file.Read(db)
//	    // ...
//	}
//
// # Snapshots
//
// Snapshot returns a view sharing the same identity map and vendored store.
// Each snapshot must be closed. StubVendored replaces the vendored store and
// panics while any other view is open.
package vfs
