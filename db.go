package vfs

import "github.com/jmgilman/vfs/fs/core"

// Db is the ambient context through which the engine reaches the file
// system backend, the Vfs and its dependency tracker.
type Db interface {
	FileSystem() core.FileSystem
	Vfs() *Vfs
	Tracker() Tracker
}

// Field names a mutable field of a file handle. The path is immutable and
// never tracked.
type Field uint8

const (
	FieldPermissions Field = iota + 1
	FieldRevision
	FieldStatus
)

// String returns the field name.
func (f Field) String() string {
	switch f {
	case FieldPermissions:
		return "permissions"
	case FieldRevision:
		return "revision"
	case FieldStatus:
		return "status"
	default:
		return "unknown"
	}
}

// Tracker connects handle fields to the engine's dependency graph.
//
// RecordRead is called for every field read through a handle accessor.
// Invalidate is called once per actual change applied by the Vfs setters.
// Implementations must be safe for concurrent use.
type Tracker interface {
	RecordRead(file File, field Field)
	Invalidate(file File, field Field)
}

// NopTracker ignores all reads and changes.
type NopTracker struct{}

func (NopTracker) RecordRead(File, Field) {}
func (NopTracker) Invalidate(File, Field) {}
