package vfs

import (
	"strconv"
	"sync"

	"github.com/jmgilman/vfs/fs/core"
)

// FileStatus is whether a file exists.
type FileStatus uint8

const (
	// Exists means the file exists.
	Exists FileStatus = iota + 1
	// Deleted means the file was deleted, never existed or isn't a regular file.
	// Handles are never removed from a Vfs; deletion is this status.
	Deleted
)

// String returns "exists" or "deleted".
func (s FileStatus) String() string {
	switch s {
	case Exists:
		return "exists"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// vendoredPermissions are the permission bits of every vendored file.
const vendoredPermissions = 0o444

// File is a handle to a resolved path. The zero File is invalid.
//
// The high 32 bits identify the lineage that issued the handle and the low
// 32 bits its slot. A handle is only valid with a Vfs of the same lineage.
//
// Accessors read the handle's current state from db.Vfs() and report the
// read to db.Tracker().
type File uint64

func newFile(lineage, id uint32) File {
	return File(uint64(lineage)<<32 | uint64(id))
}

func (f File) lineage() uint32 { return uint32(f >> 32) }
func (f File) id() uint32      { return uint32(f) }

// Path returns the path the handle was resolved for.
func (f File) Path(db Db) Path {
	return db.Vfs().record(f).path
}

// Permissions returns the permission bits. ok is false when the platform
// has no permission bits or the file is deleted.
func (f File) Permissions(db Db) (perm uint32, ok bool) {
	db.Tracker().RecordRead(f, FieldPermissions)
	state := db.Vfs().record(f).load()
	return state.permissions, state.hasPermissions
}

// Revision returns the file's revision. A file changed iff its revisions
// compare unequal.
func (f File) Revision(db Db) core.Revision {
	db.Tracker().RecordRead(f, FieldRevision)
	return db.Vfs().record(f).load().revision
}

// Status returns whether the file exists.
func (f File) Status(db Db) FileStatus {
	db.Tracker().RecordRead(f, FieldStatus)
	return db.Vfs().record(f).load().status
}

// Read returns the file's content.
//
// Reading the same file twice may return different content if it changed
// in between. A file that no longer exists or cannot be read yields an
// empty string; the engine re-runs the reader once the change is applied.
// Callers that need consistent content within one computation must read
// once and keep the string.
func (f File) Read(db Db) string {
	p := f.Path(db)
	if p.IsFileSystem() {
		// Depend on the revision so the reader re-runs when the file changes.
		_ = f.Revision(db)
	}
	return db.Vfs().read(db, p)
}

// String returns the handle's slot, e.g. "File(3)".
func (f File) String() string {
	return "File(" + strconv.FormatUint(uint64(f.id()), 10) + ")"
}

// fileState is the mutable part of a handle.
type fileState struct {
	permissions    uint32
	hasPermissions bool
	revision       core.Revision
	status         FileStatus
}

func deletedState() fileState {
	return fileState{revision: core.ZeroRevision, status: Deleted}
}

// fileRecord is an arena slot. path is immutable; state is guarded by mu.
type fileRecord struct {
	path Path

	mu    sync.RWMutex
	state fileState
}

func (r *fileRecord) load() fileState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// update applies fn to the state under one lock and returns the fields
// that changed.
func (r *fileRecord) update(fn func(*fileState)) []Field {
	r.mu.Lock()
	defer r.mu.Unlock()
	before := r.state
	fn(&r.state)
	return before.diff(r.state)
}

// diff lists the fields that differ between s and other.
func (s fileState) diff(other fileState) []Field {
	var fields []Field
	if s.permissions != other.permissions || s.hasPermissions != other.hasPermissions {
		fields = append(fields, FieldPermissions)
	}
	if s.revision != other.revision {
		fields = append(fields, FieldRevision)
	}
	if s.status != other.status {
		fields = append(fields, FieldStatus)
	}
	return fields
}
