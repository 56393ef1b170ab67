package vfs

import (
	"github.com/jmgilman/vfs/errors"
	"github.com/jmgilman/vfs/fs/core"
)

// SetRevision updates the revision of f. Only file system handles can
// change; calling a setter with a vendored handle panics. Dependents are
// invalidated only when the value actually changes; the result reports
// whether it did.
func (v *Vfs) SetRevision(db Db, f File, revision core.Revision) bool {
	return v.apply(db, f, func(s *fileState) {
		s.revision = revision
	})
}

// SetStatus updates the status of f.
func (v *Vfs) SetStatus(db Db, f File, status FileStatus) bool {
	return v.apply(db, f, func(s *fileState) {
		s.status = status
	})
}

// SetPermissions updates the permission bits of f. ok false clears them.
func (v *Vfs) SetPermissions(db Db, f File, perm uint32, ok bool) bool {
	return v.apply(db, f, func(s *fileState) {
		if !ok {
			perm = 0
		}
		s.permissions = perm
		s.hasPermissions = ok
	})
}

// Touch re-reads the metadata of an already resolved file system path and
// applies it to its handle. Creation and deletion show up as status and
// revision changes on the same handle. Paths that were never resolved are
// ignored. Touch reports whether anything changed.
//
// The new status, revision and permissions are published together, so
// readers never see fields from two different metadata reads.
func (v *Vfs) Touch(db Db, path FileSystemPath) bool {
	v.ensureOpen()
	f, ok := v.inner.files.lookup(path.Path())
	if !ok {
		return false
	}

	state := v.inner.fileSystemState(db, path)
	return v.apply(db, f, func(s *fileState) {
		*s = state
	})
}

// apply updates the record of f under its lock, then invalidates each
// changed field once with no lock held.
func (v *Vfs) apply(db Db, f File, fn func(*fileState)) bool {
	v.ensureOpen()
	r := v.record(f)
	if r.path.IsVendored() {
		panic(errors.WithContext(
			errors.New(errors.CodeInvalidInput, "vendored files are immutable"),
			"path", r.path.String(),
		))
	}

	changed := r.update(fn)
	if len(changed) == 0 {
		return false
	}

	for _, field := range changed {
		db.Tracker().Invalidate(f, field)
	}
	v.inner.logger.Debug("applied file change",
		"path", r.path.String(),
		"fields", changed)
	return true
}
