package core

import (
	"io/fs"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a local filesystem (e.g., disk-backed).
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FileType classifies what a path resolves to.
type FileType int

const (
	// FileTypeFile is a regular file.
	FileTypeFile FileType = iota
	// FileTypeDirectory is a directory.
	FileTypeDirectory
	// FileTypeSymlink is a symbolic link that was not followed.
	FileTypeSymlink
	// FileTypeOther covers devices, sockets, pipes and anything else.
	FileTypeOther
)

// FileTypeOf maps a fs.FileMode onto a FileType.
func FileTypeOf(mode fs.FileMode) FileType {
	switch {
	case mode.IsRegular():
		return FileTypeFile
	case mode.IsDir():
		return FileTypeDirectory
	case mode&fs.ModeSymlink != 0:
		return FileTypeSymlink
	default:
		return FileTypeOther
	}
}

// IsFile reports whether the type is a regular file.
func (t FileType) IsFile() bool { return t == FileTypeFile }

// IsDirectory reports whether the type is a directory.
func (t FileType) IsDirectory() bool { return t == FileTypeDirectory }

// Metadata describes a path at the time it was read from a backend.
type Metadata struct {
	fileType    FileType
	revision    Revision
	permissions uint32
	hasPerms    bool
}

// NewMetadata creates metadata without permission information.
func NewMetadata(fileType FileType, revision Revision) Metadata {
	return Metadata{fileType: fileType, revision: revision}
}

// WithPermissions returns a copy of m carrying the given permission bits.
func (m Metadata) WithPermissions(perm uint32) Metadata {
	m.permissions = perm
	m.hasPerms = true
	return m
}

// FileType returns the type of the path.
func (m Metadata) FileType() FileType { return m.fileType }

// Revision returns the change marker of the path.
func (m Metadata) Revision() Revision { return m.revision }

// Permissions returns the permission bits. ok is false on platforms without
// POSIX permissions.
func (m Metadata) Permissions() (perm uint32, ok bool) {
	return m.permissions, m.hasPerms
}

// FileSystem is the backend contract consumed by the file identity layer.
// Implementations MUST be safe for concurrent use by multiple goroutines.
type FileSystem interface {
	// Metadata returns the metadata of the named path, following symbolic
	// links. If there is an error, it should wrap fs.ErrNotExist or
	// fs.ErrPermission when applicable.
	Metadata(name string) (Metadata, error)

	// Read returns the whole content of the named file.
	// Content is returned as a string; non UTF-8 bytes are preserved as is.
	Read(name string) (string, error)

	// Type returns the underlying filesystem type.
	Type() FSType
}

// WriteFS defines write operations.
//
// Backends that hold mutable state (memory filesystems in particular)
// implement this so tests can create, change and delete files between
// resolutions. Use type assertion to check for support:
//
//	if wfs, ok := filesystem.(core.WriteFS); ok {
//	    err := wfs.WriteFile("a.py", []byte("x = 1"), 0644)
//	}
type WriteFS interface {
	// WriteFile writes data to the named file, creating it and any missing
	// parent directories if necessary. An existing file is truncated.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// MkdirAll creates a directory named path, along with any necessary parents.
	MkdirAll(path string, perm fs.FileMode) error

	// Remove removes the named file or empty directory.
	Remove(name string) error
}
