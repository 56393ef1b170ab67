package vfs

import (
	"path"
	"path/filepath"
	"strings"
)

// Source identifies where a path's content comes from.
type Source uint8

const (
	// SourceFileSystem is the real file system backend.
	SourceFileSystem Source = iota + 1
	// SourceVendored is the read-only bundle shipped with the program.
	SourceVendored
)

// String returns "fs" or "vendored".
func (s Source) String() string {
	switch s {
	case SourceFileSystem:
		return "fs"
	case SourceVendored:
		return "vendored"
	default:
		return "unknown"
	}
}

// FileSystemPath is a path on the file system backend.
type FileSystemPath string

// NewFileSystemPath converts p to slash form and cleans it.
func NewFileSystemPath(p string) FileSystemPath {
	return FileSystemPath(path.Clean(filepath.ToSlash(p)))
}

// Path tags p with SourceFileSystem.
func (p FileSystemPath) Path() Path {
	return Path{source: SourceFileSystem, path: string(p)}
}

// VendoredPath is a path inside the vendored bundle. Vendored paths are
// always relative and slash separated.
type VendoredPath string

// NewVendoredPath cleans p and strips any leading slash.
func NewVendoredPath(p string) VendoredPath {
	cleaned := path.Clean("/" + filepath.ToSlash(p))
	return VendoredPath(strings.TrimPrefix(cleaned, "/"))
}

// Path tags p with SourceVendored.
func (p VendoredPath) Path() Path {
	return Path{source: SourceVendored, path: string(p)}
}

// Path is a file system or vendored path. Paths are comparable; the source
// takes part in equality so the same text from two sources never collides.
type Path struct {
	source Source
	path   string
}

// Source returns where the path's content comes from.
func (p Path) Source() Source {
	return p.source
}

// IsFileSystem reports whether p is a file system path.
func (p Path) IsFileSystem() bool {
	return p.source == SourceFileSystem
}

// IsVendored reports whether p is a vendored path.
func (p Path) IsVendored() bool {
	return p.source == SourceVendored
}

// AsFileSystem returns the file system path, if p is one.
func (p Path) AsFileSystem() (FileSystemPath, bool) {
	if p.source != SourceFileSystem {
		return "", false
	}
	return FileSystemPath(p.path), true
}

// AsVendored returns the vendored path, if p is one.
func (p Path) AsVendored() (VendoredPath, bool) {
	if p.source != SourceVendored {
		return "", false
	}
	return VendoredPath(p.path), true
}

// String returns the path prefixed with its source, e.g. "vendored:os.pyi".
func (p Path) String() string {
	return p.source.String() + ":" + p.path
}

// compare orders paths by source, then text.
func (p Path) compare(other Path) int {
	if p.source != other.source {
		if p.source < other.source {
			return -1
		}
		return 1
	}
	return strings.Compare(p.path, other.path)
}

// key returns a string unique to the (source, path) pair.
func (p Path) key() string {
	return string(rune('0'+p.source)) + p.path
}
