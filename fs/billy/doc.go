// Package billy provides go-billy-backed implementations of the
// core.FileSystem backend contract.
//
// This package wraps go-billy's osfs (local) and memfs (in-memory)
// implementations, providing a thin adapter layer that answers the
// metadata and content reads the vfs package needs.
//
// Usage:
//
//	// Create local filesystem rooted at "/"
//	fs := billy.NewLocal()
//
//	md, err := fs.Metadata("/src/project/main.py")
//
// # Memory Filesystem
//
// For testing, use the in-memory filesystem. It also implements
// core.WriteFS so files can be created, changed and removed between
// resolutions:
//
//	fs := billy.NewMemory()
//	err := fs.WriteFile("test.py", []byte("print('hi')"), 0755)
//
// # Revisions
//
// LocalFS derives revisions from modification times. MemoryFS derives them
// from an xxhash digest of the content, since memfs does not keep stable
// modification times. In both cases a file's revision changes when its
// content changes.
//
// # Thread Safety
//
// FS instances (LocalFS, MemoryFS) are safe for concurrent use by
// multiple goroutines.
package billy
