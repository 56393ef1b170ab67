package billy

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"

	"github.com/cespare/xxhash/v2"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/vfs/errors"
	"github.com/jmgilman/vfs/fs/core"
)

// LocalFS wraps billy's osfs for local filesystem access.
type LocalFS struct {
	provider
}

// MemoryFS wraps billy's memfs for in-memory filesystem access.
type MemoryFS struct {
	provider
}

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	root string
}

// WithRoot roots a LocalFS at dir instead of "/".
func WithRoot(dir string) Option {
	return func(c *config) {
		c.root = dir
	}
}

// NewLocal creates a go-billy-backed local filesystem.
// The returned filesystem is rooted at the filesystem root ("/") unless
// WithRoot is given.
func NewLocal(opts ...Option) *LocalFS {
	cfg := config{root: "/"}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &LocalFS{
		provider: provider{
			bfs:         osfs.New(cfg.root),
			fsType:      core.FSTypeLocal,
			permissions: runtime.GOOS != "windows",
			revision:    modTimeRevision,
		},
	}
}

// NewMemory creates a go-billy-backed in-memory filesystem.
// The filesystem is initially empty.
func NewMemory(_ ...Option) *MemoryFS {
	return &MemoryFS{
		provider: provider{
			bfs:         memfs.New(),
			fsType:      core.FSTypeMemory,
			permissions: true,
			revision:    contentRevision,
		},
	}
}

// WriteFiles writes each name/content pair with mode 0755, creating parent
// directories as needed. It stops at the first error.
func (mfs *MemoryFS) WriteFiles(files map[string]string) error {
	for name, content := range files {
		if err := mfs.WriteFile(name, []byte(content), 0755); err != nil {
			return err
		}
	}
	return nil
}

// revisionFunc computes the revision of a regular file.
type revisionFunc func(bfs billy.Filesystem, name string, info fs.FileInfo) core.Revision

// provider holds the behavior shared by LocalFS and MemoryFS.
type provider struct {
	bfs         billy.Filesystem
	fsType      core.FSType
	permissions bool
	revision    revisionFunc
}

// Unwrap returns the underlying billy.Filesystem.
func (p *provider) Unwrap() billy.Filesystem {
	return p.bfs
}

// Type returns the underlying filesystem type.
func (p *provider) Type() core.FSType {
	return p.fsType
}

// Metadata returns the metadata of the named path, following symbolic links.
func (p *provider) Metadata(name string) (core.Metadata, error) {
	name = normalize(name)
	info, err := p.bfs.Stat(name)
	if err != nil {
		return core.Metadata{}, translate(err, "stat", name)
	}

	fileType := core.FileTypeOf(info.Mode())
	revision := core.ZeroRevision
	if fileType.IsFile() {
		revision = p.revision(p.bfs, name, info)
	}

	md := core.NewMetadata(fileType, revision)
	if p.permissions {
		md = md.WithPermissions(uint32(info.Mode().Perm()))
	}
	return md, nil
}

// Read returns the whole content of the named file.
func (p *provider) Read(name string) (string, error) {
	data, err := readFile(p.bfs, normalize(name))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteFile writes data to the named file, creating it if necessary.
// Missing parent directories are created with mode 0755.
func (p *provider) WriteFile(name string, data []byte, perm fs.FileMode) error {
	name = normalize(name)
	if dir := path.Dir(name); dir != "." && dir != "/" {
		if err := p.bfs.MkdirAll(dir, 0755); err != nil {
			return translate(err, "mkdir", dir)
		}
	}

	f, err := p.bfs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return translate(err, "open", name)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(data); err != nil {
		return translate(err, "write", name)
	}
	return nil
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (p *provider) MkdirAll(dir string, perm fs.FileMode) error {
	dir = normalize(dir)
	if err := p.bfs.MkdirAll(dir, perm); err != nil {
		return translate(err, "mkdir", dir)
	}
	return nil
}

// Remove removes the named file or empty directory.
func (p *provider) Remove(name string) error {
	name = normalize(name)
	if err := p.bfs.Remove(name); err != nil {
		return translate(err, "remove", name)
	}
	return nil
}

// normalize converts paths to use forward slashes consistently.
// This is a simplified path normalization since billy handles security.
func normalize(name string) string {
	return filepath.ToSlash(filepath.Clean(name))
}

func readFile(bfs billy.Filesystem, name string) ([]byte, error) {
	info, err := bfs.Stat(name)
	if err != nil {
		return nil, translate(err, "stat", name)
	}
	if !info.Mode().IsRegular() {
		return nil, errors.WithContext(
			errors.Wrap(core.ErrNotFile, errors.CodeInvalidInput, "read failed"),
			"path", name,
		)
	}

	f, err := bfs.Open(name)
	if err != nil {
		return nil, translate(err, "open", name)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, translate(err, "read", name)
	}
	return data, nil
}

func modTimeRevision(bfs billy.Filesystem, name string, info fs.FileInfo) core.Revision {
	if rev := core.RevisionFromTime(info.ModTime()); !rev.IsZero() {
		return rev
	}
	return contentRevision(bfs, name, info)
}

// contentRevision digests the file content. An unreadable file gets the
// revision of empty content; it is never ZeroRevision for an existing file.
func contentRevision(bfs billy.Filesystem, name string, _ fs.FileInfo) core.Revision {
	data, _ := readFile(bfs, name)
	sum := xxhash.Sum64(data)
	if sum == 0 {
		sum = 1
	}
	return core.NewRevision(sum)
}

// translate wraps a billy error with a code matching its cause. The original
// error stays in the chain so errors.Is(err, fs.ErrNotExist) keeps working.
func translate(err error, op, name string) error {
	code := errors.CodeInternal
	switch {
	case errors.Is(err, fs.ErrNotExist):
		code = errors.CodeNotFound
	case errors.Is(err, fs.ErrPermission):
		code = errors.CodeForbidden
	case errors.Is(err, os.ErrDeadlineExceeded):
		code = errors.CodeUnavailable
	}
	return errors.WithContext(errors.Wrapf(err, code, "%s failed", op), "path", name)
}

var (
	_ core.FileSystem = (*LocalFS)(nil)
	_ core.WriteFS    = (*LocalFS)(nil)
	_ core.FileSystem = (*MemoryFS)(nil)
	_ core.WriteFS    = (*MemoryFS)(nil)
)
