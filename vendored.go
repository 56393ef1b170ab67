package vfs

import (
	"bytes"
	"io"
	"io/fs"
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zip"

	"github.com/jmgilman/vfs/errors"
	"github.com/jmgilman/vfs/fs/core"
)

// VendoredStore provides the content of vendored files.
// Implementations must be safe for concurrent use.
type VendoredStore interface {
	// Revision returns the revision of path, or false if the store has no
	// such file.
	Revision(path VendoredPath) (core.Revision, bool)

	// Read returns the content of path, or false if the store has no such file.
	Read(path VendoredPath) (string, bool)
}

// VendoredBundle is a read-only zip archive of vendored files, typically
// embedded in the binary with go:embed.
//
// The bundle never changes during the process lifetime. Every file shares
// one revision derived from a digest of the archive, so rebuilding the
// binary with different vendored content yields different revisions.
type VendoredBundle struct {
	files    map[VendoredPath]*zip.File
	revision core.Revision
}

// NewVendoredBundle opens a zip archive held in memory. Directory entries
// are skipped.
func NewVendoredBundle(data []byte) (*VendoredBundle, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "failed to open vendored bundle")
	}

	files := make(map[VendoredPath]*zip.File, len(reader.File))
	for _, f := range reader.File {
		if f.FileInfo().IsDir() {
			continue
		}
		files[NewVendoredPath(f.Name)] = f
	}

	digest := xxhash.Sum64(data)
	if digest == 0 {
		digest = 1
	}

	return &VendoredBundle{
		files:    files,
		revision: core.NewRevision(digest),
	}, nil
}

// LoadVendoredBundle reads the archive name from fsys and opens it.
//
// Example:
//
//	//go:embed vendored.zip
//	var vendoredFS embed.FS
//
//	bundle, err := vfs.LoadVendoredBundle(vendoredFS, "vendored.zip")
func LoadVendoredBundle(fsys fs.FS, name string) (*VendoredBundle, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		code := errors.CodeInternal
		if errors.Is(err, fs.ErrNotExist) {
			code = errors.CodeNotFound
		}
		return nil, errors.WithContext(errors.Wrap(err, code, "failed to read vendored bundle"), "name", name)
	}
	return NewVendoredBundle(data)
}

// EmptyVendoredBundle returns a bundle without files.
func EmptyVendoredBundle() *VendoredBundle {
	return &VendoredBundle{
		files:    map[VendoredPath]*zip.File{},
		revision: core.NewRevision(1),
	}
}

// Revision returns the bundle revision if path is in the bundle.
func (b *VendoredBundle) Revision(path VendoredPath) (core.Revision, bool) {
	if _, ok := b.files[path]; !ok {
		return core.ZeroRevision, false
	}
	return b.revision, true
}

// Read decompresses path. A corrupt entry reads as missing.
func (b *VendoredBundle) Read(path VendoredPath) (string, bool) {
	f, ok := b.files[path]
	if !ok {
		return "", false
	}

	rc, err := f.Open()
	if err != nil {
		return "", false
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Paths returns every file path in the bundle, sorted.
func (b *VendoredBundle) Paths() []VendoredPath {
	paths := make([]VendoredPath, 0, len(b.files))
	for p := range b.files {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// stubbedRevision is the revision of every stubbed vendored file.
var stubbedRevision = core.NewRevision(1)

// stubbedVendored serves literal content in place of a bundle. Tests use it
// through Vfs.StubVendored.
type stubbedVendored struct {
	mu    sync.RWMutex
	files map[VendoredPath]string
}

func newStubbedVendored(files map[string]string) *stubbedVendored {
	s := &stubbedVendored{files: make(map[VendoredPath]string, len(files))}
	for p, content := range files {
		s.files[NewVendoredPath(p)] = content
	}
	return s
}

func (s *stubbedVendored) Revision(path VendoredPath) (core.Revision, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.files[path]; !ok {
		return core.ZeroRevision, false
	}
	return stubbedRevision, true
}

func (s *stubbedVendored) Read(path VendoredPath) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.files[path]
	return content, ok
}

var (
	_ VendoredStore = (*VendoredBundle)(nil)
	_ VendoredStore = (*stubbedVendored)(nil)
)
