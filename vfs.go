package vfs

import (
	"context"
	"log/slog"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/vfs/errors"
)

// Vfs resolves file system and vendored paths to File handles.
//
// A Vfs is safe for concurrent use. Snapshot returns additional views of
// the same state; see StubVendored for the one operation that requires
// exclusive ownership.
type Vfs struct {
	inner  *shared
	closed atomic.Bool
}

// shared is the state common to a Vfs and all of its snapshots.
type shared struct {
	files    *identityMap
	vendored atomic.Pointer[vendoredRef]
	logger   *slog.Logger

	// refs counts open views. Exclusive ownership means refs == 1.
	refs atomic.Int64
}

type vendoredRef struct {
	store VendoredStore
}

// lineages issues lineage ids. Zero is never issued, so converted integers
// never pass as handles.
var lineages atomic.Uint32

// New creates an empty Vfs.
func New(opts ...Option) (*Vfs, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	inner := &shared{
		files:  newIdentityMap(o.shards, lineages.Add(1)),
		logger: o.logger,
	}
	inner.vendored.Store(&vendoredRef{store: o.vendored})
	inner.refs.Store(1)

	return &Vfs{inner: inner}, nil
}

// NewWithStubbedVendored creates a Vfs whose vendored store serves the
// given path to content mapping instead of a bundle.
func NewWithStubbedVendored(files map[string]string, opts ...Option) (*Vfs, error) {
	return New(append(opts[:len(opts):len(opts)], WithVendored(newStubbedVendored(files)))...)
}

// File returns the handle of a file system path, creating it on first use.
//
// The operation always succeeds, even if the path doesn't exist, isn't
// accessible or points to a directory. Such paths resolve to a handle with
// status Deleted, zero revision and no permissions.
func (v *Vfs) File(db Db, path FileSystemPath) File {
	v.ensureOpen()
	p := path.Path()
	f, _ := v.inner.files.getOrCreate(p, func() (fileState, bool) {
		state := v.inner.fileSystemState(db, path)
		v.inner.logger.Debug("resolved file",
			"path", p.String(),
			"status", state.status.String(),
			"revision", state.revision.String())
		return state, true
	})
	return f
}

// Vendored returns the handle of a vendored path, or false if the vendored
// store has no such file. Missing vendored files never reserve a slot.
func (v *Vfs) Vendored(db Db, path VendoredPath) (File, bool) {
	v.ensureOpen()
	p := path.Path()
	return v.inner.files.getOrCreate(p, func() (fileState, bool) {
		revision, ok := v.inner.vendoredStore().Revision(path)
		if !ok {
			v.inner.logger.Debug("vendored file not found", "path", p.String())
			return fileState{}, false
		}
		v.inner.logger.Debug("resolved file",
			"path", p.String(),
			"status", Exists.String(),
			"revision", revision.String())
		return fileState{
			permissions:    vendoredPermissions,
			hasPermissions: true,
			revision:       revision,
			status:         Exists,
		}, true
	})
}

// Snapshot returns a view sharing this Vfs's identity map and vendored
// store. Resolutions through either view are visible through both. The
// snapshot must be closed when no longer needed.
func (v *Vfs) Snapshot() *Vfs {
	for {
		v.ensureOpen()
		refs := v.inner.refs.Load()
		if refs == 0 {
			// The lineage was released; it never comes back.
			panic(errors.New(errors.CodeConflict, "use of closed vfs view"))
		}
		if v.inner.refs.CompareAndSwap(refs, refs+1) {
			return &Vfs{inner: v.inner}
		}
	}
}

// Close releases this view. Closing twice is a no-op. Once the last view
// of a lineage is closed its handles are no longer counted as active.
func (v *Vfs) Close() error {
	if !v.closed.CompareAndSwap(false, true) {
		return nil
	}
	if v.inner.refs.Add(-1) == 0 {
		v.inner.logger.Debug("released file lineage", "files", v.inner.files.arena.len())
	}
	return nil
}

// StubVendored replaces the vendored store with the given path to content
// mapping. Handles already resolved for vendored paths keep their state.
//
// StubVendored panics with a CodeConflict PlatformError if any other view
// of this Vfs is open: two views must never disagree about vendored content.
func (v *Vfs) StubVendored(files map[string]string) {
	v.ensureOpen()
	if refs := v.inner.refs.Load(); refs != 1 {
		panic(errors.WithContext(
			errors.New(errors.CodeConflict, "cannot stub vendored files while snapshots are open"),
			"views", refs,
		))
	}
	v.inner.vendored.Store(&vendoredRef{store: newStubbedVendored(files)})
	v.inner.logger.Debug("stubbed vendored files", "files", len(files))
}

// Prefetch resolves paths in parallel, at most GOMAXPROCS at a time.
// Resolution itself never fails; the only error is ctx's.
func (v *Vfs) Prefetch(ctx context.Context, db Db, paths []FileSystemPath) error {
	v.ensureOpen()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v.File(db, path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// read returns the content of p. File system failures read as empty.
func (v *Vfs) read(db Db, p Path) string {
	if fsPath, ok := p.AsFileSystem(); ok {
		content, err := db.FileSystem().Read(string(fsPath))
		if err != nil {
			v.inner.logger.Debug("read failed, using empty content",
				"path", p.String(),
				"code", string(errors.GetCode(err)),
				"error", err)
			return ""
		}
		return content
	}

	vendoredPath, _ := p.AsVendored()
	content, ok := v.inner.vendoredStore().Read(vendoredPath)
	if !ok {
		panic(errors.WithContext(
			errors.New(errors.CodeInternal, "vendored file has a handle but no content"),
			"path", p.String(),
		))
	}
	return content
}

// record returns the arena slot of f. Invalid handles are a programming
// error and panic.
func (v *Vfs) record(f File) *fileRecord {
	r := v.inner.files.arena.get(f)
	if r == nil {
		panic(errors.WithContextMap(
			errors.New(errors.CodeInvalidInput, "file handle does not belong to this vfs"),
			map[string]interface{}{
				"file":    f.String(),
				"lineage": f.lineage(),
				"want":    v.inner.files.arena.lineage,
			},
		))
	}
	return r
}

func (v *Vfs) ensureOpen() {
	if v.closed.Load() {
		panic(errors.New(errors.CodeConflict, "use of closed vfs view"))
	}
}

func (s *shared) vendoredStore() VendoredStore {
	return s.vendored.Load().store
}

// fileSystemState reads the backend metadata of path. Every failure maps
// to the deleted state.
func (s *shared) fileSystemState(db Db, path FileSystemPath) fileState {
	md, err := db.FileSystem().Metadata(string(path))
	if err != nil {
		s.logger.Debug("metadata unavailable, treating file as deleted",
			"path", path.Path().String(),
			"code", string(errors.GetCode(err)),
			"error", err)
		return deletedState()
	}
	if !md.FileType().IsFile() {
		return deletedState()
	}

	perm, ok := md.Permissions()
	return fileState{
		permissions:    perm,
		hasPermissions: ok,
		revision:       md.Revision(),
		status:         Exists,
	}
}
