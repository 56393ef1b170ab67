package vfs_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/vfs"
	"github.com/jmgilman/vfs/errors"
	"github.com/jmgilman/vfs/fs/billy"
	"github.com/jmgilman/vfs/fs/core"
)

// testDb is a minimal engine context over an in-memory file system.
type testDb struct {
	mem     *billy.MemoryFS
	vfs     *vfs.Vfs
	tracker *recordingTracker
}

func (d *testDb) FileSystem() core.FileSystem { return d.mem }
func (d *testDb) Vfs() *vfs.Vfs               { return d.vfs }
func (d *testDb) Tracker() vfs.Tracker        { return d.tracker }

// view returns a db sharing d's file system but reading through v.
func (d *testDb) view(v *vfs.Vfs) *testDb {
	return &testDb{mem: d.mem, vfs: v, tracker: d.tracker}
}

type event struct {
	file  vfs.File
	field vfs.Field
}

type recordingTracker struct {
	mu            sync.Mutex
	reads         []event
	invalidations []event
}

func (r *recordingTracker) RecordRead(f vfs.File, field vfs.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads = append(r.reads, event{file: f, field: field})
}

func (r *recordingTracker) Invalidate(f vfs.File, field vfs.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalidations = append(r.invalidations, event{file: f, field: field})
}

func (r *recordingTracker) Reads() []event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]event(nil), r.reads...)
}

func (r *recordingTracker) Invalidations() []event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]event(nil), r.invalidations...)
}

func (r *recordingTracker) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads = nil
	r.invalidations = nil
}

func newTestDb(t *testing.T, files map[string]string, opts ...vfs.Option) *testDb {
	t.Helper()

	v, err := vfs.New(opts...)
	require.NoError(t, err)
	return newTestDbWith(t, v, files)
}

func newTestDbWith(t *testing.T, v *vfs.Vfs, files map[string]string) *testDb {
	t.Helper()

	mem := billy.NewMemory()
	require.NoError(t, mem.WriteFiles(files))
	t.Cleanup(func() { _ = v.Close() })

	return &testDb{mem: mem, vfs: v, tracker: &recordingTracker{}}
}

// requirePanicCode runs fn and requires it to panic with a PlatformError
// carrying code.
func requirePanicCode(t *testing.T, code errors.ErrorCode, fn func()) {
	t.Helper()

	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.Equal(t, code, errors.GetCode(err))
	}()
	fn()
}
