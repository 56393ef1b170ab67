package billy

import (
	iofs "io/fs"
	"path/filepath"
	"runtime"
	"testing"
	"testing/fstest"

	"github.com/jmgilman/vfs/errors"
	"github.com/jmgilman/vfs/fs/core"
	vfstest "github.com/jmgilman/vfs/fs/fstest"
)

// TestLocalFS_Constructor verifies NewLocal creates a valid filesystem.
func TestLocalFS_Constructor(t *testing.T) {
	fs := NewLocal()
	if fs == nil {
		t.Fatal("NewLocal() returned nil")
	}
	if fs.Unwrap() == nil {
		t.Error("NewLocal() bfs field is nil")
	}
	if fs.Type() != core.FSTypeLocal {
		t.Errorf("LocalFS.Type() = %s, want %s", fs.Type(), core.FSTypeLocal)
	}
}

// TestMemoryFS_Constructor verifies NewMemory creates a valid filesystem.
func TestMemoryFS_Constructor(t *testing.T) {
	fs := NewMemory()
	if fs == nil {
		t.Fatal("NewMemory() returned nil")
	}
	if fs.Unwrap() == nil {
		t.Error("NewMemory() bfs field is nil")
	}
	if fs.Type() != core.FSTypeMemory {
		t.Errorf("MemoryFS.Type() = %s, want %s", fs.Type(), core.FSTypeMemory)
	}
}

// TestMemoryFS_Suite runs the conformance suite against the memory provider.
func TestMemoryFS_Suite(t *testing.T) {
	vfstest.TestSuite(t, func() core.FileSystem {
		return NewMemory()
	})
}

// TestLocalFS_Suite runs the conformance suite against a temp directory.
func TestLocalFS_Suite(t *testing.T) {
	vfstest.TestSuiteWithConfig(t, func() core.FileSystem {
		return NewLocal(WithRoot(t.TempDir()))
	}, vfstest.Config{Permissions: runtime.GOOS != "windows"})
}

// TestMemoryFS_Permissions verifies permission bits survive a write.
func TestMemoryFS_Permissions(t *testing.T) {
	fs := NewMemory()
	if err := fs.WriteFiles(map[string]string{"test.py": "print('Hello world')"}); err != nil {
		t.Fatalf("WriteFiles() error = %v", err)
	}

	md, err := fs.Metadata("test.py")
	if err != nil {
		t.Fatalf("Metadata() error = %v", err)
	}
	perm, ok := md.Permissions()
	if !ok || perm != 0o755 {
		t.Errorf("Permissions() = (%o, %v), want (755, true)", perm, ok)
	}
}

// TestMemoryFS_RevisionTracksContent verifies revisions follow content.
func TestMemoryFS_RevisionTracksContent(t *testing.T) {
	fs := NewMemory()
	write := func(content string) core.Revision {
		t.Helper()
		if err := fs.WriteFile("a.py", []byte(content), 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		md, err := fs.Metadata("a.py")
		if err != nil {
			t.Fatalf("Metadata() error = %v", err)
		}
		return md.Revision()
	}

	first := write("x = 1")
	again := write("x = 1")
	changed := write("x = 2")

	if first.IsZero() {
		t.Error("revision of an existing file is zero")
	}
	if first != again {
		t.Errorf("same content produced different revisions: %v != %v", first, again)
	}
	if first == changed {
		t.Errorf("changed content kept revision %v", first)
	}
}

// TestMemoryFS_ErrorCodes verifies backend failures carry codes and causes.
func TestMemoryFS_ErrorCodes(t *testing.T) {
	fs := NewMemory()
	if err := fs.MkdirAll("pkg", 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	_, err := fs.Metadata("missing.py")
	if !errors.Is(err, iofs.ErrNotExist) {
		t.Errorf("Metadata(missing) error = %v, want fs.ErrNotExist in chain", err)
	}
	if errors.GetCode(err) != errors.CodeNotFound {
		t.Errorf("GetCode() = %s, want %s", errors.GetCode(err), errors.CodeNotFound)
	}

	_, err = fs.Read("pkg")
	if !errors.Is(err, core.ErrNotFile) {
		t.Errorf("Read(dir) error = %v, want core.ErrNotFile in chain", err)
	}

	var platformErr errors.PlatformError
	if !errors.As(err, &platformErr) {
		t.Fatalf("Read(dir) error is not a PlatformError: %v", err)
	}
	if platformErr.Context()["path"] != "pkg" {
		t.Errorf("Context()[path] = %v, want pkg", platformErr.Context()["path"])
	}
}

// TestCopyFromFS verifies a memory filesystem can be seeded from an fs.FS.
func TestCopyFromFS(t *testing.T) {
	src := fstest.MapFS{
		"project/main.py":         {Data: []byte("import lib"), Mode: 0644},
		"project/lib/__init__.py": {Data: []byte(""), Mode: 0600},
	}

	fs := NewMemory()
	if err := core.CopyFromFS(src, fs, "project"); err != nil {
		t.Fatalf("CopyFromFS() error = %v", err)
	}

	content, err := fs.Read("main.py")
	if err != nil || content != "import lib" {
		t.Errorf("Read(main.py) = (%q, %v), want (%q, nil)", content, err, "import lib")
	}

	md, err := fs.Metadata(filepath.Join("lib", "__init__.py"))
	if err != nil {
		t.Fatalf("Metadata(lib/__init__.py) error = %v", err)
	}
	if perm, _ := md.Permissions(); perm != 0o600 {
		t.Errorf("Permissions() = %o, want 600", perm)
	}
}
