package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/vfs/fs/core"
)

// TestRead tests Read() on files, directories and missing paths.
// Uses POSIXConfig() by default.
func TestRead(t *testing.T, filesystem core.FileSystem) {
	TestReadWithConfig(t, filesystem, POSIXConfig())
}

// TestReadWithConfig tests Read() with behavior configuration.
func TestReadWithConfig(t *testing.T, filesystem core.FileSystem, config Config) {
	wfs := writable(t, filesystem)

	testContent := "def foo() -> str:\n    return 'bär'\n"
	if err := wfs.WriteFile("readdir/testfile.py", []byte(testContent), 0644); err != nil {
		t.Fatalf("WriteFile(readdir/testfile.py): setup failed: %v", err)
	}
	if err := wfs.WriteFile("readdir/empty.py", nil, 0644); err != nil {
		t.Fatalf("WriteFile(readdir/empty.py): setup failed: %v", err)
	}

	config.run(t, "Read", "File", func(t *testing.T) {
		got, err := filesystem.Read("readdir/testfile.py")
		if err != nil {
			t.Errorf("Read(readdir/testfile.py): got error %v, want nil", err)
			return
		}
		if got != testContent {
			t.Errorf("Read(readdir/testfile.py): got %q, want %q", got, testContent)
		}
	})

	config.run(t, "Read", "Empty", func(t *testing.T) {
		got, err := filesystem.Read("readdir/empty.py")
		if err != nil {
			t.Errorf("Read(readdir/empty.py): got error %v, want nil", err)
			return
		}
		if got != "" {
			t.Errorf("Read(readdir/empty.py): got %q, want empty", got)
		}
	})

	config.run(t, "Read", "Directory", func(t *testing.T) {
		if _, err := filesystem.Read("readdir"); err == nil {
			t.Errorf("Read(readdir): got nil error for a directory")
		}
	})

	config.run(t, "Read", "NotExist", func(t *testing.T) {
		_, err := filesystem.Read("readdir/missing.py")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Read(readdir/missing.py): got error %v, want fs.ErrNotExist", err)
		}
	})
}
