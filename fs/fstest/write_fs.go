package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/vfs/fs/core"
)

// TestWriteFS tests the fixture operations: WriteFile, MkdirAll, Remove.
// Uses POSIXConfig() by default.
func TestWriteFS(t *testing.T, filesystem core.FileSystem) {
	TestWriteFSWithConfig(t, filesystem, POSIXConfig())
}

// TestWriteFSWithConfig tests write operations with behavior configuration.
func TestWriteFSWithConfig(t *testing.T, filesystem core.FileSystem, config Config) {
	wfs := writable(t, filesystem)

	config.run(t, "WriteFS", "CreateParents", func(t *testing.T) {
		if err := wfs.WriteFile("a/b/c.py", []byte("c"), 0644); err != nil {
			t.Errorf("WriteFile(a/b/c.py): got error %v, want nil", err)
			return
		}
		md, err := filesystem.Metadata("a/b")
		if err != nil || !md.FileType().IsDirectory() {
			t.Errorf("Metadata(a/b): got (%v, %v), want directory", md.FileType(), err)
		}
	})

	config.run(t, "WriteFS", "Overwrite", func(t *testing.T) {
		if err := wfs.WriteFile("over.py", []byte("first version"), 0644); err != nil {
			t.Fatalf("WriteFile(over.py): setup failed: %v", err)
		}
		if err := wfs.WriteFile("over.py", []byte("second"), 0644); err != nil {
			t.Errorf("WriteFile(over.py): got error %v, want nil", err)
			return
		}
		got, err := filesystem.Read("over.py")
		if err != nil || got != "second" {
			t.Errorf("Read(over.py): got (%q, %v), want (%q, nil)", got, err, "second")
		}
	})

	config.run(t, "WriteFS", "Remove", func(t *testing.T) {
		if err := wfs.WriteFile("gone.py", []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile(gone.py): setup failed: %v", err)
		}
		if err := wfs.Remove("gone.py"); err != nil {
			t.Errorf("Remove(gone.py): got error %v, want nil", err)
			return
		}
		if _, err := filesystem.Metadata("gone.py"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Metadata(gone.py) after Remove: got error %v, want fs.ErrNotExist", err)
		}
	})

	config.run(t, "WriteFS", "RemoveNotExist", func(t *testing.T) {
		if err := wfs.Remove("never.py"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Remove(never.py): got error %v, want fs.ErrNotExist", err)
		}
	})
}
