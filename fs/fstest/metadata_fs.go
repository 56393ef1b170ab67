package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/vfs/fs/core"
)

// TestMetadata tests Metadata() on files, directories and missing paths.
// Uses POSIXConfig() by default.
func TestMetadata(t *testing.T, filesystem core.FileSystem) {
	TestMetadataWithConfig(t, filesystem, POSIXConfig())
}

// TestMetadataWithConfig tests Metadata() with behavior configuration.
func TestMetadataWithConfig(t *testing.T, filesystem core.FileSystem, config Config) {
	wfs := writable(t, filesystem)

	if err := wfs.MkdirAll("metadir", 0755); err != nil {
		t.Fatalf("MkdirAll(metadir): setup failed: %v", err)
	}
	if err := wfs.WriteFile("metadir/file.py", []byte("x = 1"), 0644); err != nil {
		t.Fatalf("WriteFile(metadir/file.py): setup failed: %v", err)
	}

	config.run(t, "Metadata", "File", func(t *testing.T) {
		testMetadataFile(t, filesystem, config)
	})
	config.run(t, "Metadata", "Directory", func(t *testing.T) {
		testMetadataDirectory(t, filesystem)
	})
	config.run(t, "Metadata", "NotExist", func(t *testing.T) {
		testMetadataNotExist(t, filesystem)
	})
}

// testMetadataFile verifies a regular file reports its type, a non-zero
// revision and, when supported, its permission bits.
func testMetadataFile(t *testing.T, filesystem core.FileSystem, config Config) {
	md, err := filesystem.Metadata("metadir/file.py")
	if err != nil {
		t.Errorf("Metadata(metadir/file.py): got error %v, want nil", err)
		return
	}

	if !md.FileType().IsFile() {
		t.Errorf("Metadata(metadir/file.py): FileType() = %v, want file", md.FileType())
	}
	if md.Revision().IsZero() {
		t.Errorf("Metadata(metadir/file.py): Revision() is zero for an existing file")
	}

	perm, ok := md.Permissions()
	switch {
	case config.Permissions && !ok:
		t.Errorf("Metadata(metadir/file.py): Permissions() not reported")
	case config.Permissions && perm&0o777 == 0:
		t.Errorf("Metadata(metadir/file.py): Permissions() = %o, want non-zero bits", perm)
	case !config.Permissions && ok:
		t.Errorf("Metadata(metadir/file.py): Permissions() = %o, want none", perm)
	}
}

func testMetadataDirectory(t *testing.T, filesystem core.FileSystem) {
	md, err := filesystem.Metadata("metadir")
	if err != nil {
		t.Errorf("Metadata(metadir): got error %v, want nil", err)
		return
	}
	if !md.FileType().IsDirectory() {
		t.Errorf("Metadata(metadir): FileType() = %v, want directory", md.FileType())
	}
}

func testMetadataNotExist(t *testing.T, filesystem core.FileSystem) {
	_, err := filesystem.Metadata("does-not-exist.py")
	if err == nil {
		t.Errorf("Metadata(does-not-exist.py): got nil error, want fs.ErrNotExist")
		return
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Metadata(does-not-exist.py): got error %v, want fs.ErrNotExist", err)
	}
}
