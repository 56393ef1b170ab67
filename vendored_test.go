package vfs_test

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/vfs"
	"github.com/jmgilman/vfs/errors"
)

// buildBundle zips files, adding an explicit entry for each directory name
// in dirs.
func buildBundle(t *testing.T, files map[string]string, dirs ...string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, dir := range dirs {
		_, err := w.Create(dir + "/")
		require.NoError(t, err)
	}
	for name, content := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestVendoredBundle(t *testing.T) {
	data := buildBundle(t, map[string]string{
		"stdlib/os.pyi":     "def getcwd() -> str: ...",
		"stdlib/sys.pyi":    "argv: list[str]",
		"stubs/six/six.pyi": "",
	}, "stdlib", "stubs", "stubs/six")

	bundle, err := vfs.NewVendoredBundle(data)
	require.NoError(t, err)

	t.Run("paths", func(t *testing.T) {
		assert.Equal(t, []vfs.VendoredPath{"stdlib/os.pyi", "stdlib/sys.pyi", "stubs/six/six.pyi"}, bundle.Paths())
	})

	t.Run("read", func(t *testing.T) {
		content, ok := bundle.Read("stdlib/os.pyi")
		require.True(t, ok)
		assert.Equal(t, "def getcwd() -> str: ...", content)

		content, ok = bundle.Read("stubs/six/six.pyi")
		require.True(t, ok)
		assert.Equal(t, "", content)

		_, ok = bundle.Read("stdlib")
		assert.False(t, ok, "directories are not files")
	})

	t.Run("revision", func(t *testing.T) {
		first, ok := bundle.Revision("stdlib/os.pyi")
		require.True(t, ok)
		second, ok := bundle.Revision("stdlib/sys.pyi")
		require.True(t, ok)

		assert.False(t, first.IsZero())
		assert.Equal(t, first, second, "every file shares the bundle revision")

		_, ok = bundle.Revision("stdlib/missing.pyi")
		assert.False(t, ok)
	})

	t.Run("different content, different revision", func(t *testing.T) {
		other, err := vfs.NewVendoredBundle(buildBundle(t, map[string]string{"stdlib/os.pyi": "changed"}))
		require.NoError(t, err)

		a, _ := bundle.Revision("stdlib/os.pyi")
		b, _ := other.Revision("stdlib/os.pyi")
		assert.NotEqual(t, a, b)
	})
}

func TestNewVendoredBundle_Corrupt(t *testing.T) {
	_, err := vfs.NewVendoredBundle([]byte("not a zip archive"))

	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestLoadVendoredBundle(t *testing.T) {
	fsys := fstest.MapFS{
		"vendored.zip": &fstest.MapFile{Data: buildBundle(t, map[string]string{"typing.pyi": "class Any: ..."})},
	}

	t.Run("found", func(t *testing.T) {
		bundle, err := vfs.LoadVendoredBundle(fsys, "vendored.zip")
		require.NoError(t, err)
		assert.Equal(t, []vfs.VendoredPath{"typing.pyi"}, bundle.Paths())
	})

	t.Run("not found", func(t *testing.T) {
		_, err := vfs.LoadVendoredBundle(fsys, "missing.zip")
		require.Error(t, err)
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
	})
}

func TestEmptyVendoredBundle(t *testing.T) {
	bundle := vfs.EmptyVendoredBundle()

	assert.Empty(t, bundle.Paths())
	_, ok := bundle.Read("typing.pyi")
	assert.False(t, ok)
}

func TestVfs_WithVendoredBundle(t *testing.T) {
	bundle, err := vfs.NewVendoredBundle(buildBundle(t, map[string]string{"typing.pyi": "class Any: ..."}))
	require.NoError(t, err)
	db := newTestDb(t, nil, vfs.WithVendored(bundle))

	file, ok := db.vfs.Vendored(db, vfs.NewVendoredPath("typing.pyi"))
	require.True(t, ok)

	revision, _ := bundle.Revision("typing.pyi")
	assert.Equal(t, revision, file.Revision(db))
	assert.Equal(t, "class Any: ...", file.Read(db))

	_, ok = db.vfs.Vendored(db, vfs.NewVendoredPath("os.pyi"))
	assert.False(t, ok)
	assert.Equal(t, 1, db.vfs.Len())
}
