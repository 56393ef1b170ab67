package core

import (
	"io/fs"
	"path"
	"strings"
)

// CopyFromFS copies all regular files from a read-only filesystem (typically
// embed.FS or testing/fstest.MapFS) into a writable backend, preserving the
// directory structure.
//
// The srcRoot parameter specifies the root directory in the source filesystem to copy from.
// Use "." to copy the entire source filesystem.
//
// Example:
//
//	//go:embed testdata/project/*
//	var projectFS embed.FS
//
//	mem := billy.NewMemory()
//	err := core.CopyFromFS(projectFS, mem, "testdata/project")
func CopyFromFS(src fs.FS, dst WriteFS, srcRoot string) error {
	return fs.WalkDir(src, srcRoot, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(src, filePath)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		dstPath := filePath
		if srcRoot != "." && srcRoot != "" {
			dstPath = strings.TrimPrefix(filePath, srcRoot)
			dstPath = strings.TrimPrefix(dstPath, "/")
		}

		if dir := path.Dir(dstPath); dir != "." && dir != "" {
			if err := dst.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}

		return dst.WriteFile(dstPath, data, info.Mode().Perm())
	})
}
