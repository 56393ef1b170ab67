package vfs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jmgilman/vfs/fs/core"
)

// Entry is the state of one resolved path. Entries are for debugging and
// tests; production code reads handles through their accessors so reads
// are tracked.
type Entry struct {
	Path           Path
	File           File
	Permissions    uint32
	HasPermissions bool
	Revision       core.Revision
	Status         FileStatus
}

// String formats the entry like "fs:a.py => File(1) exists r1f 0755".
func (e Entry) String() string {
	perm := "-"
	if e.HasPermissions {
		perm = fmt.Sprintf("%04o", e.Permissions)
	}
	return fmt.Sprintf("%s => %s %s %s %s", e.Path, e.File, e.Status, e.Revision, perm)
}

// Entries returns every resolved path and its current state, ordered by
// source then path. It does not report reads to any tracker.
func (v *Vfs) Entries() []Entry {
	var entries []Entry
	v.inner.files.each(func(p Path, f File) {
		state := v.record(f).load()
		entries = append(entries, Entry{
			Path:           p,
			File:           f,
			Permissions:    state.permissions,
			HasPermissions: state.hasPermissions,
			Revision:       state.revision,
			Status:         state.status,
		})
	})
	slices.SortFunc(entries, func(a, b Entry) int {
		return a.Path.compare(b.Path)
	})
	return entries
}

// Len returns the number of resolved paths.
func (v *Vfs) Len() int {
	return v.inner.files.arena.len()
}

// String renders every entry, one per line.
func (v *Vfs) String() string {
	var b strings.Builder
	b.WriteString("Vfs{")
	for _, e := range v.Entries() {
		b.WriteString("\n\t")
		b.WriteString(e.String())
	}
	b.WriteString("\n}")
	return b.String()
}
