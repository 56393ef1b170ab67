package vfs

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"
)

// defaultShards is the shard count used when WithShards is not given.
const defaultShards = 64

// shard is one lock stripe of the identity map.
type shard struct {
	mu    sync.RWMutex
	files map[Path]File
}

// arena owns every file record of a lineage. Records are never removed, so
// a File stays valid for the arena's lifetime.
type arena struct {
	lineage uint32

	mu      sync.RWMutex
	records []*fileRecord
}

func (a *arena) alloc(p Path, state fileState) File {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.records = append(a.records, &fileRecord{path: p, state: state})
	return newFile(a.lineage, uint32(len(a.records)))
}

// get returns the record of f, or nil for a handle this arena never issued.
func (a *arena) get(f File) *fileRecord {
	if f.lineage() != a.lineage {
		return nil
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	id := f.id()
	if id == 0 || int(id) > len(a.records) {
		return nil
	}
	return a.records[id-1]
}

func (a *arena) len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.records)
}

// identityMap maps each path to exactly one File.
//
// Lookups take a shard read lock. Misses are coalesced per path with
// singleflight so concurrent resolvers share one backend call, which runs
// without any shard lock held. The winner re-checks under the shard write
// lock before publishing, so at most one record is ever created per path.
type identityMap struct {
	shards []shard
	mask   uint64
	flight singleflight.Group
	arena  arena
}

// newIdentityMap creates a map with n shards whose handles carry lineage;
// n must be a power of two.
func newIdentityMap(n int, lineage uint32) *identityMap {
	m := &identityMap{
		shards: make([]shard, n),
		mask:   uint64(n - 1),
		arena:  arena{lineage: lineage},
	}
	for i := range m.shards {
		m.shards[i].files = make(map[Path]File)
	}
	return m
}

func (m *identityMap) shardFor(p Path) *shard {
	h := xxhash.Sum64String(p.path) ^ uint64(p.source)*0x9e3779b97f4a7c15
	return &m.shards[h&m.mask]
}

func (m *identityMap) lookup(p Path) (File, bool) {
	s := m.shardFor(p)
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.files[p]
	return f, ok
}

// getOrCreate returns the File of p. On a miss it calls resolve; if resolve
// reports false no slot is reserved and getOrCreate returns false.
func (m *identityMap) getOrCreate(p Path, resolve func() (fileState, bool)) (File, bool) {
	if f, ok := m.lookup(p); ok {
		return f, true
	}

	v, _, _ := m.flight.Do(p.key(), func() (interface{}, error) {
		if f, ok := m.lookup(p); ok {
			return f, nil
		}

		state, ok := resolve()
		if !ok {
			return File(0), nil
		}

		s := m.shardFor(p)
		s.mu.Lock()
		defer s.mu.Unlock()
		if f, ok := s.files[p]; ok {
			return f, nil
		}
		f := m.arena.alloc(p, state)
		s.files[p] = f
		return f, nil
	})

	f := v.(File)
	return f, f != 0
}

type mapEntry struct {
	path Path
	file File
}

// each calls fn for every entry. Shard locks are held only while copying.
func (m *identityMap) each(fn func(Path, File)) {
	for i := range m.shards {
		s := &m.shards[i]
		s.mu.RLock()
		entries := make([]mapEntry, 0, len(s.files))
		for p, f := range s.files {
			entries = append(entries, mapEntry{path: p, file: f})
		}
		s.mu.RUnlock()

		for _, e := range entries {
			fn(e.path, e.file)
		}
	}
}
