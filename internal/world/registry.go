package world

import (
	"sync"

	"GopherCraft/internal/voxel"
)

// Registry maps chunk coordinates to chunks. Entries are heap pointers, so a
// chunk never moves once inserted. Only the render goroutine inserts or
// removes; workers look neighbours up under the read lock.
type Registry struct {
	mu     sync.RWMutex
	chunks map[voxel.ChunkCoord]*voxel.Chunk
}

func NewRegistry() *Registry {
	return &Registry{chunks: make(map[voxel.ChunkCoord]*voxel.Chunk)}
}

// Get returns the chunk at coord or nil.
func (r *Registry) Get(coord voxel.ChunkCoord) *voxel.Chunk {
	r.mu.RLock()
	c := r.chunks[coord]
	r.mu.RUnlock()
	return c
}

// Neighbor makes the registry a voxel.NeighborLookup.
func (r *Registry) Neighbor(coord voxel.ChunkCoord) *voxel.Chunk {
	return r.Get(coord)
}

// GetOrCreate returns the chunk at coord, inserting a fresh dirty one when
// absent. created reports whether an insert happened.
func (r *Registry) GetOrCreate(coord voxel.ChunkCoord) (c *voxel.Chunk, created bool) {
	if c = r.Get(coord); c != nil {
		return c, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if c = r.chunks[coord]; c != nil {
		return c, false
	}
	c = voxel.NewChunk(coord)
	r.chunks[coord] = c
	return c, true
}

// Remove deletes and returns the chunk at coord, or nil.
func (r *Registry) Remove(coord voxel.ChunkCoord) *voxel.Chunk {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.chunks[coord]
	delete(r.chunks, coord)
	return c
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.chunks)
}

// Range calls fn for every chunk until it returns false. fn must not insert
// or remove entries.
func (r *Registry) Range(fn func(c *voxel.Chunk) bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.chunks {
		if !fn(c) {
			return
		}
	}
}
