package api

import (
	"sync"

	"github.com/google/uuid"

	"github.com/pedigraph/pedigraph/pkg/pedigree"
)

// GraphStore holds parsed graphs in memory, keyed by server-issued id.
// Entries live until the process exits; the pipeline cache persists the
// expensive work, so losing the store only invalidates the ids.
type GraphStore struct {
	mu     sync.RWMutex
	graphs map[string]*pedigree.Graph
}

// NewGraphStore creates an empty store.
func NewGraphStore() *GraphStore {
	return &GraphStore{graphs: make(map[string]*pedigree.Graph)}
}

// Put stores a graph and returns its new id.
func (s *GraphStore) Put(g *pedigree.Graph) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.graphs[id] = g
	s.mu.Unlock()
	return id
}

// Get returns the graph for id and whether it exists.
func (s *GraphStore) Get(id string) (*pedigree.Graph, bool) {
	s.mu.RLock()
	g, ok := s.graphs[id]
	s.mu.RUnlock()
	return g, ok
}

// Delete removes a graph. Deleting a missing id is a no-op.
func (s *GraphStore) Delete(id string) {
	s.mu.Lock()
	delete(s.graphs, id)
	s.mu.Unlock()
}

// Len returns the number of stored graphs.
func (s *GraphStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.graphs)
}
