package storage

import (
	"sync"

	"signposts/internal/domain"
)

// PathStore provides thread-safe in-memory storage for named paths
type PathStore struct {
	paths map[string]domain.NamedPath
	mu    sync.RWMutex
}

// NewPathStore creates a new empty path store
func NewPathStore() *PathStore {
	return &PathStore{
		paths: make(map[string]domain.NamedPath),
	}
}

// Add stores a named path in the store
func (s *PathStore) Add(path domain.NamedPath) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paths[path.ID] = path
}

// Remove deletes a named path by ID and returns whether it existed
func (s *PathStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.paths[id]; exists {
		delete(s.paths, id)
		return true
	}
	return false
}

// Get retrieves a named path by ID
func (s *PathStore) Get(id string) (domain.NamedPath, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path, exists := s.paths[id]
	return path, exists
}

// Update modifies an existing named path
func (s *PathStore) Update(id string, path domain.NamedPath) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.paths[id]; exists {
		// Ensure the ID stays the same
		path.ID = id
		s.paths[id] = path
		return true
	}
	return false
}

// List returns all named paths as a slice
func (s *PathStore) List() []domain.NamedPath {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]domain.NamedPath, 0, len(s.paths))
	for _, path := range s.paths {
		paths = append(paths, path)
	}
	return paths
}

// Clear removes all named paths and returns the count of deleted entries
func (s *PathStore) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := len(s.paths)
	s.paths = make(map[string]domain.NamedPath)
	return count
}

// Count returns the number of named paths stored
func (s *PathStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.paths)
}

// FindByName searches for the named path registered under the given name
// Returns the entry and whether one was found
func (s *PathStore) FindByName(name string) (domain.NamedPath, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, path := range s.paths {
		if path.Name == name {
			return path, true
		}
	}
	return domain.NamedPath{}, false
}

// Exists checks if a named path with the given ID exists
func (s *PathStore) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.paths[id]
	return exists
}

// GetByPattern finds all named paths registered with an identical pattern
// This is useful for detecting duplicate registrations
func (s *PathStore) GetByPattern(pattern string) []domain.NamedPath {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []domain.NamedPath
	for _, path := range s.paths {
		if path.Pattern == pattern {
			matches = append(matches, path)
		}
	}
	return matches
}
