// file: internal/cache/cache.go
// version: 2.0.0
// guid: a1b2c3d4-e5f6-7a8b-9c0d-1e2f3a4b5c6d

// Package cache is a persistent, namespaced, expiring key-value store for
// the French tools. Each namespace is one JSON file holding a map from
// digest key to entry; every Set rewrites the file, so each short-lived CLI
// invocation leaves a durable cache behind. Concurrent writers are
// last-write-wins, nothing more.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Known namespaces shared by the French tools. Each gets its own backing
// file and expiry policy.
const (
	NamespaceConjugation   = "conjugation"
	NamespaceWordReference = "wordreference"
	NamespaceLarousse      = "larousse"
)

// KnownNamespaces lists every namespace the aggregate operations cover.
var KnownNamespaces = []string{
	NamespaceConjugation,
	NamespaceWordReference,
	NamespaceLarousse,
}

// Entry is one cached value with its write time. The original arguments are
// kept alongside for debuggability of the cache files.
type Entry struct {
	Data     json.RawMessage `json:"data"`
	StoredAt time.Time       `json:"timestamp"`
	Args     []string        `json:"args,omitempty"`
}

// Stats summarizes one namespace without modifying it.
type Stats struct {
	TotalEntries   int
	StorageSize    int64
	ExpiredEntries int
}

// Store is one cache namespace. It is not safe for concurrent use; the CLI
// model is one synchronous query per process.
type Store struct {
	name    string
	path    string
	maxAge  time.Duration
	entries map[string]Entry
	now     func() time.Time
}

// Open binds a namespace to its backing file under dir and loads whatever is
// there. A missing, unreadable, or corrupt file yields an empty cache: cache
// trouble must never block the query the user actually asked for.
func Open(dir, name string, maxAge time.Duration) *Store {
	s := &Store{
		name:    name,
		path:    filepath.Join(dir, name+".json"),
		maxAge:  maxAge,
		entries: make(map[string]Entry),
		now:     time.Now,
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("Warning: could not create cache directory %s: %v", dir, err)
		return s
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: could not read cache %s: %v", s.path, err)
		}
		return s
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		log.Printf("Warning: cache %s is corrupt, starting empty: %v", s.path, err)
		s.entries = make(map[string]Entry)
	}
	return s
}

// Name returns the namespace name.
func (s *Store) Name() string { return s.name }

// Key digests an ordered argument tuple into the cache key. The digest is a
// pure function of its inputs and argument order is significant.
func Key(args ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(args, "|")))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached value for an argument tuple. An entry older than
// the namespace's max age is removed on the spot and reported as a miss.
func (s *Store) Get(args ...string) (json.RawMessage, bool) {
	key := Key(args...)
	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if s.expired(e) {
		delete(s.entries, key)
		s.save()
		return nil, false
	}
	return e.Data, true
}

// Set stores a value under an argument tuple and persists immediately. A
// persist failure is logged and the in-memory state stays authoritative for
// the rest of the process.
func (s *Store) Set(value any, args ...string) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("Warning: could not encode cache value for %s: %v", s.name, err)
		return
	}
	s.entries[Key(args...)] = Entry{
		Data:     data,
		StoredAt: s.now(),
		Args:     args,
	}
	s.save()
}

// Clear empties the namespace and removes its backing file.
func (s *Store) Clear() {
	s.entries = make(map[string]Entry)
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not remove cache file %s: %v", s.path, err)
	}
}

// CleanupExpired removes every expired entry in one pass, persists once, and
// returns the number removed. Safe to call repeatedly; a second call with no
// intervening writes removes nothing.
func (s *Store) CleanupExpired() int {
	var removed int
	for key, e := range s.entries {
		if s.expired(e) {
			delete(s.entries, key)
			removed++
		}
	}
	if removed > 0 {
		s.save()
	}
	return removed
}

// Stats reports the namespace's entry count, backing file size, and how many
// entries a cleanup pass would remove, without removing them.
func (s *Store) Stats() Stats {
	st := Stats{TotalEntries: len(s.entries)}
	if fi, err := os.Stat(s.path); err == nil {
		st.StorageSize = fi.Size()
	}
	for _, e := range s.entries {
		if s.expired(e) {
			st.ExpiredEntries++
		}
	}
	return st
}

func (s *Store) expired(e Entry) bool {
	return s.now().Sub(e.StoredAt) > s.maxAge
}

func (s *Store) save() {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		log.Printf("Warning: could not encode cache %s: %v", s.name, err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		log.Printf("Warning: could not save cache %s: %v", s.path, err)
	}
}
