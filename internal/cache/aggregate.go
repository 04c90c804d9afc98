// file: internal/cache/aggregate.go
// version: 1.0.0
// guid: b7d2e9f4-1c6a-4e8b-9d3f-7a5c2b8e0d4a

package cache

import (
	"fmt"
	"time"
)

// NamespaceConfig pairs a namespace with its expiry policy.
type NamespaceConfig struct {
	Name   string
	MaxAge time.Duration
}

// OpenAll opens every configured namespace under one cache directory. The
// namespaces stay independent; this is plumbing for the aggregate
// operations below.
func OpenAll(dir string, cfgs []NamespaceConfig) []*Store {
	stores := make([]*Store, 0, len(cfgs))
	for _, c := range cfgs {
		stores = append(stores, Open(dir, c.Name, c.MaxAge))
	}
	return stores
}

// StatsAll collects per-namespace stats and their totals.
func StatsAll(stores []*Store) (map[string]Stats, Stats) {
	per := make(map[string]Stats, len(stores))
	var total Stats
	for _, s := range stores {
		st := s.Stats()
		per[s.Name()] = st
		total.TotalEntries += st.TotalEntries
		total.StorageSize += st.StorageSize
		total.ExpiredEntries += st.ExpiredEntries
	}
	return per, total
}

// ClearAll clears every namespace and returns how many held entries.
func ClearAll(stores []*Store) int {
	var cleared int
	for _, s := range stores {
		if len(s.entries) > 0 {
			cleared++
		}
		s.Clear()
	}
	return cleared
}

// CleanupExpiredAll runs a cleanup pass over every namespace and returns the
// total number of entries removed.
func CleanupExpiredAll(stores []*Store) int {
	var removed int
	for _, s := range stores {
		removed += s.CleanupExpired()
	}
	return removed
}

// FormatSize renders a byte count for humans.
func FormatSize(n int64) string {
	if n == 0 {
		return "0 B"
	}
	units := []string{"B", "KB", "MB", "GB"}
	size := float64(n)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f %s", size, units[i])
}
