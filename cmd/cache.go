// file: cmd/cache.go
// version: 1.0.0
// guid: 1e7c4a9d-5f2b-4d8e-a6c3-8b0f5d2a7e4c

package cmd

import (
	"fmt"
	"slices"

	"github.com/frenchtools/cj/internal/cache"
	"github.com/frenchtools/cj/internal/config"
	"github.com/spf13/cobra"
)

var cacheName string

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the shared French tools caches",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		stores, err := openStores()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		per, total := cache.StatsAll(stores)
		if total.TotalEntries == 0 {
			fmt.Fprintln(w, "No cached data found")
			return nil
		}
		fmt.Fprintf(w, "%-16s %8s %10s %8s\n", "Cache", "Entries", "Size", "Expired")
		for _, s := range stores {
			st := per[s.Name()]
			if st.TotalEntries == 0 {
				continue
			}
			fmt.Fprintf(w, "%-16s %8d %10s %8d\n",
				s.Name(), st.TotalEntries, cache.FormatSize(st.StorageSize), st.ExpiredEntries)
		}
		fmt.Fprintf(w, "\nTotal: %d entries, %s\n", total.TotalEntries, cache.FormatSize(total.StorageSize))
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		stores, err := openStores()
		if err != nil {
			return err
		}
		cleared := cache.ClearAll(stores)
		if cleared == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No caches to clear")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d cache(s)\n", cleared)
		return nil
	},
}

var cacheCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove expired cache entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		stores, err := openStores()
		if err != nil {
			return err
		}
		removed := cache.CleanupExpiredAll(stores)
		if removed == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No expired entries found")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d expired entr%s\n", removed, plural(removed, "y", "ies"))
		return nil
	},
}

// openStores opens either every known namespace or just the one named by
// --name.
func openStores() ([]*cache.Store, error) {
	cfgs := config.AppConfig.Namespaces()
	if cacheName != "" {
		i := slices.IndexFunc(cfgs, func(c cache.NamespaceConfig) bool { return c.Name == cacheName })
		if i < 0 {
			return nil, fmt.Errorf("unknown cache %q (known: %v)", cacheName, cache.KnownNamespaces)
		}
		cfgs = cfgs[i : i+1]
	}
	return cache.OpenAll(config.AppConfig.CacheDir, cfgs), nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func init() {
	cacheCmd.PersistentFlags().StringVar(&cacheName, "name", "", "limit to one cache namespace")
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheCleanupCmd)
}
