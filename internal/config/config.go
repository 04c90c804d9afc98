// file: internal/config/config.go
// version: 2.0.0
// guid: 7b8c9d0e-1f2a-3b4c-5d6e-7f8a9b0c1d2e

package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/frenchtools/cj/internal/cache"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	CacheDir       string
	ProviderURL    string
	RequestTimeout time.Duration

	// Max age per cache namespace, in days. The conjugation of "manger"
	// changes a lot less often than a dictionary page, hence the spread.
	ConjugationMaxAgeDays   int
	WordReferenceMaxAgeDays int
	LarousseMaxAgeDays      int
}

var AppConfig Config

// InitConfig initializes the application configuration from viper.
func InitConfig() {
	viper.SetDefault("conjugation_max_age_days", 30)
	viper.SetDefault("wordreference_max_age_days", 7)
	viper.SetDefault("larousse_max_age_days", 14)
	viper.SetDefault("request_timeout", "30s")

	AppConfig = Config{
		CacheDir:                viper.GetString("cache_dir"),
		ProviderURL:             viper.GetString("provider_url"),
		RequestTimeout:          viper.GetDuration("request_timeout"),
		ConjugationMaxAgeDays:   viper.GetInt("conjugation_max_age_days"),
		WordReferenceMaxAgeDays: viper.GetInt("wordreference_max_age_days"),
		LarousseMaxAgeDays:      viper.GetInt("larousse_max_age_days"),
	}

	if AppConfig.CacheDir == "" {
		AppConfig.CacheDir = DefaultCacheDir()
	}
	if AppConfig.RequestTimeout <= 0 {
		AppConfig.RequestTimeout = 30 * time.Second
	}
}

// DefaultCacheDir is the shared cache location for all the French tools.
func DefaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		log.Printf("Warning: could not determine user cache dir: %v", err)
		return "french-tools"
	}
	return filepath.Join(base, "french-tools")
}

// Namespaces returns the cache namespace set with each one's configured
// expiry, in the fixed known order.
func (c Config) Namespaces() []cache.NamespaceConfig {
	days := map[string]int{
		cache.NamespaceConjugation:   c.ConjugationMaxAgeDays,
		cache.NamespaceWordReference: c.WordReferenceMaxAgeDays,
		cache.NamespaceLarousse:      c.LarousseMaxAgeDays,
	}
	out := make([]cache.NamespaceConfig, 0, len(cache.KnownNamespaces))
	for _, name := range cache.KnownNamespaces {
		out = append(out, cache.NamespaceConfig{
			Name:   name,
			MaxAge: time.Duration(days[name]) * 24 * time.Hour,
		})
	}
	return out
}

// NamespaceMaxAge returns the configured max age for one namespace.
func (c Config) NamespaceMaxAge(name string) time.Duration {
	for _, ns := range c.Namespaces() {
		if ns.Name == name {
			return ns.MaxAge
		}
	}
	return 0
}
