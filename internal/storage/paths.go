// Package storage persists search results between runs.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// CacheDirEnv overrides the location of the analysis cache.
const CacheDirEnv = "VESPER_CACHE_DIR"

// DatabaseDir returns the directory holding the analysis cache, creating it
// if needed: $VESPER_CACHE_DIR when set, otherwise vesper/analysis under the
// user cache directory ($XDG_CACHE_HOME or ~/.cache, ~/Library/Caches,
// %LocalAppData%). Results can always be recomputed, so a cache location
// rather than a data location is used.
func DatabaseDir() (string, error) {
	dir := os.Getenv(CacheDirEnv)
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return "", fmt.Errorf("locate analysis cache: %w", err)
		}
		dir = filepath.Join(base, "vesper", "analysis")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create analysis cache dir: %w", err)
	}
	return dir, nil
}
