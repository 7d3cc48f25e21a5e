package ports

import (
	"context"

	"solview/internal/core/domain"
)

// AssetSource defines the port for the external asset-indexing collaborator.
type AssetSource interface {
	// FetchAssets returns the flat, unordered asset list for an address.
	// One call per pipeline run; the source does not page or retry.
	FetchAssets(ctx context.Context, address string, view domain.ViewType) ([]domain.Asset, error)
}

// GalleryCache defines the port for the read-through result cache. Entries
// hold grouped-but-unsorted artist groups so one entry can serve every sort
// key and quantity filter for its (address, view, category) key.
type GalleryCache interface {
	// Get returns the cached groups for a key, or ok=false on a miss.
	// Unreadable or expired entries are misses, never errors.
	Get(key string) ([]domain.ArtistGroup, bool)

	// Set stores the groups for a key, replacing any previous entry.
	Set(key string, groups []domain.ArtistGroup) error

	// Purge drops every cache entry and reports how many were removed.
	Purge() (int, error)
}
