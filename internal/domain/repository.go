package domain

import "context"

// CatalogProvider serves the normalized gift catalog. Implementations must
// return the same snapshot on every call and perform the underlying load
// at most once per process.
type CatalogProvider interface {
	GetCatalog(ctx context.Context) ([]CatalogItem, error)
}

// CatalogSource reads raw catalog records from a backing store
// (seed file, embedded data, remote document).
type CatalogSource interface {
	Load(ctx context.Context) ([]CatalogItem, error)
}
