package catalog

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gifthelper/backend/internal/domain"
)

// Store caches the normalized gift catalog for the process lifetime.
// The first GetCatalog call triggers the load; every later call returns the
// same snapshot without touching the lock. Double-checked locking keeps the
// load-and-normalize pass to exactly one execution even when several
// requests race on a cold cache.
type Store struct {
	source   domain.CatalogSource
	mu       sync.Mutex
	snapshot atomic.Pointer[[]domain.CatalogItem]
}

// NewStore creates a catalog store backed by the given source
func NewStore(source domain.CatalogSource) *Store {
	return &Store{source: source}
}

// GetCatalog returns the normalized catalog snapshot, loading it on first use.
// A failed load (malformed source, cancellation) caches nothing, so a later
// call can retry; an absent source caches an empty catalog.
func (s *Store) GetCatalog(ctx context.Context) ([]domain.CatalogItem, error) {
	if cached := s.snapshot.Load(); cached != nil {
		return *cached, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Second check: another caller may have finished the load while we
	// waited on the lock.
	if cached := s.snapshot.Load(); cached != nil {
		return *cached, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	normalized := make([]domain.CatalogItem, 0, len(items))
	for _, item := range items {
		normalized = append(normalized, normalizeItem(item))
	}

	s.snapshot.Store(&normalized)
	return normalized, nil
}

// normalizeItem canonicalizes a raw seed record: trims strings, lower-cases
// tag tokens, dedupes tag lists, clamps prices to >= 0 and orders the price
// band min <= max.
func normalizeItem(item domain.CatalogItem) domain.CatalogItem {
	item.ID = normalizeTag(item.ID)
	item.Title = strings.TrimSpace(item.Title)
	item.Category = normalizeTag(item.Category)
	item.Notes = strings.TrimSpace(item.Notes)
	item.StoreSearchTerms = strings.TrimSpace(item.StoreSearchTerms)

	if item.MinPrice < 0 {
		item.MinPrice = 0
	}
	if item.MaxPrice < 0 {
		item.MaxPrice = 0
	}
	if item.MinPrice > item.MaxPrice {
		item.MinPrice, item.MaxPrice = item.MaxPrice, item.MinPrice
	}

	item.RelationshipTags = normalizeTagList(item.RelationshipTags)
	item.OccasionTags = normalizeTagList(item.OccasionTags)
	item.InterestTags = normalizeTagList(item.InterestTags)
	item.StyleTags = normalizeTagList(item.StyleTags)
	item.ConstraintTags = normalizeTagList(item.ConstraintTags)

	return item
}

// normalizeTagList trims, lower-cases, drops blanks, and dedupes a tag list
func normalizeTagList(values []string) []string {
	result := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))

	for _, value := range values {
		tag := normalizeTag(value)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}

	return result
}

func normalizeTag(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
