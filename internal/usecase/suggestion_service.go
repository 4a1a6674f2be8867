package usecase

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"sort"
	"strings"

	"github.com/gifthelper/backend/internal/domain"
)

// Result list bounds: callers always get at least one slot and never more
// than the catalog shortlist cap.
const (
	minSuggestions = 1
	maxSuggestions = 20
)

// searchURLFormat is the public search page the generated links point at
const searchURLFormat = "https://www.google.com/search?q=%s"

// SuggestionConfig holds configuration for the suggestion service
type SuggestionConfig struct {
	EnableDebugLogging bool
}

// SuggestionService ranks the gift catalog against a search profile and
// returns an explained shortlist. The catalog provider is the only shared
// state; everything else is request-local.
type SuggestionService struct {
	catalog            domain.CatalogProvider
	scorer             *ScoringService
	enableDebugLogging bool
}

// NewSuggestionService creates a new suggestion service with dependencies
func NewSuggestionService(catalog domain.CatalogProvider, config SuggestionConfig) *SuggestionService {
	return &SuggestionService{
		catalog:            catalog,
		scorer:             NewScoringService(ScoringConfig{EnableDebugLogging: config.EnableDebugLogging}),
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// GetSuggestions scores every catalog item against the profile and returns
// the ranked top maxResults (clamped to [1,20]). Items whose constraint tags
// conflict with the profile are excluded outright. On cancellation the call
// returns ctx.Err() rather than a truncated list.
func (s *SuggestionService) GetSuggestions(
	ctx context.Context,
	profile domain.SearchProfile,
	maxResults int,
) ([]domain.Suggestion, error) {
	normalized := NormalizeProfile(profile)
	rejectTags := RejectTags(normalized)

	catalog, err := s.catalog.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	if len(catalog) == 0 {
		return []domain.Suggestion{}, nil
	}

	ranked := make([]scoredCandidate, 0, len(catalog))
	for _, item := range catalog {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		candidate := s.scorer.scoreItem(item, normalized, rejectTags)
		if candidate.rejected {
			continue
		}
		ranked = append(ranked, candidate)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].item.Title < ranked[j].item.Title
	})

	limit := clampMaxResults(maxResults)
	if limit > len(ranked) {
		limit = len(ranked)
	}

	suggestions := make([]domain.Suggestion, 0, limit)
	for _, candidate := range ranked[:limit] {
		suggestions = append(suggestions, buildSuggestion(candidate))
	}

	if s.enableDebugLogging {
		log.Printf("[SUGGEST] %d of %d catalog items ranked, returning %d",
			len(ranked), len(catalog), len(suggestions))
	}

	return suggestions, nil
}

// clampMaxResults bounds the requested result count to [minSuggestions, maxSuggestions]
func clampMaxResults(maxResults int) int {
	if maxResults < minSuggestions {
		return minSuggestions
	}
	if maxResults > maxSuggestions {
		return maxSuggestions
	}
	return maxResults
}

// buildSuggestion converts a ranked candidate into an output record with a
// generated store search link
func buildSuggestion(candidate scoredCandidate) domain.Suggestion {
	searchTerms := candidate.item.StoreSearchTerms
	if searchTerms == "" {
		searchTerms = fmt.Sprintf("%s %s gift", candidate.item.Title, candidate.item.Category)
	}

	suggestion := domain.Suggestion{
		ItemID:    candidate.item.ID,
		Title:     candidate.item.Title,
		Category:  candidate.item.Category,
		MinPrice:  candidate.item.MinPrice,
		MaxPrice:  candidate.item.MaxPrice,
		WhyItFits: candidate.rationale,
		SearchURL: fmt.Sprintf(searchURLFormat, url.QueryEscape(searchTerms)),
		Score:     candidate.score,
	}

	if len(candidate.matchedTags) > 0 {
		suggestion.MatchedTags = strings.Join(candidate.matchedTags, ", ")
	}

	return suggestion
}
