package usecase

import (
	"strings"

	"github.com/gifthelper/backend/internal/domain"
)

// NormalizeProfile canonicalizes a raw search profile before scoring.
// Tag-like scalar fields are trimmed and lower-cased; interest tags are
// deduplicated preserving first occurrence; free-text fields keep their
// casing (downstream substring matching lower-cases on demand); inverted
// budget bounds are swapped. Normalization is idempotent and never fails.
func NormalizeProfile(profile domain.SearchProfile) domain.SearchProfile {
	budgetMin := profile.BudgetMin
	budgetMax := profile.BudgetMax
	if budgetMin != nil && budgetMax != nil && *budgetMin > *budgetMax {
		budgetMin, budgetMax = budgetMax, budgetMin
	}

	return domain.SearchProfile{
		Relationship:         normalizeTag(profile.Relationship),
		Occasion:             normalizeTag(profile.Occasion),
		BudgetMin:            budgetMin,
		BudgetMax:            budgetMax,
		InterestTags:         normalizeInterestTags(profile.InterestTags),
		InterestFreeText:     strings.TrimSpace(profile.InterestFreeText),
		Constraints:          strings.TrimSpace(profile.Constraints),
		Style:                normalizeTag(profile.Style),
		ShippingTimeline:     normalizeTag(profile.ShippingTimeline),
		AgeRange:             normalizeTag(profile.AgeRange),
		AlreadyHasEverything: profile.AlreadyHasEverything,
	}
}

// normalizeInterestTags trims, lower-cases, drops blanks, and dedupes,
// keeping the relative order of first occurrence
func normalizeInterestTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))

	for _, raw := range tags {
		tag := normalizeTag(raw)
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
