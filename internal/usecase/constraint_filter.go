package usecase

import (
	"strings"

	"github.com/gifthelper/backend/internal/domain"
)

// RejectTags derives the set of constraint tags that disqualify a catalog
// item, from the profile's constraints free text and flags. All substring
// checks run against the lower-cased text. Any catalog item whose constraint
// tags intersect this set is excluded before additive scoring.
func RejectTags(profile domain.SearchProfile) map[string]bool {
	tags := make(map[string]bool)
	constraints := strings.ToLower(profile.Constraints)

	if profile.AlreadyHasEverything {
		tags["clutter"] = true
	}

	if strings.Contains(constraints, "allerg") ||
		strings.Contains(constraints, "non-food") ||
		strings.Contains(constraints, "no food") {
		tags["food"] = true
	}

	if strings.Contains(constraints, "doesn't drink") ||
		strings.Contains(constraints, "doesnt drink") ||
		strings.Contains(constraints, "no alcohol") ||
		strings.Contains(constraints, "sober") {
		tags["alcohol"] = true
	}

	if strings.Contains(constraints, "clutter") ||
		strings.Contains(constraints, "minimalist") {
		tags["clutter"] = true
	}

	if strings.Contains(constraints, "pet") && strings.Contains(constraints, "allerg") {
		tags["pet-unfriendly"] = true
	}

	return tags
}
