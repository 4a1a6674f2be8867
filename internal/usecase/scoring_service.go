package usecase

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/gifthelper/backend/internal/domain"
)

// Signal point values. These are heuristic tuning constants carried over
// from the original catalog calibration; change them together with the
// seed data, not independently.
const (
	relationshipExactPoints   = 30
	relationshipPartialPoints = 15
	occasionExactPoints       = 20
	occasionPartialPoints     = 10
	interestPointsPerMatch    = 8
	interestPointsCap         = 40
	styleMatchPoints          = 15
	budgetAlignedPoints       = 25
	budgetSlightlyOverPoints  = 10
	budgetOutsidePoints       = -20
	timelineRiskPenalty       = 15
	ageRangePoints            = 8
	lowClutterPoints          = 8
)

// budgetOverTolerance is how far an item's floor price may exceed the
// budget ceiling (as a fraction of the ceiling) and still earn the
// "slightly over budget" consolation points.
const budgetOverTolerance = 0.10

// rejectedScore is the sentinel for items disqualified by constraints
const rejectedScore = -999

// wildcardTag matches any profile answer at partial strength
const wildcardTag = "any"

// tagTokenSeparators split compound tags like "best-friend" or "mom/dad"
// into comparable tokens
const tagTokenSeparators = " -/_,;.:|&"

// scoredCandidate pairs a catalog item with its score for one ranking pass.
// It never outlives the pass and is never shared across requests.
type scoredCandidate struct {
	item        domain.CatalogItem
	score       int
	rejected    bool
	rationale   string
	matchedTags []string
}

// ScoringConfig holds configuration for the scoring service
type ScoringConfig struct {
	EnableDebugLogging bool
}

// ScoringService computes a score and a human-readable rationale for each
// catalog item against a normalized search profile
type ScoringService struct {
	enableDebugLogging bool
}

// NewScoringService creates a new scoring service with the given configuration
func NewScoringService(config ScoringConfig) *ScoringService {
	return &ScoringService{
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// scoreItem evaluates one catalog item against a normalized profile.
// Constraint rejection is checked first and short-circuits all additive
// signals. The profile must already be normalized.
func (s *ScoringService) scoreItem(
	item domain.CatalogItem,
	profile domain.SearchProfile,
	rejectTags map[string]bool,
) scoredCandidate {
	for _, tag := range item.ConstraintTags {
		if rejectTags[tag] {
			if s.enableDebugLogging {
				log.Printf("[SCORE] %q rejected: constraint tag %q conflicts", item.Title, tag)
			}
			return scoredCandidate{
				item:      item,
				score:     rejectedScore,
				rejected:  true,
				rationale: "Constraints conflict.",
			}
		}
	}

	score := 0
	var reasons []string
	var matchedTags []string

	relationshipScore, relationshipMatch := matchTags(
		item.RelationshipTags, profile.Relationship,
		relationshipExactPoints, relationshipPartialPoints)
	score += relationshipScore
	if relationshipMatch != "" {
		reasons = append(reasons, fmt.Sprintf("relationship match (%s)", relationshipMatch))
		matchedTags = append(matchedTags, relationshipMatch)
	}

	occasionScore, occasionMatch := matchTags(
		item.OccasionTags, profile.Occasion,
		occasionExactPoints, occasionPartialPoints)
	score += occasionScore
	if occasionMatch != "" {
		reasons = append(reasons, fmt.Sprintf("occasion fit (%s)", occasionMatch))
		matchedTags = append(matchedTags, occasionMatch)
	}

	interests := interestMatches(item, profile)
	interestScore := len(interests) * interestPointsPerMatch
	if interestScore > interestPointsCap {
		interestScore = interestPointsCap
	}
	score += interestScore
	if len(interests) > 0 {
		reasons = append(reasons, fmt.Sprintf("interest overlap (%s)", strings.Join(interests, ", ")))
		matchedTags = append(matchedTags, interests...)
	}

	if profile.Style != "" && containsTag(item.StyleTags, profile.Style) {
		score += styleMatchPoints
		reasons = append(reasons, fmt.Sprintf("style match (%s)", profile.Style))
		matchedTags = append(matchedTags, profile.Style)
	}

	budgetScore, budgetReason := scoreBudget(item, profile)
	score += budgetScore
	if budgetReason != "" {
		reasons = append(reasons, budgetReason)
	}

	if profile.ShippingTimeline == "need-fast" &&
		(containsTag(item.ConstraintTags, "custom-made") || containsTag(item.ConstraintTags, "slow-ship")) {
		score -= timelineRiskPenalty
		reasons = append(reasons, "slower fulfillment risk for urgent timeline")
	}

	if profile.AgeRange != "" {
		ageTag := "age-" + profile.AgeRange
		if containsTag(item.InterestTags, ageTag) {
			score += ageRangePoints
			reasons = append(reasons, fmt.Sprintf("age-range fit (%s)", profile.AgeRange))
			matchedTags = append(matchedTags, ageTag)
		}
	}

	if profile.AlreadyHasEverything && !containsTag(item.ConstraintTags, "clutter") {
		score += lowClutterPoints
		reasons = append(reasons, "low-clutter friendly option")
	}

	if s.enableDebugLogging {
		log.Printf("[SCORE] %q scored %d (reasons: %v)", item.Title, score, reasons)
	}

	return scoredCandidate{
		item:        item,
		score:       score,
		rationale:   buildRationale(item, reasons),
		matchedTags: dedupeTags(matchedTags),
	}
}

// matchTags is the three-tier tag matcher shared by the relationship and
// occasion signals: exact token equality wins full points, the "any"
// wildcard or a token overlap wins partial points. Returns the points and
// the tag that matched.
func matchTags(itemTags []string, answer string, exactPoints, partialPoints int) (int, string) {
	if answer == "" || len(itemTags) == 0 {
		return 0, ""
	}

	if containsTag(itemTags, answer) {
		return exactPoints, answer
	}

	if containsTag(itemTags, wildcardTag) {
		return partialPoints, wildcardTag
	}

	answerTokens := splitTagTokens(answer)
	for _, tag := range itemTags {
		for token := range splitTagTokens(tag) {
			if answerTokens[token] {
				return partialPoints, tag
			}
		}
	}

	return 0, ""
}

// interestMatches collects item interest tags matched either exactly by the
// profile's interest tags or by substring against tokens of the free-text
// interests. The result preserves first-match order and holds no duplicates.
func interestMatches(item domain.CatalogItem, profile domain.SearchProfile) []string {
	var matches []string
	seen := make(map[string]bool)

	for _, tag := range profile.InterestTags {
		if tag == "" || seen[tag] {
			continue
		}
		if containsTag(item.InterestTags, tag) {
			seen[tag] = true
			matches = append(matches, tag)
		}
	}

	for _, token := range splitTagTokensOrdered(profile.InterestFreeText) {
		for _, tag := range item.InterestTags {
			if strings.Contains(tag, token) {
				if !seen[tag] {
					seen[tag] = true
					matches = append(matches, tag)
				}
				break
			}
		}
	}

	return matches
}

// scoreBudget rates the item's price band against the profile budget.
// Skipped entirely when the profile has no bounds; a missing min means 0
// and a missing max means unbounded.
func scoreBudget(item domain.CatalogItem, profile domain.SearchProfile) (int, string) {
	if profile.BudgetMin == nil && profile.BudgetMax == nil {
		return 0, ""
	}

	minBudget := 0.0
	if profile.BudgetMin != nil {
		minBudget = *profile.BudgetMin
	}
	maxBudget := math.MaxFloat64
	if profile.BudgetMax != nil {
		maxBudget = *profile.BudgetMax
	}
	if minBudget > maxBudget {
		minBudget, maxBudget = maxBudget, minBudget
	}

	if item.MaxPrice >= minBudget && item.MinPrice <= maxBudget {
		return budgetAlignedPoints, "budget aligned"
	}

	if item.MinPrice > maxBudget && maxBudget > 0 {
		overBy := (item.MinPrice - maxBudget) / maxBudget
		if overBy <= budgetOverTolerance {
			return budgetSlightlyOverPoints, "slightly over budget"
		}
	}

	return budgetOutsidePoints, "outside budget range"
}

// buildRationale assembles the human-readable explanation: fired signal
// clauses, the estimated price range, and the item notes when present
func buildRationale(item domain.CatalogItem, reasons []string) string {
	reasonText := "General match from your profile."
	if len(reasons) > 0 {
		reasonText = fmt.Sprintf("Matches %s.", strings.Join(reasons, "; "))
	}

	rationale := fmt.Sprintf("%s Estimated range: %s.", reasonText, formatPriceRange(item.MinPrice, item.MaxPrice))
	if item.Notes != "" {
		rationale += " " + item.Notes
	}

	return rationale
}

// formatPriceRange renders the band as "$25" when the bounds agree,
// else "$25-$45"
func formatPriceRange(minPrice, maxPrice float64) string {
	if minPrice == maxPrice {
		return fmt.Sprintf("$%.0f", minPrice)
	}
	return fmt.Sprintf("$%.0f-$%.0f", minPrice, maxPrice)
}

// splitTagTokens tokenizes a tag-like string into a lookup set. Tokens of
// one character or less are noise and dropped.
func splitTagTokens(value string) map[string]bool {
	tokens := make(map[string]bool)
	for _, token := range splitTagTokensOrdered(value) {
		tokens[token] = true
	}
	return tokens
}

// splitTagTokensOrdered tokenizes like splitTagTokens but keeps first
// occurrence order, for deterministic iteration
func splitTagTokensOrdered(value string) []string {
	fields := strings.FieldsFunc(strings.ToLower(strings.TrimSpace(value)), func(r rune) bool {
		return strings.ContainsRune(tagTokenSeparators, r)
	})

	var tokens []string
	seen := make(map[string]bool, len(fields))
	for _, field := range fields {
		if len(field) <= 1 || seen[field] {
			continue
		}
		seen[field] = true
		tokens = append(tokens, field)
	}

	return tokens
}

// containsTag checks exact token equality against a tag list
func containsTag(tags []string, value string) bool {
	for _, tag := range tags {
		if tag == value {
			return true
		}
	}
	return false
}

// dedupeTags removes duplicates preserving first occurrence
func dedupeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	result := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}

	return result
}
