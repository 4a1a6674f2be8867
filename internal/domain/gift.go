package domain

// CatalogItem represents one candidate gift idea from the seed catalog.
// Items are normalized once at load time and immutable afterwards.
type CatalogItem struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Category         string   `json:"category"`
	MinPrice         float64  `json:"minPrice"`
	MaxPrice         float64  `json:"maxPrice"`
	RelationshipTags []string `json:"relationshipTags"`
	OccasionTags     []string `json:"occasionTags"`
	InterestTags     []string `json:"interestTags"`
	StyleTags        []string `json:"styleTags"`
	ConstraintTags   []string `json:"constraintTags"`
	Notes            string   `json:"notes"`
	StoreSearchTerms string   `json:"storeSearchTerms"`
}

// SearchProfile represents what the requester told us about the recipient
// and the occasion. Tag-like fields are free-form strings, not closed enums.
type SearchProfile struct {
	Relationship         string   `json:"relationship"`
	Occasion             string   `json:"occasion"`
	BudgetMin            *float64 `json:"budgetMin,omitempty"`
	BudgetMax            *float64 `json:"budgetMax,omitempty"`
	InterestTags         []string `json:"interestTags"`
	InterestFreeText     string   `json:"interestFreeText,omitempty"`
	Constraints          string   `json:"constraints,omitempty"`
	Style                string   `json:"style"`
	ShippingTimeline     string   `json:"shippingTimeline"`
	AgeRange             string   `json:"ageRange,omitempty"`
	AlreadyHasEverything bool     `json:"alreadyHasEverything"`
}

// Suggestion is one ranked result returned to the caller.
type Suggestion struct {
	ItemID      string  `json:"itemId"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	MinPrice    float64 `json:"minPrice"`
	MaxPrice    float64 `json:"maxPrice"`
	WhyItFits   string  `json:"whyItFits"`
	SearchURL   string  `json:"searchUrl"`
	MatchedTags string  `json:"matchedTags,omitempty"`
	Score       int     `json:"score"`
}
