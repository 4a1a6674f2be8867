package usecase

import (
	"reflect"
	"strings"
	"testing"

	"github.com/gifthelper/backend/internal/domain"
)

func TestMatchTags(t *testing.T) {
	tests := []struct {
		name       string
		itemTags   []string
		answer     string
		wantPoints int
		wantTag    string
	}{
		{
			name:       "exact match earns full points",
			itemTags:   []string{"sister", "friend"},
			answer:     "sister",
			wantPoints: 30,
			wantTag:    "sister",
		},
		{
			name:       "wildcard earns partial points",
			itemTags:   []string{"any"},
			answer:     "coworker",
			wantPoints: 15,
			wantTag:    "any",
		},
		{
			name:       "token overlap earns partial points",
			itemTags:   []string{"best-friend"},
			answer:     "friend",
			wantPoints: 15,
			wantTag:    "best-friend",
		},
		{
			name:       "exact beats wildcard",
			itemTags:   []string{"any", "sister"},
			answer:     "sister",
			wantPoints: 30,
			wantTag:    "sister",
		},
		{
			name:       "no overlap scores zero",
			itemTags:   []string{"sister"},
			answer:     "coworker",
			wantPoints: 0,
			wantTag:    "",
		},
		{
			name:       "blank answer scores zero",
			itemTags:   []string{"sister"},
			answer:     "",
			wantPoints: 0,
			wantTag:    "",
		},
		{
			name:       "empty tag list scores zero",
			itemTags:   nil,
			answer:     "sister",
			wantPoints: 0,
			wantTag:    "",
		},
		{
			name:       "single-character tokens are ignored",
			itemTags:   []string{"a-b"},
			answer:     "a b",
			wantPoints: 0,
			wantTag:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, tag := matchTags(tt.itemTags, tt.answer, 30, 15)
			if points != tt.wantPoints {
				t.Errorf("points = %d, want %d", points, tt.wantPoints)
			}
			if tag != tt.wantTag {
				t.Errorf("tag = %q, want %q", tag, tt.wantTag)
			}
		})
	}
}

func TestSplitTagTokensOrdered(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "splits on every separator",
			input: "mom/dad, best-friend; co_worker: a|b & c.d",
			want:  []string{"mom", "dad", "best", "friend", "co", "worker"},
		},
		{
			name:  "lower-cases and trims",
			input: "  Board Games  ",
			want:  []string{"board", "games"},
		},
		{
			name:  "dedupes preserving order",
			input: "tea tea coffee tea",
			want:  []string{"tea", "coffee"},
		},
		{
			name:  "blank yields nothing",
			input: "   ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitTagTokensOrdered(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitTagTokensOrdered(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestScoreBudget(t *testing.T) {
	item := domain.CatalogItem{MinPrice: 60, MaxPrice: 90}

	tests := []struct {
		name       string
		profile    domain.SearchProfile
		wantPoints int
		wantReason string
	}{
		{
			name:       "no bounds skips the signal",
			profile:    domain.SearchProfile{},
			wantPoints: 0,
			wantReason: "",
		},
		{
			name:       "overlapping band is aligned",
			profile:    domain.SearchProfile{BudgetMin: floatPtr(50), BudgetMax: floatPtr(100)},
			wantPoints: 25,
			wantReason: "budget aligned",
		},
		{
			name:       "missing max means unbounded",
			profile:    domain.SearchProfile{BudgetMin: floatPtr(50)},
			wantPoints: 25,
			wantReason: "budget aligned",
		},
		{
			name:       "missing min means zero",
			profile:    domain.SearchProfile{BudgetMax: floatPtr(70)},
			wantPoints: 25,
			wantReason: "budget aligned",
		},
		{
			name:       "floor within ten percent over ceiling",
			profile:    domain.SearchProfile{BudgetMax: floatPtr(55)},
			wantPoints: 10,
			wantReason: "slightly over budget",
		},
		{
			name:       "floor far over ceiling",
			profile:    domain.SearchProfile{BudgetMax: floatPtr(40)},
			wantPoints: -20,
			wantReason: "outside budget range",
		},
		{
			name:       "band below budget floor",
			profile:    domain.SearchProfile{BudgetMin: floatPtr(200), BudgetMax: floatPtr(300)},
			wantPoints: -20,
			wantReason: "outside budget range",
		},
		{
			name:       "zero ceiling gets no over-budget tolerance",
			profile:    domain.SearchProfile{BudgetMax: floatPtr(0)},
			wantPoints: -20,
			wantReason: "outside budget range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, reason := scoreBudget(item, tt.profile)
			if points != tt.wantPoints {
				t.Errorf("points = %d, want %d", points, tt.wantPoints)
			}
			if reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", reason, tt.wantReason)
			}
		})
	}
}

func TestScoreItem(t *testing.T) {
	svc := NewScoringService(ScoringConfig{})

	t.Run("rejects on constraint conflict before scoring", func(t *testing.T) {
		item := domain.CatalogItem{
			Title:            "Gourmet Chocolate Box",
			RelationshipTags: []string{"sister"},
			OccasionTags:     []string{"birthday"},
			ConstraintTags:   []string{"food"},
		}
		profile := NormalizeProfile(domain.SearchProfile{
			Relationship: "sister",
			Occasion:     "birthday",
			Constraints:  "no food please",
		})

		result := svc.scoreItem(item, profile, RejectTags(profile))

		if !result.rejected {
			t.Fatal("expected item to be rejected")
		}
		if result.score != -999 {
			t.Errorf("score = %d, want -999 sentinel", result.score)
		}
		if result.rationale != "Constraints conflict." {
			t.Errorf("rationale = %q, want constraints conflict", result.rationale)
		}
		if len(result.matchedTags) != 0 {
			t.Errorf("matchedTags = %v, want empty", result.matchedTags)
		}
	})

	t.Run("sums relationship, occasion, and budget signals", func(t *testing.T) {
		item := domain.CatalogItem{
			Title:            "Spa Day Kit",
			RelationshipTags: []string{"sister"},
			OccasionTags:     []string{"birthday"},
			MinPrice:         60,
			MaxPrice:         90,
		}
		profile := NormalizeProfile(domain.SearchProfile{
			Relationship: "Sister",
			Occasion:     "Birthday",
			BudgetMin:    floatPtr(50),
			BudgetMax:    floatPtr(100),
		})

		result := svc.scoreItem(item, profile, RejectTags(profile))

		if result.score < 75 {
			t.Errorf("score = %d, want >= 75 (30+20+25)", result.score)
		}
		for _, clause := range []string{"relationship match", "occasion fit", "budget aligned"} {
			if !strings.Contains(result.rationale, clause) {
				t.Errorf("rationale %q missing clause %q", result.rationale, clause)
			}
		}
		wantTags := []string{"sister", "birthday"}
		if !reflect.DeepEqual(result.matchedTags, wantTags) {
			t.Errorf("matchedTags = %v, want %v", result.matchedTags, wantTags)
		}
	})

	t.Run("caps interest overlap at forty points", func(t *testing.T) {
		item := domain.CatalogItem{
			Title:        "Hobby Mega Bundle",
			InterestTags: []string{"reading", "cooking", "hiking", "gaming", "painting", "music"},
		}
		profile := NormalizeProfile(domain.SearchProfile{
			InterestTags: []string{"reading", "cooking", "hiking", "gaming", "painting", "music"},
		})

		result := svc.scoreItem(item, profile, RejectTags(profile))

		if result.score != 40 {
			t.Errorf("score = %d, want 40 (6 matches capped)", result.score)
		}
	})

	t.Run("matches free-text interest tokens by substring", func(t *testing.T) {
		item := domain.CatalogItem{
			Title:        "Star Chart Print",
			InterestTags: []string{"astronomy", "wall-art"},
		}
		profile := NormalizeProfile(domain.SearchProfile{
			InterestFreeText: "Loves Astronomy documentaries",
		})

		result := svc.scoreItem(item, profile, RejectTags(profile))

		if result.score != 8 {
			t.Errorf("score = %d, want 8 (one substring match)", result.score)
		}
		if !strings.Contains(result.rationale, "interest overlap (astronomy)") {
			t.Errorf("rationale = %q, want astronomy overlap clause", result.rationale)
		}
	})

	t.Run("style match adds fifteen", func(t *testing.T) {
		item := domain.CatalogItem{Title: "Weighted Blanket", StyleTags: []string{"cozy", "practical"}}
		profile := NormalizeProfile(domain.SearchProfile{Style: "Cozy"})

		result := svc.scoreItem(item, profile, RejectTags(profile))

		if result.score != 15 {
			t.Errorf("score = %d, want 15", result.score)
		}
		if !strings.Contains(result.rationale, "style match (cozy)") {
			t.Errorf("rationale = %q, want style clause", result.rationale)
		}
	})

	t.Run("urgent timeline penalizes slow items by exactly fifteen", func(t *testing.T) {
		slow := domain.CatalogItem{
			Title:            "Engraved Watch",
			RelationshipTags: []string{"partner"},
			OccasionTags:     []string{"anniversary"},
			ConstraintTags:   []string{"custom-made"},
		}
		fast := slow
		fast.ConstraintTags = nil

		profile := NormalizeProfile(domain.SearchProfile{
			Relationship:     "partner",
			Occasion:         "anniversary",
			ShippingTimeline: "need-fast",
		})
		rejectTags := RejectTags(profile)

		slowResult := svc.scoreItem(slow, profile, rejectTags)
		fastResult := svc.scoreItem(fast, profile, rejectTags)

		if diff := fastResult.score - slowResult.score; diff != 15 {
			t.Errorf("penalty = %d, want exactly 15", diff)
		}
		if !strings.Contains(slowResult.rationale, "slower fulfillment risk") {
			t.Errorf("rationale = %q, want fulfillment risk clause", slowResult.rationale)
		}
	})

	t.Run("age-range tag adds eight", func(t *testing.T) {
		item := domain.CatalogItem{Title: "Starter Synth", InterestTags: []string{"music", "age-teen"}}
		profile := NormalizeProfile(domain.SearchProfile{AgeRange: "Teen"})

		result := svc.scoreItem(item, profile, RejectTags(profile))

		if result.score != 8 {
			t.Errorf("score = %d, want 8", result.score)
		}
		wantTags := []string{"age-teen"}
		if !reflect.DeepEqual(result.matchedTags, wantTags) {
			t.Errorf("matchedTags = %v, want %v", result.matchedTags, wantTags)
		}
	})

	t.Run("low-clutter bonus for has-everything profiles", func(t *testing.T) {
		experience := domain.CatalogItem{Title: "Concert Tickets"}
		trinket := domain.CatalogItem{Title: "Desk Figurine", ConstraintTags: []string{"clutter"}}

		profile := NormalizeProfile(domain.SearchProfile{AlreadyHasEverything: true})
		rejectTags := RejectTags(profile)

		experienceResult := svc.scoreItem(experience, profile, rejectTags)
		if experienceResult.score != 8 {
			t.Errorf("experience score = %d, want 8", experienceResult.score)
		}

		// has-everything also puts "clutter" in the reject set
		trinketResult := svc.scoreItem(trinket, profile, rejectTags)
		if !trinketResult.rejected {
			t.Error("expected clutter item to be rejected")
		}
	})

	t.Run("no fired signals yields the general rationale", func(t *testing.T) {
		item := domain.CatalogItem{Title: "Mystery Box", MinPrice: 30, MaxPrice: 30}

		result := svc.scoreItem(item, NormalizeProfile(domain.SearchProfile{}), map[string]bool{})

		want := "General match from your profile. Estimated range: $30."
		if result.rationale != want {
			t.Errorf("rationale = %q, want %q", result.rationale, want)
		}
	})

	t.Run("rationale appends price band and notes", func(t *testing.T) {
		item := domain.CatalogItem{
			Title:            "Tea Sampler",
			RelationshipTags: []string{"friend"},
			MinPrice:         20,
			MaxPrice:         35,
			Notes:            "Pairs well with a handwritten card.",
		}
		profile := NormalizeProfile(domain.SearchProfile{Relationship: "friend"})

		result := svc.scoreItem(item, profile, RejectTags(profile))

		want := "Matches relationship match (friend). Estimated range: $20-$35. Pairs well with a handwritten card."
		if result.rationale != want {
			t.Errorf("rationale = %q, want %q", result.rationale, want)
		}
	})
}

func TestFormatPriceRange(t *testing.T) {
	if got := formatPriceRange(30, 30); got != "$30" {
		t.Errorf("formatPriceRange(30, 30) = %q, want $30", got)
	}
	if got := formatPriceRange(20, 35); got != "$20-$35" {
		t.Errorf("formatPriceRange(20, 35) = %q, want $20-$35", got)
	}
}
