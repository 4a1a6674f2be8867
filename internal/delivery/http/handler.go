package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gifthelper/backend/internal/domain"
	"github.com/gifthelper/backend/internal/usecase"
)

// Profile defaults applied when the caller leaves a required field blank,
// matching what the search form pre-selects.
const (
	defaultRelationship = "friend"
	defaultOccasion     = "birthday"
	defaultStyle        = "practical"
	defaultTimeline     = "normal"
	defaultMaxResults   = 20
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	suggestions *usecase.SuggestionService
}

// NewHandler creates a new HTTP handler
func NewHandler(suggestions *usecase.SuggestionService) *Handler {
	return &Handler{suggestions: suggestions}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "gifthelper-backend",
		"version": "1.0.0",
	})
}

// SearchSuggestions ranks the gift catalog against the posted profile.
// The body is a SearchProfile document; maxResults comes from the query
// string and is clamped by the engine.
func (h *Handler) SearchSuggestions(c *gin.Context) {
	if h.suggestions == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "suggestion engine not configured",
		})
		return
	}

	var profile domain.SearchProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid search profile: " + err.Error(),
		})
		return
	}
	applyProfileDefaults(&profile)

	maxResults, err := strconv.Atoi(c.DefaultQuery("maxResults", strconv.Itoa(defaultMaxResults)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "maxResults must be an integer",
		})
		return
	}

	suggestions, err := h.suggestions.GetSuggestions(c.Request.Context(), profile, maxResults)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			c.JSON(http.StatusRequestTimeout, gin.H{"error": "request cancelled"})
		case errors.Is(err, domain.ErrCatalogMalformed), errors.Is(err, domain.ErrCatalogUnavailable):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "gift catalog could not be loaded"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build suggestions"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"suggestions": suggestions,
		"count":       len(suggestions),
	})
}

// applyProfileDefaults fills the form defaults for blank required fields
func applyProfileDefaults(profile *domain.SearchProfile) {
	if profile.Relationship == "" {
		profile.Relationship = defaultRelationship
	}
	if profile.Occasion == "" {
		profile.Occasion = defaultOccasion
	}
	if profile.Style == "" {
		profile.Style = defaultStyle
	}
	if profile.ShippingTimeline == "" {
		profile.ShippingTimeline = defaultTimeline
	}
}
