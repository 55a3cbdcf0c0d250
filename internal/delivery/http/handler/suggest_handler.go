package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sportlinkapp/sportlink-backend/internal/usecase/suggest"
)

type SuggestService interface {
	WhoToFollow(ctx context.Context, profileID string, limit int, debug bool) ([]suggest.Suggestion, *suggest.DebugTrace, error)
}

type SuggestHandler struct {
	suggestService SuggestService

	// Debug traces are diagnostic only and must stay off in production.
	debugEnabled bool
}

func NewSuggestHandler(suggestService SuggestService, debugEnabled bool) *SuggestHandler {
	return &SuggestHandler{
		suggestService: suggestService,
		debugEnabled:   debugEnabled,
	}
}

// SuggestionsResponse is the who-to-follow payload.
type SuggestionsResponse struct {
	OK          bool                 `json:"ok"`
	Suggestions []suggest.Suggestion `json:"suggestions"`
	Debug       *suggest.DebugTrace  `json:"debug,omitempty"`
}

// WhoToFollow handles GET /suggestions/who-to-follow
// @Summary Follow suggestions
// @Description Suggest profiles the caller may want to follow
// @Tags suggestions
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max suggestions, clamped to [1,10]"
// @Param debug query int false "Include cascade diagnostics (1 to enable)"
// @Success 200 {object} SuggestionsResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /suggestions/who-to-follow [get]
func (h *SuggestHandler) WhoToFollow(c *gin.Context) {
	profileID := c.GetString("profile_id")
	limit := atoiOrZero(c.Query("limit"))
	debug := h.debugEnabled && c.Query("debug") == "1"

	suggestions, trace, err := h.suggestService.WhoToFollow(c.Request.Context(), profileID, limit, debug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, SuggestionsResponse{
		OK:          true,
		Suggestions: suggestions,
		Debug:       trace,
	})
}
