package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sportlinkapp/sportlink-backend/internal/domain"
	"github.com/sportlinkapp/sportlink-backend/internal/usecase/search"
)

// SearchService is the slice of the search usecase the handler needs;
// kept narrow so tests can drop in a double.
type SearchService interface {
	Search(ctx context.Context, q search.Query) (*search.Response, error)
}

type SearchHandler struct {
	searchService SearchService
}

func NewSearchHandler(searchService SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// Search handles GET /search
// @Summary Global search
// @Description Search clubs, players, opportunities, posts and events
// @Tags search
// @Produce json
// @Param q query string true "Search term (min 2 characters)"
// @Param type query string false "Kind: all|opportunities|clubs|players|posts|events"
// @Param page query int false "Page, clamped to [1,1000]"
// @Param limit query int false "Page size, clamped to [1,50]"
// @Param status query string false "Opportunity status filter"
// @Success 200 {object} search.Response
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	query, err := search.NormalizeQuery(
		c.Query("q"),
		c.Query("type"),
		atoiOrZero(c.Query("page")),
		atoiOrZero(c.Query("limit")),
		c.Query("status"),
	)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPayload) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "search term must be at least 2 characters",
			})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid search parameters",
		})
		return
	}

	resp, err := h.searchService.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func atoiOrZero(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
