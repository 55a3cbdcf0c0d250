package http

import (
	"github.com/gin-gonic/gin"

	"github.com/sportlinkapp/sportlink-backend/internal/delivery/http/handler"
	"github.com/sportlinkapp/sportlink-backend/internal/delivery/http/middleware"
)

type Router struct {
	searchHandler  *handler.SearchHandler
	suggestHandler *handler.SuggestHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimitMiddleware
}

func NewRouter(
	searchHandler *handler.SearchHandler,
	suggestHandler *handler.SuggestHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimitMiddleware,
) *Router {
	return &Router{
		searchHandler:  searchHandler,
		suggestHandler: suggestHandler,
		authMiddleware: authMiddleware,
		rateLimiter:    rateLimiter,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// Identity resolution runs first so the limiter can key by profile id.
	router.GET("/search",
		r.authMiddleware.OptionalAuth(),
		r.rateLimiter.Limit("search"),
		r.searchHandler.Search,
	)
	router.GET("/suggestions/who-to-follow",
		r.authMiddleware.OptionalAuth(),
		r.rateLimiter.Limit("suggestions"),
		r.suggestHandler.WhoToFollow,
	)

	return router
}
