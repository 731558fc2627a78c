package server

import (
	"errors"
	"net/http"
	"time"

	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// CallerIdentityMiddleware extracts the bidder identity placed on the request
// by the upstream auth layer and makes it available to handlers.
func CallerIdentityMiddleware(c *gin.Context) {
	bidderID := c.GetHeader(helpers.BidderIDHeader)
	if bidderID == "" {
		utils.JSONError(c, http.StatusUnauthorized, errors.New("missing caller identity"), "missing caller identity")
		c.Abort()
		return
	}

	c.Set(helpers.BidderIDKey, bidderID)
	c.Next()
}
