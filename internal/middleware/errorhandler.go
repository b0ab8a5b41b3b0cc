package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/contractpulse/internal/domain/dto"
	"github.com/guttosm/contractpulse/internal/logger"
)

// ErrorHandler converts errors attached to the Gin context into a
// standardized JSON response. Handlers that call c.Error(err) without writing
// a response of their own get a 500 with the error envelope.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}
