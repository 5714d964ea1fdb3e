package middleware

import (
	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-gonic/gin"

	"github.com/Ganapati12/Edulists-sub001/internal/handler/http/dto"
)

// RateLimiter adapts a tollbooth limiter to a gin middleware.
func RateLimiter(lmt *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		httpError := tollbooth.LimitByRequest(lmt, c.Writer, c.Request)
		if httpError != nil {
			c.AbortWithStatusJSON(httpError.StatusCode, dto.Response{
				Success: false,
				Message: lmt.GetMessage(),
			})
			return
		}
		c.Next()
	}
}
