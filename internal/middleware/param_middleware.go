package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExtractUUIDParam parses a UUID path parameter and stores it in the context
// under ctxKey, aborting with 400 on garbage input.
func ExtractUUIDParam(paramName string, ctxKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param(paramName)
		id, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("invalid %s format: must be a UUID", paramName),
			})
			return
		}
		c.Set(ctxKey, id)
		c.Next()
	}
}

// ExtractUintParam parses a positive integer path parameter and stores it in
// the context under ctxKey, aborting with 400 on garbage input.
func ExtractUintParam(paramName string, ctxKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param(paramName)
		value, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || value == 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("invalid %s format: must be a positive integer", paramName),
			})
			return
		}
		c.Set(ctxKey, uint(value))
		c.Next()
	}
}

// GetUUID reads a UUID previously stored by ExtractUUIDParam.
func GetUUID(c *gin.Context, ctxKey string) (uuid.UUID, bool) {
	value, exists := c.Get(ctxKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}
