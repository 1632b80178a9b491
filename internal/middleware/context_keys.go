package middleware

import (
	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is a private type for context keys defined by this package.
// Using a custom type prevents collisions.
type contextKey string

const (
	// callerKey is the key used to store the authenticated caller.
	callerKey = contextKey("caller")
	// loggerCtxKey is the key used to store the request-scoped logger.
	loggerCtxKey = contextKey("logger")
)

// GetCallerFromContext retrieves the authenticated caller from the Gin context.
// It returns the caller and a boolean indicating if it was found.
func GetCallerFromContext(c *gin.Context) (domain.Caller, bool) {
	callerVal, exists := c.Get(string(callerKey))
	if !exists {
		// check in the request context as well
		ctxVal := c.Request.Context().Value(callerKey)
		if ctxVal != nil {
			if caller, ok := ctxVal.(domain.Caller); ok {
				return caller, true
			}
		}
		return domain.Caller{}, false
	}

	caller, ok := callerVal.(domain.Caller)
	if !ok {
		return domain.Caller{}, false
	}

	return caller, true
}
