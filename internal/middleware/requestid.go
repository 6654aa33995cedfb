package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// RequestIDKey is the gin context key for the request ID.
	RequestIDKey = "request_id"

	// RequestIDHeader is the HTTP header used to propagate the request ID.
	RequestIDHeader = "X-Request-ID"
)

// RequestID assigns every request a canonical UUID. A client-supplied
// X-Request-ID is reused only when it is itself a well-formed UUID, so the
// id can be correlated across the CLI and the server. Anything else is kept
// as "client_request_id" and replaced by a fresh server-side id.
func RequestID(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()

		if clientID := c.GetHeader(RequestIDHeader); clientID != "" {
			if parsed, err := uuid.Parse(clientID); err == nil {
				id = parsed.String()
			} else {
				log.WithFields(logrus.Fields{
					"request_id":        id,
					"client_request_id": clientID,
				}).Debug("client provided non-UUID request ID, mapped to server ID")
				c.Set("client_request_id", clientID)
			}
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the request ID stored on the context, if any.
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
