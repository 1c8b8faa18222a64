package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zoobzio/clockz"

	"github.com/ridwanfathin/claw-dashboard-service/internal/session"
)

// SessionKey is the gin context key holding the *session.Session
const SessionKey = "session"

// SessionMiddleware creates a middleware that requires a bearer session that
// has not expired
func SessionMiddleware(clock clockz.Clock) gin.HandlerFunc {
	if clock == nil {
		clock = clockz.RealClock
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "Unauthorized",
				"message": "Authorization header is required",
			})
			c.Abort()
			return
		}

		s, err := session.FromHeader(authHeader)
		if err != nil {
			message := "Invalid session token"
			if errors.Is(err, session.ErrMissingToken) {
				message = "Invalid authorization header format. Expected 'Bearer <token>'"
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "Unauthorized",
				"message": message,
			})
			c.Abort()
			return
		}

		if err := s.Validate(clock.Now()); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "Unauthorized",
				"message": "Session expired, please log in again",
			})
			c.Abort()
			return
		}

		c.Set(SessionKey, s)

		c.Next()
	}
}

// GetSession returns the session stored by SessionMiddleware
func GetSession(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}
