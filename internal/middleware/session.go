package middleware

import (
	"errors"
	"net/http"

	"github.com/Odenfis/taytaApp/internal/apierror"
	"github.com/Odenfis/taytaApp/internal/dto"
	"github.com/Odenfis/taytaApp/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	PrincipalKey = "principal"
	SessionIDKey = "session_id"
)

// SessionAuth resolves the session cookie on every protected route and places
// the principal in the request context. Missing or expired sessions get 401;
// a session-store outage is a 500, not an auth failure.
func SessionAuth(store *session.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("No autorizado"))
			return
		}

		principal, err := store.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("No autorizado"))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New("Error en el servidor"))
			return
		}

		c.Set(PrincipalKey, principal)
		c.Set(SessionIDKey, id)
		c.Next()
	}
}

// GetPrincipal is a helper to retrieve the typed principal from the Gin context.
func GetPrincipal(c *gin.Context) *dto.Principal {
	p, _ := c.MustGet(PrincipalKey).(*dto.Principal)
	return p
}
