package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/siinmedia/jastiphemat/services"
	"github.com/siinmedia/jastiphemat/utils"
)

const (
	SessionCookie = "admin_session"
	sessionKey    = "session"
	tokenKey      = "sessionToken"
)

// SessionGate probes the caller's session on every request and stores the
// result in the context. It never rejects a request.
func SessionGate(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		c.Set(tokenKey, token)
		c.Set(sessionKey, auth.Probe(c.Request.Context(), token))
		c.Next()
	}
}

// RequireAdmin guards JSON endpoints.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !currentSession(c).Authenticated() {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		c.Next()
	}
}

// RequireAdminPage sends signed-out browsers back to /admin, which shows the
// login form.
func RequireAdminPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !currentSession(c).Authenticated() {
			c.Redirect(http.StatusSeeOther, "/admin")
			c.Abort()
			return
		}
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	return utils.BearerToken(c.GetHeader("Authorization"))
}

func currentSession(c *gin.Context) services.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(services.Session); ok {
			return s
		}
	}
	return services.Session{State: services.Unauthenticated}
}

func currentToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}
