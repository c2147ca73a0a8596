package middleware

import (
	"github.com/gin-gonic/gin"

	"questionnaire/models"
	"questionnaire/responses"
	"questionnaire/services"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "session"

const userContextKey = "user"

// Auth resolves the session cookie to a user and aborts with the
// not-logged-in envelope when there is no valid session. No database access
// happens for unauthenticated requests beyond the session lookup itself.
func Auth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			responses.Error(c, responses.MsgNotLoggedIn)
			c.Abort()
			return
		}

		user, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			responses.Error(c, responses.MsgNotLoggedIn)
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Auth.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}
