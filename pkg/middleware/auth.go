package middleware

import (
	"net/http"
	"reviewhub/review-api/internal/model"
	"reviewhub/review-api/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewAuthMiddleware gates protected routes. A missing, malformed or expired
// token cookie redirects the browser to the login page without running the
// wrapped handler. On success the numeric user id is stored as userID in the
// request context.
func NewAuthMiddleware(d *gorm.DB, tokens *security.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		tokenStr, err := c.Cookie(security.SessionCookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		userID, err := tokens.Parse(tokenStr)
		if err != nil {
			zap.L().Debug("Rejected session token", zap.Error(err), zap.String("requestID", requestID))

			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		// Tokens outlive accounts. If the user row is gone the token is
		// treated like any other bad credential.
		var user model.User
		err = d.Select("user_id").Where("user_id = ?", userID).First(&user).Error
		if err != nil {
			if err != gorm.ErrRecordNotFound {
				zap.L().Error("Failed to check if user exists", zap.Error(err), zap.String("requestID", requestID))
			}

			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
