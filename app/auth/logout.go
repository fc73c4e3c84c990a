package auth

import (
	"net/http"
	"reviewhub/review-api/internal"
	"reviewhub/review-api/pkg/flash"

	"github.com/gin-gonic/gin"
)

// Logout only clears the client-held cookie. Tokens are stateless, so a copy
// issued elsewhere stays valid until its expiry.
func Logout(c *gin.Context, d *internal.Deps) {
	d.Tokens.Clear(c)
	flash.Set(c, flash.Info, "You have been logged out.")
	c.Redirect(http.StatusFound, "/login")
}
