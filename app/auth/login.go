package auth

import (
	"net/http"
	"reviewhub/review-api/internal"
	"reviewhub/review-api/internal/model"
	"reviewhub/review-api/pkg/flash"
	"reviewhub/review-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func LoginPage(c *gin.Context, d *internal.Deps) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Flash": flash.Pop(c),
	})
}

func Login(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	email := validators.NormalizeEmail(c.PostForm("email"))
	password := c.PostForm("password")

	// The client is never told which of the two fields was wrong
	if email == "" || password == "" {
		rejectLogin(c)
		return
	}

	var user model.User

	if err := d.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))

			errorPage(c, requestID)
			return
		}

		rejectLogin(c)
		return
	}

	ok, err := d.Argon.Verify(password, user.PasswordHash)
	if err != nil {
		// A malformed stored hash reads as a credential failure to the client
		zap.L().Error("Failed to verify password", zap.Error(err), zap.String("requestID", requestID))

		rejectLogin(c)
		return
	}

	if !ok {
		rejectLogin(c)
		return
	}

	token, err := d.Tokens.Issue(user.ID)
	if err != nil {
		zap.L().Error("Failed to issue session token", zap.Error(err), zap.String("requestID", requestID))

		errorPage(c, requestID)
		return
	}

	d.Tokens.Attach(c, token)
	flash.Set(c, flash.Success, "Login successful!")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func rejectLogin(c *gin.Context) {
	flash.Set(c, flash.Danger, "Invalid email or password.")
	c.Redirect(http.StatusSeeOther, "/login")
}
