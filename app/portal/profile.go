package portal

import (
	"net/http"
	"reviewhub/review-api/internal"
	"reviewhub/review-api/internal/model"
	"reviewhub/review-api/pkg/flash"
	"reviewhub/review-api/pkg/validators"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func ProfilePage(c *gin.Context, d *internal.Deps) {
	renderProfile(c, d)
}

// ProfileUpdate changes username and email. The password hash is never
// touched here, there is no password-change flow.
func ProfileUpdate(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint64)

	username := strings.TrimSpace(c.PostForm("username"))
	email := validators.NormalizeEmail(c.PostForm("email"))

	if username == "" || email == "" {
		flash.Set(c, flash.Danger, "Username and Email cannot be empty.")
		c.Redirect(http.StatusSeeOther, "/profile")
		return
	}

	// Same lookup-before-write uniqueness check as registration, this time
	// excluding the caller's own row
	var other model.User

	err := d.DB.Select("user_id").Where("email = ? AND user_id <> ?", email, userID).First(&other).Error
	if err == nil {
		flash.Set(c, flash.Danger, "Email already in use by another account.")
		c.Redirect(http.StatusSeeOther, "/profile")
		return
	}

	if err != gorm.ErrRecordNotFound {
		zap.L().Error("Failed to check if email is taken", zap.Error(err), zap.String("requestID", requestID))

		errorPage(c, requestID)
		return
	}

	err = d.DB.Model(&model.User{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{"username": username, "email": email}).
		Error
	if err != nil {
		zap.L().Error("Failed to update profile", zap.Error(err), zap.String("requestID", requestID))

		errorPage(c, requestID)
		return
	}

	flash.Set(c, flash.Success, "Profile updated successfully.")
	c.Redirect(http.StatusSeeOther, "/profile")
}

func renderProfile(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint64)

	var user model.User

	if err := d.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		zap.L().Error("Failed to fetch user", zap.Error(err), zap.String("requestID", requestID))

		errorPage(c, requestID)
		return
	}

	var reviews []model.Review

	err := d.DB.
		Where("user_id = ?", userID).
		Order("uploaded_at desc").
		Find(&reviews).
		Error
	if err != nil {
		zap.L().Error("Failed to fetch reviews", zap.Error(err), zap.String("requestID", requestID))

		errorPage(c, requestID)
		return
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"User":    user,
		"Reviews": reviews,
		"Flash":   flash.Pop(c),
	})
}
