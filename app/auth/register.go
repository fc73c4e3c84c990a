package auth

import (
	"net/http"
	"reviewhub/review-api/internal"
	"reviewhub/review-api/internal/model"
	"reviewhub/review-api/pkg/flash"
	"reviewhub/review-api/pkg/validators"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterPage(c *gin.Context, d *internal.Deps) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Flash": flash.Pop(c),
	})
}

func Register(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	username := strings.TrimSpace(c.PostForm("username"))
	email := validators.NormalizeEmail(c.PostForm("email"))
	password := c.PostForm("password")

	if validators.UsernameValidator(username) != nil ||
		email == "" ||
		validators.PasswordValidator(password) != nil {
		flash.Set(c, flash.Danger, "All fields are required.")
		c.Redirect(http.StatusSeeOther, "/register")
		return
	}

	// Lookup-before-write only. Two registrations racing past this check can
	// both insert the same email, there is no unique index backing it up.
	var existing model.User

	err := d.DB.Select("user_id").Where("email = ?", email).First(&existing).Error
	if err == nil {
		flash.Set(c, flash.Warning, "Email already registered. Please login.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	if err != gorm.ErrRecordNotFound {
		zap.L().Error("Failed to check if email is registered", zap.Error(err), zap.String("requestID", requestID))

		errorPage(c, requestID)
		return
	}

	hash, err := d.Argon.Hash(password)
	if err != nil {
		zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))

		errorPage(c, requestID)
		return
	}

	user := model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := d.DB.Create(&user).Error; err != nil {
		zap.L().Error("Failed to create user", zap.Error(err), zap.String("requestID", requestID))

		errorPage(c, requestID)
		return
	}

	flash.Set(c, flash.Success, "Registration successful! Please login.")
	c.Redirect(http.StatusSeeOther, "/login")
}
