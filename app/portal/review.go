package portal

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
)

func ReviewPage(c *gin.Context, d *internal.Deps) {
	c.HTML(http.StatusOK, "upload_review.html", gin.H{
		"Flash": flash.Pop(c),
	})
}

func ReviewUpload(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint64)

	raw := strings.TrimSpace(c.PostForm("raw_review"))

	if err := validators.ReviewValidator(raw); err != nil {
		flash.Set(c, flash.Danger, "Review cannot be empty.")
		c.Redirect(http.StatusSeeOther, "/upload_review")
		return
	}

	review := model.Review{
		UserID:     userID,
		ReviewText: raw,
		UploadedAt: time.Now().UTC(),
	}

	if err := d.DB.Create(&review).Error; err != nil {
		zap.L().Error("Failed to store review", zap.Error(err), zap.String("requestID", requestID))

		errorPage(c, requestID)
		return
	}

	flash.Set(c, flash.Success, "Review uploaded successfully!")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}
