package portal

import (
	"net/http"
	"reviewhub/review-api/internal"
	"reviewhub/review-api/internal/model"
	"reviewhub/review-api/pkg/flash"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Dashboard(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint64)

	var user model.User

	if err := d.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		zap.L().Error("Failed to fetch user", zap.Error(err), zap.String("requestID", requestID))

		errorPage(c, requestID)
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"User":  user,
		"Flash": flash.Pop(c),
	})
}
