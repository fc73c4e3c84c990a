// Package auth holds the registration, login and logout handlers
package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func errorPage(c *gin.Context, requestID string) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"RequestID": requestID,
	})
	c.Abort()
}
