// Package portal holds the session-protected handlers. Each one expects the
// auth middleware to have placed the verified numeric user id in the context.
package portal

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
