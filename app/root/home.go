package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
}

func Healthz(c *gin.Context) {
	c.Status(http.StatusOK)
}
