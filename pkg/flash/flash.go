// Package flash implements one-shot messages carried in a short-lived
// cookie. A message set during one response is read and removed by the next
// page render.
package flash

import (
	"encoding/base64"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

const cookieName = "flash"

// Message categories mirror the ones the templates style.
const (
	Success = "success"
	Danger  = "danger"
	Warning = "warning"
	Info    = "info"
)

type Message struct {
	Category string
	Text     string
}

// Set queues msg for the next rendered page.
func Set(c *gin.Context, category, text string) {
	val := base64.RawURLEncoding.EncodeToString([]byte(category + ":" + text))
	c.SetCookie(cookieName, val, 300, "/", "", viper.GetBool("host.cookie_secure"), true)
}

// Pop returns the pending message, if any, and clears it so it is shown
// exactly once.
func Pop(c *gin.Context) *Message {
	val, err := c.Cookie(cookieName)
	if err != nil || val == "" {
		return nil
	}

	c.SetCookie(cookieName, "", -1, "/", "", viper.GetBool("host.cookie_secure"), true)

	raw, err := base64.RawURLEncoding.DecodeString(val)
	if err != nil {
		return nil
	}

	category, text, found := strings.Cut(string(raw), ":")
	if !found {
		return nil
	}

	return &Message{Category: category, Text: text}
}
