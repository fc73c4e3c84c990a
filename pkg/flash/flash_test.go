package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func flashCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, ck := range w.Result().Cookies() {
		if ck.Name == cookieName {
			return ck
		}
	}

	t.Fatalf("no flash cookie set")
	return nil
}

func TestSetAndPop(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Set(c, Danger, "Invalid email or password.")
	ck := flashCookie(t, w)

	// Next request carries the cookie back
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(ck)

	msg := Pop(c)
	if msg == nil {
		t.Fatalf("expected a message, got nil")
	}
	if msg.Category != Danger || msg.Text != "Invalid email or password." {
		t.Fatalf("unexpected message: %+v", msg)
	}

	// Pop clears the cookie so the message shows exactly once
	cleared := flashCookie(t, w)
	if cleared.Value != "" || cleared.MaxAge >= 0 {
		t.Fatalf("expected cleared cookie, got %+v", cleared)
	}
}

func TestPop_NoCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	if msg := Pop(c); msg != nil {
		t.Fatalf("expected nil, got %+v", msg)
	}
}

func TestPop_GarbageCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: cookieName, Value: "%%%not-base64%%%"})

	if msg := Pop(c); msg != nil {
		t.Fatalf("expected nil for undecodable cookie, got %+v", msg)
	}
}

func TestMessageWithColonInText(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Set(c, Info, "Note: colons survive")
	ck := flashCookie(t, w)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(ck)

	msg := Pop(c)
	if msg == nil || msg.Text != "Note: colons survive" {
		t.Fatalf("unexpected message: %+v", msg)
	}
}
