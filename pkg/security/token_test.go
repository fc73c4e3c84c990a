package security

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func testTokens() *TokenService {
	return &TokenService{secret: []byte("test-secret"), ttl: time.Hour}
}

func TestIssueAndParse_Success(t *testing.T) {
	t.Parallel()

	ts := testTokens()

	tok, err := ts.Issue(42)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	userID, err := ts.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if userID != 42 {
		t.Fatalf("userID mismatch: got %d want 42", userID)
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	ts := &TokenService{secret: []byte("test-secret"), ttl: -time.Second}

	tok, err := ts.Issue(1)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := ts.Parse(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := testTokens().Issue(1)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	other := &TokenService{secret: []byte("other-secret"), ttl: time.Hour}
	if _, err := other.Parse(tok); err == nil {
		t.Fatalf("expected error for wrong secret, got nil")
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := testTokens().Parse("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestParse_NonNumericIdentity(t *testing.T) {
	t.Parallel()

	ts := testTokens()

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "not-a-number",
	})

	tok, err := raw.SignedString(ts.secret)
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	if _, err := ts.Parse(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParse_UnexpectedAlg(t *testing.T) {
	t.Parallel()

	ts := testTokens()

	raw := jwt.NewWithClaims(jwt.SigningMethodHS512, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "1",
	})

	tok, err := raw.SignedString(ts.secret)
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	if _, err := ts.Parse(tok); err == nil {
		t.Fatalf("expected error for HS512 token, got nil")
	}
}

func TestAttachAndClear(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ts := testTokens()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	ts.Attach(c, "some-token")

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].Name != SessionCookie || cookies[0].Value != "some-token" {
		t.Fatalf("unexpected cookie: %+v", cookies[0])
	}
	if !cookies[0].HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	ts.Clear(c)

	cookies = w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].Value != "" || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected cleared cookie, got %+v", cookies[0])
	}
}
