package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "access_token"

var ErrInvalidToken = errors.New("invalid session token")

// SessionClaims keeps the user id as a string on the wire for compatibility
// with the previous deployment. Everything past Parse works with the numeric
// id instead.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// TokenService issues and verifies stateless session tokens. Nothing is
// persisted server-side, so clearing the cookie is the only form of logout
// and already-issued tokens stay valid until they expire.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewTokenService() *TokenService {
	return &TokenService{
		secret: []byte(viper.GetString("jwt.secret")),
		ttl:    time.Duration(viper.GetInt("jwt.ttl_hours")) * time.Hour,
		secure: viper.GetBool("host.cookie_secure"),
	}
}

func (t *TokenService) Issue(userID uint64) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		UserID: strconv.FormatUint(userID, 10),
	})

	return token.SignedString(t.secret)
}

// Parse validates the signature and expiry of tokenStr and returns the
// numeric user id embedded in it.
func (t *TokenService) Parse(tokenStr string) (uint64, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(tk *jwt.Token) (any, error) {
		if tk.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", tk.Method.Alg())
		}

		return t.secret, nil
	})
	if err != nil {
		return 0, err
	}

	if !token.Valid {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.UserID, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return userID, nil
}

// Attach sets the token cookie on the outgoing response.
func (t *TokenService) Attach(c *gin.Context, token string) {
	c.SetCookie(SessionCookie, token, int(t.ttl.Seconds()), "/", "", t.secure, true)
}

// Clear removes the token cookie. Subsequent requests from this client fail
// verification until the next login.
func (t *TokenService) Clear(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", t.secure, true)
}
