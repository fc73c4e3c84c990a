// Package app wires the HTTP routes to their handlers
package app

import (
	"fmt"
	"reviewhub/review-api/app/auth"
	"reviewhub/review-api/app/portal"
	"reviewhub/review-api/app/root"
	"reviewhub/review-api/db"
	"reviewhub/review-api/internal"
	"reviewhub/review-api/pkg/middleware"
	"reviewhub/review-api/pkg/security"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

func NewRouter() (*gin.Engine, error) {
	makeLogger()

	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	d := &internal.Deps{
		DB:     database,
		Argon:  security.NewArgon(),
		Tokens: security.NewTokenService(),
	}

	return buildRouter(d), nil
}

func buildRouter(d *internal.Deps) *gin.Engine {
	router := gin.New()
	router.SetHTMLTemplate(loadTemplates())

	rateLimit := viper.GetInt("app.rate_limit")

	router.Use(
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("requestID", v))
				}

				if v, ok := c.Get("userID"); ok {
					if id, ok := v.(uint64); ok {
						fields = append(fields, zap.Uint64("userID", id))
					}
				}

				return fields
			},
		}),
		middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RequestsPerSecond: rateLimit,
			Burst:             rateLimit * 2,
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	gate := middleware.NewAuthMiddleware(d.DB, d.Tokens)
	formLimit := middleware.BodySizeLimiter(64 << 10)

	// GET / 			-> Redirects to the login page
	router.GET("/", root.Home)

	// HEAD /healthz		-> Used to check if the server is alive
	router.HEAD("/healthz", root.Healthz)

	// GET  /login			-> Login form
	// POST /login			-> Verifies credentials, sets the session cookie
	router.GET("/login", func(c *gin.Context) { auth.LoginPage(c, d) })
	router.POST("/login", formLimit, func(c *gin.Context) { auth.Login(c, d) })

	// GET  /register		-> Registration form
	// POST /register		-> Creates a new account
	router.GET("/register", func(c *gin.Context) { auth.RegisterPage(c, d) })
	router.POST("/register", formLimit, func(c *gin.Context) { auth.Register(c, d) })

	// GET /logout			-> Clears the session cookie
	router.GET("/logout", func(c *gin.Context) { auth.Logout(c, d) })

	// GET /dashboard		-> Account summary
	router.GET("/dashboard", gate, func(c *gin.Context) { portal.Dashboard(c, d) })

	// GET  /profile		-> Profile form plus the user's reviews
	// POST /profile		-> Updates username and email
	router.GET("/profile", gate, func(c *gin.Context) { portal.ProfilePage(c, d) })
	router.POST("/profile", gate, formLimit, func(c *gin.Context) { portal.ProfileUpdate(c, d) })

	// GET  /upload_review		-> Review form
	// POST /upload_review		-> Stores a new review
	router.GET("/upload_review", gate, func(c *gin.Context) { portal.ReviewPage(c, d) })
	router.POST("/upload_review", gate, formLimit, func(c *gin.Context) { portal.ReviewUpload(c, d) })

	return router
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	if lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
