package internal

import (
	"reviewhub/review-api/pkg/security"

	"gorm.io/gorm"
)

// Deps bundles everything the handlers need. Passed explicitly instead of
// living in package-level globals.
type Deps struct {
	DB     *gorm.DB
	Argon  *security.ArgonHash
	Tokens *security.TokenService
}
