package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims identifies the operator behind an authenticated request. There is
// exactly one operator account per deployment, so Role is always "admin"
// once a token has been issued.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse confirms a successful login. The token is also set as an
// HTTP-only cookie, but is echoed here for non-browser clients.
type LoginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}
