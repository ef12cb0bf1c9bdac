package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"ycsmatch_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Bearer tokens are stateless HS256 JWTs: identity, role and expiry live in
// the signed payload, so verification needs no store lookup. A consequence is
// that a role change does not invalidate outstanding tokens before they
// expire; keep the TTL short.

var (
	jwtSecret []byte
	jwtTTL    = time.Hour
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the bearer token payload.
type Claims struct {
	UserID uint            `json:"userId"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Init sets the signing secret and token lifetime. Must be called once at
// startup before any token is issued or parsed.
func Init(secret string, ttl time.Duration) error {
	if len(secret) < 16 {
		return errors.New("jwt secret must be at least 16 characters")
	}
	jwtSecret = []byte(secret)
	if ttl > 0 {
		jwtTTL = ttl
	}
	return nil
}

// GenerateToken issues a signed bearer token for the given identity.
func GenerateToken(userID uint, role models.UserRole) (string, error) {
	if len(jwtSecret) == 0 {
		return "", errors.New("auth: jwt secret not configured")
	}

	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(jwtTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken verifies signature and expiry and returns the embedded claims.
// Malformed input is a normal rejection, never a panic. Pinning the accepted
// methods to HS256 blocks algorithm-confusion tokens.
func ParseToken(tokenStr string) (*Claims, error) {
	if len(jwtSecret) == 0 {
		return nil, errors.New("auth: jwt secret not configured")
	}

	token, err := jwt.ParseWithClaims(
		tokenStr,
		&Claims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return jwtSecret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	if !claims.Role.IsValid() {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GenerateResetToken returns a 256-bit random token, hex encoded.
func GenerateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
