package service

import (
	"errors"
	"fmt"
	"time"

	"accounthub/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Role claim values.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// AccessTokenTTL is the default validity window for issued tokens.
const AccessTokenTTL = 24 * time.Hour

// Claims is the payload of an issued access token. The registered jti claim
// carries a fresh UUID so two tokens for the same user never collide.
type Claims struct {
	UserID int    `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

var (
	timeNow         = time.Now
	newTokenID      = uuid.NewString
	parseWithClaims = jwt.ParseWithClaims
)

// IssueAccessToken signs an HS256 token for the user, valid for ttl.
func IssueAccessToken(user model.User, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("IssueAccessToken: signing secret not configured")
	}

	role := RoleUser
	if user.IsAdmin {
		role = RoleAdmin
	}

	now := timeNow()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email.String(),
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			ID:        newTokenID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAccessToken parses and validates a token issued by IssueAccessToken.
func VerifyAccessToken(tokenString, secret string) (*Claims, error) {
	if secret == "" {
		return nil, errors.New("VerifyAccessToken: signing secret not configured")
	}

	token, err := parseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
