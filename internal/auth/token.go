package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/arogyahub/docbook/internal/models"
)

const TokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Claims is the request-scoped identity carried by every authenticated call:
// account id, username and role, plus a token id used for logout revocation.
type Claims struct {
	AccountID uint
	Username  string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}

// GenerateToken signs an HS256 bearer token for the account.
func GenerateToken(acc *models.Account, secret string) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":      float64(acc.ID),
		"username": acc.Username,
		"role":     acc.Role,
		"jti":      uuid.NewString(),
		"exp":      now.Add(TokenTTL).Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates the signature and expiry and unpacks the claims.
func ParseToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, okSub := mapClaims["sub"].(float64)
	username, _ := mapClaims["username"].(string)
	role, okRole := mapClaims["role"].(string)
	jti, _ := mapClaims["jti"].(string)
	exp, okExp := mapClaims["exp"].(float64)
	if !okSub || !okRole || !okExp {
		return nil, ErrInvalidToken
	}

	return &Claims{
		AccountID: uint(sub),
		Username:  username,
		Role:      role,
		TokenID:   jti,
		ExpiresAt: time.Unix(int64(exp), 0),
	}, nil
}
