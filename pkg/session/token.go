package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Minter issues HS256 session tokens for the mock identity. The token is
// purely local: nothing ever verifies credentials, but the session still
// gets a signed, expiring handle the way a real storefront would.
type Minter struct {
	secret []byte
	expiry time.Duration
}

func NewMinter(secret string, expiry time.Duration) *Minter {
	return &Minter{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Mint signs a token for the given user.
func (m *Minter) Mint(userID, email string) (string, error) {
	if len(m.secret) == 0 {
		return "", fmt.Errorf("session secret not set")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(m.expiry).Unix(),
	})

	return token.SignedString(m.secret)
}

// Claims holds the subject identity extracted from a session token.
type Claims struct {
	UserID string
	Email  string
}

// Validate parses and verifies a token minted by this Minter.
func (m *Minter) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	userID, _ := mapClaims["sub"].(string)
	email, _ := mapClaims["email"].(string)

	return &Claims{
		UserID: userID,
		Email:  email,
	}, nil
}
