package jwt

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"ajcc-portal/config"

	"github.com/golang-jwt/jwt"
)

// Payload identifies the authenticated administrator.
type Payload struct {
	AdminID  uint   `json:"admin_id"`
	Username string `json:"username"`
}

type Claims struct {
	Payload
	jwt.StandardClaims
}

// CreateToken signs a session token for the payload. The returned claims
// carry the generated token ID, which the session registry uses as its key.
func CreateToken(payload Payload) (string, *Claims) {
	now := time.Now()
	claims := &Claims{
		Payload: payload,
		StandardClaims: jwt.StandardClaims{
			Id:        newTokenID(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Duration(config.Get().JWT.Expire) * time.Second).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.Get().JWT.Secret))
	if err != nil {
		// HS256 signing of a well-formed claim set cannot fail at runtime.
		panic(err)
	}
	return signed, claims
}

// ParseToken validates the signature and expiry and returns the claims.
func ParseToken(tokenString string) (*Claims, bool) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(config.Get().JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, false
	}
	return claims, true
}

func newTokenID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
