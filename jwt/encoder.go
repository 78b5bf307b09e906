package jwt

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bobinette/notenet/errors"
)

// Validity is how long an issued token is accepted.
var Validity = 24 * time.Hour

type EncodeDecoder struct {
	key []byte
	now func() time.Time
}

type Claims struct {
	UserID string `json:"userId"`
	Tenant string `json:"tenant"`
	jwt.RegisteredClaims
}

func NewEncodeDecoder(key []byte) *EncodeDecoder {
	return &EncodeDecoder{
		key: key,
		now: time.Now,
	}
}

func (e *EncodeDecoder) Encode(userID, tenant string) (string, error) {
	now := e.now()
	claims := Claims{
		UserID: userID,
		Tenant: tenant,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(Validity)),
			Issuer:    "notenet",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(e.key)
}

func (e *EncodeDecoder) Decode(bearer string) (Claims, error) {
	claims := Claims{}

	token, err := jwt.ParseWithClaims(bearer, &claims, func(token *jwt.Token) (interface{}, error) {
		return e.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(e.now))
	if err != nil {
		return Claims{}, errors.New("Invalid token", errors.WithCause(err), errors.WithCode(http.StatusUnauthorized))
	}

	if !token.Valid || claims.UserID == "" {
		return Claims{}, errors.New("Invalid token", errors.WithCode(http.StatusUnauthorized))
	}

	return claims, nil
}
