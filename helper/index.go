package helper

import (
	"errors"
	"fmt"
	"time"

	"dinebook/model"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidToken = errors.New("invalid token")

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateAccessToken signs the {id, role} payload the booking API authenticates with.
func GenerateAccessToken(claim model.TokenClaim, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["id"] = claim.UserId
	claims["role"] = claim.Role
	claims["exp"] = time.Now().Add(ttl).Unix()

	return token.SignedString(secret)
}

func ParseToken(tokenString string, secret []byte) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
}

// Authenticate resolves a bearer token to the caller identity.
func Authenticate(tokenString string, secret []byte) (model.TokenClaim, error) {
	token, err := ParseToken(tokenString, secret)
	if err != nil || !token.Valid {
		return model.TokenClaim{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, ErrInvalidToken
	}

	id, _ := claims["id"].(string)
	role, _ := claims["role"].(string)
	if id == "" {
		return model.TokenClaim{}, ErrInvalidToken
	}

	return model.TokenClaim{UserId: id, Role: role}, nil
}
