package auth

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultExpiryHours = 72

func secret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func GenerateToken(accountID string) (string, error) {
	expiryHours, _ := strconv.Atoi(os.Getenv("JWT_EXPIRY_HOURS"))
	if expiryHours <= 0 {
		expiryHours = defaultExpiryHours
	}
	claims := jwt.MapClaims{
		"account_id": accountID,
		"exp":        time.Now().Add(time.Duration(expiryHours) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

func ParseToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["account_id"] == nil {
		return "", errors.New("invalid claims")
	}

	id, ok := claims["account_id"].(string)
	if !ok {
		return "", errors.New("invalid claims")
	}
	return id, nil
}
