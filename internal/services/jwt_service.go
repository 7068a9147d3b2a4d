package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"literary-calendar/backend/internal/models"
)

// JWTService はJWTトークンの生成と検証を扱います。
type JWTService struct {
	secret []byte
}

// NewJWTService は新しいJWTServiceを作成します。
func NewJWTService() *JWTService {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	return &JWTService{secret: []byte(secret)}
}

// GenerateToken はJWTトークンを生成します。有効期限は24時間です。
func (s *JWTService) GenerateToken(userID int, email string) (string, error) {
	claims := &jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign JWT token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken はJWTトークンを検証し、クレームを返します。
func (s *JWTService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		userIDFloat, ok := claims["user_id"].(float64)
		if !ok {
			return nil, fmt.Errorf("invalid user_id")
		}
		email, ok := claims["email"].(string)
		if !ok {
			return nil, fmt.Errorf("invalid email")
		}
		return &models.JWTClaims{
			UserID: int(userIDFloat),
			Email:  email,
		}, nil
	}

	return nil, fmt.Errorf("invalid token")
}
