package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims представляет данные пользователя внутри JWT
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager выпускает и проверяет JWT токены
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

var manager *TokenManager

// Init настраивает пакетный менеджер токенов
func Init(cfg *Config) {
	manager = &TokenManager{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TokenTTL,
	}
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue выпускает токен для пользователя с указанной ролью
func (m *TokenManager) Issue(userID, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Parse проверяет подпись и срок действия токена
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Убеждаемся, что метод подписи - HS256
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// VerifyToken извлекает идентификатор пользователя из заголовка Authorization
func VerifyToken(r *http.Request) (string, string, error) {
	if manager == nil {
		return "", "", fmt.Errorf("auth is not initialized")
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", "", fmt.Errorf("no authorization header")
	}

	// Проверяем формат "Bearer token"
	headerParts := strings.Split(authHeader, " ")
	if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
		return "", "", fmt.Errorf("invalid authorization header format")
	}

	claims, err := manager.Parse(headerParts[1])
	if err != nil {
		return "", "", err
	}

	return claims.Subject, claims.Role, nil
}

// IssueToken выпускает токен через пакетный менеджер
func IssueToken(userID, role string) (string, error) {
	if manager == nil {
		return "", fmt.Errorf("auth is not initialized")
	}
	return manager.Issue(userID, role)
}
