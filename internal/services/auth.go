package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const RoleEditor = "editor"

type AuthService struct {
	jwtSecret []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewAuthService(jwtSecret string, ttl time.Duration) *AuthService {
	return &AuthService{jwtSecret: []byte(jwtSecret), ttl: ttl, now: time.Now}
}

func (s *AuthService) GenerateToken(subject string) (string, error) {
	if subject == "" {
		return "", errors.New("subject is required")
	}
	now := s.now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": RoleEditor,
		"exp":  now.Add(s.ttl).Unix(),
		"iat":  now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken returns the subject of a valid editor token.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}

	if role, _ := claims["role"].(string); role != RoleEditor {
		return "", errors.New("token is not an editor token")
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", errors.New("invalid subject in token")
	}
	return subject, nil
}
