package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"price-optimization-api/config"
)

// AuthService issues and validates tokens for the admin surface. The
// configured admin password is bcrypt-hashed at startup so the
// comparison path never touches the plaintext again.
type AuthService struct {
	jwtSecret    []byte
	expiryH      int
	username     string
	passwordHash string
}

func NewAuthService(jwtCfg config.JWTConfig, adminCfg config.AdminConfig) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminCfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		jwtSecret:    []byte(jwtCfg.Secret),
		expiryH:      jwtCfg.ExpiryHours,
		username:     adminCfg.Username,
		passwordHash: string(hash),
	}, nil
}

// CheckCredentials verifies an admin login attempt.
func (s *AuthService) CheckCredentials(username, password string) bool {
	if username != s.username {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) == nil
}

type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func (s *AuthService) GenerateToken(username string) (string, error) {
	claims := Claims{
		Username: username,
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(
				time.Duration(s.expiryH) * time.Hour,
			)),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return s.jwtSecret, nil
		},
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
