package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotel-frontdesk/models"
)

// AuthService issues and checks reception sessions. Sessions are stateless
// HS256 tokens carried in an httpOnly cookie; logout is just the client
// dropping the cookie.
type AuthService struct {
	DB     *gorm.DB
	secret []byte
	ttl    time.Duration
}

func NewAuthService(db *gorm.DB, secret string) *AuthService {
	return &AuthService{
		DB:     db,
		secret: []byte(secret),
		ttl:    24 * time.Hour,
	}
}

// SessionUser is the identity embedded in a session token.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type sessionClaims struct {
	User SessionUser `json:"user"`
	jwt.RegisteredClaims
}

// Login verifies credentials and returns a signed session token plus its
// expiry. Failures are indistinguishable between unknown user and wrong
// password.
func (s *AuthService) Login(email, password string) (string, SessionUser, time.Time, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", SessionUser{}, time.Time{}, validationf("email and password are required")
	}

	var user models.ReceptionUser
	if err := s.DB.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", SessionUser{}, time.Time{}, ErrInvalidCredentials
		}
		return "", SessionUser{}, time.Time{}, fmt.Errorf("look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", SessionUser{}, time.Time{}, ErrInvalidCredentials
	}

	su := SessionUser{ID: user.ID, Email: user.Email, Name: user.Name, Role: user.Role}
	expires := time.Now().Add(s.ttl)

	claims := sessionClaims{
		User: su,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", SessionUser{}, time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return token, su, expires, nil
}

// ParseSession validates a session token and returns the embedded user.
func (s *AuthService) ParseSession(token string) (SessionUser, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return SessionUser{}, ErrInvalidSession
	}
	return claims.User, nil
}
