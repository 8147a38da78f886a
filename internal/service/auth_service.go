package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Monishapmj/book-review-backend/internal/models"
	"github.com/Monishapmj/book-review-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Tokens are stateless: validity is signature + expiry only, there is no
// server-side session state and no revocation.
const tokenTTL = 24 * time.Hour

// Domain errors for auth flows.
var (
	ErrMissingCredentials = errors.New("username and password required")
	ErrUserExists         = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Claims defines the JWT payload: just the username on top of the
// registered issued-at/expiry claims.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// AuthService handles registration, login and token verification.
type AuthService struct {
	users      repository.Users
	signingKey []byte
}

var _ Authorization = (*AuthService)(nil)

func NewAuthService(users repository.Users, signingKey string) *AuthService {
	return &AuthService{users: users, signingKey: []byte(signingKey)}
}

// Register hashes the password and stores the new account. The stored record,
// hash included, is returned to the caller as-is.
func (s *AuthService) Register(username, password, email string) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, ErrMissingCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	u := models.User{
		Username:     username,
		Password:     string(hash),
		Email:        email,
		RegisteredAt: time.Now().UTC(),
	}
	if err := s.users.Create(u); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return models.User{}, ErrUserExists
		}
		return models.User{}, err
	}
	return u, nil
}

// GenerateToken validates credentials and returns a signed JWT. Unknown user
// and wrong password are indistinguishable to the caller.
func (s *AuthService) GenerateToken(username, password string) (string, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return s.issueToken(username, tokenTTL)
}

// ParseToken verifies signature and expiry and returns the embedded username.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.Username, nil
}

func (s *AuthService) UserCount() int {
	return s.users.Count()
}

func (s *AuthService) issueToken(username string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: username,
	})
	return token.SignedString(s.signingKey)
}
