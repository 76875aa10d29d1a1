package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"shelldon/internal/config"
	"shelldon/internal/logger"
	"shelldon/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenTTL   = time.Hour
	tokenIssuer       = "shelldon"
	minUsernameLength = 3
	maxUsernameLength = 32
)

// Domain errors for auth flows.
var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidPassword = errors.New("invalid password")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidToken    = errors.New("invalid token")
)

// AuthService handles caretaker auth logic.
type AuthService struct {
	authRepo   repository.Authorization
	signingKey []byte
	tokenTTL   time.Duration
}

// NewAuthService uses cfg.SigningKey; when it is empty a random key is
// generated, so tokens do not survive a restart.
func NewAuthService(repo repository.Authorization, cfg config.AuthConfig, log *logger.Logger) *AuthService {
	key := []byte(cfg.SigningKey)
	if len(key) == 0 {
		key = randomKey()
		if log != nil {
			log.Warnw("auth_signing_key_generated", "hint", "set auth.signing_key to keep tokens valid across restarts")
		}
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{authRepo: repo, signingKey: key, tokenTTL: ttl}
}

func randomKey() []byte {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("read random signing key: %v", err))
	}
	return []byte(hex.EncodeToString(b))
}

// normalizeUsername trims and lowercases; caretaker names are case-insensitive.
func normalizeUsername(username string) (string, error) {
	u := strings.ToLower(strings.TrimSpace(username))
	if n := len(u); n < minUsernameLength || n > maxUsernameLength {
		return "", fmt.Errorf("%w: must be %d-%d characters", ErrInvalidUsername, minUsernameLength, maxUsernameLength)
	}
	if strings.ContainsAny(u, " \t\n") {
		return "", fmt.Errorf("%w: must not contain whitespace", ErrInvalidUsername)
	}
	return u, nil
}

// SignUp hashes password and creates a new caretaker.
func (s *AuthService) SignUp(ctx context.Context, username, password string) (int, error) {
	name, err := normalizeUsername(username)
	if err != nil {
		return 0, err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPassword, err)
	}
	return s.authRepo.Create(ctx, name, hash)
}

// Claims carries the caretaker id; Subject repeats it as a string.
type Claims struct {
	jwt.RegisteredClaims
	CaretakerID int `json:"caretaker_id"`
}

// GenerateToken validates credentials and returns a JWT.
func (s *AuthService) GenerateToken(ctx context.Context, username, password string) (string, error) {
	name, err := normalizeUsername(username)
	if err != nil {
		return "", ErrUserNotFound
	}
	u, err := s.authRepo.GetByUsername(ctx, name)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidPassword
	}

	return s.issueToken(u.ID, time.Now())
}

// ParseToken accepts only HS256 tokens issued by this service and returns
// the caretaker id.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{},
		func(*jwt.Token) (interface{}, error) { return s.signingKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.CaretakerID <= 0 {
		return 0, ErrInvalidToken
	}
	return claims.CaretakerID, nil
}

func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (s *AuthService) issueToken(caretakerID int, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   strconv.Itoa(caretakerID),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		CaretakerID: caretakerID,
	})
	return token.SignedString(s.signingKey)
}
