package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultExpiration is the validity window of an access token.
const DefaultExpiration = 48 * time.Hour

const timestampLayout = "2/1/2006, 15:04:05"

var (
	ErrMissingSecret = errors.New("jwt secret key is not configured")
	ErrMissingUserID = errors.New("user id is missing")
	ErrInvalidToken  = errors.New("invalid token")
)

type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 access tokens. The secret is fixed at
// construction and never read from ambient state.
type TokenService struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

func NewTokenService(secret string, expiration time.Duration) *TokenService {
	if expiration <= 0 {
		expiration = DefaultExpiration
	}
	return &TokenService{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}
}

// Issue signs a token carrying userID that expires after the configured window.
func (s *TokenService) Issue(userID string) (string, error) {
	if userID == "" {
		return "", ErrMissingUserID
	}
	if len(s.secret) == 0 {
		return "", ErrMissingSecret
	}

	now := s.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	if !HasThreeSegments(token) {
		return "", fmt.Errorf("signed token is malformed")
	}

	return token, nil
}

// Verify checks the signature and expiry of tokenString and returns its
// claims. It never falls back to an unverified decode.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrMissingSecret
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: payload is missing userId", ErrInvalidToken)
	}

	return claims, nil
}

// Decode parses tokenString without checking its signature. The result is
// only fit for display and must never drive an authorization decision.
func Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}

// FormatTimestamp renders t in UTC for human consumption.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func HasThreeSegments(token string) bool {
	return strings.Count(token, ".") == 2
}
