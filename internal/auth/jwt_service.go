package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// TokenKind discriminates what a token may be used for.
type TokenKind string

const (
	// TokenKindAccess authorizes resource requests.
	TokenKindAccess TokenKind = "access_token"
	// TokenKindRefresh authorizes minting a new access token only.
	TokenKindRefresh TokenKind = "refresh_token"
)

var (
	// ErrInvalidToken is returned when a token fails signature or shape checks.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is returned when a token is past its expiry.
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the payload carried by both token kinds.
type Claims struct {
	UserID    string    `json:"id"`
	TokenKind TokenKind `json:"token_kind"`
	jwt.RegisteredClaims
}

// TokenService mints and verifies signed bearer tokens.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenService creates a token service signing with the given secret.
func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// CreateAccessToken mints a short-lived access token for the user.
func (s *TokenService) CreateAccessToken(userID uuid.UUID) (string, error) {
	return s.sign(userID, TokenKindAccess, s.accessTTL)
}

// CreateRefreshToken mints a refresh token for the user.
func (s *TokenService) CreateRefreshToken(userID uuid.UUID) (string, error) {
	return s.sign(userID, TokenKindRefresh, s.refreshTTL)
}

func (s *TokenService) sign(userID uuid.UUID, kind TokenKind, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID.String(),
		TokenKind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken checks signature and expiry and returns the claims. Expiry is
// rejected here explicitly in addition to the library's own check, so the
// behavior does not depend on parser defaults. A missing user id is invalid.
func (s *TokenService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
		return nil, ErrTokenExpired
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
