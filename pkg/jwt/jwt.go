package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrTokenInvalid is returned for malformed tokens and signature mismatches.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired is returned when a token has expired.
	ErrTokenExpired = errors.New("token is expired")
	// ErrTokenRevoked is returned for tokens blacklisted before their natural expiry.
	ErrTokenRevoked = errors.New("token has been revoked")
)

// Claims defines the custom JWT claims structure. The subject carries the username.
type Claims struct {
	UserID uint `json:"user_id"`
	jwtlib.RegisteredClaims
}

// Username returns the subject the token was issued for.
func (c *Claims) Username() string {
	return c.Subject
}

// Denylist records revoked tokens until they would naturally expire.
type Denylist interface {
	Add(token string, expiresAt time.Time) error
	Contains(token string) (bool, error)
}

// TokenManager provides methods for issuing, validating, and revoking JWT tokens.
type TokenManager interface {
	GenerateToken(userID uint, username string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
	RevokeToken(tokenString string) error
	ExpirationTime() time.Duration
}

// NewTokenManager creates a new TokenManager signing with HS256 and consulting the given denylist.
func NewTokenManager(secretKey string, ttl time.Duration, issuer string, denylist Denylist) TokenManager {
	return &tokenManager{secretKey: secretKey, ttl: ttl, issuer: issuer, denylist: denylist}
}

type tokenManager struct {
	secretKey string
	ttl       time.Duration
	issuer    string
	denylist  Denylist
}

// GenerateToken creates a signed access token for a user.
func (j *tokenManager) GenerateToken(userID uint, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   username,
			Issuer:    j.issuer,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(j.ttl)),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses the token, checks signature and expiry, then consults the denylist.
func (j *tokenManager) ValidateToken(tokenString string) (*Claims, error) {
	claims, err := j.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if j.denylist != nil {
		revoked, err := j.denylist.Contains(tokenString)
		if err != nil {
			return nil, fmt.Errorf("failed to check token denylist: %w", err)
		}
		if revoked {
			return nil, ErrTokenRevoked
		}
	}
	return claims, nil
}

// RevokeToken blacklists a token until its natural expiry. Expired tokens are already unusable.
func (j *tokenManager) RevokeToken(tokenString string) error {
	if j.denylist == nil {
		return errors.New("token denylist not configured")
	}
	claims, err := j.parse(tokenString)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return nil
		}
		return err
	}
	if err := j.denylist.Add(tokenString, claims.ExpiresAt.Time); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// ExpirationTime exposes the configured token lifetime.
func (j *tokenManager) ExpirationTime() time.Duration {
	return j.ttl
}

func (j *tokenManager) parse(tokenString string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenString, &Claims{}, func(token *jwtlib.Token) (interface{}, error) {
		return []byte(j.secretKey), nil
	},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithIssuer(j.issuer),
		jwtlib.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
