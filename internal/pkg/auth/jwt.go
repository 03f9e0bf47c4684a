package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWT errors
var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token expired")
	ErrInvalidFormat     = errors.New("invalid token format")
	ErrWrongTokenPurpose = errors.New("wrong token purpose")
)

// TokenPurpose identifies what a token may be used for.
type TokenPurpose string

const (
	PurposeSession       TokenPurpose = "session"
	PurposePasswordReset TokenPurpose = "password_reset"
)

// JWTConfig defines JWT configuration settings
type JWTConfig struct {
	SecretKey       string
	SessionTokenExp time.Duration
	ResetTokenExp   time.Duration
	TokenIssuer     string
}

// JWTService handles JWT operations
type JWTService struct {
	config JWTConfig
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{
		config: config,
	}
}

// Claims defines JWT token content: identity, role and tenant.
type Claims struct {
	UserID    string       `json:"userId"`
	Role      string       `json:"role"`
	CollegeID string       `json:"collegeId"`
	Purpose   TokenPurpose `json:"purpose"`
	jwt.RegisteredClaims
}

// GenerateSessionToken creates a signed session token carrying identity,
// role and tenant claims. Returns the token and its lifetime in seconds.
func (s *JWTService) GenerateSessionToken(userID, role, collegeID string) (token string, expiresIn int64, err error) {
	token, err = s.sign(userID, role, collegeID, PurposeSession, s.config.SessionTokenExp)
	if err != nil {
		return "", 0, err
	}
	return token, int64(s.config.SessionTokenExp.Seconds()), nil
}

// GenerateResetToken creates a short-lived password reset token. Reset tokens
// carry no role or tenant claims; they authorize exactly one password change
// and are additionally persisted so they can be consumed once.
func (s *JWTService) GenerateResetToken(userID string) (string, error) {
	return s.sign(userID, "", "", PurposePasswordReset, s.config.ResetTokenExp)
}

func (s *JWTService) sign(userID, role, collegeID string, purpose TokenPurpose, exp time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		Role:      role,
		CollegeID: collegeID,
		Purpose:   purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.TokenIssuer,
			Subject:   userID,
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies the signature and expiry of a token and returns its claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// ValidateSessionToken validates a token and ensures it is a session token.
func (s *JWTService) ValidateSessionToken(tokenString string) (*Claims, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Purpose != PurposeSession {
		return nil, ErrWrongTokenPurpose
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ValidateResetToken validates a token and ensures it is a password reset token.
func (s *JWTService) ValidateResetToken(tokenString string) (*Claims, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Purpose != PurposePasswordReset {
		return nil, ErrWrongTokenPurpose
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ExtractBearerToken extracts the token from the Authorization header
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidFormat
	}

	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}

	return authHeader, nil
}
