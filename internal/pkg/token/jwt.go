// Package token emite e valida os JWTs HS256 aceitos pela API de coleções.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "GoCollect-API"

var (
	ErrInvalidToken  = errors.New("token inválido")
	ErrMissingUserID = errors.New("token sem user_id")
)

// CustomClaims carrega o user_id opaco do provedor de identidade e a role.
type CustomClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey []byte
	expiry    time.Duration
	now       func() time.Time
}

func NewService(secretKey string, expiry time.Duration) *Service {
	return &Service{secretKey: []byte(secretKey), expiry: expiry, now: time.Now}
}

// GenerateToken assina um token para o par (userID, role) válido por s.expiry.
func (s *Service) GenerateToken(userID string, userRole string) (string, error) {
	issuedAt := jwt.NewNumericDate(s.now())
	claims := CustomClaims{
		UserID: userID,
		Role:   userRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  issuedAt,
			NotBefore: issuedAt,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.expiry)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("assinando token de %s: %w", userID, err)
	}
	return signed, nil
}

// ValidateToken confere assinatura, emissor e validade e exige user_id preenchido.
func (s *Service) ValidateToken(raw string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, s.key,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	switch {
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	case !parsed.Valid:
		return nil, ErrInvalidToken
	case claims.UserID == "":
		return nil, ErrMissingUserID
	}
	return claims, nil
}

func (s *Service) key(*jwt.Token) (interface{}, error) {
	return s.secretKey, nil
}
