package jwt

import (
	"errors"
	"time"

	"library-backend/internal/domain/account"
	"library-backend/internal/pkg/clock"
	"library-backend/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errs.NewCategorized("invalid token", errs.ErrUnauthenticated)
	ErrExpiredToken = errs.Mark(errs.Mark(errs.New("token expired"), ErrInvalidToken), errs.ErrUnauthenticated)
)

// Claims: subject is the account email.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) Email() string {
	return c.Subject
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
	clock         clock.Clock
}

func NewService(secretKey string, tokenDuration time.Duration, clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		clock:         clk,
	}
}

func (s *Service) Issue(email string, role account.Role, subjectID uuid.UUID) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		UserID: subjectID,
		Role:   role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", errs.Wrap(err, "sign token")
	}
	return signed, nil
}

// Validate never panics on malformed input; every failure is ErrInvalidToken.
// The returned Role is canonical, so aliases like "ROLE_CLIENTE" read as CUSTOMER.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
	)
	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (any, error) {
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	role, err := account.NewRole(claims.Role)
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims.Role = role.String()
	return claims, nil
}

// The Extract* helpers read claims without verifying the signature.
// Call them only on a token that already passed Validate.

func (s *Service) ExtractRole(tokenString string) account.Role {
	claims := s.unverified(tokenString)
	if claims == nil {
		return ""
	}
	role, _ := account.NewRole(claims.Role)
	return role
}

func (s *Service) ExtractEmail(tokenString string) string {
	claims := s.unverified(tokenString)
	if claims == nil {
		return ""
	}
	return claims.Subject
}

func (s *Service) ExtractSubjectID(tokenString string) uuid.UUID {
	claims := s.unverified(tokenString)
	if claims == nil {
		return uuid.Nil
	}
	return claims.UserID
}

func (s *Service) unverified(tokenString string) *Claims {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil
	}
	return claims
}
