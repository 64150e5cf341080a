package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the session inside a signed token.
type Claims struct {
	Role             Role   `json:"role"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	RepresentativeID string `json:"representative_id,omitempty"`
	jwt.RegisteredClaims
}

// GenerateJWT signs the session with HS256.
func GenerateJWT(s Session, secretKey string, ttl time.Duration) (string, error) {
	claims := &Claims{
		Role:             s.Role,
		Email:            s.Email,
		Name:             s.Name,
		RepresentativeID: s.RepresentativeID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(s.LoggedInAt.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(s.LoggedInAt),
			Subject:   s.Email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign JWT: %w", err)
	}

	return signed, nil
}

// ValidateJWT verifies the token and returns the session it carries.
func ValidateJWT(tokenString, secretKey string) (*Session, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if _, err := ParseRole(string(claims.Role)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	s := &Session{
		Role:             claims.Role,
		Email:            claims.Email,
		Name:             claims.Name,
		RepresentativeID: claims.RepresentativeID,
	}

	if claims.IssuedAt != nil {
		s.LoggedInAt = claims.IssuedAt.UTC()
	}

	return s, nil
}
