package jwttoken

import (
	"github.com/SeanJibowu555/dealer-qualifier/internal/platform/middleware"
)

// ToMiddlewareClaims converts token claims to the middleware's view of them.
func ToMiddlewareClaims(claims *Claims) *middleware.JWTClaims {
	return &middleware.JWTClaims{
		ClientName: claims.ClientName,
	}
}

// JWTServiceAdapter adapts JWTService to the middleware.JWTValidator interface.
type JWTServiceAdapter struct {
	service *JWTService
}

func NewJWTServiceAdapter(service *JWTService) *JWTServiceAdapter {
	return &JWTServiceAdapter{service: service}
}

func (a *JWTServiceAdapter) ValidateToken(tokenString string) (*middleware.JWTClaims, error) {
	claims, err := a.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return ToMiddlewareClaims(claims), nil
}
