package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"csms_backend/internals/configs"
	"csms_backend/internals/constants"
	helper "csms_backend/internals/helpers"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var (
	ErrTokenMissingExp = errors.New("token has no exp")
	ErrTokenClaims     = errors.New("invalid token claims")
)

// Claims payload token sesi: id, email, role + iat/exp.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService menandatangani dan memverifikasi token HS256.
// Secret dan TTL datang dari config, bukan dari env global.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(cfg *configs.Config) *TokenService {
	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Issue membuat token untuk identity. exp = now + ttl.
func (s *TokenService) Issue(id helper.Identity) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.ttl)
	claims := Claims{
		UserID: id.ID.String(),
		Email:  id.Email,
		Role:   id.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Parse memverifikasi signature (hanya HS256) dan exp, lalu
// mengembalikan identity. Token tanpa exp ditolak.
func (s *TokenService) Parse(raw string) (helper.Identity, error) {
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	tok, err := parser.ParseWithClaims(strings.TrimSpace(raw), claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return helper.Identity{}, err
	}
	if !tok.Valid {
		return helper.Identity{}, ErrTokenClaims
	}
	if claims.ExpiresAt == nil {
		return helper.Identity{}, ErrTokenMissingExp
	}
	if !s.now().Before(claims.ExpiresAt.Time) {
		return helper.Identity{}, jwt.ErrTokenExpired
	}

	userID, err := uuid.Parse(strings.TrimSpace(claims.UserID))
	if err != nil {
		return helper.Identity{}, ErrTokenClaims
	}
	role, ok := constants.ParseRole(claims.Role)
	if !ok {
		return helper.Identity{}, ErrTokenClaims
	}
	return helper.Identity{ID: userID, Email: claims.Email, Role: role}, nil
}
