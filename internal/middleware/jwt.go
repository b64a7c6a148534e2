package middleware

import (
	"time"

	"github.com/EduardoCSampaio/financas-app/config"
	"github.com/EduardoCSampaio/financas-app/internal/domain/user"
	appErrors "github.com/EduardoCSampaio/financas-app/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const resetScope = "reset_password"

type JwtService struct {
	secret          []byte
	expiration      time.Duration
	resetExpiration time.Duration
	UserService     *user.Service
}

func NewJwtService(cfg config.JWTConfig, userSvc *user.Service) *JwtService {
	return &JwtService{
		secret:          []byte(cfg.Secret),
		expiration:      time.Duration(cfg.ExpirationMin) * time.Minute,
		resetExpiration: cfg.ResetExpiration,
		UserService:     userSvc,
	}
}

// GenerateToken emite o token de acesso. O subject é o email do
// usuário, resolvido de volta para a entidade no AuthMiddleware.
func (s *JwtService) GenerateToken(u *user.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": u.Email,
		"iat": now.Unix(),
		"exp": now.Add(s.expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return signed, nil
}

func (s *JwtService) GenerateResetToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   email,
		"scope": resetScope,
		"iat":   now.Unix(),
		"exp":   now.Add(s.resetExpiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return signed, nil
}

// ValidateToken retorna o email do subject de um token de acesso.
// Tokens de reset não servem para autenticar requisições.
func (s *JwtService) ValidateToken(tokenStr string) (string, error) {
	claims, err := s.parse(tokenStr)
	if err != nil {
		return "", err
	}
	if scope, _ := claims["scope"].(string); scope != "" {
		return "", appErrors.ErrInvalidToken
	}
	return s.subject(claims)
}

func (s *JwtService) ValidateResetToken(tokenStr string) (string, error) {
	claims, err := s.parse(tokenStr)
	if err != nil {
		return "", err
	}
	if scope, _ := claims["scope"].(string); scope != resetScope {
		return "", appErrors.ErrInvalidToken
	}
	return s.subject(claims)
}

func (s *JwtService) parse(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, appErrors.ErrInvalidToken.WithError(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, appErrors.ErrInvalidToken
	}
	return claims, nil
}

func (s *JwtService) subject(claims jwt.MapClaims) (string, error) {
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", appErrors.ErrInvalidToken
	}
	return sub, nil
}

func (s *JwtService) Expiration() time.Duration {
	return s.expiration
}
