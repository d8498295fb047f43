package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hugohenrick/controle-financeiro/internal/infrastructure/config"
)

// Erros específicos
var (
	ErrTokenInvalido  = errors.New("token inválido")
	ErrTokenExpirado  = errors.New("token expirado")
	ErrClaimsInvalida = errors.New("claims inválidas")
)

// JWTService emite e valida tokens de portador assinados com HMAC-SHA256.
// A expiração é embutida na claim exp e verificada na validação.
type JWTService struct {
	secretKey []byte
	expiracao time.Duration
}

// NewJWTService cria uma nova instância de JWTService a partir da
// configuração injetada
func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{
		secretKey: []byte(cfg.SecretKey),
		expiracao: cfg.Expiracao,
	}
}

// GenerateToken gera um token JWT com o username como subject
func (s *JWTService) GenerateToken(username string) (string, error) {
	agora := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(agora.Add(s.expiracao)),
		IssuedAt:  jwt.NewNumericDate(agora),
		Issuer:    "controle-financeiro-api",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateToken valida o token e retorna o username do subject
func (s *JWTService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalido
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpirado
		}
		return "", ErrTokenInvalido
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", ErrClaimsInvalida
	}

	if claims.Subject == "" {
		return "", ErrClaimsInvalida
	}

	return claims.Subject, nil
}
