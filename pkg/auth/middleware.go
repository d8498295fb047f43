package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/controle-financeiro/internal/adapter/api/dto"
	"github.com/hugohenrick/controle-financeiro/internal/domain/usuario"
)

// ContextKeyUsuario é a chave sob a qual o usuário autenticado fica
// disponível no contexto da requisição
const ContextKeyUsuario = "usuario"

// Middleware valida o token de portador e resolve o usuário correspondente.
// Requisições sem token, com token inválido/expirado ou cujo subject não
// corresponde a um usuário existente são rejeitadas com 401.
func Middleware(jwtService *JWTService, usuarios usuario.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token não informado", ""))
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token inválido", ""))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		username, err := jwtService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token inválido", err.Error()))
			return
		}

		u, err := usuarios.FindByUsername(c.Request.Context(), username)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "usuário do token não encontrado", ""))
			return
		}

		c.Set(ContextKeyUsuario, u)

		c.Next()
	}
}

// UsuarioAtual recupera o usuário autenticado do contexto da requisição
func UsuarioAtual(c *gin.Context) (*usuario.Usuario, bool) {
	valor, existe := c.Get(ContextKeyUsuario)
	if !existe {
		return nil, false
	}
	u, ok := valor.(*usuario.Usuario)
	return u, ok
}
