package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/controle-financeiro/internal/adapter/api/dto"
	"github.com/hugohenrick/controle-financeiro/internal/adapter/repository"
	"github.com/hugohenrick/controle-financeiro/internal/domain/usuario"
	"github.com/hugohenrick/controle-financeiro/pkg/auth"
)

// AuthController gerencia as requisições relacionadas à autenticação
type AuthController struct {
	usuarioRepository usuario.Repository
	jwtService        *auth.JWTService
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(usuarioRepository usuario.Repository, jwtService *auth.JWTService) *AuthController {
	return &AuthController{
		usuarioRepository: usuarioRepository,
		jwtService:        jwtService,
	}
}

// Token autentica um usuário e emite um token de portador
// @Summary Emite um token de acesso
// @Description Verifica usuário e senha enviados como formulário e retorna um token JWT
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Senha"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /token [post]
func (c *AuthController) Token(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	u, err := c.usuarioRepository.FindByUsername(ctx.Request.Context(), request.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNaoEncontrado) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", "Usuário ou senha incorretos"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao autenticar usuário", err.Error()))
		return
	}

	if !auth.VerifyPassword(request.Password, u.PasswordHash) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", "Usuário ou senha incorretos"))
		return
	}

	token, err := c.jwtService.GenerateToken(u.Username)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar token", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
