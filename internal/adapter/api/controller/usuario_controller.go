package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/controle-financeiro/internal/adapter/api/dto"
	"github.com/hugohenrick/controle-financeiro/internal/adapter/repository"
	"github.com/hugohenrick/controle-financeiro/internal/domain/usuario"
	"github.com/hugohenrick/controle-financeiro/pkg/auth"
)

// UsuarioController gerencia as requisições relacionadas a usuários
type UsuarioController struct {
	usuarioRepository usuario.Repository
}

// NewUsuarioController cria uma nova instância de UsuarioController
func NewUsuarioController(usuarioRepository usuario.Repository) *UsuarioController {
	return &UsuarioController{
		usuarioRepository: usuarioRepository,
	}
}

// Create cria um novo usuário
// @Summary Cria um novo usuário
// @Description Cria um novo usuário; aberto para permitir o bootstrap do primeiro administrador
// @Tags usuarios
// @Accept json
// @Produce json
// @Param usuario body dto.UsuarioRequest true "Dados do usuário"
// @Success 201 {object} dto.UsuarioResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /usuarios [post]
func (c *UsuarioController) Create(ctx *gin.Context) {
	var request dto.UsuarioRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	hash, err := auth.HashPassword(request.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao processar senha", err.Error()))
		return
	}

	u, err := usuario.NewUsuario(request.Username, hash, request.NomeCompleto, request.CPF, request.Setor, request.Cargo)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.usuarioRepository.Create(ctx.Request.Context(), u); err != nil {
		if errors.Is(err, repository.ErrUsuarioDuplicado) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Username já cadastrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUsuarioResponse(u))
}

// List lista todos os usuários
// @Summary Lista os usuários
// @Tags usuarios
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.UsuarioResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /usuarios [get]
func (c *UsuarioController) List(ctx *gin.Context) {
	usuarios, err := c.usuarioRepository.List(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar usuários", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUsuarioListResponse(usuarios))
}

// Update atualiza um usuário
// @Summary Atualiza um usuário
// @Tags usuarios
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "ID do usuário"
// @Param usuario body dto.UsuarioRequest true "Dados do usuário"
// @Success 200 {object} dto.UsuarioResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /usuarios/{id} [put]
func (c *UsuarioController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID inválido", ""))
		return
	}

	var request dto.UsuarioRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	existente, err := c.usuarioRepository.FindByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNaoEncontrado) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Usuário não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar usuário", err.Error()))
		return
	}

	hash, err := auth.HashPassword(request.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao processar senha", err.Error()))
		return
	}

	existente.Username = request.Username
	existente.PasswordHash = hash
	existente.NomeCompleto = request.NomeCompleto
	existente.CPF = request.CPF
	existente.Setor = request.Setor
	existente.Cargo = request.Cargo

	if err := c.usuarioRepository.Update(ctx.Request.Context(), existente); err != nil {
		if errors.Is(err, repository.ErrUsuarioNaoEncontrado) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Usuário não encontrado", ""))
			return
		}
		if errors.Is(err, repository.ErrUsuarioDuplicado) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Username já cadastrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUsuarioResponse(existente))
}

// Delete remove um usuário
// @Summary Remove um usuário
// @Tags usuarios
// @Produce json
// @Security Bearer
// @Param id path int true "ID do usuário"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /usuarios/{id} [delete]
func (c *UsuarioController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID inválido", ""))
		return
	}

	if err := c.usuarioRepository.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrUsuarioNaoEncontrado) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Usuário não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao remover usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Usuário removido com sucesso", nil))
}
