package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/controle-financeiro/internal/adapter/api/dto"
	"github.com/hugohenrick/controle-financeiro/internal/adapter/repository"
	"github.com/hugohenrick/controle-financeiro/internal/domain/filial"
)

// FilialController gerencia as requisições relacionadas a filiais
type FilialController struct {
	filialRepository filial.Repository
}

// NewFilialController cria uma nova instância de FilialController
func NewFilialController(filialRepository filial.Repository) *FilialController {
	return &FilialController{
		filialRepository: filialRepository,
	}
}

// Create cria uma nova filial
// @Summary Cria uma nova filial
// @Tags filiais
// @Accept json
// @Produce json
// @Security Bearer
// @Param filial body dto.FilialRequest true "Dados da filial"
// @Success 201 {object} dto.FilialResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /filiais [post]
func (c *FilialController) Create(ctx *gin.Context) {
	var request dto.FilialRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	f, err := filial.NewFilial(request.Codigo, request.NomeFantasia)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.filialRepository.Create(ctx.Request.Context(), f); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar filial", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFilialResponse(f))
}

// List lista todas as filiais
// @Summary Lista as filiais
// @Tags filiais
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.FilialResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /filiais [get]
func (c *FilialController) List(ctx *gin.Context) {
	filiais, err := c.filialRepository.List(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar filiais", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFilialListResponse(filiais))
}

// Update atualiza uma filial
// @Summary Atualiza uma filial
// @Tags filiais
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "ID da filial"
// @Param filial body dto.FilialRequest true "Dados da filial"
// @Success 200 {object} dto.FilialResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /filiais/{id} [put]
func (c *FilialController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID inválido", ""))
		return
	}

	var request dto.FilialRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	f := &filial.Filial{
		ID:           id,
		Codigo:       request.Codigo,
		NomeFantasia: request.NomeFantasia,
	}

	if err := c.filialRepository.Update(ctx.Request.Context(), f); err != nil {
		if errors.Is(err, repository.ErrFilialNaoEncontrada) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Filial não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar filial", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFilialResponse(f))
}

// Delete remove uma filial
// @Summary Remove uma filial
// @Description Remove uma filial sem lançamentos vinculados
// @Tags filiais
// @Produce json
// @Security Bearer
// @Param id path int true "ID da filial"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /filiais/{id} [delete]
func (c *FilialController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID inválido", ""))
		return
	}

	if err := c.filialRepository.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrFilialNaoEncontrada) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Filial não encontrada", ""))
			return
		}
		if errors.Is(err, repository.ErrFilialPossuiLancamento) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Filial possui lançamentos vinculados", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao remover filial", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Filial removida com sucesso", nil))
}
