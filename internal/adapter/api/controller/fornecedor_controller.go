package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/controle-financeiro/internal/adapter/api/dto"
	"github.com/hugohenrick/controle-financeiro/internal/adapter/repository"
	"github.com/hugohenrick/controle-financeiro/internal/domain/fornecedor"
)

// FornecedorController gerencia as requisições relacionadas a fornecedores
type FornecedorController struct {
	fornecedorRepository fornecedor.Repository
}

// NewFornecedorController cria uma nova instância de FornecedorController
func NewFornecedorController(fornecedorRepository fornecedor.Repository) *FornecedorController {
	return &FornecedorController{
		fornecedorRepository: fornecedorRepository,
	}
}

// Create cria um novo fornecedor
// @Summary Cria um novo fornecedor
// @Tags fornecedores
// @Accept json
// @Produce json
// @Security Bearer
// @Param fornecedor body dto.FornecedorRequest true "Dados do fornecedor"
// @Success 201 {object} dto.FornecedorResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fornecedores [post]
func (c *FornecedorController) Create(ctx *gin.Context) {
	var request dto.FornecedorRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	f, err := fornecedor.NewFornecedor(
		request.NomeEmpresa,
		request.ListaCNPJs,
		request.ListaContratos,
		request.ListaCentroCusto,
		request.PadraoDescricaoServico,
		request.PadraoServicoProtheus,
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.fornecedorRepository.Create(ctx.Request.Context(), f); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFornecedorResponse(f))
}

// List lista todos os fornecedores
// @Summary Lista os fornecedores
// @Tags fornecedores
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.FornecedorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fornecedores [get]
func (c *FornecedorController) List(ctx *gin.Context) {
	fornecedores, err := c.fornecedorRepository.List(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar fornecedores", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFornecedorListResponse(fornecedores))
}

// Update atualiza um fornecedor
// @Summary Atualiza um fornecedor
// @Tags fornecedores
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "ID do fornecedor"
// @Param fornecedor body dto.FornecedorRequest true "Dados do fornecedor"
// @Success 200 {object} dto.FornecedorResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fornecedores/{id} [put]
func (c *FornecedorController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID inválido", ""))
		return
	}

	var request dto.FornecedorRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	f := &fornecedor.Fornecedor{
		ID:                     id,
		NomeEmpresa:            request.NomeEmpresa,
		ListaCNPJs:             request.ListaCNPJs,
		ListaContratos:         request.ListaContratos,
		ListaCentroCusto:       request.ListaCentroCusto,
		PadraoDescricaoServico: request.PadraoDescricaoServico,
		PadraoServicoProtheus:  request.PadraoServicoProtheus,
	}

	if err := c.fornecedorRepository.Update(ctx.Request.Context(), f); err != nil {
		if errors.Is(err, repository.ErrFornecedorNaoEncontrado) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Fornecedor não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFornecedorResponse(f))
}

// Delete remove um fornecedor
// @Summary Remove um fornecedor
// @Description Remove um fornecedor sem lançamentos vinculados
// @Tags fornecedores
// @Produce json
// @Security Bearer
// @Param id path int true "ID do fornecedor"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fornecedores/{id} [delete]
func (c *FornecedorController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID inválido", ""))
		return
	}

	if err := c.fornecedorRepository.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrFornecedorNaoEncontrado) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Fornecedor não encontrado", ""))
			return
		}
		if errors.Is(err, repository.ErrFornecedorPossuiLancamento) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Fornecedor possui lançamentos vinculados", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao remover fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Fornecedor removido com sucesso", nil))
}
