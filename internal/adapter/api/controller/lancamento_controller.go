package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/controle-financeiro/internal/adapter/api/dto"
	"github.com/hugohenrick/controle-financeiro/internal/adapter/repository"
	"github.com/hugohenrick/controle-financeiro/internal/domain/lancamento"
)

// LancamentoController gerencia as requisições relacionadas a lançamentos
type LancamentoController struct {
	lancamentoRepository lancamento.Repository
}

// NewLancamentoController cria uma nova instância de LancamentoController
func NewLancamentoController(lancamentoRepository lancamento.Repository) *LancamentoController {
	return &LancamentoController{
		lancamentoRepository: lancamentoRepository,
	}
}

// Create cria um novo lançamento
// @Summary Cria um novo lançamento
// @Description Cria um lançamento aplicando série "U" e status "Pendente Lançamento" quando omitidos
// @Tags lancamentos
// @Accept json
// @Produce json
// @Security Bearer
// @Param lancamento body dto.LancamentoRequest true "Dados do lançamento"
// @Success 201 {object} dto.LancamentoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /lancamentos [post]
func (c *LancamentoController) Create(ctx *gin.Context) {
	var request dto.LancamentoRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	l, err := request.ToLancamento()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.lancamentoRepository.Create(ctx.Request.Context(), l); err != nil {
		if errors.Is(err, repository.ErrReferenciaInvalida) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Fornecedor ou filial inexistente", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar lançamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLancamentoResponse(l))
}

// List lista todos os lançamentos
// @Summary Lista os lançamentos
// @Tags lancamentos
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.LancamentoResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /lancamentos [get]
func (c *LancamentoController) List(ctx *gin.Context) {
	lancamentos, err := c.lancamentoRepository.List(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar lançamentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLancamentoListResponse(lancamentos))
}

// Update substitui os dados de um lançamento
// @Summary Atualiza um lançamento
// @Description Substitui todos os campos mutáveis do lançamento mantendo o ID
// @Tags lancamentos
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "ID do lançamento"
// @Param lancamento body dto.LancamentoRequest true "Dados do lançamento"
// @Success 200 {object} dto.LancamentoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /lancamentos/{id} [put]
func (c *LancamentoController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID inválido", ""))
		return
	}

	var request dto.LancamentoRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	l, err := request.ToLancamento()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}
	l.ID = id

	if err := c.lancamentoRepository.Update(ctx.Request.Context(), l); err != nil {
		if errors.Is(err, repository.ErrLancamentoNaoEncontrado) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Lançamento não encontrado", ""))
			return
		}
		if errors.Is(err, repository.ErrReferenciaInvalida) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Fornecedor ou filial inexistente", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar lançamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLancamentoResponse(l))
}

// UpdateStatus atualiza apenas o status de pagamento de um lançamento
// @Summary Atualiza o status de um lançamento
// @Description Altera somente o campo status_pagamento, sem tocar nos demais
// @Tags lancamentos
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "ID do lançamento"
// @Param status body dto.StatusUpdateRequest true "Novo status"
// @Success 200 {object} dto.LancamentoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /lancamentos/{id}/status [patch]
func (c *LancamentoController) UpdateStatus(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID inválido", ""))
		return
	}

	var request dto.StatusUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	if err := c.lancamentoRepository.UpdateStatus(ctx.Request.Context(), id, request.Status); err != nil {
		if errors.Is(err, repository.ErrLancamentoNaoEncontrado) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Lançamento não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar status", err.Error()))
		return
	}

	l, err := c.lancamentoRepository.FindByID(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar lançamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLancamentoResponse(l))
}

// Delete remove um lançamento
// @Summary Remove um lançamento
// @Tags lancamentos
// @Produce json
// @Security Bearer
// @Param id path int true "ID do lançamento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /lancamentos/{id} [delete]
func (c *LancamentoController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID inválido", ""))
		return
	}

	if err := c.lancamentoRepository.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrLancamentoNaoEncontrado) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Lançamento não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao remover lançamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Lançamento removido com sucesso", nil))
}
