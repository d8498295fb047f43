package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/controle-financeiro/internal/adapter/api/dto"
	"github.com/hugohenrick/controle-financeiro/internal/domain/fornecedor"
)

var errMesAnoJuntos = errors.New("os filtros de mês e ano devem ser informados juntos")

func errParametro(nome string) error {
	return fmt.Errorf("parâmetro %s inválido", nome)
}

// DashboardController gerencia a visão agrupada de fornecedores e lançamentos
type DashboardController struct {
	fornecedorRepository fornecedor.Repository
}

// NewDashboardController cria uma nova instância de DashboardController
func NewDashboardController(fornecedorRepository fornecedor.Repository) *DashboardController {
	return &DashboardController{
		fornecedorRepository: fornecedorRepository,
	}
}

// DadosAgrupados retorna os fornecedores com seus lançamentos filtrados
// @Summary Dados agrupados por fornecedor
// @Description Retorna apenas fornecedores com ao menos um lançamento que satisfaça os filtros; cada fornecedor carrega exatamente os lançamentos filtrados
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Param filial_id query int false "ID da filial"
// @Param mes query int false "Mês de vencimento (1 a 12, requer ano)"
// @Param ano query int false "Ano de vencimento (requer mês)"
// @Success 200 {array} dto.FornecedorAgrupadoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dados-agrupados [get]
func (c *DashboardController) DadosAgrupados(ctx *gin.Context) {
	filtro, err := parseFiltroDashboard(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Filtro inválido", err.Error()))
		return
	}

	grupos, err := c.fornecedorRepository.ListarComLancamentos(ctx.Request.Context(), filtro)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao montar dados agrupados", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFornecedorAgrupadoListResponse(grupos))
}

func parseFiltroDashboard(ctx *gin.Context) (fornecedor.FiltroDashboard, error) {
	var filtro fornecedor.FiltroDashboard

	if v := ctx.Query("filial_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filtro, errParametro("filial_id")
		}
		filtro.FilialID = &id
	}

	if v := ctx.Query("mes"); v != "" {
		mes, err := strconv.Atoi(v)
		if err != nil || mes < 1 || mes > 12 {
			return filtro, errParametro("mes")
		}
		filtro.Mes = &mes
	}

	if v := ctx.Query("ano"); v != "" {
		ano, err := strconv.Atoi(v)
		if err != nil || ano <= 0 {
			return filtro, errParametro("ano")
		}
		filtro.Ano = &ano
	}

	// Mês e ano andam juntos: ou ambos presentes, ou nenhum
	if (filtro.Mes != nil) != (filtro.Ano != nil) {
		return filtro, errMesAnoJuntos
	}

	return filtro, nil
}
