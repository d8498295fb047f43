package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/controle-financeiro/internal/adapter/api/dto"
	"github.com/hugohenrick/controle-financeiro/internal/domain/fornecedor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFornecedorRouter(repo *fakeFornecedorRepo) *gin.Engine {
	c := NewFornecedorController(repo)
	router := gin.New()
	router.POST("/fornecedores", c.Create)
	router.GET("/fornecedores", c.List)
	router.PUT("/fornecedores/:id", c.Update)
	router.DELETE("/fornecedores/:id", c.Delete)
	return router
}

func TestFornecedorCreate(t *testing.T) {
	repo := newFakeFornecedorRepo()
	router := setupFornecedorRouter(repo)

	body := `{
		"nome_empresa": "DELL COMPUTADORES",
		"lista_cnpjs": "00.123.456/0001-00",
		"lista_contratos": "CTR-DELL-2025",
		"lista_centro_custos": "1.01 - TI INFRA",
		"padrao_descricao_servico": "LOCAÇÃO DE NOTEBOOKS",
		"padrao_servico_protheus": "001 - LOCAÇÃO HARDWARE"
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/fornecedores", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var criado dto.FornecedorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &criado))
	assert.Equal(t, int64(1), criado.ID)
	assert.Equal(t, "1.01 - TI INFRA", criado.ListaCentroCusto)
}

func TestFornecedorCreateSemNome(t *testing.T) {
	repo := newFakeFornecedorRepo()
	router := setupFornecedorRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/fornecedores", bytes.NewReader([]byte(`{"lista_cnpjs":"x"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFornecedorUpdateInexistente(t *testing.T) {
	repo := newFakeFornecedorRepo()
	router := setupFornecedorRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/fornecedores/999", bytes.NewReader([]byte(`{"nome_empresa":"X"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFornecedorDeleteComLancamentos(t *testing.T) {
	repo := newFakeFornecedorRepo()
	f, err := fornecedor.NewFornecedor("G7 TECNOLOGIA", "", "", "", "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), f))
	repo.comLancamentos[f.ID] = true
	router := setupFornecedorRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/fornecedores/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
