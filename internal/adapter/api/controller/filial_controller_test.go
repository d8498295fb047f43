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
	"github.com/hugohenrick/controle-financeiro/internal/domain/filial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFilialRouter(repo *fakeFilialRepo) *gin.Engine {
	c := NewFilialController(repo)
	router := gin.New()
	router.POST("/filiais", c.Create)
	router.GET("/filiais", c.List)
	router.PUT("/filiais/:id", c.Update)
	router.DELETE("/filiais/:id", c.Delete)
	return router
}

func TestFilialCreateEList(t *testing.T) {
	repo := newFakeFilialRepo()
	router := setupFilialRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/filiais", bytes.NewReader([]byte(`{"codigo":"01","nome_fantasia":"MATRIZ"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var criada dto.FilialResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &criada))
	assert.Equal(t, int64(1), criada.ID)
	assert.Equal(t, "MATRIZ", criada.NomeFantasia)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/filiais", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var lista []dto.FilialResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lista))
	require.Len(t, lista, 1)
	assert.Equal(t, "01", lista[0].Codigo)
}

func TestFilialCreateSemCampos(t *testing.T) {
	repo := newFakeFilialRepo()
	router := setupFilialRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/filiais", bytes.NewReader([]byte(`{"codigo":"01"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFilialUpdateInexistente(t *testing.T) {
	repo := newFakeFilialRepo()
	router := setupFilialRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/filiais/999", bytes.NewReader([]byte(`{"codigo":"01","nome_fantasia":"MATRIZ"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFilialDeleteComLancamentos(t *testing.T) {
	repo := newFakeFilialRepo()
	require.NoError(t, repo.Create(context.Background(), &filial.Filial{Codigo: "01", NomeFantasia: "MATRIZ"}))
	repo.comLancamentos[1] = true
	router := setupFilialRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/filiais/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	// A filial continua existindo
	_, err := repo.FindByID(context.Background(), 1)
	assert.NoError(t, err)
}

func TestFilialDeleteInexistente(t *testing.T) {
	repo := newFakeFilialRepo()
	router := setupFilialRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/filiais/999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
