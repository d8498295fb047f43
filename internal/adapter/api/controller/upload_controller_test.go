package controller

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/controle-financeiro/internal/adapter/api/dto"
	"github.com/hugohenrick/controle-financeiro/internal/infrastructure/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUploadRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()

	base := t.TempDir()
	s, err := storage.NewLocalStorage(base)
	require.NoError(t, err)

	c := NewUploadController(s)
	router := gin.New()
	router.POST("/upload", c.Upload)
	return router, base
}

func montarUpload(t *testing.T, campos map[string]string, filename string, conteudo []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for nome, valor := range campos {
		require.NoError(t, writer.WriteField(nome, valor))
	}

	if filename != "" {
		parte, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = parte.Write(conteudo)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestUploadGravaArquivo(t *testing.T) {
	router, base := setupUploadRouter(t)

	campos := map[string]string{
		"fornecedor": "DELL COMPUTADORES",
		"nota":       "123/45",
		"vencimento": "2025-02-10",
	}
	buf, contentType := montarUpload(t, campos, "nota.pdf", []byte("conteudo-da-nota"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", buf)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resposta dto.UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resposta))

	esperado := filepath.ToSlash(filepath.Join(base, "DELL COMPUTADORES", "123_45_2025-02-10", "nota.pdf"))
	assert.Equal(t, esperado, resposta.Path)

	gravado, err := os.ReadFile(filepath.FromSlash(resposta.Path))
	require.NoError(t, err)
	assert.Equal(t, []byte("conteudo-da-nota"), gravado)
}

func TestUploadCamposOmitidosUsamPadroes(t *testing.T) {
	router, base := setupUploadRouter(t)

	buf, contentType := montarUpload(t, nil, "boleto.pdf", []byte("x"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", buf)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resposta dto.UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resposta))

	esperado := filepath.ToSlash(filepath.Join(base, "Outros", "S_N_S_D", "boleto.pdf"))
	assert.Equal(t, esperado, resposta.Path)
}

func TestUploadSemArquivo(t *testing.T) {
	router, _ := setupUploadRouter(t)

	buf, contentType := montarUpload(t, map[string]string{"fornecedor": "X"}, "", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", buf)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
