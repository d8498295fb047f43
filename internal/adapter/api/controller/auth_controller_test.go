package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/controle-financeiro/internal/adapter/api/dto"
	"github.com/hugohenrick/controle-financeiro/internal/domain/usuario"
	"github.com/hugohenrick/controle-financeiro/internal/infrastructure/config"
	"github.com/hugohenrick/controle-financeiro/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(t *testing.T, repo *fakeUsuarioRepo) (*gin.Engine, *auth.JWTService) {
	t.Helper()

	jwtService := auth.NewJWTService(&config.JWTConfig{
		SecretKey: "segredo-de-teste",
		Expiracao: 10 * time.Minute,
	})

	c := NewAuthController(repo, jwtService)
	router := gin.New()
	router.POST("/token", c.Token)
	return router, jwtService
}

func criarUsuarioDeTeste(t *testing.T, repo *fakeUsuarioRepo, username, senha string) {
	t.Helper()

	hash, err := auth.HashPassword(senha)
	require.NoError(t, err)

	u, err := usuario.NewUsuario(username, hash, "", "", "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), u))
}

func postLogin(router *gin.Engine, username, password string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func TestTokenLoginValido(t *testing.T) {
	repo := newFakeUsuarioRepo()
	criarUsuarioDeTeste(t, repo, "admin", "senha123")
	router, jwtService := setupAuthRouter(t, repo)

	w := postLogin(router, "admin", "senha123")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resposta dto.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resposta))
	assert.Equal(t, "bearer", resposta.TokenType)
	require.NotEmpty(t, resposta.AccessToken)

	username, err := jwtService.ValidateToken(resposta.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestTokenSenhaErrada(t *testing.T) {
	repo := newFakeUsuarioRepo()
	criarUsuarioDeTeste(t, repo, "admin", "senha123")
	router, _ := setupAuthRouter(t, repo)

	w := postLogin(router, "admin", "senha-errada")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenUsuarioInexistente(t *testing.T) {
	repo := newFakeUsuarioRepo()
	router, _ := setupAuthRouter(t, repo)

	w := postLogin(router, "fantasma", "qualquer")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenFormularioIncompleto(t *testing.T) {
	repo := newFakeUsuarioRepo()
	router, _ := setupAuthRouter(t, repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader("username=admin"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
