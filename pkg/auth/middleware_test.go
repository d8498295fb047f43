package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/controle-financeiro/internal/domain/usuario"
	"github.com/hugohenrick/controle-financeiro/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// usuarioRepoStub devolve apenas os usuários presentes no mapa
type usuarioRepoStub struct {
	porUsername map[string]*usuario.Usuario
}

var errStubNaoEncontrado = assert.AnError

func (r *usuarioRepoStub) Create(context.Context, *usuario.Usuario) error { return nil }
func (r *usuarioRepoStub) FindByID(context.Context, int64) (*usuario.Usuario, error) {
	return nil, errStubNaoEncontrado
}
func (r *usuarioRepoStub) FindByUsername(_ context.Context, username string) (*usuario.Usuario, error) {
	u, ok := r.porUsername[username]
	if !ok {
		return nil, errStubNaoEncontrado
	}
	return u, nil
}
func (r *usuarioRepoStub) List(context.Context) ([]*usuario.Usuario, error) { return nil, nil }
func (r *usuarioRepoStub) Update(context.Context, *usuario.Usuario) error   { return nil }
func (r *usuarioRepoStub) Delete(context.Context, int64) error              { return nil }

func setupProtectedRouter(repo usuario.Repository, jwtService *JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protegida", Middleware(jwtService, repo), func(c *gin.Context) {
		u, ok := UsuarioAtual(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "usuário ausente do contexto"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": u.Username})
	})
	return router
}

func requisitar(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestMiddlewareTokenValido(t *testing.T) {
	jwtService := newTestJWTService(10 * time.Minute)
	repo := &usuarioRepoStub{porUsername: map[string]*usuario.Usuario{
		"admin": {ID: 1, Username: "admin"},
	}}
	router := setupProtectedRouter(repo, jwtService)

	token, err := jwtService.GenerateToken("admin")
	require.NoError(t, err)

	w := requisitar(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "admin")
}

func TestMiddlewareSemToken(t *testing.T) {
	jwtService := newTestJWTService(10 * time.Minute)
	router := setupProtectedRouter(&usuarioRepoStub{}, jwtService)

	w := requisitar(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddlewareEsquemaErrado(t *testing.T) {
	jwtService := newTestJWTService(10 * time.Minute)
	router := setupProtectedRouter(&usuarioRepoStub{}, jwtService)

	w := requisitar(router, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddlewareTokenExpirado(t *testing.T) {
	jwtService := newTestJWTService(-1 * time.Minute)
	repo := &usuarioRepoStub{porUsername: map[string]*usuario.Usuario{
		"admin": {ID: 1, Username: "admin"},
	}}
	router := setupProtectedRouter(repo, jwtService)

	token, err := jwtService.GenerateToken("admin")
	require.NoError(t, err)

	w := requisitar(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddlewareUsuarioDoTokenRemovido(t *testing.T) {
	jwtService := newTestJWTService(10 * time.Minute)
	router := setupProtectedRouter(&usuarioRepoStub{}, jwtService)

	token, err := jwtService.GenerateToken("removido")
	require.NoError(t, err)

	w := requisitar(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddlewareChaveDiferente(t *testing.T) {
	jwtService := newTestJWTService(10 * time.Minute)
	outro := NewJWTService(&config.JWTConfig{
		SecretKey: "outro-segredo",
		Expiracao: 10 * time.Minute,
	})
	router := setupProtectedRouter(&usuarioRepoStub{}, jwtService)

	token, err := outro.GenerateToken("admin")
	require.NoError(t, err)

	w := requisitar(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
