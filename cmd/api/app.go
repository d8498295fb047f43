package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/controle-financeiro/internal/adapter/api/controller"
	"github.com/hugohenrick/controle-financeiro/internal/adapter/repository"
	"github.com/hugohenrick/controle-financeiro/internal/infrastructure/config"
	"github.com/hugohenrick/controle-financeiro/internal/infrastructure/database"
	"github.com/hugohenrick/controle-financeiro/internal/infrastructure/storage"
	"github.com/hugohenrick/controle-financeiro/pkg/auth"
	"github.com/hugohenrick/controle-financeiro/pkg/middleware"
	"go.uber.org/zap"
)

// App representa a aplicação e suas dependências
type App struct {
	config *config.Config
	log    *zap.Logger
	router *gin.Engine
	db     *database.PostgresDB

	usuarioRepository    *repository.PostgresUsuarioRepository
	filialRepository     *repository.PostgresFilialRepository
	fornecedorRepository *repository.PostgresFornecedorRepository
	lancamentoRepository *repository.PostgresLancamentoRepository

	authMiddleware gin.HandlerFunc

	authController       *controller.AuthController
	usuarioController    *controller.UsuarioController
	filialController     *controller.FilialController
	fornecedorController *controller.FornecedorController
	lancamentoController *controller.LancamentoController
	dashboardController  *controller.DashboardController
	uploadController     *controller.UploadController
}

// NewApp cria uma nova instância do aplicativo
func NewApp(cfg *config.Config, log *zap.Logger) (*App, error) {
	// Configurar banco de dados
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Criar repositórios
	usuarioRepo := repository.NewPostgresUsuarioRepository(db)
	filialRepo := repository.NewPostgresFilialRepository(db)
	fornecedorRepo := repository.NewPostgresFornecedorRepository(db)
	lancamentoRepo := repository.NewPostgresLancamentoRepository(db)

	// Criar storage de uploads
	fileStorage, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		db.Close()
		return nil, err
	}

	// Criar serviço de tokens e middleware de autenticação
	jwtService := auth.NewJWTService(&cfg.JWT)
	authMiddleware := auth.Middleware(jwtService, usuarioRepo)

	// Criar controllers
	authController := controller.NewAuthController(usuarioRepo, jwtService)
	usuarioController := controller.NewUsuarioController(usuarioRepo)
	filialController := controller.NewFilialController(filialRepo)
	fornecedorController := controller.NewFornecedorController(fornecedorRepo)
	lancamentoController := controller.NewLancamentoController(lancamentoRepo)
	dashboardController := controller.NewDashboardController(fornecedorRepo)
	uploadController := controller.NewUploadController(fileStorage)

	if cfg.Ambiente == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))

	// CORS liberado para qualquer origem, como o frontend interno exige
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	app := &App{
		config:               cfg,
		log:                  log,
		router:               router,
		db:                   db,
		usuarioRepository:    usuarioRepo,
		filialRepository:     filialRepo,
		fornecedorRepository: fornecedorRepo,
		lancamentoRepository: lancamentoRepo,
		authMiddleware:       authMiddleware,
		authController:       authController,
		usuarioController:    usuarioController,
		filialController:     filialController,
		fornecedorController: fornecedorController,
		lancamentoController: lancamentoController,
		dashboardController:  dashboardController,
		uploadController:     uploadController,
	}

	app.setupRoutes()

	return app, nil
}

// setupRoutes configura as rotas da aplicação
func (a *App) setupRoutes() {
	// Health check
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Arquivos enviados são servidos de volta a partir do diretório de uploads
	a.router.Static("/uploads", a.config.UploadDir)

	// Rotas que não exigem autenticação: login, criação do primeiro usuário
	// e o upload de arquivos consumido pelo formulário de lançamento
	a.router.POST("/token", a.authController.Token)
	a.router.POST("/usuarios", a.usuarioController.Create)
	a.router.POST("/upload", a.uploadController.Upload)

	// Rotas protegidas por token de portador
	protegidas := a.router.Group("")
	protegidas.Use(a.authMiddleware)

	usuariosRoutes := protegidas.Group("/usuarios")
	{
		usuariosRoutes.GET("", a.usuarioController.List)
		usuariosRoutes.PUT("/:id", a.usuarioController.Update)
		usuariosRoutes.DELETE("/:id", a.usuarioController.Delete)
	}

	filiaisRoutes := protegidas.Group("/filiais")
	{
		filiaisRoutes.POST("", a.filialController.Create)
		filiaisRoutes.GET("", a.filialController.List)
		filiaisRoutes.PUT("/:id", a.filialController.Update)
		filiaisRoutes.DELETE("/:id", a.filialController.Delete)
	}

	fornecedoresRoutes := protegidas.Group("/fornecedores")
	{
		fornecedoresRoutes.POST("", a.fornecedorController.Create)
		fornecedoresRoutes.GET("", a.fornecedorController.List)
		fornecedoresRoutes.PUT("/:id", a.fornecedorController.Update)
		fornecedoresRoutes.DELETE("/:id", a.fornecedorController.Delete)
	}

	lancamentosRoutes := protegidas.Group("/lancamentos")
	{
		lancamentosRoutes.POST("", a.lancamentoController.Create)
		lancamentosRoutes.GET("", a.lancamentoController.List)
		lancamentosRoutes.PUT("/:id", a.lancamentoController.Update)
		lancamentosRoutes.PATCH("/:id/status", a.lancamentoController.UpdateStatus)
		lancamentosRoutes.DELETE("/:id", a.lancamentoController.Delete)
	}

	protegidas.GET("/dados-agrupados", a.dashboardController.DadosAgrupados)
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	a.log.Info("Servidor iniciado", zap.String("porta", a.config.ServerPort))
	return a.router.Run(":" + a.config.ServerPort)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
