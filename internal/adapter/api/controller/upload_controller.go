package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/controle-financeiro/internal/adapter/api/dto"
	"github.com/hugohenrick/controle-financeiro/internal/infrastructure/storage"
)

// UploadController gerencia o recebimento de arquivos de nota e boleto
type UploadController struct {
	storage storage.FileStorage
}

// NewUploadController cria uma nova instância de UploadController
func NewUploadController(fileStorage storage.FileStorage) *UploadController {
	return &UploadController{
		storage: fileStorage,
	}
}

// Upload recebe um arquivo e o grava na árvore de uploads
// @Summary Envia um arquivo
// @Description Grava o arquivo em uploads/{fornecedor}/{nota}_{vencimento}/ e retorna o caminho relativo para associação posterior ao lançamento
// @Tags upload
// @Accept mpfd
// @Produce json
// @Param file formData file true "Arquivo"
// @Param fornecedor formData string false "Nome do fornecedor"
// @Param nota formData string false "Número da nota"
// @Param vencimento formData string false "Data de vencimento"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /upload [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Arquivo não enviado", err.Error()))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao abrir arquivo", err.Error()))
		return
	}
	defer file.Close()

	conteudo, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao ler arquivo", err.Error()))
		return
	}

	path, err := c.storage.Store(
		ctx.PostForm("fornecedor"),
		ctx.PostForm("nota"),
		ctx.PostForm("vencimento"),
		fileHeader.Filename,
		conteudo,
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gravar arquivo", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.UploadResponse{Path: path})
}
