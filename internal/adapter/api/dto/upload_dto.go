package dto

// UploadResponse é a resposta do endpoint de upload: o caminho relativo do
// arquivo gravado, a ser associado ao lançamento em uma segunda chamada
type UploadResponse struct {
	Path string `json:"path"`
}
