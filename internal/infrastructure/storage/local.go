package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Rótulos padrão quando o formulário de upload não informa os campos
const (
	FornecedorPadrao = "Outros"
	NotaPadrao       = "S_N"
	VencimentoPadrao = "S_D"
)

// invalidos são os caracteres proibidos em nomes de pasta
const invalidos = `<>:"/\|?*`

// FileStorage persiste arquivos enviados. A implementação local grava em uma
// árvore de diretórios servida de volta em /uploads.
type FileStorage interface {
	Store(fornecedor, nota, vencimento, filename string, conteudo []byte) (string, error)
}

// LocalStorage grava os arquivos no disco sob o diretório base configurado
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage cria o storage local, garantindo que o diretório base exista
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("erro ao criar diretório de uploads: %w", err)
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

// Store grava o conteúdo em {base}/{fornecedor}/{nota}_{vencimento}/{filename}
// e retorna o caminho relativo. Arquivo existente com o mesmo nome é
// sobrescrito.
func (s *LocalStorage) Store(fornecedor, nota, vencimento, filename string, conteudo []byte) (string, error) {
	if fornecedor == "" {
		fornecedor = FornecedorPadrao
	}
	if nota == "" {
		nota = NotaPadrao
	}
	if vencimento == "" {
		vencimento = VencimentoPadrao
	}

	safeFornecedor := SanitizeLabel(fornecedor)
	safeNota := SanitizeLabel(nota)
	safeVenc := SanitizeLabel(vencimento)

	// O nome do arquivo vem do cliente; Base impede traversal
	filename = filepath.Base(filename)

	dir := filepath.Join(s.baseDir, safeFornecedor, fmt.Sprintf("%s_%s", safeNota, safeVenc))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("erro ao criar diretório de destino: %w", err)
	}

	destino := filepath.Join(dir, filename)
	if err := os.WriteFile(destino, conteudo, 0o644); err != nil {
		return "", fmt.Errorf("erro ao gravar arquivo: %w", err)
	}

	return filepath.ToSlash(destino), nil
}

// SanitizeLabel substitui caracteres inválidos para pastas por "_" e remove
// espaços das extremidades
func SanitizeLabel(nome string) string {
	var b strings.Builder
	b.Grow(len(nome))
	for _, r := range nome {
		if strings.ContainsRune(invalidos, r) {
			b.WriteRune('_')
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
