package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeLabel(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"DELL COMPUTADORES", "DELL COMPUTADORES"},
		{"123/45", "123_45"},
		{`a<b>c:d"e/f\g|h?i*j`, "a_b_c_d_e_f_g_h_i_j"},
		{"  espacos  ", "espacos"},
		{"", ""},
	}

	for _, caso := range casos {
		assert.Equal(t, caso.esperado, SanitizeLabel(caso.entrada), "entrada %q", caso.entrada)
	}
}

func TestStoreLayoutDePastas(t *testing.T) {
	base := t.TempDir()
	s, err := NewLocalStorage(base)
	require.NoError(t, err)

	path, err := s.Store("DELL COMPUTADORES", "123/45", "2025-01-31", "nota.pdf", []byte("conteudo"))
	require.NoError(t, err)

	esperado := filepath.ToSlash(filepath.Join(base, "DELL COMPUTADORES", "123_45_2025-01-31", "nota.pdf"))
	assert.Equal(t, esperado, path)

	gravado, err := os.ReadFile(filepath.FromSlash(path))
	require.NoError(t, err)
	assert.Equal(t, []byte("conteudo"), gravado)
}

func TestStoreCamposVazios(t *testing.T) {
	base := t.TempDir()
	s, err := NewLocalStorage(base)
	require.NoError(t, err)

	path, err := s.Store("", "", "", "boleto.pdf", []byte("x"))
	require.NoError(t, err)

	esperado := filepath.ToSlash(filepath.Join(base, "Outros", "S_N_S_D", "boleto.pdf"))
	assert.Equal(t, esperado, path)
}

func TestStoreSobrescreveArquivoExistente(t *testing.T) {
	base := t.TempDir()
	s, err := NewLocalStorage(base)
	require.NoError(t, err)

	_, err = s.Store("FORN", "1", "2025-01-01", "nota.pdf", []byte("antigo"))
	require.NoError(t, err)

	path, err := s.Store("FORN", "1", "2025-01-01", "nota.pdf", []byte("novo"))
	require.NoError(t, err)

	gravado, err := os.ReadFile(filepath.FromSlash(path))
	require.NoError(t, err)
	assert.Equal(t, []byte("novo"), gravado)
}

func TestStoreImpedeTraversalNoNomeDoArquivo(t *testing.T) {
	base := t.TempDir()
	s, err := NewLocalStorage(base)
	require.NoError(t, err)

	path, err := s.Store("FORN", "1", "2025-01-01", "../../../etc/passwd", []byte("x"))
	require.NoError(t, err)

	esperado := filepath.ToSlash(filepath.Join(base, "FORN", "1_2025-01-01", "passwd"))
	assert.Equal(t, esperado, path)
}
