package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("senha-secreta")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$"), "hash deve estar no formato PHC")
	assert.True(t, VerifyPassword("senha-secreta", hash))
}

func TestHashPasswordSaltAleatorio(t *testing.T) {
	hash1, err := HashPassword("mesma-senha")
	require.NoError(t, err)

	hash2, err := HashPassword("mesma-senha")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2, "hashes da mesma senha devem diferir pelo salt")
	assert.True(t, VerifyPassword("mesma-senha", hash1))
	assert.True(t, VerifyPassword("mesma-senha", hash2))
}

func TestVerifyPasswordSenhaErrada(t *testing.T) {
	hash, err := HashPassword("senha-certa")
	require.NoError(t, err)

	assert.False(t, VerifyPassword("senha-errada", hash))
	assert.False(t, VerifyPassword("", hash))
}

func TestVerifyPasswordHashMalformado(t *testing.T) {
	casos := []string{
		"",
		"texto-qualquer",
		"$argon2id$v=19$m=65536,t=3,p=2$salt",
		"$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=99$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=abc,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$!!!",
	}

	for _, encoded := range casos {
		assert.False(t, VerifyPassword("senha", encoded), "hash malformado deve falhar: %q", encoded)
	}
}
