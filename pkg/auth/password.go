package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Parâmetros do Argon2id
const (
	argonMemory      = 64 * 1024
	argonIterations  = 3
	argonParallelism = 2
	argonSaltLength  = 16
	argonKeyLength   = 32
)

var errHashMalformado = errors.New("hash de senha malformado")

// HashPassword gera o hash Argon2id da senha no formato PHC
// ($argon2id$v=19$m=...,t=...,p=...$salt$hash)
func HashPassword(senha string) (string, error) {
	salt := make([]byte, argonSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("erro ao gerar salt: %w", err)
	}

	hash := argon2.IDKey([]byte(senha), salt, argonIterations, argonMemory, argonParallelism, argonKeyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory,
		argonIterations,
		argonParallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)

	return encoded, nil
}

// VerifyPassword verifica a senha contra o hash armazenado em tempo
// constante. Hash malformado resulta em false, nunca em erro ou panic.
func VerifyPassword(senha, encoded string) bool {
	salt, hash, memory, iterations, parallelism, err := decodeHash(encoded)
	if err != nil {
		return false
	}

	candidato := argon2.IDKey([]byte(senha), salt, iterations, memory, parallelism, uint32(len(hash)))

	return subtle.ConstantTimeCompare(hash, candidato) == 1
}

// decodeHash extrai salt, hash e parâmetros de um hash no formato PHC
func decodeHash(encoded string) (salt, hash []byte, memory, iterations uint32, parallelism uint8, err error) {
	partes := strings.Split(encoded, "$")
	if len(partes) != 6 || partes[1] != "argon2id" {
		return nil, nil, 0, 0, 0, errHashMalformado
	}

	var versao int
	if _, err = fmt.Sscanf(partes[2], "v=%d", &versao); err != nil || versao != argon2.Version {
		return nil, nil, 0, 0, 0, errHashMalformado
	}

	if _, err = fmt.Sscanf(partes[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return nil, nil, 0, 0, 0, errHashMalformado
	}

	salt, err = base64.RawStdEncoding.DecodeString(partes[4])
	if err != nil {
		return nil, nil, 0, 0, 0, errHashMalformado
	}

	hash, err = base64.RawStdEncoding.DecodeString(partes[5])
	if err != nil {
		return nil, nil, 0, 0, 0, errHashMalformado
	}

	return salt, hash, memory, iterations, parallelism, nil
}
