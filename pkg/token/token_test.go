package token_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocktrackhq/stocktrack-api/pkg/token"
)

func TestGenerate_LongitudYAlfabeto(t *testing.T) {
	tok, err := token.Generate(32)
	require.NoError(t, err)

	assert.Len(t, tok, 64, "32 bytes deben codificarse en 64 caracteres hex")
	assert.Regexp(t, `^[0-9a-f]+$`, tok, "el token debe ser hex en minúsculas")

	raw, err := hex.DecodeString(tok)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}

func TestGenerate_TamanoInvalido(t *testing.T) {
	_, err := token.Generate(0)
	assert.Error(t, err, "tamaño cero debe rechazarse")

	_, err = token.Generate(-8)
	assert.Error(t, err, "tamaño negativo debe rechazarse")
}

func TestGenerate_SinRepetidos(t *testing.T) {
	// Con 256 bits de entropía cualquier colisión en una muestra corta es un bug.
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		tok, err := token.Generate(32)
		require.NoError(t, err)

		_, dup := seen[tok]
		require.False(t, dup, "token repetido en la muestra")
		seen[tok] = struct{}{}
	}
}
