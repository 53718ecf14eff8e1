package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Generate devuelve un token opaco de n bytes aleatorios codificado en hex
// (longitud 2n). Usa crypto/rand; n=32 da 256 bits de entropía, suficiente
// para tokens de invitación imposibles de adivinar.
func Generate(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("token: tamaño inválido %d", n)
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("token: leer entropía: %w", err)
	}
	return hex.EncodeToString(b), nil
}
