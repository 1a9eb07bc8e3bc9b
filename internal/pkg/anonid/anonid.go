// Package anonid gera os identificadores pseudônimos da plataforma.
package anonid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"regexp"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var pattern = regexp.MustCompile(`^ANX-[A-Z0-9]{6}$`)

// New gera um Anonimax ID no formato ANX-XXXXXX.
// Não há vínculo entre o ID e o identificador interno da conta.
func New() (string, error) {
	id := "ANX-"
	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate anonimax id: %w", err)
		}
		id += string(alphabet[n.Int64()])
	}
	return id, nil
}

// Valid informa se a string tem o formato de um Anonimax ID.
func Valid(id string) bool {
	return pattern.MatchString(id)
}

// NewToken gera um token aleatório em hex (verificação de email, reset de senha).
func NewToken(length int) (string, error) {
	bytes := make([]byte, length/2)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
