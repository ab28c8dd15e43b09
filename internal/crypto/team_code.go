package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// TeamCodeBytes is the number of random bytes in a team invite code; the
// code itself is their uppercase hex encoding.
const TeamCodeBytes = 12

type teamCodeGenerator struct {
	random io.Reader
}

// NewTeamCodeGenerator returns a [CodeGenerator] reading from crypto/rand.
func NewTeamCodeGenerator() CodeGenerator {
	return &teamCodeGenerator{random: rand.Reader}
}

func (g *teamCodeGenerator) Generate() (string, error) {
	buf := make([]byte, TeamCodeBytes)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return "", fmt.Errorf("error generating team code: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}
