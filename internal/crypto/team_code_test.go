package crypto

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamCodeGenerator_Format(t *testing.T) {
	code, err := NewTeamCodeGenerator().Generate()
	require.NoError(t, err)

	assert.Len(t, code, 2*TeamCodeBytes)
	assert.Equal(t, strings.ToUpper(code), code)
}

func TestTeamCodeGenerator_Unique(t *testing.T) {
	g := NewTeamCodeGenerator()
	seen := make(map[string]struct{})
	for range 100 {
		code, err := g.Generate()
		require.NoError(t, err)
		_, dup := seen[code]
		require.False(t, dup, "duplicate code %s", code)
		seen[code] = struct{}{}
	}
}

func TestTeamCodeGenerator_Deterministic(t *testing.T) {
	g := &teamCodeGenerator{random: bytes.NewReader(bytes.Repeat([]byte{0xab}, TeamCodeBytes))}

	code, err := g.Generate()
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("AB", TeamCodeBytes), code)
}

func TestTeamCodeGenerator_RandomFailure(t *testing.T) {
	boom := errors.New("entropy exhausted")
	g := &teamCodeGenerator{random: iotest.ErrReader(boom)}

	_, err := g.Generate()
	assert.ErrorIs(t, err, boom)
}
