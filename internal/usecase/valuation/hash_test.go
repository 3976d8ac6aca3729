package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeed_SumsCharacterCodes(t *testing.T) {
	// "AB" = 65 + 66
	assert.Equal(t, 131, Seed("AB"))

	// Concatenation: Seed("A", "B") == Seed("AB")
	assert.Equal(t, Seed("AB"), Seed("A", "B"))
}

func TestSeed_EmptyInput(t *testing.T) {
	assert.Equal(t, 0, Seed())
	assert.Equal(t, 0, Seed(""))
}

func TestSeed_Deterministic(t *testing.T) {
	first := Seed("CL002", "TD-1234")
	second := Seed("CL002", "TD-1234")

	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, 0)
}

func TestDerive_Formula(t *testing.T) {
	// offset + ((seed * multiplier) mod modulus)
	assert.Equal(t, 50+(731*1)%4950, Derive(731, 1, 4950, 50))
	assert.Equal(t, (12*7)%10, Derive(12, 7, 10, 0))
}

func TestDerive_StaysInBounds(t *testing.T) {
	for seed := 0; seed < 5000; seed += 37 {
		v := Derive(seed, 11, 4950, 50)
		assert.GreaterOrEqual(t, v, 50)
		assert.Less(t, v, 5000)
	}
}
