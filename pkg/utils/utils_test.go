package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTotal(t *testing.T) {
	assert.Equal(t, 25.0, RoundTotal(25.0))
	assert.Equal(t, 25.0, RoundTotal(24.99))
	assert.Equal(t, 24.0, RoundTotal(24.49))
	assert.Equal(t, 0.0, RoundTotal(0))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 42, ParseInt("42", 7))
	assert.Equal(t, 7, ParseInt("", 7))
	assert.Equal(t, 7, ParseInt("abc", 7))
}

func TestGenerateUUIDIsUnique(t *testing.T) {
	a := GenerateUUID()
	b := GenerateUUID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
