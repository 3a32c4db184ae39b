package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintAndValidate(t *testing.T) {
	minter := NewMinter("test-secret", time.Hour)

	token, err := minter.Mint("1", "johnd@test.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := minter.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)
	assert.Equal(t, "johnd@test.com", claims.Email)
}

func TestValidateRejectsForeignToken(t *testing.T) {
	minter := NewMinter("test-secret", time.Hour)
	other := NewMinter("other-secret", time.Hour)

	token, err := other.Mint("1", "johnd@test.com")
	require.NoError(t, err)

	_, err = minter.Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	minter := NewMinter("test-secret", -time.Minute)

	token, err := minter.Mint("1", "johnd@test.com")
	require.NoError(t, err)

	_, err = minter.Validate(token)
	assert.Error(t, err)
}

func TestMintRequiresSecret(t *testing.T) {
	minter := NewMinter("", time.Hour)

	_, err := minter.Mint("1", "johnd@test.com")
	assert.Error(t, err)
}
