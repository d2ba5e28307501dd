package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifiesAndSalts(t *testing.T) {
	t.Parallel()

	d1, err := HashPassword("hunter2")
	require.NoError(t, err)
	d2, err := HashPassword("hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2, "per-call salt must make digests differ")
	assert.True(t, CheckPassword("hunter2", d1))
	assert.True(t, CheckPassword("hunter2", d2))
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	d, err := HashPassword("hunter2")
	require.NoError(t, err)

	assert.False(t, CheckPassword("hunter3", d))
	assert.False(t, CheckPassword("", d))
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	assert.False(t, CheckPassword("hunter2", ""))
	assert.False(t, CheckPassword("hunter2", "plaintext"))
	assert.False(t, CheckPassword("hunter2", "$unknown$scheme$digest"))
}
