package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airlineempire/cli/internal/common"
)

func TestVerifySecret_Match(t *testing.T) {
	salt := common.GenerateRandByteArray(SaltSize)
	verifier := HashSecret([]byte("hunter2"), salt)

	assert.True(t, VerifySecret([]byte("hunter2"), salt, verifier))
}

func TestVerifySecret_Mismatch(t *testing.T) {
	salt := common.GenerateRandByteArray(SaltSize)
	verifier := HashSecret([]byte("hunter2"), salt)

	assert.False(t, VerifySecret([]byte("hunter3"), salt, verifier))
	assert.False(t, VerifySecret(nil, salt, verifier))
}

func TestHashSecret_SaltChangesVerifier(t *testing.T) {
	v1 := HashSecret([]byte("hunter2"), []byte("salt-one"))
	v2 := HashSecret([]byte("hunter2"), []byte("salt-two"))

	require.NotEqual(t, v1, v2)
}

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := []byte("fixed-salt")
	k1 := DeriveKey([]byte("pw"), salt)
	k2 := DeriveKey([]byte("pw"), salt)

	assert.Equal(t, k1, k2)
	assert.Len(t, k1, 32)
}
