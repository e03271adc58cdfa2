package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACHasher_HashAndVerify(t *testing.T) {
	hasher := NewHMACHasher()

	digest, salt, err := hasher.Hash("hunter2")
	require.NoError(t, err)
	assert.Len(t, salt, saltLength)
	assert.NotEmpty(t, digest)

	// Round trip succeeds against the paired salt.
	assert.True(t, hasher.Verify("hunter2", digest, salt))

	// A different password fails against the same digest/salt pair.
	assert.False(t, hasher.Verify("wrong", digest, salt))
}

func TestHMACHasher_FreshSaltPerHash(t *testing.T) {
	hasher := NewHMACHasher()

	digest1, salt1, err := hasher.Hash("same-password")
	require.NoError(t, err)
	digest2, salt2, err := hasher.Hash("same-password")
	require.NoError(t, err)

	// Same plaintext, different salts, therefore different digests.
	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, digest1, digest2)

	// Each digest still verifies only against its own salt.
	assert.True(t, hasher.Verify("same-password", digest1, salt1))
	assert.True(t, hasher.Verify("same-password", digest2, salt2))
	assert.False(t, hasher.Verify("same-password", digest1, salt2))
}

func TestHMACHasher_EmptyPassword(t *testing.T) {
	hasher := NewHMACHasher()

	digest, salt, err := hasher.Hash("")
	require.NoError(t, err)
	assert.True(t, hasher.Verify("", digest, salt))
	assert.False(t, hasher.Verify("not-empty", digest, salt))
}
