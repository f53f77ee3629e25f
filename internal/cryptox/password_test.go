package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cheapArgon2() *Argon2 {
	return &Argon2{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 8, KeyLength: 16}
}

func TestArgon2_HashFormat(t *testing.T) {
	h := cheapArgon2()

	encoded, err := h.Hash("s3cret")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=1024,t=1,p=1$"), encoded)
	assert.Len(t, strings.Split(encoded, "$"), 6)
	assert.NotContains(t, encoded, "s3cret")
}

func TestArgon2_HashIsSalted(t *testing.T) {
	h := cheapArgon2()

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestArgon2_Verify(t *testing.T) {
	h := cheapArgon2()
	encoded, err := h.Hash("correct horse")
	require.NoError(t, err)

	ok, err := h.Verify("correct horse", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong horse", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2_VerifyUsesStoredParameters(t *testing.T) {
	old := cheapArgon2()
	encoded, err := old.Hash("pw")
	require.NoError(t, err)

	current := &Argon2{Memory: 2048, Iterations: 2, Parallelism: 1, SaltLength: 16, KeyLength: 32}
	ok, err := current.Verify("pw", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestArgon2_VerifyRejectsMalformed(t *testing.T) {
	h := cheapArgon2()

	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"plaintext", "hunter2"},
		{"wrong algorithm", "$argon2i$v=19$m=1024,t=1,p=1$c2FsdA$a2V5"},
		{"wrong version", "$argon2id$v=16$m=1024,t=1,p=1$c2FsdA$a2V5"},
		{"bad params", "$argon2id$v=19$m=x,t=1,p=1$c2FsdA$a2V5"},
		{"zero parallelism", "$argon2id$v=19$m=1024,t=1,p=0$c2FsdA$a2V5"},
		{"bad salt", "$argon2id$v=19$m=1024,t=1,p=1$***$a2V5"},
		{"bad key", "$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$***"},
		{"empty key", "$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := h.Verify("pw", tt.encoded)
			assert.False(t, ok)
			assert.ErrorIs(t, err, ErrInvalidHash)
		})
	}
}

func TestNewArgon2_Defaults(t *testing.T) {
	h := NewArgon2()
	assert.Equal(t, uint32(64*1024), h.Memory)
	assert.Equal(t, uint32(3), h.Iterations)
	assert.Equal(t, uint8(2), h.Parallelism)
	assert.Equal(t, uint32(16), h.SaltLength)
	assert.Equal(t, uint32(32), h.KeyLength)
}
