package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewBcrypt(bcrypt.MinCost)

	tests := []struct {
		name     string
		password string
	}{
		{name: "simple password", password: "pw123"},
		{name: "complex password", password: "P@ssw0rd!#$%^&*()"},
		{name: "unicode password", password: "пароль密码"},
		{name: "max length password", password: strings.Repeat("a", MaxLength)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hash, err := h.Hash(tt.password)
			require.NoError(t, err)
			assert.NotEmpty(t, hash)
			assert.NotEqual(t, tt.password, hash)
			assert.True(t, h.Verify(tt.password, hash))
			assert.False(t, h.Verify(tt.password+"x", hash))
		})
	}
}

func TestBcrypt_SaltedHashesDiffer(t *testing.T) {
	t.Parallel()

	h := NewBcrypt(bcrypt.MinCost)

	first, err := h.Hash("same")
	require.NoError(t, err)
	second, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same", first))
	assert.True(t, h.Verify("same", second))
}

func TestBcrypt_TooLong(t *testing.T) {
	t.Parallel()

	_, err := NewBcrypt(bcrypt.MinCost).Hash(strings.Repeat("a", MaxLength+1))
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestBcrypt_VerifyRejectsLongerCandidate(t *testing.T) {
	t.Parallel()

	h := NewBcrypt(bcrypt.MinCost)
	pw := strings.Repeat("a", MaxLength)

	hash, err := h.Hash(pw)
	require.NoError(t, err)

	assert.True(t, h.Verify(pw, hash))
	assert.False(t, h.Verify(pw+"x", hash))
	assert.False(t, h.Verify(pw+"WRONG-SUFFIX", hash))
}

func TestBcrypt_VerifyGarbageHash(t *testing.T) {
	t.Parallel()

	assert.False(t, NewBcrypt(bcrypt.MinCost).Verify("pw", "not-a-hash"))
}

func TestNewBcrypt_Cost(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultCost, NewBcrypt(0).cost)
	assert.Equal(t, bcrypt.MinCost, NewBcrypt(1).cost)
	assert.Equal(t, bcrypt.MaxCost, NewBcrypt(99).cost)
	assert.Equal(t, 10, NewBcrypt(10).cost)
}
