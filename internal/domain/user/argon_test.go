package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.True(t, VerifyPassword("correct horse battery staple", hash))
	assert.False(t, VerifyPassword("wrong password", hash))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := HashPassword("same password")
	require.NoError(t, err)
	second, err := HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "each hash must carry a fresh salt")
	assert.True(t, VerifyPassword("same password", first))
	assert.True(t, VerifyPassword("same password", second))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"not argon2id", "$bcrypt$whatever"},
		{"wrong part count", "$argon2id$v=19$m=65536"},
		{"bad salt encoding", "$argon2id$v=19$m=65536,t=2,p=2$!!!$hash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, VerifyPassword("anything", tt.hash))
		})
	}
}
