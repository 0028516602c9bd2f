package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPasswordValid(t *testing.T) {
	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{"letters and digit", "abc123", true},
		{"digit first", "1abcde", true},
		{"unicode letter with digit", "pässe1", true},
		{"too short", "ab1", false},
		{"letters only", "abcdefgh", false},
		{"digits only", "12345678", false},
		{"empty", "", false},
		{"symbols only", "!@#$%^&*", false},
		{"symbols with letter and digit", "a1!@#$", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsPasswordValid(tc.password))
		})
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.NoError(t, VerifyPassword(hash, "secret1"))
	assert.Error(t, VerifyPassword(hash, "wrong1"))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := HashPassword("secret1")
	assert.NoError(t, err)
	second, err := HashPassword("secret1")
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}
