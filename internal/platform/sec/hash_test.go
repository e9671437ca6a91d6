// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardgroup/stratus/internal/platform/sec"
)

/*
TestHashPassword_RoundTrip verifies a hashed password validates against itself.
*/
func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// The stored value must never equal the plaintext.
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, sec.CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, sec.CheckPasswordHash("wrong password", hash))
}

/*
TestHashPassword_Salted verifies that two hashes of the same input differ.
*/
func TestHashPassword_Salted(t *testing.T) {
	first, err := sec.HashPassword("secret123")
	require.NoError(t, err)

	second, err := sec.HashPassword("secret123")
	require.NoError(t, err)

	// bcrypt embeds a random salt per hash.
	assert.NotEqual(t, first, second)

	assert.True(t, sec.CheckPasswordHash("secret123", first))
	assert.True(t, sec.CheckPasswordHash("secret123", second))
}

/*
TestCheckPasswordHash_Garbage verifies that a corrupt stored hash never validates.
*/
func TestCheckPasswordHash_Garbage(t *testing.T) {
	assert.False(t, sec.CheckPasswordHash("anything", "not-a-bcrypt-hash"))
	assert.False(t, sec.CheckPasswordHash("anything", ""))
}
