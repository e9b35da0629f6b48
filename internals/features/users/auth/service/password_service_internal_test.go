package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestDummyHashMatchesStoredCost(t *testing.T) {
	h := dummyHash()
	cost, err := bcrypt.Cost([]byte(h))
	require.NoError(t, err)
	assert.Equal(t, passwordCost, cost)
	assert.Equal(t, h, dummyHash())
	assert.False(t, CheckPassword(h, "secret123"))
}
