package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAPIKey(t *testing.T) {
	key := GenerateAPIKey()
	assert.Len(t, key, 36)

	_, err := uuid.Parse(key)
	assert.NoError(t, err)

	assert.NotEqual(t, key, GenerateAPIKey())
}
