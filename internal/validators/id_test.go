package validators

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID(uuid.NewString()))
	assert.True(t, IsUUID("550e8400-e29b-41d4-a716-446655440000"))

	invalid := []string{
		"",
		"   ",
		"12345",
		"not-a-uuid",
		"550e8400-e29b-41d4-a716",
		"550e8400e29b41d4a716446655440000zz",
	}
	for _, id := range invalid {
		assert.False(t, IsUUID(id), id)
	}
}
