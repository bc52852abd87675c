package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	assert.NotEqual(t, uuid.Nil, first)
	assert.NotEqual(t, first, second)
	assert.Equal(t, uuid.Version(7), first.Version())
	assert.LessOrEqual(t, first.String(), second.String())
}
