package uuid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGameID(t *testing.T) {
	id := New().NewGameID()

	assert.Len(t, id, 5)
	assert.Equal(t, strings.ToUpper(id), id)
}

func TestNewInstanceIDIsUnique(t *testing.T) {
	gen := New()

	a := gen.NewInstanceID("h1", 0)
	b := gen.NewInstanceID("h1", 0)

	assert.True(t, strings.HasPrefix(a, "h1-0-"))
	assert.NotEqual(t, a, b)
}
