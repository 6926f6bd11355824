package pile

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reverseShuffler struct{}

func (reverseShuffler) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

func TestDrawTakesFromTail(t *testing.T) {
	p := Pile[string]{"a", "b", "c"}

	item, ok := p.Draw()
	require.True(t, ok)
	assert.Equal(t, "c", item)
	assert.Equal(t, 2, p.Size())
}

func TestDrawEmptyPile(t *testing.T) {
	var p Pile[int]

	_, ok := p.Draw()
	assert.False(t, ok)
	assert.Equal(t, 0, p.Size())
}

func TestDrawNStopsWhenExhausted(t *testing.T) {
	p := Pile[int]{1, 2}

	drawn := p.DrawN(5)
	assert.Equal(t, []int{2, 1}, drawn)
	assert.Equal(t, 0, p.Size())
}

func TestShuffleUsesShuffler(t *testing.T) {
	p := Pile[int]{1, 2, 3, 4}

	p.Shuffle(reverseShuffler{})
	assert.Equal(t, []int{4, 3, 2, 1}, p.Items())
}

func TestShuffleKeepsAllItems(t *testing.T) {
	p := Pile[int]{}
	for i := 0; i < 40; i++ {
		p.Add(i)
	}

	p.Shuffle(rand.New(rand.NewSource(7)))

	seen := make(map[int]bool)
	for _, v := range p.Items() {
		seen[v] = true
	}
	assert.Len(t, seen, 40)
}

func TestRemoveFunc(t *testing.T) {
	p := Pile[string]{"x", "y", "z"}

	item, ok := p.RemoveFunc(func(s string) bool { return s == "y" })
	require.True(t, ok)
	assert.Equal(t, "y", item)
	assert.Equal(t, []string{"x", "z"}, p.Items())

	_, ok = p.RemoveFunc(func(s string) bool { return s == "missing" })
	assert.False(t, ok)
}

func TestRemoveAtOutOfRange(t *testing.T) {
	p := Pile[int]{1}

	_, ok := p.RemoveAt(3)
	assert.False(t, ok)
	_, ok = p.RemoveAt(-1)
	assert.False(t, ok)
}
