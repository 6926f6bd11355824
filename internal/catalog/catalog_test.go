package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/heroparty/internal/models"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 4, c.Copies())
	assert.Len(t, c.Leaders(), 6)
	assert.Len(t, c.Monsters(), 4)
	assert.NotEmpty(t, c.Cards())

	var challenges int
	for _, entry := range c.Cards() {
		if entry.Type == models.CardTypeChallenge {
			challenges++
		}
	}
	assert.Equal(t, 1, challenges)
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := MustDefault()

	monsters := c.Monsters()
	monsters[0].Name = "changed"

	assert.NotEqual(t, "changed", c.Monsters()[0].Name)
}

func TestNewCardCopiesOptions(t *testing.T) {
	entry := CardEntry{ID: "mod1", Type: models.CardTypeModifier, Name: "+3/-1", ModifierOptions: []int{3, -1}}

	card := entry.NewCard("mod1-0")
	card.ModifierOptions[0] = 9

	assert.Equal(t, []int{3, -1}, entry.ModifierOptions)
	assert.Equal(t, "mod1-0", card.InstanceID)
	assert.Equal(t, "mod1", card.CatalogID)
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	testCases := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "no cards",
			doc:     "leaders: [{id: l}]\nmonsters: [{id: m}]\n",
			wantErr: ErrNoCards,
		},
		{
			name:    "duplicate id",
			doc:     "leaders: [{id: x}]\nmonsters: [{id: x}]\ncards: [{id: c, type: ITEM}]\n",
			wantErr: ErrDuplicateID,
		},
		{
			name:    "bad type",
			doc:     "leaders: [{id: l}]\nmonsters: [{id: m}]\ncards: [{id: c, type: SPELL}]\n",
			wantErr: ErrInvalidCardType,
		},
		{
			name:    "modifier without options",
			doc:     "leaders: [{id: l}]\nmonsters: [{id: m}]\ncards: [{id: c, type: MODIFIER, name: Boost}]\n",
			wantErr: ErrMissingOptions,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
		})
	}
}

func TestModifierOptionsParsedFromName(t *testing.T) {
	c, err := Parse([]byte("leaders: [{id: l}]\nmonsters: [{id: m}]\ncards: [{id: c, type: MODIFIER, name: \"+4\"}]\n"))
	require.NoError(t, err)

	card := c.Cards()[0].NewCard("c-0")
	assert.Equal(t, []int{4}, card.Options())
	assert.Equal(t, 1, c.Copies())
}
