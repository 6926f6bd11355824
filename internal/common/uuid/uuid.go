package uuid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/heroparty/internal/common/uuid UUID

// UUID hands out the identifiers a game needs
type UUID interface {
	// NewGameID returns a short join code for a new game
	NewGameID() string

	// NewInstanceID returns an id for one physical copy of a catalog card
	NewInstanceID(catalogID string, copy int) string
}

// DefaultUUID implements the UUID interface using the uuid package
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewGameID returns the first five hex characters of a random UUID, upper-cased
func (d *DefaultUUID) NewGameID() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(id[:5])
}

// NewInstanceID returns "<catalog>-<copy>-<uuid>"
func (d *DefaultUUID) NewInstanceID(catalogID string, copy int) string {
	return fmt.Sprintf("%s-%d-%s", catalogID, copy, uuid.New().String())
}
