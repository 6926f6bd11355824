package models

// PlayerSummary is the public record of a seated player
type PlayerSummary struct {
	// ID is the opaque player identifier supplied by the transport
	ID string `json:"id"`

	// Name is the display name of the player
	Name string `json:"name"`

	// SlainMonsters is how many monsters the player slew
	SlainMonsters int `json:"slainMonsters"`
}
