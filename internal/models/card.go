package models

import (
	"regexp"
	"strconv"
)

// CardType identifies which variant of the card union a card is
type CardType string

const (
	// CardTypeHero joins a party and carries a rollable ability
	CardTypeHero CardType = "HERO"

	// CardTypeItem is equipped into a party
	CardTypeItem CardType = "ITEM"

	// CardTypeMagic is a one-shot spell that goes to the discard pile
	CardTypeMagic CardType = "MAGIC"

	// CardTypeModifier adjusts an open roll
	CardTypeModifier CardType = "MODIFIER"

	// CardTypeChallenge contests another player's card play
	CardTypeChallenge CardType = "CHALLENGE"

	// CardTypeLeader is a party leader dealt at game start
	CardTypeLeader CardType = "LEADER"

	// CardTypeMonster is a monster that can be attacked
	CardTypeMonster CardType = "MONSTER"
)

// IsValid reports whether the type is a known card type
func (t CardType) IsValid() bool {
	switch t {
	case CardTypeHero, CardTypeItem, CardTypeMagic, CardTypeModifier,
		CardTypeChallenge, CardTypeLeader, CardTypeMonster:
		return true
	}
	return false
}

// OpensChallenge reports whether playing this type opens a challenge window
func (t CardType) OpensChallenge() bool {
	return t == CardTypeHero || t == CardTypeItem || t == CardTypeMagic
}

// HeroClass is the class shared by heroes and party leaders
type HeroClass string

const (
	HeroClassFighter  HeroClass = "Fighter"
	HeroClassBard     HeroClass = "Bard"
	HeroClassGuardian HeroClass = "Guardian"
	HeroClassRanger   HeroClass = "Ranger"
	HeroClassThief    HeroClass = "Thief"
	HeroClassWizard   HeroClass = "Wizard"
)

// Card is one physical card dealt from the draw pile
type Card struct {
	// InstanceID is unique per physical copy; multiple copies share a CatalogID
	InstanceID string `json:"instanceId"`

	// CatalogID is the catalog entry this copy was made from
	CatalogID string `json:"catalogId"`

	// Type selects the card variant
	Type CardType `json:"type"`

	// Name is the printed card name
	Name string `json:"name"`

	// Class is set for heroes
	Class HeroClass `json:"class,omitempty"`

	// RollRequirement is the hero ability threshold
	RollRequirement int `json:"rollRequirement,omitempty"`

	// Effect is the effect key resolved on a successful ability roll
	Effect string `json:"effect,omitempty"`

	// ModifierOptions are the values a modifier card may apply
	ModifierOptions []int `json:"modifierOptions,omitempty"`

	// Description is the printed rules text
	Description string `json:"description,omitempty"`

	// UsedThisTurn marks a party hero whose ability was used this turn
	UsedThisTurn bool `json:"usedThisTurn,omitempty"`
}

var signedIntPattern = regexp.MustCompile(`[+-]?\d+`)

// Options returns the declared modifier options, falling back to every
// signed integer printed in the card name
func (c *Card) Options() []int {
	if len(c.ModifierOptions) > 0 {
		return c.ModifierOptions
	}
	var options []int
	for _, match := range signedIntPattern.FindAllString(c.Name, -1) {
		v, err := strconv.Atoi(match)
		if err != nil {
			continue
		}
		options = append(options, v)
	}
	return options
}

// AllowsModifier reports whether value is one of the card's options
func (c *Card) AllowsModifier(value int) bool {
	for _, option := range c.Options() {
		if option == value {
			return true
		}
	}
	return false
}

// Leader is a party leader card
type Leader struct {
	// ID is the catalog identifier
	ID string `json:"id"`

	// Name is the printed name
	Name string `json:"name"`

	// Class grants the leader bonus to heroes of the same class
	Class HeroClass `json:"class"`

	// Skill is the printed skill text
	Skill string `json:"skill"`
}

// Monster is a monster card in the monster pool
type Monster struct {
	// ID is the catalog identifier
	ID string `json:"id"`

	// Name is the printed name
	Name string `json:"name"`

	// RequirementText describes what a party needs to attack
	RequirementText string `json:"requirementText"`

	// RequiredHeroes is the hero count named by the requirement, if any
	RequiredHeroes int `json:"requiredHeroes,omitempty"`

	// RequiredClass is the hero class named by the requirement, if any
	RequiredClass HeroClass `json:"requiredClass,omitempty"`

	// SlayTarget is the minimum total that slays the monster
	SlayTarget int `json:"slayTarget"`

	// FailTarget is the inclusive upper bound that triggers the punishment
	FailTarget int `json:"failTarget"`

	// Reward is the printed reward text
	Reward string `json:"reward"`

	// Punishment is the printed punishment text
	Punishment string `json:"punishment"`
}
